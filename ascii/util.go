package ascii

import (
	"math/big"
	"strconv"

	"github.com/katalvlaran/ppl/bigint"
)

func itoa(n int) string { return strconv.Itoa(n) }

func parseBigInt(tok string) (*bigint.Int, error) {
	var v big.Int
	if _, ok := v.SetString(tok, 10); !ok {
		return nil, ErrMalformedInt
	}
	return bigint.FromBigInt(&v), nil
}
