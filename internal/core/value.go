package core

import (
	"encoding/json"
	"math"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/params"
	"github.com/shopspring/decimal"
)

const valuePrecision = 6

// maxMagnitude bounds the decimal order of magnitude of an accepted amount.
const maxMagnitude = 400

var unitScale = decimal.NewFromBigInt(big.NewInt(params.Ether), 0)

// ParseNativeValue converts a smallest-unit amount into the chain's native unit,
// rounded to six decimals. Absent, empty, negative, unparseable or out of range
// input yields 0.
func ParseNativeValue(raw any) float64 {
	var (
		amount decimal.Decimal
		err    error
	)

	switch v := raw.(type) {
	case nil:
		return 0
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0
		}
		amount, err = decimal.NewFromString(s)
	case json.Number:
		amount, err = decimal.NewFromString(v.String())
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		amount = decimal.NewFromFloat(v)
	case int:
		amount = decimal.NewFromInt(int64(v))
	case int64:
		amount = decimal.NewFromInt(v)
	case uint64:
		amount = decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
	case *big.Int:
		if v == nil {
			return 0
		}
		amount = decimal.NewFromBigInt(v, 0)
	default:
		return 0
	}

	// a zero mantissa can still carry an exponent that stalls or overflows Div
	if err != nil || amount.IsZero() || amount.IsNegative() || !withinMagnitude(amount) {
		return 0
	}

	value, _ := amount.Div(unitScale).Round(valuePrecision).Float64()
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

func withinMagnitude(amount decimal.Decimal) bool {
	m := amount.NumDigits() + int(amount.Exponent())
	return m >= -maxMagnitude && m <= maxMagnitude
}
