package core_test

import (
	"encoding/json"
	"math"
	"math/big"
	"walletrisk/internal/core"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParseNativeValue", func() {
	DescribeTable("converting smallest-unit amounts",
		func(raw any, expected float64) {
			Expect(core.ParseNativeValue(raw)).To(Equal(expected))
		},
		Entry("integer string", "2000000000000000000", 2.0),
		Entry("scientific notation", "2e18", 2.0),
		Entry("padded string", " 1500000000000000000 ", 1.5),
		Entry("rounds to six decimals", "1234567890123456789", 1.234568),
		Entry("sub-micro amount rounds to zero", "1", 0.0),
		Entry("json number", json.Number("3000000000000000000"), 3.0),
		Entry("float", 5e17, 0.5),
		Entry("int", 1000000000000, 0.000001),
		Entry("big int", new(big.Int).Mul(big.NewInt(7), big.NewInt(1e18)), 7.0),
		Entry("empty string", "", 0.0),
		Entry("nil", nil, 0.0),
		Entry("garbage", "abc", 0.0),
		Entry("hex is not parsed", "0x10", 0.0),
		Entry("negative", "-1000000000000000000", 0.0),
		Entry("NaN", math.NaN(), 0.0),
		Entry("bool", true, 0.0),
		Entry("overflowing exponent", "1e400", 0.0),
		Entry("overflowing json number", json.Number("1e400"), 0.0),
		Entry("result beyond float range", "1e330", 0.0),
		Entry("huge exponent", "1e2000000000", 0.0),
		Entry("huge negative exponent", "1e-2000000000", 0.0),
		Entry("zero with huge exponent", "0e2000000000", 0.0),
		Entry("zero with max exponent", "0e2147483647", 0.0),
		Entry("zero with min exponent", "0e-2147483648", 0.0),
		Entry("padded zero with huge negative exponent", "0.0000e-2147483000", 0.0),
		Entry("plain zero", "0", 0.0),
	)
})
