package payload_test

import (
	"net/http/httptest"
	"strings"
	"walletrisk/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	addrA = "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"
	addrB = "0x00000000219ab540356cbb839cbe05303d7705fa"
)

var _ = Describe("AssessRequest", func() {
	It("should accept hex addresses", func() {
		Expect(payload.AssessRequest{Wallets: []string{addrA, addrB}}.Validate()).To(Succeed())
	})

	DescribeTable("should reject",
		func(wallets []string) {
			Expect(payload.AssessRequest{Wallets: wallets}.Validate()).NotTo(Succeed())
		},
		Entry("no wallets", nil),
		Entry("a blank wallet", []string{addrA, ""}),
		Entry("a name", []string{"vitalik.eth"}),
		Entry("a short address", []string{"0x1234"}),
	)
})

var _ = Describe("WalletRequest", func() {
	It("should validate the wallet address", func() {
		Expect(payload.WalletRequest{Wallet: addrA}.Validate()).To(Succeed())
		Expect(payload.WalletRequest{Wallet: "nope"}.Validate()).NotTo(Succeed())
	})
})

var _ = Describe("DecodeValidator", func() {
	var dv payload.DecodeValidator

	It("should decode and validate", func() {
		req := httptest.NewRequest("POST", "/risk/authenticate", strings.NewReader(`{"username":"ann","password":"pw"}`))
		var auth payload.AuthRequest
		Expect(dv.DecodeJSONPayload(req, &auth)).To(Succeed())
		Expect(auth.ToMessage().Username).To(Equal("ann"))
	})

	It("should reject unknown fields", func() {
		req := httptest.NewRequest("POST", "/risk/authenticate", strings.NewReader(`{"username":"ann","password":"pw","admin":true}`))
		var auth payload.AuthRequest
		Expect(dv.DecodeJSONPayload(req, &auth)).To(MatchError(ContainSubstring("decoding json payload")))
	})

	It("should report validation failures", func() {
		req := httptest.NewRequest("POST", "/risk/authenticate", strings.NewReader(`{"username":"ann"}`))
		var auth payload.AuthRequest
		Expect(dv.DecodeJSONPayload(req, &auth)).To(MatchError(ContainSubstring("validating payload")))
	})
})
