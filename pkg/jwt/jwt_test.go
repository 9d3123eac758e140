package jwt_test

import (
	"time"
	tokens "walletrisk/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokens.JWTService
		now     time.Time
		info    tokens.TokenInfo
	)

	BeforeEach(func() {
		now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		tokens.TimeNow = func() time.Time { return now }
		DeferCleanup(func() { tokens.TimeNow = time.Now })

		service = tokens.NewJWTService([]byte("secret"))
		info = tokens.TokenInfo{UserName: "admin", Subject: "user-1", Expiration: 24}
	})

	sign := func(s *tokens.JWTService) string {
		signed, err := s.Sign(s.Generate(info))
		Expect(err).NotTo(HaveOccurred())
		return signed
	}

	It("should round trip the claims", func() {
		claims, err := service.Validate(sign(service))
		Expect(err).NotTo(HaveOccurred())
		Expect(claims["sub"]).To(Equal("user-1"))
		Expect(claims["username"]).To(Equal("admin"))
		Expect(claims["iss"]).To(Equal("walletrisk"))
	})

	It("should reject a token signed with another secret", func() {
		other := tokens.NewJWTService([]byte("other"))
		_, err := service.Validate(sign(other))
		Expect(err).To(MatchError(tokens.ErrTokenNotValid))
	})

	It("should reject an expired token", func() {
		signed := sign(service)
		now = now.Add(25 * time.Hour)

		_, err := service.Validate(signed)
		Expect(err).To(MatchError(tokens.ErrTokenExpired))
	})

	It("should reject a foreign issuer", func() {
		token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
			"iss": "someone-else",
			"sub": "user-1",
			"exp": now.Add(time.Hour).Unix(),
		})
		signed, err := service.Sign(token)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokens.ErrTokenNotValid))
	})

	It("should reject a token without expiry", func() {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"iss": "walletrisk", "sub": "user-1"})
		signed, err := service.Sign(token)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokens.ErrTokenNotValid))
	})

	It("should reject garbage", func() {
		_, err := service.Validate("not.a.token")
		Expect(err).To(MatchError(tokens.ErrTokenNotValid))
	})
})
