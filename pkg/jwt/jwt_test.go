package jwt_test

import (
	tokenIssuer "walletsync/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		secret  []byte
	)

	BeforeEach(func() {
		secret = []byte("test-secret")
		service = tokenIssuer.NewJWTService(secret)
	})

	Describe("Generate and Validate", func() {
		It("should round trip the subject claim", func() {
			token := service.Generate(tokenIssuer.TokenInfo{
				Subject:    "0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1",
				Expiration: 24,
			})

			signed, err := service.Sign(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(signed).NotTo(BeEmpty())

			claims, err := service.Validate(signed)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims["sub"]).To(Equal("0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1"))
		})

		It("should reject a token signed with another secret", func() {
			other := tokenIssuer.NewJWTService([]byte("other-secret"))
			signed, err := other.Sign(other.Generate(tokenIssuer.TokenInfo{Subject: "x", Expiration: 1}))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})

		It("should reject a malformed token", func() {
			_, err := service.Validate("not.a.token")
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})

		It("should reject an expired token", func() {
			signed, err := service.Sign(service.Generate(tokenIssuer.TokenInfo{
				Subject:    "x",
				Expiration: -1,
			}))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(signed)
			Expect(err).To(HaveOccurred())
		})
	})
})
