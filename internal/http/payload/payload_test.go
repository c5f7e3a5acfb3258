package payload_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"walletsync/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Payload validation", func() {
	var (
		validator payload.DecodeValidator
		req       *http.Request
	)

	BeforeEach(func() {
		validator = payload.DecodeValidator{}
	})

	Describe("DecodeAndValidateJSONPayload", func() {
		When("the payload is valid", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"address":"0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1","password":"testpass"}`)
				req = httptest.NewRequest("POST", "/wallet/unlock", body)
			})

			It("should decode into the target struct", func() {
				var unlock payload.UnlockRequest
				err := validator.DecodeAndValidateJSONPayload(req, &unlock)
				Expect(err).NotTo(HaveOccurred())
				Expect(unlock.Address).To(Equal("0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1"))
			})
		})

		When("the payload carries unknown fields", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"address":"0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1","password":"x","extra":1}`)
				req = httptest.NewRequest("POST", "/wallet/unlock", body)
			})

			It("should reject the payload", func() {
				var unlock payload.UnlockRequest
				err := validator.DecodeAndValidateJSONPayload(req, &unlock)
				Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
			})
		})

		When("the payload fails validation", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"address":"nope","password":"x"}`)
				req = httptest.NewRequest("POST", "/wallet/unlock", body)
			})

			It("should return a validation error", func() {
				var unlock payload.UnlockRequest
				err := validator.DecodeAndValidateJSONPayload(req, &unlock)
				Expect(err).To(MatchError(ContainSubstring("validating payload")))
			})
		})
	})

	Describe("SendTransferRequest", func() {
		var request payload.SendTransferRequest

		BeforeEach(func() {
			request = payload.SendTransferRequest{
				To:      "0xffcf8fdee72ac11b5c542428b35eef5769c409f0",
				Value:   "1.5",
				Network: "ethereum",
			}
		})

		It("should accept a well formed transfer", func() {
			Expect(request.Validate()).To(Succeed())
		})

		It("should reject a malformed recipient", func() {
			request.To = "0x123"
			Expect(request.Validate()).NotTo(Succeed())
		})

		It("should reject a negative amount", func() {
			request.Value = "-1"
			Expect(request.Validate()).NotTo(Succeed())
		})

		It("should reject a missing network", func() {
			request.Network = ""
			Expect(request.Validate()).NotTo(Succeed())
		})
	})

	Describe("StatusUpdateRequest", func() {
		var request payload.StatusUpdateRequest

		BeforeEach(func() {
			conf := 12
			request = payload.StatusUpdateRequest{
				Hash:          "0x" + strings.Repeat("ab", 32),
				Status:        "confirmed",
				Confirmations: &conf,
			}
		})

		It("should accept a well formed update", func() {
			Expect(request.Validate()).To(Succeed())
		})

		It("should reject an unknown status", func() {
			request.Status = "done"
			Expect(request.Validate()).NotTo(Succeed())
		})

		It("should reject a short hash", func() {
			request.Hash = "0xabc1"
			Expect(request.Validate()).NotTo(Succeed())
		})

		It("should reject negative confirmations", func() {
			conf := -1
			request.Confirmations = &conf
			Expect(request.Validate()).NotTo(Succeed())
		})

		It("should accept absent confirmations", func() {
			request.Confirmations = nil
			Expect(request.Validate()).To(Succeed())
		})
	})

	Describe("ContactUpdateRequest", func() {
		It("should require a uuid id", func() {
			request := payload.ContactUpdateRequest{ID: "not-a-uuid"}
			Expect(request.Validate()).NotTo(Succeed())

			request.ID = "5f6a7d8e-1b2c-4d3e-9f0a-b1c2d3e4f5a6"
			Expect(request.Validate()).To(Succeed())
		})
	})

	Describe("PurchaseRequest", func() {
		var request payload.PurchaseRequest

		BeforeEach(func() {
			request = payload.PurchaseRequest{
				Provider:       "moonpay",
				FiatAmount:     "100",
				FiatCurrency:   "USD",
				CryptoAmount:   "0.05",
				CryptoCurrency: "ETH",
				PaymentMethod:  "card",
			}
		})

		It("should accept a well formed purchase", func() {
			Expect(request.Validate()).To(Succeed())
		})

		It("should reject a non-decimal fiat amount", func() {
			request.FiatAmount = "lots"
			Expect(request.Validate()).NotTo(Succeed())
		})
	})
})
