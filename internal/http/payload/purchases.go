package payload

import (
	"walletsync/internal/core"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

type PurchaseRequest struct {
	Provider              string  `json:"provider"`
	FiatAmount            string  `json:"fiatAmount"`
	FiatCurrency          string  `json:"fiatCurrency"`
	CryptoAmount          string  `json:"cryptoAmount"`
	CryptoCurrency        string  `json:"cryptoCurrency"`
	PaymentMethod         string  `json:"paymentMethod"`
	Fees                  string  `json:"fees"`
	ProviderTransactionID *string `json:"providerTransactionId"`
}

func (p PurchaseRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Provider, validation.Required),
		validation.Field(&p.FiatAmount, validation.Required, validation.Match(amountRegex)),
		validation.Field(&p.FiatCurrency, validation.Required, validation.Length(3, 10)),
		validation.Field(&p.CryptoAmount, validation.Required, validation.Match(amountRegex)),
		validation.Field(&p.CryptoCurrency, validation.Required),
		validation.Field(&p.PaymentMethod, validation.Required),
		validation.Field(&p.Fees, validation.Match(amountRegex)),
	)
}

func (p PurchaseRequest) ToIntent() core.PurchaseIntent {
	return core.PurchaseIntent{
		Provider:              p.Provider,
		FiatAmount:            p.FiatAmount,
		FiatCurrency:          p.FiatCurrency,
		CryptoAmount:          p.CryptoAmount,
		CryptoCurrency:        p.CryptoCurrency,
		PaymentMethod:         p.PaymentMethod,
		Fees:                  p.Fees,
		ProviderTransactionID: p.ProviderTransactionID,
	}
}

type PurchaseStatusRequest struct {
	ID              string  `json:"id"`
	Status          string  `json:"status"`
	TransactionHash *string `json:"transactionHash"`
}

func (p PurchaseStatusRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required, is.UUID),
		validation.Field(&p.Status, validation.Required,
			validation.In(core.PurchasePending, core.PurchaseProcessing, core.PurchaseCompleted, core.PurchaseFailed)),
		validation.Field(&p.TransactionHash, validation.Match(hashRegex)),
	)
}
