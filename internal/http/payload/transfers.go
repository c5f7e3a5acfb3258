package payload

import (
	"walletsync/internal/core"

	"github.com/jellydator/validation"
)

type SendTransferRequest struct {
	To          string  `json:"to"`
	Value       string  `json:"value"`
	Network     string  `json:"network"`
	Token       *string `json:"token"`
	TokenSymbol *string `json:"tokenSymbol"`
	Memo        *string `json:"memo"`
}

func (t SendTransferRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.To, validation.Required, validation.Match(addressRegex)),
		validation.Field(&t.Value, validation.Required, validation.Match(amountRegex)),
		validation.Field(&t.Network, validation.Required),
	)
}

func (t SendTransferRequest) ToIntent() core.TransferIntent {
	return core.TransferIntent{
		To:          t.To,
		Value:       t.Value,
		Network:     t.Network,
		Token:       t.Token,
		TokenSymbol: t.TokenSymbol,
		Memo:        t.Memo,
	}
}

type ReceiveTransferRequest struct {
	From        string  `json:"from"`
	Value       string  `json:"value"`
	Network     string  `json:"network"`
	Token       *string `json:"token"`
	TokenSymbol *string `json:"tokenSymbol"`
	Memo        *string `json:"memo"`
}

func (t ReceiveTransferRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.From, validation.Required, validation.Match(addressRegex)),
		validation.Field(&t.Value, validation.Required, validation.Match(amountRegex)),
		validation.Field(&t.Network, validation.Required),
	)
}

func (t ReceiveTransferRequest) ToIntent() core.TransferIntent {
	return core.TransferIntent{
		From:        t.From,
		Value:       t.Value,
		Network:     t.Network,
		Token:       t.Token,
		TokenSymbol: t.TokenSymbol,
		Memo:        t.Memo,
	}
}

type StatusUpdateRequest struct {
	Hash          string `json:"hash"`
	Status        string `json:"status"`
	Confirmations *int   `json:"confirmations"`
}

func (s StatusUpdateRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Hash, validation.Required, validation.Match(hashRegex)),
		validation.Field(&s.Status, validation.Required,
			validation.In(core.StatusPending, core.StatusConfirmed, core.StatusFailed)),
		validation.Field(&s.Confirmations, validation.Min(0)),
	)
}
