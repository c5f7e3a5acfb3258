package payload

import (
	"regexp"
	"walletsync/internal/core"

	"github.com/jellydator/validation"
)

var addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
var hashRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
var amountRegex = regexp.MustCompile(`^\d+(\.\d+)?$`)

type UnlockRequest struct {
	Address  string `json:"address"`
	Password string `json:"password"`
}

func (u UnlockRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Address, validation.Required, validation.Match(addressRegex)),
		validation.Field(&u.Password, validation.Required),
	)
}

func (u UnlockRequest) ToMessage() core.AuthMessage {
	return core.AuthMessage{
		Address:  u.Address,
		Password: u.Password,
	}
}
