package payload

import (
	"walletsync/internal/core"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

type ContactRequest struct {
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Tags       []string `json:"tags"`
	Notes      string   `json:"notes"`
	IsFavorite bool     `json:"isFavorite"`
}

func (c ContactRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&c.Address, validation.Required, validation.Match(addressRegex)),
	)
}

func (c ContactRequest) ToIntent() core.ContactIntent {
	return core.ContactIntent{
		Name:       c.Name,
		Address:    c.Address,
		Tags:       c.Tags,
		Notes:      c.Notes,
		IsFavorite: c.IsFavorite,
	}
}

type ContactUpdateRequest struct {
	ID         string   `json:"id"`
	Name       *string  `json:"name"`
	Tags       []string `json:"tags"`
	Notes      *string  `json:"notes"`
	IsFavorite *bool    `json:"isFavorite"`
}

func (c ContactUpdateRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ID, validation.Required, is.UUID),
	)
}

func (c ContactUpdateRequest) ToUpdate() core.ContactUpdate {
	return core.ContactUpdate{
		Name:       c.Name,
		Tags:       c.Tags,
		Notes:      c.Notes,
		IsFavorite: c.IsFavorite,
	}
}

type ContactDeleteRequest struct {
	ID string `json:"id"`
}

func (c ContactDeleteRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ID, validation.Required, is.UUID),
	)
}
