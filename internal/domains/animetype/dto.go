package animetype

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateTypeRequest - POST /v1/types
type CreateTypeRequest struct {
	Label string `json:"label" binding:"required"`
}

func (r CreateTypeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Label,
			validation.Required.Error("label is required"),
			validation.Length(1, 100),
		),
	)
}
