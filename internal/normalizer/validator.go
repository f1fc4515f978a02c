package normalizer

import (
	"errors"
	"fmt"

	"consultapje/internal/models"
)

// Validation errors.
var (
	ErrNilPayload = errors.New("no payload received")
	ErrAPIStatus  = errors.New("query returned an error status")
)

// Validator checks the payload envelope before normalization.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate fails when the payload is absent or its status is not "success".
// The API message is carried in the error.
func (v *Validator) Validate(payload *models.Payload) error {
	if payload == nil {
		return ErrNilPayload
	}

	if !payload.IsSuccess() {
		msg := payload.Message
		if msg == "" {
			msg = fmt.Sprintf("status %q", payload.Status)
		}

		return fmt.Errorf("%w: %s", ErrAPIStatus, msg)
	}

	return nil
}
