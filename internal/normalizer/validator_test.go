package normalizer

import (
	"errors"
	"strings"
	"testing"

	"consultapje/internal/models"
)

func TestNewValidator(t *testing.T) {
	v := NewValidator()
	if v == nil {
		t.Fatal("NewValidator returned nil")
	}
}

func TestValidator_Validate(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&models.Payload{Status: "success"}); err != nil {
		t.Errorf("Validate returned unexpected error for success payload: %v", err)
	}
}

func TestValidator_Validate_Errors(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		data    *models.Payload
		wantIs  error
		wantErr string
	}{
		{name: "Nil payload", data: nil, wantIs: ErrNilPayload, wantErr: "no payload"},
		{name: "Error with message", data: &models.Payload{Status: "error", Message: "x"}, wantIs: ErrAPIStatus, wantErr: ": x"},
		{name: "Error without message", data: &models.Payload{Status: "fail"}, wantIs: ErrAPIStatus, wantErr: `status "fail"`},
		{name: "Missing status", data: &models.Payload{}, wantIs: ErrAPIStatus, wantErr: `status ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.data)
			if err == nil {
				t.Fatal("Validate expected error but got nil")
			}

			if !errors.Is(err, tt.wantIs) {
				t.Errorf("Validate error = %v, want %v", err, tt.wantIs)
			}

			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate error = %v, want substring %v", err, tt.wantErr)
			}
		})
	}
}
