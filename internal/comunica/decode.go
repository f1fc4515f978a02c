package comunica

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"consultapje/internal/models"
)

// ErrInvalidPayload is returned when a response body is not a JSON object.
var ErrInvalidPayload = errors.New("invalid payload")

// DecodePayload decodes the response envelope. Items are passed through undecoded.
func DecodePayload(body []byte) (*models.Payload, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: body is not valid JSON", ErrInvalidPayload)
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: expected a JSON object, got %s", ErrInvalidPayload, root.Type)
	}

	payload := &models.Payload{
		Status:  root.Get("status").String(),
		Message: root.Get("message").String(),
		Count:   root.Get("count").Int(),
		Raw:     body,
	}

	items := root.Get("items")
	if items.IsArray() {
		payload.HasItems = true
		payload.Items = make([]models.RawItem, 0, len(items.Array()))

		items.ForEach(func(_, item gjson.Result) bool {
			payload.Items = append(payload.Items, models.RawItem(item.Raw))

			return true
		})
	}

	return payload, nil
}

// LoadPayloadFile decodes a payload previously saved to disk.
func LoadPayloadFile(path string) (*models.Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload file %s: %w", path, err)
	}

	return DecodePayload(data)
}

// SavePayloadFile writes the raw response body to path.
func SavePayloadFile(payload *models.Payload, path string) error {
	if payload == nil || len(payload.Raw) == 0 {
		return fmt.Errorf("%w: nothing to save", ErrInvalidPayload)
	}

	if err := os.WriteFile(path, payload.Raw, 0644); err != nil {
		return fmt.Errorf("failed to write payload file %s: %w", path, err)
	}

	return nil
}
