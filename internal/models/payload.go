package models

import "encoding/json"

// StatusSuccess is the payload status reported by the API for a successful query.
const StatusSuccess = "success"

// RawItem is one undecoded entry of the payload items collection.
// Its keys are not reliable; see the normalizer resolution table.
type RawItem json.RawMessage

// Payload is the decoded API response envelope.
type Payload struct {
	Status  string
	Message string
	Items   []RawItem
	Raw     []byte
	Count   int64
	// HasItems is false when the response carried no items collection at all.
	HasItems bool
}

// IsSuccess reports whether the API flagged the query as successful.
func (p *Payload) IsSuccess() bool {
	return p != nil && p.Status == StatusSuccess
}
