package domain

import (
	"bytes"
	"encoding/json"
)

// Ref holds a reference that the server may populate either as a bare id
// string or as an expanded object. Consumers must not assume one shape:
// check Expanded before dereferencing and use RefID for the identifier.
type Ref[T any] struct {
	ID       string
	Expanded *T
}

// refIDProbe pulls the id field out of an expanded reference payload
type refIDProbe struct {
	ID string `json:"id"`
}

// IsZero returns true if the reference is absent entirely
func (r Ref[T]) IsZero() bool {
	return r.ID == "" && r.Expanded == nil
}

// IsExpanded returns true if the server populated the full object
func (r Ref[T]) IsExpanded() bool {
	return r.Expanded != nil
}

// RefID returns the referenced id regardless of shape
func (r Ref[T]) RefID() string {
	return r.ID
}

// UnmarshalJSON accepts either "abc123" or {"id": "abc123", ...}.
func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = Ref[T]{}
		return nil
	}

	if data[0] == '"' {
		r.Expanded = nil
		return json.Unmarshal(data, &r.ID)
	}

	var expanded T
	if err := json.Unmarshal(data, &expanded); err != nil {
		return err
	}

	var probe refIDProbe
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	r.ID = probe.ID
	r.Expanded = &expanded
	return nil
}

// MarshalJSON writes back whichever shape the reference holds.
func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.Expanded != nil {
		return json.Marshal(r.Expanded)
	}
	if r.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}
