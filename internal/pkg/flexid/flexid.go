// Package flexid decodes identifiers that the HR API emits either as JSON
// numbers or as JSON strings.
package flexid

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is an opaque identifier kept in its decimal/string form.
type ID string

func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the id is empty
func (id ID) IsZero() bool {
	return id == ""
}

// UnmarshalJSON accepts 42, "42" and "a1b2".
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flexid: %s is neither a number nor a string", data)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON emits numeric ids as numbers so they round-trip to the API in
// the shape it sent them.
func (id ID) MarshalJSON() ([]byte, error) {
	if id != "" && json.Valid([]byte(id)) && isNumeric(string(id)) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Ptr returns nil for an empty id
func Ptr(s string) *ID {
	if s == "" {
		return nil
	}
	id := ID(s)
	return &id
}

func isNumeric(s string) bool {
	for i, r := range s {
		if r == '-' && i == 0 && len(s) > 1 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
