// Package models defines the resources exchanged with the jiraclone backend.
//
// The backend owns every field; the client only decodes what it receives and
// forwards what the caller sets. Optional fields use omitempty so partial
// updates do not overwrite server values with zero values.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is an opaque resource identifier. The backend emits numeric ids, but
// callers may hold them as strings, so both JSON forms are accepted.
type ID string

func (id ID) String() string { return string(id) }

// IsZero reports whether the identifier is unset.
func (id ID) IsZero() bool { return id == "" }

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
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON emits numeric ids as JSON numbers and everything else as strings.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if v, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(v, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}
