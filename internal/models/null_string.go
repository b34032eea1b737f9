package models

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
)

// NullString is a text column that may be NULL. It decodes JSON strings and
// JSON numbers, so an id posted as 101 is stored as "101".
type NullString struct {
	sql.NullString
}

func NewNullString(s string) NullString {
	return NullString{sql.NullString{String: s, Valid: true}}
}

func (s NullString) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.String)
}

func (s *NullString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = NullString{}
		return nil
	}

	if bytes.HasPrefix(data, []byte(`"`)) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = NewNullString(v)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid text value %s", data)
	}
	*s = NewNullString(n.String())
	return nil
}
