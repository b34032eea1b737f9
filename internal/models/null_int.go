package models

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// NullInt64 is an integer column that may be NULL. It decodes JSON numbers
// and numeric strings, since HTML number inputs are posted as strings.
type NullInt64 struct {
	sql.NullInt64
}

func NewNullInt64(n int64) NullInt64 {
	return NullInt64{sql.NullInt64{Int64: n, Valid: true}}
}

func (n NullInt64) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(n.Int64, 10)), nil
}

func (n *NullInt64) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = NullInt64{}
		return nil
	}

	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*n = NullInt64{}
			return nil
		}
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %s", data)
	}
	*n = NewNullInt64(v)
	return nil
}
