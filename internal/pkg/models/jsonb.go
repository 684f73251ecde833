package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// scanJSON decodes a JSONB column into dest
func scanJSON(src interface{}, dest interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported JSONB source type %T", src)
	}
}

// valueJSON encodes v for a JSONB column
func valueJSON(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Metadata is free-form JSONB attached to ledger entries
type Metadata map[string]interface{}

// Scan implements sql.Scanner
func (m *Metadata) Scan(src interface{}) error {
	return scanJSON(src, m)
}

// Value implements driver.Valuer
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	return valueJSON(map[string]interface{}(m))
}
