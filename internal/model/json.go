package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonbValue / jsonbScan back the embedded-document types stored in JSONB columns.

func jsonbValue(v any) (driver.Value, error) {
	return json.Marshal(v)
}

func jsonbScan(dest any, src any) error {
	switch s := src.(type) {
	case []byte:
		return json.Unmarshal(s, dest)
	case string:
		return json.Unmarshal([]byte(s), dest)
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}

// StringList is a JSONB-backed list of strings (tags, qualifications, features).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return jsonbValue([]string{})
	}
	return jsonbValue([]string(l))
}

func (l *StringList) Scan(src any) error {
	return jsonbScan(l, src)
}
