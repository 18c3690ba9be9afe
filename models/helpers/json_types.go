package helpers

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// StringArray JSONB kolonunda saklanan string dilimi.
type StringArray []string

// Value GORM'un kolonu yazarken çağırdığı serileştirme.
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan GORM'un kolonu okurken çağırdığı deserileştirme.
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}
	bytes, err := toBytes(value)
	if err != nil {
		return fmt.Errorf("StringArray: %w", err)
	}
	return json.Unmarshal(bytes, a)
}

// GormDataType jsonb kolon tipi.
func (StringArray) GormDataType() string { return "jsonb" }

func toBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New("jsonb kolonundan beklenmeyen veri tipi")
	}
}
