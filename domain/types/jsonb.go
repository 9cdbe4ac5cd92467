// domain/types/jsonb.go
package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSONB - ชนิดข้อมูลสำหรับ column jsonb ของ PostgreSQL
type JSONB map[string]interface{}

// Value ทำให้ JSONB ใช้กับ GORM/database/sql ได้
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(j)
}

// Scan อ่านค่า jsonb จากฐานข้อมูลกลับมาเป็น map
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = JSONB{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	default:
		return errors.New("unsupported type for JSONB")
	}
}
