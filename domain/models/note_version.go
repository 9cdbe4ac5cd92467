// domain/models/note_version.go

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// TagSnapshot - ค่า id+name ของ tag ณ เวลาที่สร้าง version
// เป็น value record ไม่ใช่ reference - การลบ Tag ภายหลังไม่กระทบ snapshot
type TagSnapshot struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// TagSnapshots - รายการ tag แบบเรียงลำดับ เก็บเป็น jsonb ใน note_versions
type TagSnapshots []TagSnapshot

// Value ทำให้ TagSnapshots ใช้กับ GORM/database/sql ได้
func (t TagSnapshots) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t)
}

// Scan อ่านค่า jsonb จากฐานข้อมูลกลับมาเป็น slice
func (t *TagSnapshots) Scan(value interface{}) error {
	if value == nil {
		*t = TagSnapshots{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return errors.New("unsupported type for TagSnapshots")
	}
}

// IDs คืน id ของ tag ทั้งหมดใน snapshot ตามลำดับเดิม
func (t TagSnapshots) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(t))
	for _, snap := range t {
		ids = append(ids, snap.ID)
	}
	return ids
}

// NewTagSnapshots สร้าง snapshot จากชุด tag ปัจจุบันของ note
func NewTagSnapshots(tags []*Tag) TagSnapshots {
	snaps := make(TagSnapshots, 0, len(tags))
	for _, tag := range tags {
		snaps = append(snaps, TagSnapshot{ID: tag.ID, Name: tag.Name})
	}
	return snaps
}

// NoteVersion - รายการใน version chain ของ note
// เก็บสถานะ *ก่อน* mutation ที่สร้าง version นี้ และห้ามแก้ไขหลังสร้างแล้ว
// ถูกลบได้ทางเดียวคือการลบถาวรของ note เจ้าของ
type NoteVersion struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	NoteID uuid.UUID `json:"note_id" gorm:"type:uuid;not null;index"`

	// Seq ใช้ตัดสินลำดับเมื่อ created_at ชนกัน (chain ต้องเป็นเส้นตรงเสมอ)
	Seq int64 `json:"-" gorm:"autoIncrement;uniqueIndex"`

	Title        string         `json:"title" gorm:"type:varchar(255);not null"`
	Description  string         `json:"description" gorm:"type:text"`
	Visibility   NoteVisibility `json:"visibility" gorm:"type:varchar(20)"`
	CreatedBy    uuid.UUID      `json:"created_by" gorm:"type:uuid;not null"`
	TagsSnapshot TagSnapshots   `json:"tags_snapshot" gorm:"type:jsonb;default:'[]'::jsonb"`

	// IsRevertPoint = true หมายถึง version นี้ snapshot สถานะทันทีก่อน revert
	IsRevertPoint bool `json:"is_revert_point" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
}

// TableName - ระบุชื่อตารางใน database
func (NoteVersion) TableName() string {
	return "note_versions"
}
