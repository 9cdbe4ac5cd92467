// domain/models/note.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// NoteVisibility - ระดับการมองเห็น Note
type NoteVisibility string

const (
	NoteVisibilityPrivate NoteVisibility = "private" // เห็นเฉพาะเจ้าของ
	NoteVisibilityCustom  NoteVisibility = "custom"  // เห็นเฉพาะเจ้าของและผู้ใช้ใน note_users
	NoteVisibilityPublic  NoteVisibility = "public"  // ผู้ใช้ที่ล็อกอินแล้วเห็นได้ทุกคน
)

// IsValid ตรวจสอบว่าค่า visibility อยู่ในเซตที่รองรับ
func (v NoteVisibility) IsValid() bool {
	switch v {
	case NoteVisibilityPrivate, NoteVisibilityCustom, NoteVisibilityPublic:
		return true
	}
	return false
}

// Note - บันทึกของผู้ใช้ มีเจ้าของคนเดียว
// archived เป็น soft delete marker เพียงตัวเดียว - ลบถาวรได้เฉพาะ note ที่ archived แล้ว
type Note struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID     uuid.UUID      `json:"owner_id" gorm:"type:uuid;not null;index"`
	Title       string         `json:"title" gorm:"type:varchar(255);not null"`
	Description string         `json:"description" gorm:"type:text"`
	Visibility  NoteVisibility `json:"visibility" gorm:"type:varchar(20);default:'private'"`
	Archived    bool           `json:"archived" gorm:"default:false;index"`

	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
	UpdatedAt time.Time `json:"updated_at" gorm:"type:timestamp with time zone;default:now()"`

	// Associations
	// ชุด tag ปัจจุบันมาจาก join note_tags เท่านั้น ไม่ได้เก็บซ้ำใน note
	Owner       *User   `json:"owner,omitempty" gorm:"foreignkey:OwnerID"`
	Tags        []*Tag  `json:"tags,omitempty" gorm:"many2many:note_tags;"`
	SharedUsers []*User `json:"shared_users,omitempty" gorm:"many2many:note_users;"`
}

// TableName - ระบุชื่อตารางใน database
func (Note) TableName() string {
	return "notes"
}

// TagIDs คืน id ของ tag ปัจจุบันตามลำดับ association
func (n *Note) TagIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(n.Tags))
	for _, tag := range n.Tags {
		ids = append(ids, tag.ID)
	}
	return ids
}
