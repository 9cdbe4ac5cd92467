// database/migration.go
package database

import (
	"log"

	"github.com/thizplus/gofiber-notes-api/domain/models"
	"gorm.io/gorm"
)

// RunMigration ทำการ migrate โมเดลทั้งหมดไปยังฐานข้อมูล
func RunMigration(db *gorm.DB) error {
	log.Println("กำลังทำ Auto Migration...")

	// ต้องมี extension สำหรับ uuid_generate_v4()
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	// การเรียงลำดับมีความสำคัญ - เริ่มจากตารางหลักก่อน แล้วค่อยไปตารางที่มี foreign key
	err := db.AutoMigrate(
		// โมเดลหลัก (ไม่มี FK ไปหาตารางอื่น)
		&models.User{},
		&models.Tag{},

		// โมเดลที่มี FK ไปหาตารางหลัก
		&models.RefreshToken{},
		&models.TokenBlacklist{},
		&models.Note{},

		// version chain ขึ้นอยู่กับ notes
		&models.NoteVersion{},
	)

	if err != nil {
		log.Printf("Auto Migration ล้มเหลว: %v", err)
		return err
	}

	log.Println("Auto Migration สำเร็จ")
	return nil
}

// CreateIndices สร้าง indices เพื่อเพิ่มประสิทธิภาพในการค้นหา
func CreateIndices(db *gorm.DB) error {
	log.Println("กำลังสร้าง indices...")

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_notes_owner_archived ON notes(owner_id, archived)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_notes_updated_at ON notes(updated_at)").Error; err != nil {
		return err
	}

	// audit log อ่าน chain ทั้งก้อนเรียงตามเวลาเสมอ
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_note_versions_note_created ON note_versions(note_id, created_at DESC, seq DESC)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_note_tags_tag_id ON note_tags(tag_id)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_note_users_user_id ON note_users(user_id)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)").Error; err != nil {
		return err
	}

	log.Println("สร้าง indices สำเร็จ")
	return nil
}

// SetupDatabase ตั้งค่าฐานข้อมูลทั้งหมด
func SetupDatabase(db *gorm.DB) error {
	if err := RunMigration(db); err != nil {
		return err
	}

	if err := CreateIndices(db); err != nil {
		return err
	}

	return nil
}
