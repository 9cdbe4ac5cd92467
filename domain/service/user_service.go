// domain/service/user_service.go
package service

import (
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/thizplus/gofiber-notes-api/domain/dto"
	"github.com/thizplus/gofiber-notes-api/domain/models"
)

// UserService - จัดการโปรไฟล์ผู้ใช้
type UserService interface {
	GetProfile(userID uuid.UUID) (*models.User, error)
	UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error)

	// UploadAvatar อัปโหลดรูปโปรไฟล์ผ่าน FileStorageService
	UploadAvatar(userID uuid.UUID, file *multipart.FileHeader) (*models.User, error)
}
