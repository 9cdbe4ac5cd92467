// application/serviceimpl/user_service.go
package serviceimpl

import (
	"mime/multipart"

	"github.com/google/uuid"

	"github.com/thizplus/gofiber-notes-api/domain/dto"
	"github.com/thizplus/gofiber-notes-api/domain/models"
	"github.com/thizplus/gofiber-notes-api/domain/repository"
	"github.com/thizplus/gofiber-notes-api/domain/service"
	"github.com/thizplus/gofiber-notes-api/domain/types"
)

type userService struct {
	userRepo       repository.UserRepository
	storageService service.FileStorageService
}

// NewUserService สร้าง instance ของ UserService
func NewUserService(
	userRepo repository.UserRepository,
	storageService service.FileStorageService,
) service.UserService {
	return &userService{
		userRepo:       userRepo,
		storageService: storageService,
	}
}

// GetProfile ดึงโปรไฟล์ของผู้ใช้
func (s *userService) GetProfile(userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, types.ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile แก้ไขโปรไฟล์แบบ partial - field ที่เป็น nil ไม่ถูกแตะ
func (s *userService) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UploadAvatar อัปโหลดรูปโปรไฟล์ไปยัง storage แล้วบันทึก URL
func (s *userService) UploadAvatar(userID uuid.UUID, file *multipart.FileHeader) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	result, err := s.storageService.UploadImage(file, "avatars")
	if err != nil {
		return nil, err
	}

	user.ProfileImageURL = result.URL
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
