// domain/service/file_storage_service.go
package service

import "mime/multipart"

// FileUploadResult - ผลลัพธ์จากการอัปโหลดไฟล์
type FileUploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Format   string `json:"format"`
	Size     int    `json:"size"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// FileStorageService - บริการจัดเก็บไฟล์ภายนอก
type FileStorageService interface {
	UploadImage(file *multipart.FileHeader, folder string) (*FileUploadResult, error)
	DeleteFile(publicID string) error
}
