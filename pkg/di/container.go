// pkg/di/container.go
package di

import (
	"log"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/thizplus/gofiber-notes-api/application/serviceimpl"
	"github.com/thizplus/gofiber-notes-api/domain/port"
	"github.com/thizplus/gofiber-notes-api/domain/repository"
	"github.com/thizplus/gofiber-notes-api/domain/service"
	"github.com/thizplus/gofiber-notes-api/infrastructure/adapter"
	"github.com/thizplus/gofiber-notes-api/infrastructure/persistence/postgres"
	"github.com/thizplus/gofiber-notes-api/interfaces/api/handler"
	"github.com/thizplus/gofiber-notes-api/interfaces/websocket"
	"github.com/thizplus/gofiber-notes-api/pkg/configs"
)

// Container เก็บ dependencies ทั้งหมดของแอปพลิเคชัน
type Container struct {
	// Repositories
	UserRepo           repository.UserRepository
	RefreshTokenRepo   repository.RefreshTokenRepository
	TokenBlacklistRepo repository.TokenBlacklistRepository
	TagRepo            repository.TagRepository
	NoteRepo           repository.NoteRepository
	NoteVersionRepo    repository.NoteVersionRepository

	// WebSocket Components
	WebSocketHub     *websocket.Hub
	NotificationPort port.NotificationPort

	// Services
	StorageService      service.FileStorageService
	AuthService         service.AuthService
	UserService         service.UserService
	TagService          service.TagService
	NotificationService service.NotificationService
	NoteService         service.NoteService
	NoteVersionService  service.NoteVersionService

	// Handlers
	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	TagHandler         *handler.TagHandler
	NoteHandler        *handler.NoteHandler
	NoteVersionHandler *handler.NoteVersionHandler

	RedisClient *redis.Client
}

// NewContainer สร้าง container ใหม่พร้อมกับ dependencies ทั้งหมด
func NewContainer(db *gorm.DB, storageService service.FileStorageService, redisClient *redis.Client) (*Container, error) {
	container := &Container{
		StorageService: storageService,
		RedisClient:    redisClient,
	}

	// สร้าง repositories
	container.UserRepo = postgres.NewUserRepository(db)
	container.RefreshTokenRepo = postgres.NewRefreshTokenRepository(db)
	container.TokenBlacklistRepo = postgres.NewTokenBlacklistRepository(db)
	container.TagRepo = postgres.NewTagRepository(db)
	container.NoteRepo = postgres.NewNoteRepository(db)
	container.NoteVersionRepo = postgres.NewNoteVersionRepository(db)

	// สร้าง notification chain: service -> port -> Redis -> hub
	container.NotificationPort = adapter.NewRedisNotificationAdapter(redisClient)
	container.NotificationService = serviceimpl.NewNotificationService(container.NotificationPort)
	container.WebSocketHub = websocket.NewHub(redisClient)

	// สร้าง services
	container.AuthService = serviceimpl.NewAuthService(
		container.UserRepo,
		container.RefreshTokenRepo,
		container.TokenBlacklistRepo,
		configs.LoadJWTConfig(),
	)
	container.UserService = serviceimpl.NewUserService(container.UserRepo, storageService)
	container.TagService = serviceimpl.NewTagService(container.TagRepo)
	container.NoteService = serviceimpl.NewNoteService(container.NoteRepo, container.NotificationService)
	container.NoteVersionService = serviceimpl.NewNoteVersionService(container.NoteRepo, container.NoteVersionRepo)

	// สร้าง handlers
	container.AuthHandler = handler.NewAuthHandler(container.AuthService)
	container.UserHandler = handler.NewUserHandler(container.UserService)
	container.TagHandler = handler.NewTagHandler(container.TagService)
	container.NoteHandler = handler.NewNoteHandler(container.NoteService)
	container.NoteVersionHandler = handler.NewNoteVersionHandler(container.NoteVersionService)

	log.Println("DI container initialized")

	return container, nil
}
