// application/serviceimpl/auth_service.go
package serviceimpl

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/thizplus/gofiber-notes-api/domain/dto"
	"github.com/thizplus/gofiber-notes-api/domain/models"
	"github.com/thizplus/gofiber-notes-api/domain/repository"
	"github.com/thizplus/gofiber-notes-api/domain/service"
	"github.com/thizplus/gofiber-notes-api/domain/types"
	"github.com/thizplus/gofiber-notes-api/pkg/configs"
)

type authService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	blacklistRepo    repository.TokenBlacklistRepository
	jwtConfig        *configs.JWTConfig
}

// NewAuthService สร้าง instance ของ AuthService
func NewAuthService(
	userRepo repository.UserRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	blacklistRepo repository.TokenBlacklistRepository,
	jwtConfig *configs.JWTConfig,
) service.AuthService {
	return &authService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		blacklistRepo:    blacklistRepo,
		jwtConfig:        jwtConfig,
	}
}

// Register สมัครสมาชิกใหม่และออก token คู่แรกให้ทันที
func (s *authService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, types.ErrUsernameTaken
	}

	existing, err = s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, types.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		DisplayName:  req.Username,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	tokens, err := s.issueTokens(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{User: user, Tokens: *tokens}, nil
}

// Login ตรวจรหัสผ่านและออก token คู่ใหม่
func (s *authService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, types.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, types.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{User: user, Tokens: *tokens}, nil
}

// Refresh แลก refresh token เป็นคู่ใหม่ - token เดิมถูกลบทิ้ง (rotation)
func (s *authService) Refresh(refreshToken string) (*dto.TokenPair, error) {
	userID, err := s.parseToken(refreshToken, s.jwtConfig.RefreshSecret)
	if err != nil {
		return nil, types.ErrInvalidToken
	}

	stored, err := s.refreshTokenRepo.GetByToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if stored == nil || stored.UserID != userID || time.Now().After(stored.ExpiresAt) {
		return nil, types.ErrInvalidToken
	}

	if err := s.refreshTokenRepo.Delete(refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(userID)
}

// Logout เพิกถอน access token ปัจจุบันและลบ refresh token ทั้งหมดของผู้ใช้
func (s *authService) Logout(userID uuid.UUID, accessToken string) error {
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	// ดึง exp จาก token เพื่อตั้งอายุ blacklist ไม่ต้องตรวจลายเซ็นซ้ำ
	// middleware ตรวจไปแล้วก่อนถึงจุดนี้
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return types.ErrInvalidToken
	}

	expiresAt := time.Now().Add(s.jwtConfig.AccessTTL)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	if err := s.blacklistRepo.Add(&models.TokenBlacklist{
		ID:        uuid.New(),
		Token:     accessToken,
		ExpiresAt: expiresAt,
	}); err != nil {
		return err
	}

	return s.refreshTokenRepo.DeleteByUserID(userID)
}

// ValidateToken ตรวจ access token และคืน user id
func (s *authService) ValidateToken(token string) (uuid.UUID, error) {
	blacklisted, err := s.blacklistRepo.IsBlacklisted(token)
	if err != nil {
		return uuid.Nil, err
	}
	if blacklisted {
		return uuid.Nil, types.ErrInvalidToken
	}

	userID, err := s.parseToken(token, s.jwtConfig.AccessSecret)
	if err != nil {
		return uuid.Nil, types.ErrInvalidToken
	}
	return userID, nil
}

// issueTokens ออก access/refresh token คู่ใหม่และบันทึก refresh token ลงฐานข้อมูล
func (s *authService) issueTokens(userID uuid.UUID) (*dto.TokenPair, error) {
	accessToken, err := s.signToken(userID, s.jwtConfig.AccessSecret, s.jwtConfig.AccessTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.signToken(userID, s.jwtConfig.RefreshSecret, s.jwtConfig.RefreshTTL)
	if err != nil {
		return nil, err
	}

	if err := s.refreshTokenRepo.Create(&models.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(s.jwtConfig.RefreshTTL),
	}); err != nil {
		return nil, err
	}

	return &dto.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *authService) signToken(userID uuid.UUID, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (s *authService) parseToken(tokenString, secret string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, types.ErrInvalidToken
	}

	return uuid.Parse(claims.Subject)
}
