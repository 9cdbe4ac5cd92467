// application/serviceimpl/auth_service_test.go
package serviceimpl

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thizplus/gofiber-notes-api/domain/dto"
	"github.com/thizplus/gofiber-notes-api/domain/models"
	"github.com/thizplus/gofiber-notes-api/domain/repository"
	"github.com/thizplus/gofiber-notes-api/domain/types"
	"github.com/thizplus/gofiber-notes-api/pkg/configs"
)

type fakeUserRepository struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[uuid.UUID]*models.User)}
}

func (r *fakeUserRepository) Create(user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) FindByID(id uuid.UUID) (*models.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepository) FindByUsername(username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) FindByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) FindByIDs(ids []uuid.UUID) ([]*models.User, error) {
	result := []*models.User{}
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			result = append(result, user)
		}
	}
	return result, nil
}

func (r *fakeUserRepository) Update(user *models.User) error {
	r.users[user.ID] = user
	return nil
}

type fakeRefreshTokenRepository struct {
	tokens map[string]*models.RefreshToken
}

func newFakeRefreshTokenRepository() *fakeRefreshTokenRepository {
	return &fakeRefreshTokenRepository{tokens: make(map[string]*models.RefreshToken)}
}

func (r *fakeRefreshTokenRepository) Create(token *models.RefreshToken) error {
	r.tokens[token.Token] = token
	return nil
}

func (r *fakeRefreshTokenRepository) GetByToken(token string) (*models.RefreshToken, error) {
	return r.tokens[token], nil
}

func (r *fakeRefreshTokenRepository) Delete(token string) error {
	delete(r.tokens, token)
	return nil
}

func (r *fakeRefreshTokenRepository) DeleteByUserID(userID uuid.UUID) error {
	for key, token := range r.tokens {
		if token.UserID == userID {
			delete(r.tokens, key)
		}
	}
	return nil
}

func (r *fakeRefreshTokenRepository) DeleteExpired() error {
	for key, token := range r.tokens {
		if time.Now().After(token.ExpiresAt) {
			delete(r.tokens, key)
		}
	}
	return nil
}

type fakeTokenBlacklistRepository struct {
	blacklist map[string]bool
}

func newFakeTokenBlacklistRepository() *fakeTokenBlacklistRepository {
	return &fakeTokenBlacklistRepository{blacklist: make(map[string]bool)}
}

func (r *fakeTokenBlacklistRepository) Add(entry *models.TokenBlacklist) error {
	r.blacklist[entry.Token] = true
	return nil
}

func (r *fakeTokenBlacklistRepository) IsBlacklisted(token string) (bool, error) {
	return r.blacklist[token], nil
}

func (r *fakeTokenBlacklistRepository) DeleteExpired() error {
	return nil
}

func testJWTConfig() *configs.JWTConfig {
	return &configs.JWTConfig{
		AccessSecret:  "test-access-secret",
		RefreshSecret: "test-refresh-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    24 * time.Hour,
	}
}

func setupAuthService() (repository.UserRepository, *fakeRefreshTokenRepository, *authService) {
	userRepo := newFakeUserRepository()
	refreshRepo := newFakeRefreshTokenRepository()
	svc := NewAuthService(userRepo, refreshRepo, newFakeTokenBlacklistRepository(), testJWTConfig()).(*authService)
	return userRepo, refreshRepo, svc
}

func TestRegisterAndLogin(t *testing.T) {
	_, _, svc := setupAuthService()

	registered, err := svc.Register(&dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Tokens.AccessToken)
	assert.NotEmpty(t, registered.Tokens.RefreshToken)

	// รหัสผ่านต้องไม่ถูกเก็บเป็น plaintext
	assert.NotEqual(t, "secret-password", registered.User.PasswordHash)

	loggedIn, err := svc.Login(&dto.LoginRequest{Username: "alice", Password: "secret-password"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	_, err = svc.Login(&dto.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, types.ErrInvalidCredentials)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	_, _, svc := setupAuthService()

	_, err := svc.Register(&dto.RegisterRequest{Username: "alice", Email: "a@example.com", Password: "secret-password"})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{Username: "alice", Email: "b@example.com", Password: "secret-password"})
	assert.ErrorIs(t, err, types.ErrUsernameTaken)
}

func TestValidateToken(t *testing.T) {
	_, _, svc := setupAuthService()

	registered, err := svc.Register(&dto.RegisterRequest{Username: "alice", Email: "a@example.com", Password: "secret-password"})
	require.NoError(t, err)

	userID, err := svc.ValidateToken(registered.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, userID)

	_, err = svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, types.ErrInvalidToken)

	// refresh token ใช้แทน access token ไม่ได้ (คนละ secret)
	_, err = svc.ValidateToken(registered.Tokens.RefreshToken)
	assert.ErrorIs(t, err, types.ErrInvalidToken)
}

func TestRefreshRotatesToken(t *testing.T) {
	_, refreshRepo, svc := setupAuthService()

	registered, err := svc.Register(&dto.RegisterRequest{Username: "alice", Email: "a@example.com", Password: "secret-password"})
	require.NoError(t, err)

	pair, err := svc.Refresh(registered.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	// token เก่าถูก rotate ทิ้ง ใช้ซ้ำไม่ได้
	assert.Nil(t, refreshRepo.tokens[registered.Tokens.RefreshToken])
	_, err = svc.Refresh(registered.Tokens.RefreshToken)
	assert.ErrorIs(t, err, types.ErrInvalidToken)
}

func TestLogoutRevokesTokens(t *testing.T) {
	_, refreshRepo, svc := setupAuthService()

	registered, err := svc.Register(&dto.RegisterRequest{Username: "alice", Email: "a@example.com", Password: "secret-password"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(registered.User.ID, registered.Tokens.AccessToken))

	// access token ติด blacklist
	_, err = svc.ValidateToken(registered.Tokens.AccessToken)
	assert.ErrorIs(t, err, types.ErrInvalidToken)

	// refresh token ทั้งหมดของผู้ใช้ถูกลบ
	assert.Empty(t, refreshRepo.tokens)
}
