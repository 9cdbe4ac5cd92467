// pkg/configs/jwt_config.go
package configs

import (
	"time"
)

// JWTConfig - ค่าการออกและตรวจสอบ token
type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// LoadJWTConfig อ่านค่า JWT จาก environment
func LoadJWTConfig() *JWTConfig {
	accessTTL, err := time.ParseDuration(getEnv("JWT_ACCESS_TTL", "15m"))
	if err != nil {
		accessTTL = 15 * time.Minute
	}

	refreshTTL, err := time.ParseDuration(getEnv("JWT_REFRESH_TTL", "168h"))
	if err != nil {
		refreshTTL = 7 * 24 * time.Hour
	}

	return &JWTConfig{
		AccessSecret:  getEnv("JWT_ACCESS_SECRET", "dev-access-secret"),
		RefreshSecret: getEnv("JWT_REFRESH_SECRET", "dev-refresh-secret"),
		AccessTTL:     accessTTL,
		RefreshTTL:    refreshTTL,
	}
}
