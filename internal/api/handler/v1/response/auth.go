package response

import (
	"time"

	"github.com/campusgg/events-api/internal/domain"
)

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
	// ExpiresAt is the token expiry in the viewer-facing locale format.
	ExpiresAt string `json:"expires_at"`
	// RefreshIntervalSeconds tells clients how often to call /auth/refresh.
	RefreshIntervalSeconds int64 `json:"refresh_interval_seconds"`
}

type RefreshResponse struct {
	Token                  string `json:"token"`
	ExpiresAt              string `json:"expires_at"`
	RefreshIntervalSeconds int64  `json:"refresh_interval_seconds"`
}

func RefreshSeconds(d time.Duration) int64 {
	return int64(d / time.Second)
}
