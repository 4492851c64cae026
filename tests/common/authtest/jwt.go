//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"cowork-booking/internal/domain/user"
	"cowork-booking/internal/pkg/config"
	"cowork-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the identity service would, signed with the
// secret under test.
type JWTHelper struct {
	secret   string
	duration time.Duration
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	d, err := time.ParseDuration(cfg.Duration)
	if err != nil {
		d = time.Hour
	}
	return &JWTHelper{secret: cfg.Secret, duration: d}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.sign(t, userID, role, h.duration)
}

// CreateExpiredToken returns a token that expired an hour ago, well outside
// any configured leeway.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.sign(t, userID, role, -time.Hour)
}

func (h *JWTHelper) sign(t *testing.T, userID uuid.UUID, role user.Role, d time.Duration) string {
	t.Helper()
	token, err := jwt.NewService(h.secret, d).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
