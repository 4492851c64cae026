package usecase

import (
	"cowork-booking/internal/domain/user"
	"cowork-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Principal is the caller identity attached to a request.
type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

type Authenticator interface {
	Authenticate(token string) (Principal, error)
}

type jwtAuthenticator struct {
	jwtService *jwt.Service
}

func NewAuthenticator(jwtService *jwt.Service) Authenticator {
	return &jwtAuthenticator{jwtService: jwtService}
}

func (a *jwtAuthenticator) Authenticate(token string) (Principal, error) {
	claims, err := a.jwtService.ValidateToken(token)
	if err != nil {
		return Principal{}, err
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Principal{}, err
	}
	return Principal{UserID: claims.UserID, Role: role}, nil
}
