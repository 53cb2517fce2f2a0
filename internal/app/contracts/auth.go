package contracts

import (
	"context"
	"medicore-admin-service/internal/pkg/dto/requests"
	"medicore-admin-service/internal/pkg/dto/responses"
)

// PlatformIdentity is the platform's answer to a successful login.
type PlatformIdentity struct {
	Token          string `json:"token"`
	UserID         string `json:"user_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	OrganizationID string `json:"organization_id"`
}

type AuthPlatformClient interface {
	Login(ctx context.Context, email, password string) (*PlatformIdentity, error)
}

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*responses.Profile, error)
}
