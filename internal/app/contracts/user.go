package contracts

import (
	"context"
	"medicore-admin-service/internal/app/models"
	"medicore-admin-service/internal/pkg/dto/requests"
)

type UserPlatformClient interface {
	ListUsers(ctx context.Context) ([]models.SystemUser, error)
	CreateUser(ctx context.Context, request *requests.CreateSystemUser) (*models.SystemUser, error)
	PatchUser(ctx context.Context, request *requests.PatchSystemUser) (*models.SystemUser, error)
	DeleteUser(ctx context.Context, userID string) error
}

type UserUsecase interface {
	FindAll(ctx context.Context, request *requests.ListSystemUsers) ([]models.SystemUser, error)
	Create(ctx context.Context, request *requests.CreateSystemUser) (*models.SystemUser, error)
	Patch(ctx context.Context, request *requests.PatchSystemUser) (*models.SystemUser, error)
	Delete(ctx context.Context, userID string) error
}
