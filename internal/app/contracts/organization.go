package contracts

import (
	"context"
	"medicore-admin-service/internal/app/models"
	"medicore-admin-service/internal/pkg/dto/requests"
	"medicore-admin-service/internal/pkg/dto/responses"
)

type OrganizationPlatformClient interface {
	ListOrganizations(ctx context.Context) ([]models.Organization, error)
	CreateOrganization(ctx context.Context, request *requests.CreateOrganization) (*models.Organization, error)
	UpdateOrganizationStatus(ctx context.Context, organizationID, status string) (*models.Organization, error)
	DeleteOrganization(ctx context.Context, organizationID string) error
}

type OrganizationUsecase interface {
	FindAll(ctx context.Context, request *requests.ListOrganizations) ([]models.Organization, error)
	Create(ctx context.Context, request *requests.CreateOrganization) (*models.Organization, error)
	UpdateStatus(ctx context.Context, request *requests.UpdateOrganizationStatus) (*models.Organization, error)
	Delete(ctx context.Context, organizationID string) error
	Overview(ctx context.Context) (*responses.OrganizationOverview, error)
}
