package organizations

import (
	"context"
	"fmt"
	"medicore-admin-service/internal/app/contracts"
	"medicore-admin-service/internal/app/models"
	"medicore-admin-service/internal/app/services/platform"
	"medicore-admin-service/internal/pkg/constvars"
	"medicore-admin-service/internal/pkg/dto/requests"
	"medicore-admin-service/internal/pkg/exceptions"
	"medicore-admin-service/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	organizationPlatformClientInstance contracts.OrganizationPlatformClient
	onceOrganizationPlatformClient     sync.Once
)

type organizationPlatformClient struct {
	requester *platform.Requester
	Log       *zap.Logger
}

func NewOrganizationPlatformClient(requester *platform.Requester, logger *zap.Logger) contracts.OrganizationPlatformClient {
	onceOrganizationPlatformClient.Do(func() {
		client := &organizationPlatformClient{
			requester: requester,
			Log:       logger,
		}
		organizationPlatformClientInstance = client
	})
	return organizationPlatformClientInstance
}

func (c *organizationPlatformClient) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("organizationPlatformClient.ListOrganizations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.requester.Do(ctx, constvars.MethodGet, "/superadmin/organizations", nil, constvars.ResourceOrganizations)
	if err != nil {
		return nil, err
	}

	var organizations []models.Organization
	if err := json.Unmarshal(body, &organizations); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceOrganizations)
	}

	c.Log.Info("organizationPlatformClient.ListOrganizations succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(organizations)),
	)
	return organizations, nil
}

func (c *organizationPlatformClient) CreateOrganization(ctx context.Context, request *requests.CreateOrganization) (*models.Organization, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("organizationPlatformClient.CreateOrganization called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.requester.Do(ctx, constvars.MethodPost, "/superadmin/organizations", request, constvars.ResourceOrganizations)
	if err != nil {
		return nil, err
	}

	organization := new(models.Organization)
	if err := json.Unmarshal(body, organization); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceOrganizations)
	}

	c.Log.Info("organizationPlatformClient.CreateOrganization succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrganizationKey, organization.ID),
	)
	return organization, nil
}

func (c *organizationPlatformClient) UpdateOrganizationStatus(ctx context.Context, organizationID, status string) (*models.Organization, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("organizationPlatformClient.UpdateOrganizationStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrganizationKey, organizationID),
	)

	payload := map[string]string{"status": status}
	path := fmt.Sprintf("/superadmin/organizations/%s/status", organizationID)

	body, err := c.requester.Do(ctx, constvars.MethodPatch, path, payload, constvars.ResourceOrganizations)
	if err != nil {
		return nil, err
	}

	organization := new(models.Organization)
	if err := json.Unmarshal(body, organization); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceOrganizations)
	}

	return organization, nil
}

func (c *organizationPlatformClient) DeleteOrganization(ctx context.Context, organizationID string) error {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("organizationPlatformClient.DeleteOrganization called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrganizationKey, organizationID),
	)

	path := fmt.Sprintf("/superadmin/organizations/%s", organizationID)
	_, err := c.requester.Do(ctx, constvars.MethodDelete, path, nil, constvars.ResourceOrganizations)
	return err
}
