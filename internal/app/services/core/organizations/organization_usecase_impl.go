package organizations

import (
	"context"
	"fmt"
	"medicore-admin-service/internal/app/config"
	"medicore-admin-service/internal/app/contracts"
	"medicore-admin-service/internal/app/models"
	"medicore-admin-service/internal/pkg/constvars"
	"medicore-admin-service/internal/pkg/dto/requests"
	"medicore-admin-service/internal/pkg/dto/responses"
	"medicore-admin-service/internal/pkg/exceptions"
	"medicore-admin-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	organizationUsecaseInstance contracts.OrganizationUsecase
	onceOrganizationUsecase     sync.Once
)

type organizationUsecase struct {
	OrganizationPlatformClient contracts.OrganizationPlatformClient
	QueryCache                 contracts.QueryCache
	AuditUsecase               contracts.AuditUsecase
	InternalConfig             *config.InternalConfig
	Log                        *zap.Logger
}

func NewOrganizationUsecase(
	organizationPlatformClient contracts.OrganizationPlatformClient,
	queryCache contracts.QueryCache,
	auditUsecase contracts.AuditUsecase,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.OrganizationUsecase {
	onceOrganizationUsecase.Do(func() {
		usecase := &organizationUsecase{
			OrganizationPlatformClient: organizationPlatformClient,
			QueryCache:                 queryCache,
			AuditUsecase:               auditUsecase,
			InternalConfig:             internalConfig,
			Log:                        logger,
		}
		organizationUsecaseInstance = usecase
	})
	return organizationUsecaseInstance
}

func (uc *organizationUsecase) FindAll(ctx context.Context, request *requests.ListOrganizations) ([]models.Organization, error) {
	organizations, err := uc.fetchOrganizations(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Organization, 0, len(organizations))
	for _, organization := range organizations {
		if !utils.MatchesFilter(request.Status, organization.Status) {
			continue
		}
		if !utils.MatchesFilter(request.Plan, organization.Plan) {
			continue
		}
		if !utils.MatchesSearch(request.Search, organization.Name, organization.Slug, organization.ContactEmail) {
			continue
		}
		filtered = append(filtered, organization)
	}
	return filtered, nil
}

func (uc *organizationUsecase) Create(ctx context.Context, request *requests.CreateOrganization) (*models.Organization, error) {
	organization, err := uc.OrganizationPlatformClient.CreateOrganization(ctx, request)
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx)
	uc.AuditUsecase.Record(ctx, constvars.AuditActionCreate, constvars.ResourceOrganizations, organization.ID, organization.Name)
	return organization, nil
}

func (uc *organizationUsecase) UpdateStatus(ctx context.Context, request *requests.UpdateOrganizationStatus) (*models.Organization, error) {
	organization, err := uc.OrganizationPlatformClient.UpdateOrganizationStatus(ctx, request.OrganizationID, request.Status)
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx)
	uc.AuditUsecase.Record(ctx, constvars.AuditActionUpdate, constvars.ResourceOrganizations, organization.ID, fmt.Sprintf("status changed to %s", request.Status))
	return organization, nil
}

func (uc *organizationUsecase) Delete(ctx context.Context, organizationID string) error {
	if err := uc.OrganizationPlatformClient.DeleteOrganization(ctx, organizationID); err != nil {
		return err
	}

	uc.invalidate(ctx)
	uc.AuditUsecase.Record(ctx, constvars.AuditActionDelete, constvars.ResourceOrganizations, organizationID, "")
	return nil
}

// Overview aggregates the cached list into the superadmin stat block.
func (uc *organizationUsecase) Overview(ctx context.Context) (*responses.OrganizationOverview, error) {
	organizations, err := uc.fetchOrganizations(ctx)
	if err != nil {
		return nil, err
	}

	overview := &responses.OrganizationOverview{
		Total:    len(organizations),
		ByStatus: map[string]int{},
		ByPlan:   map[string]int{},
	}
	for _, organization := range organizations {
		overview.ByStatus[organization.Status]++
		overview.ByPlan[organization.Plan]++
		overview.TotalUsers += organization.UserCount
	}
	return overview, nil
}

func (uc *organizationUsecase) fetchOrganizations(ctx context.Context) ([]models.Organization, error) {
	ttl := time.Duration(uc.InternalConfig.Cache.ListTTLInSeconds) * time.Second
	payload, err := uc.QueryCache.Fetch(ctx, constvars.CacheGroupOrganizations, "list", ttl, func(ctx context.Context) ([]byte, error) {
		organizations, err := uc.OrganizationPlatformClient.ListOrganizations(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(organizations)
	})
	if err != nil {
		return nil, err
	}

	var organizations []models.Organization
	if err := json.Unmarshal(payload, &organizations); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return organizations, nil
}

func (uc *organizationUsecase) invalidate(ctx context.Context) {
	if err := uc.QueryCache.Invalidate(ctx, constvars.CacheGroupOrganizations); err != nil {
		uc.Log.Warn("organizationUsecase cache invalidation failed",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
	}
}
