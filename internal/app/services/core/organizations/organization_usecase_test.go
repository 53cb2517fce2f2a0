package organizations

import (
	"context"
	"errors"
	"testing"
	"time"

	"medicore-admin-service/internal/app/config"
	"medicore-admin-service/internal/app/contracts"
	"medicore-admin-service/internal/app/models"
	"medicore-admin-service/internal/pkg/constvars"
	"medicore-admin-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeOrganizationClient struct {
	organizations []models.Organization
	listErr       error
	created       []string
	updatedStatus map[string]string
	deleted       []string
	mutationErr   error
	listCalled    int
}

func (f *fakeOrganizationClient) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	f.listCalled++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.organizations, nil
}

func (f *fakeOrganizationClient) CreateOrganization(ctx context.Context, request *requests.CreateOrganization) (*models.Organization, error) {
	if f.mutationErr != nil {
		return nil, f.mutationErr
	}
	f.created = append(f.created, request.Name)
	return &models.Organization{ID: "org-new", Name: request.Name, Slug: request.Slug, Plan: request.Plan, Status: "active"}, nil
}

func (f *fakeOrganizationClient) UpdateOrganizationStatus(ctx context.Context, organizationID, status string) (*models.Organization, error) {
	if f.mutationErr != nil {
		return nil, f.mutationErr
	}
	if f.updatedStatus == nil {
		f.updatedStatus = map[string]string{}
	}
	f.updatedStatus[organizationID] = status
	return &models.Organization{ID: organizationID, Status: status}, nil
}

func (f *fakeOrganizationClient) DeleteOrganization(ctx context.Context, organizationID string) error {
	if f.mutationErr != nil {
		return f.mutationErr
	}
	f.deleted = append(f.deleted, organizationID)
	return nil
}

// fakeQueryCache is pass-through: every Fetch calls fill, Invalidate only
// records the group.
type fakeQueryCache struct {
	invalidated []string
}

func (f *fakeQueryCache) Fetch(ctx context.Context, group, key string, ttl time.Duration, fill func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	return fill(ctx)
}

func (f *fakeQueryCache) Invalidate(ctx context.Context, group string) error {
	f.invalidated = append(f.invalidated, group)
	return nil
}

type recordedAudit struct {
	Action   string
	Entity   string
	EntityID string
	Detail   string
}

type fakeAuditUsecase struct {
	records []recordedAudit
}

func (f *fakeAuditUsecase) Record(ctx context.Context, action, entity, entityID, detail string) {
	f.records = append(f.records, recordedAudit{Action: action, Entity: entity, EntityID: entityID, Detail: detail})
}

func (f *fakeAuditUsecase) FindEvents(ctx context.Context, filter contracts.AuditEventFilter, page, pageSize int) ([]models.AuditEvent, int, error) {
	return nil, 0, nil
}

func newTestOrganizationUsecase(client *fakeOrganizationClient, cache *fakeQueryCache, audit *fakeAuditUsecase) *organizationUsecase {
	return &organizationUsecase{
		OrganizationPlatformClient: client,
		QueryCache:                 cache,
		AuditUsecase:               audit,
		InternalConfig:             &config.InternalConfig{Cache: config.Cache{ListTTLInSeconds: 30}},
		Log:                        zap.NewNop(),
	}
}

func sampleOrganizations() []models.Organization {
	return []models.Organization{
		{ID: "org-1", Name: "Melati Clinic", Slug: "melati-clinic", Plan: "free", Status: "active", ContactEmail: "admin@melati.example", UserCount: 4},
		{ID: "org-2", Name: "Harapan Hospital", Slug: "harapan-hospital", Plan: "enterprise", Status: "active", ContactEmail: "it@harapan.example", UserCount: 120},
		{ID: "org-3", Name: "Sehat Center", Slug: "sehat-center", Plan: "standard", Status: "suspended", ContactEmail: "ops@sehat.example", UserCount: 17},
		{ID: "org-4", Name: "Melur Clinic", Slug: "melur-clinic", Plan: "standard", Status: "active", ContactEmail: "admin@melur.example", UserCount: 9},
	}
}

func TestOrganizationUsecaseFindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("filters stack with search", func(t *testing.T) {
		client := &fakeOrganizationClient{organizations: sampleOrganizations()}
		uc := newTestOrganizationUsecase(client, &fakeQueryCache{}, &fakeAuditUsecase{})

		result, err := uc.FindAll(ctx, &requests.ListOrganizations{Status: "active", Plan: "standard"})
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, "org-4", result[0].ID)

		result, err = uc.FindAll(ctx, &requests.ListOrganizations{Search: "mel"})
		assert.NoError(t, err)
		assert.Len(t, result, 2, "search must cover name and slug")

		result, err = uc.FindAll(ctx, &requests.ListOrganizations{Search: "ops@sehat"})
		assert.NoError(t, err)
		assert.Len(t, result, 1, "search must cover contact email")
		assert.Equal(t, "org-3", result[0].ID)
	})

	t.Run("platform error passes through", func(t *testing.T) {
		boom := errors.New("platform 502")
		client := &fakeOrganizationClient{listErr: boom}
		uc := newTestOrganizationUsecase(client, &fakeQueryCache{}, &fakeAuditUsecase{})

		_, err := uc.FindAll(ctx, &requests.ListOrganizations{})
		assert.ErrorIs(t, err, boom)
	})
}

func TestOrganizationUsecaseOverview(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates status, plan and user counts", func(t *testing.T) {
		client := &fakeOrganizationClient{organizations: sampleOrganizations()}
		uc := newTestOrganizationUsecase(client, &fakeQueryCache{}, &fakeAuditUsecase{})

		overview, err := uc.Overview(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 4, overview.Total)
		assert.Equal(t, map[string]int{"active": 3, "suspended": 1}, overview.ByStatus)
		assert.Equal(t, map[string]int{"free": 1, "standard": 2, "enterprise": 1}, overview.ByPlan)
		assert.Equal(t, 150, overview.TotalUsers)
	})

	t.Run("empty directory yields zeroed maps", func(t *testing.T) {
		client := &fakeOrganizationClient{}
		uc := newTestOrganizationUsecase(client, &fakeQueryCache{}, &fakeAuditUsecase{})

		overview, err := uc.Overview(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 0, overview.Total)
		assert.NotNil(t, overview.ByStatus)
		assert.NotNil(t, overview.ByPlan)
	})
}

func TestOrganizationUsecaseMutations(t *testing.T) {
	ctx := context.Background()

	t.Run("create invalidates the group and audits", func(t *testing.T) {
		client := &fakeOrganizationClient{}
		cache := &fakeQueryCache{}
		audit := &fakeAuditUsecase{}
		uc := newTestOrganizationUsecase(client, cache, audit)

		organization, err := uc.Create(ctx, &requests.CreateOrganization{Name: "Kenanga Clinic", Slug: "kenanga-clinic", Plan: "free"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"Kenanga Clinic"}, client.created)
		assert.Contains(t, cache.invalidated, constvars.CacheGroupOrganizations)
		assert.Len(t, audit.records, 1)
		assert.Equal(t, constvars.AuditActionCreate, audit.records[0].Action)
		assert.Equal(t, constvars.ResourceOrganizations, audit.records[0].Entity)
		assert.Equal(t, organization.ID, audit.records[0].EntityID)
	})

	t.Run("status change is audited with the new status", func(t *testing.T) {
		client := &fakeOrganizationClient{}
		cache := &fakeQueryCache{}
		audit := &fakeAuditUsecase{}
		uc := newTestOrganizationUsecase(client, cache, audit)

		_, err := uc.UpdateStatus(ctx, &requests.UpdateOrganizationStatus{OrganizationID: "org-3", Status: "suspended"})
		assert.NoError(t, err)
		assert.Equal(t, "suspended", client.updatedStatus["org-3"])
		assert.Contains(t, cache.invalidated, constvars.CacheGroupOrganizations)
		assert.Len(t, audit.records, 1)
		assert.Equal(t, "status changed to suspended", audit.records[0].Detail)
	})

	t.Run("delete invalidates and audits", func(t *testing.T) {
		client := &fakeOrganizationClient{}
		cache := &fakeQueryCache{}
		audit := &fakeAuditUsecase{}
		uc := newTestOrganizationUsecase(client, cache, audit)

		assert.NoError(t, uc.Delete(ctx, "org-2"))
		assert.Equal(t, []string{"org-2"}, client.deleted)
		assert.Contains(t, cache.invalidated, constvars.CacheGroupOrganizations)
		assert.Len(t, audit.records, 1)
		assert.Equal(t, constvars.AuditActionDelete, audit.records[0].Action)
	})

	t.Run("failed mutation neither invalidates nor audits", func(t *testing.T) {
		boom := errors.New("platform 409")
		client := &fakeOrganizationClient{mutationErr: boom}
		cache := &fakeQueryCache{}
		audit := &fakeAuditUsecase{}
		uc := newTestOrganizationUsecase(client, cache, audit)

		_, err := uc.Create(ctx, &requests.CreateOrganization{Name: "Dup Clinic"})
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, cache.invalidated)
		assert.Empty(t, audit.records)
	})
}
