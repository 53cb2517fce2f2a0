package users

import (
	"context"
	"testing"
	"time"

	"medicore-admin-service/internal/app/config"
	"medicore-admin-service/internal/app/contracts"
	"medicore-admin-service/internal/app/models"
	"medicore-admin-service/internal/pkg/constvars"
	"medicore-admin-service/internal/pkg/dto/requests"
	"medicore-admin-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeUserClient struct {
	users   []models.SystemUser
	patched []string
	deleted []string
}

func (f *fakeUserClient) ListUsers(ctx context.Context) ([]models.SystemUser, error) {
	return f.users, nil
}

func (f *fakeUserClient) CreateUser(ctx context.Context, request *requests.CreateSystemUser) (*models.SystemUser, error) {
	return &models.SystemUser{ID: "u-new", Email: request.Email, Role: request.Role}, nil
}

func (f *fakeUserClient) PatchUser(ctx context.Context, request *requests.PatchSystemUser) (*models.SystemUser, error) {
	f.patched = append(f.patched, request.UserID)
	return &models.SystemUser{ID: request.UserID, Role: request.Role, Status: request.Status}, nil
}

func (f *fakeUserClient) DeleteUser(ctx context.Context, userID string) error {
	f.deleted = append(f.deleted, userID)
	return nil
}

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

type fakeAuditUsecase struct {
	actions []string
}

func (f *fakeAuditUsecase) Record(ctx context.Context, action, entity, entityID, detail string) {
	f.actions = append(f.actions, action)
}

func (f *fakeAuditUsecase) FindEvents(ctx context.Context, filter contracts.AuditEventFilter, page, pageSize int) ([]models.AuditEvent, int, error) {
	return nil, 0, nil
}

func newTestUserUsecase(client *fakeUserClient, cache *fakeQueryCache, audit *fakeAuditUsecase) *userUsecase {
	return &userUsecase{
		UserPlatformClient: client,
		QueryCache:         cache,
		AuditUsecase:       audit,
		InternalConfig:     &config.InternalConfig{Cache: config.Cache{ListTTLInSeconds: 30}},
		Log:                zap.NewNop(),
	}
}

func directory() []models.SystemUser {
	return []models.SystemUser{
		{ID: "u-1", Name: "Amara Osei", Email: "amara@clinic.example", Role: constvars.MedicoreRoleAdmin, OrganizationID: "org-1", Status: "active"},
		{ID: "u-2", Name: "Jon Haraldsen", Email: "jon@clinic.example", Role: constvars.MedicoreRoleDoctor, OrganizationID: "org-1", Status: "inactive"},
		{ID: "u-3", Name: "Priya Nair", Email: "priya@lab.example", Role: constvars.MedicoreRoleLabTech, OrganizationID: "org-2", Status: "active"},
	}
}

func sessionContext(userID string) context.Context {
	session := &models.Session{SessionID: "s-1", UserID: userID, Role: constvars.MedicoreRoleSuperadmin}
	return context.WithValue(context.Background(), constvars.CONTEXT_SESSION_DATA_KEY, session)
}

func TestUserFindAll(t *testing.T) {
	uc := newTestUserUsecase(&fakeUserClient{users: directory()}, &fakeQueryCache{}, &fakeAuditUsecase{})
	ctx := context.Background()

	t.Run("role and status filters stack", func(t *testing.T) {
		users, err := uc.FindAll(ctx, &requests.ListSystemUsers{Status: "active", OrganizationID: "org-1"})
		assert.NoError(t, err)
		assert.Len(t, users, 1)
		assert.Equal(t, "u-1", users[0].ID)
	})

	t.Run("search spans name and email", func(t *testing.T) {
		users, err := uc.FindAll(ctx, &requests.ListSystemUsers{Search: "lab.example"})
		assert.NoError(t, err)
		assert.Len(t, users, 1)
		assert.Equal(t, "u-3", users[0].ID)
	})
}

func TestUserPatch(t *testing.T) {
	t.Run("empty patch is a validation error", func(t *testing.T) {
		client := &fakeUserClient{}
		uc := newTestUserUsecase(client, &fakeQueryCache{}, &fakeAuditUsecase{})

		_, err := uc.Patch(sessionContext("u-admin"), &requests.PatchSystemUser{UserID: "u-2"})
		var customError *exceptions.CustomError
		assert.ErrorAs(t, err, &customError)
		assert.Equal(t, constvars.StatusBadRequest, customError.StatusCode)
		assert.Empty(t, client.patched)
	})

	t.Run("callers cannot patch their own account", func(t *testing.T) {
		client := &fakeUserClient{}
		uc := newTestUserUsecase(client, &fakeQueryCache{}, &fakeAuditUsecase{})

		_, err := uc.Patch(sessionContext("u-1"), &requests.PatchSystemUser{UserID: "u-1", Role: "doctor"})
		var customError *exceptions.CustomError
		assert.ErrorAs(t, err, &customError)
		assert.Equal(t, constvars.StatusBadRequest, customError.StatusCode)
		assert.Empty(t, client.patched)
	})

	t.Run("patching someone else invalidates and audits", func(t *testing.T) {
		client := &fakeUserClient{}
		cache := &fakeQueryCache{}
		audit := &fakeAuditUsecase{}
		uc := newTestUserUsecase(client, cache, audit)

		user, err := uc.Patch(sessionContext("u-admin"), &requests.PatchSystemUser{UserID: "u-2", Status: "active"})
		assert.NoError(t, err)
		assert.Equal(t, "u-2", user.ID)
		assert.Equal(t, []string{constvars.CacheGroupUsers}, cache.invalidated)
		assert.Equal(t, []string{constvars.AuditActionUpdate}, audit.actions)
	})
}

func TestUserDelete(t *testing.T) {
	t.Run("self delete is rejected", func(t *testing.T) {
		client := &fakeUserClient{}
		uc := newTestUserUsecase(client, &fakeQueryCache{}, &fakeAuditUsecase{})

		err := uc.Delete(sessionContext("u-1"), "u-1")
		var customError *exceptions.CustomError
		assert.ErrorAs(t, err, &customError)
		assert.Equal(t, constvars.StatusBadRequest, customError.StatusCode)
		assert.Empty(t, client.deleted)
	})

	t.Run("deleting someone else goes through", func(t *testing.T) {
		client := &fakeUserClient{}
		cache := &fakeQueryCache{}
		audit := &fakeAuditUsecase{}
		uc := newTestUserUsecase(client, cache, audit)

		assert.NoError(t, uc.Delete(sessionContext("u-admin"), "u-2"))
		assert.Equal(t, []string{"u-2"}, client.deleted)
		assert.Equal(t, []string{constvars.CacheGroupUsers}, cache.invalidated)
		assert.Equal(t, []string{constvars.AuditActionDelete}, audit.actions)
	})
}
