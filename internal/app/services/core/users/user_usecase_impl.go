package users

import (
	"context"
	"fmt"
	"medicore-admin-service/internal/app/config"
	"medicore-admin-service/internal/app/contracts"
	"medicore-admin-service/internal/app/models"
	"medicore-admin-service/internal/pkg/constvars"
	"medicore-admin-service/internal/pkg/dto/requests"
	"medicore-admin-service/internal/pkg/exceptions"
	"medicore-admin-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

type userUsecase struct {
	UserPlatformClient contracts.UserPlatformClient
	QueryCache         contracts.QueryCache
	AuditUsecase       contracts.AuditUsecase
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewUserUsecase(
	userPlatformClient contracts.UserPlatformClient,
	queryCache contracts.QueryCache,
	auditUsecase contracts.AuditUsecase,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		usecase := &userUsecase{
			UserPlatformClient: userPlatformClient,
			QueryCache:         queryCache,
			AuditUsecase:       auditUsecase,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
		userUsecaseInstance = usecase
	})
	return userUsecaseInstance
}

func (uc *userUsecase) FindAll(ctx context.Context, request *requests.ListSystemUsers) ([]models.SystemUser, error) {
	users, err := uc.fetchUsers(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.SystemUser, 0, len(users))
	for _, user := range users {
		if !utils.MatchesFilter(request.OrganizationID, user.OrganizationID) {
			continue
		}
		if !utils.MatchesFilter(request.Role, user.Role) {
			continue
		}
		if !utils.MatchesFilter(request.Status, user.Status) {
			continue
		}
		if !utils.MatchesSearch(request.Search, user.Name, user.Email) {
			continue
		}
		filtered = append(filtered, user)
	}
	return filtered, nil
}

func (uc *userUsecase) Create(ctx context.Context, request *requests.CreateSystemUser) (*models.SystemUser, error) {
	user, err := uc.UserPlatformClient.CreateUser(ctx, request)
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx)
	uc.AuditUsecase.Record(ctx, constvars.AuditActionCreate, constvars.ResourceUsers, user.ID, user.Email)
	return user, nil
}

// Patch forwards a role and/or status change. Callers cannot patch their
// own account; losing your own admin role mid-session is never what was
// meant.
func (uc *userUsecase) Patch(ctx context.Context, request *requests.PatchSystemUser) (*models.SystemUser, error) {
	if request.Role == "" && request.Status == "" {
		return nil, exceptions.ErrInputValidation(fmt.Errorf("at least one of role or status is required"))
	}

	if session := utils.SessionFromContext(ctx); session != nil && session.UserID == request.UserID {
		return nil, exceptions.ErrSelfDemotion()
	}

	user, err := uc.UserPlatformClient.PatchUser(ctx, request)
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx)
	uc.AuditUsecase.Record(ctx, constvars.AuditActionUpdate, constvars.ResourceUsers, user.ID, patchDetail(request))
	return user, nil
}

func (uc *userUsecase) Delete(ctx context.Context, userID string) error {
	if session := utils.SessionFromContext(ctx); session != nil && session.UserID == userID {
		return exceptions.ErrSelfDemotion()
	}

	if err := uc.UserPlatformClient.DeleteUser(ctx, userID); err != nil {
		return err
	}

	uc.invalidate(ctx)
	uc.AuditUsecase.Record(ctx, constvars.AuditActionDelete, constvars.ResourceUsers, userID, "")
	return nil
}

func patchDetail(request *requests.PatchSystemUser) string {
	switch {
	case request.Role != "" && request.Status != "":
		return fmt.Sprintf("role changed to %s, status changed to %s", request.Role, request.Status)
	case request.Role != "":
		return fmt.Sprintf("role changed to %s", request.Role)
	default:
		return fmt.Sprintf("status changed to %s", request.Status)
	}
}

func (uc *userUsecase) fetchUsers(ctx context.Context) ([]models.SystemUser, error) {
	ttl := time.Duration(uc.InternalConfig.Cache.ListTTLInSeconds) * time.Second
	payload, err := uc.QueryCache.Fetch(ctx, constvars.CacheGroupUsers, "list", ttl, func(ctx context.Context) ([]byte, error) {
		users, err := uc.UserPlatformClient.ListUsers(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(users)
	})
	if err != nil {
		return nil, err
	}

	var users []models.SystemUser
	if err := json.Unmarshal(payload, &users); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return users, nil
}

func (uc *userUsecase) invalidate(ctx context.Context) {
	if err := uc.QueryCache.Invalidate(ctx, constvars.CacheGroupUsers); err != nil {
		uc.Log.Warn("userUsecase cache invalidation failed",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
	}
}
