package users

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
	userPlatformClientInstance contracts.UserPlatformClient
	onceUserPlatformClient     sync.Once
)

type userPlatformClient struct {
	requester *platform.Requester
	Log       *zap.Logger
}

func NewUserPlatformClient(requester *platform.Requester, logger *zap.Logger) contracts.UserPlatformClient {
	onceUserPlatformClient.Do(func() {
		client := &userPlatformClient{
			requester: requester,
			Log:       logger,
		}
		userPlatformClientInstance = client
	})
	return userPlatformClientInstance
}

func (c *userPlatformClient) ListUsers(ctx context.Context) ([]models.SystemUser, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("userPlatformClient.ListUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.requester.Do(ctx, constvars.MethodGet, "/users", nil, constvars.ResourceUsers)
	if err != nil {
		return nil, err
	}

	var users []models.SystemUser
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceUsers)
	}

	c.Log.Info("userPlatformClient.ListUsers succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(users)),
	)
	return users, nil
}

func (c *userPlatformClient) CreateUser(ctx context.Context, request *requests.CreateSystemUser) (*models.SystemUser, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("userPlatformClient.CreateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.requester.Do(ctx, constvars.MethodPost, "/users", request, constvars.ResourceUsers)
	if err != nil {
		return nil, err
	}

	user := new(models.SystemUser)
	if err := json.Unmarshal(body, user); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceUsers)
	}

	return user, nil
}

func (c *userPlatformClient) PatchUser(ctx context.Context, request *requests.PatchSystemUser) (*models.SystemUser, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("userPlatformClient.PatchUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
	)

	path := fmt.Sprintf("/users/%s", request.UserID)
	body, err := c.requester.Do(ctx, constvars.MethodPatch, path, request, constvars.ResourceUsers)
	if err != nil {
		return nil, err
	}

	user := new(models.SystemUser)
	if err := json.Unmarshal(body, user); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceUsers)
	}

	return user, nil
}

func (c *userPlatformClient) DeleteUser(ctx context.Context, userID string) error {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("userPlatformClient.DeleteUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	path := fmt.Sprintf("/users/%s", userID)
	_, err := c.requester.Do(ctx, constvars.MethodDelete, path, nil, constvars.ResourceUsers)
	return err
}
