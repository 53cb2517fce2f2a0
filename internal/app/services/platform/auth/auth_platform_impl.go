package auth

import (
	"context"
	"medicore-admin-service/internal/app/contracts"
	"medicore-admin-service/internal/app/services/platform"
	"medicore-admin-service/internal/pkg/constvars"
	"medicore-admin-service/internal/pkg/exceptions"
	"medicore-admin-service/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	authPlatformClientInstance contracts.AuthPlatformClient
	onceAuthPlatformClient     sync.Once
)

type authPlatformClient struct {
	requester *platform.Requester
	Log       *zap.Logger
}

func NewAuthPlatformClient(requester *platform.Requester, logger *zap.Logger) contracts.AuthPlatformClient {
	onceAuthPlatformClient.Do(func() {
		client := &authPlatformClient{
			requester: requester,
			Log:       logger,
		}
		authPlatformClientInstance = client
	})
	return authPlatformClientInstance
}

func (c *authPlatformClient) Login(ctx context.Context, email, password string) (*contracts.PlatformIdentity, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("authPlatformClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	body, err := c.requester.Do(ctx, constvars.MethodPost, "/auth/login", payload, constvars.ResourceAuth)
	if err != nil {
		return nil, err
	}

	identity := new(contracts.PlatformIdentity)
	if err := json.Unmarshal(body, identity); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceAuth)
	}

	c.Log.Info("authPlatformClient.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, identity.UserID),
	)
	return identity, nil
}
