package auth

import (
	"context"
	"errors"
	"medicore-admin-service/internal/app/config"
	"medicore-admin-service/internal/app/contracts"
	"medicore-admin-service/internal/app/models"
	"medicore-admin-service/internal/pkg/constvars"
	"medicore-admin-service/internal/pkg/dto/requests"
	"medicore-admin-service/internal/pkg/dto/responses"
	"medicore-admin-service/internal/pkg/exceptions"
	"medicore-admin-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

type authUsecase struct {
	AuthPlatformClient contracts.AuthPlatformClient
	SessionService     contracts.SessionService
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewAuthUsecase(
	authPlatformClient contracts.AuthPlatformClient,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		usecase := &authUsecase{
			AuthPlatformClient: authPlatformClient,
			SessionService:     sessionService,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
		authUsecaseInstance = usecase
	})
	return authUsecaseInstance
}

// Login delegates credential checking to the platform. When the platform is
// unreachable (not merely rejecting the credentials) and the email matches
// the configured root account, the local bcrypt hash is checked instead so
// operators can still get in during an outage. Root sessions carry no
// platform token; outbound calls fall back to the service key.
func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	identity, err := uc.AuthPlatformClient.Login(ctx, request.Email, request.Password)
	if err != nil {
		if !uc.isBreakGlassCandidate(err, request.Email) {
			return nil, err
		}

		uc.Log.Warn("authUsecase.Login platform unreachable, trying root fallback",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		if !utils.CheckPasswordHash(request.Password, uc.InternalConfig.Root.PasswordHash) {
			return nil, exceptions.ErrInvalidCredentials(nil)
		}
		identity = &contracts.PlatformIdentity{
			UserID: "root",
			Name:   "Root",
			Email:  uc.InternalConfig.Root.Email,
			Role:   constvars.MedicoreRoleSuperadmin,
		}
	}

	loggedInAt := time.Now().UTC().Format(time.RFC3339)
	session := &models.Session{
		SessionID:      utils.GenerateSessionID(),
		UserID:         identity.UserID,
		Name:           identity.Name,
		Email:          identity.Email,
		Role:           identity.Role,
		OrganizationID: identity.OrganizationID,
		PlatformToken:  identity.Token,
		LoggedInAt:     loggedInAt,
	}

	sessionTTL := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	if err := uc.SessionService.Create(ctx, session, sessionTTL); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return &responses.Login{
		Token: token,
		User:  buildProfile(session),
	}, nil
}

// isBreakGlassCandidate is true only for transport-level platform failures,
// never for a 4xx the platform actually returned.
func (uc *authUsecase) isBreakGlassCandidate(err error, email string) bool {
	if uc.InternalConfig.Root.Email == "" || uc.InternalConfig.Root.PasswordHash == "" {
		return false
	}
	if !strings.EqualFold(email, uc.InternalConfig.Root.Email) {
		return false
	}

	var customError *exceptions.CustomError
	if !errors.As(err, &customError) {
		return false
	}
	return customError.StatusCode == constvars.StatusBadGateway
}

func (uc *authUsecase) Logout(ctx context.Context) error {
	session := utils.SessionFromContext(ctx)
	if session == nil {
		return exceptions.ErrSessionInvalid(nil)
	}

	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)

	return uc.SessionService.Delete(ctx, session.SessionID)
}

func (uc *authUsecase) Profile(ctx context.Context) (*responses.Profile, error) {
	session := utils.SessionFromContext(ctx)
	if session == nil {
		return nil, exceptions.ErrSessionInvalid(nil)
	}

	profile := buildProfile(session)
	return &profile, nil
}

func buildProfile(session *models.Session) responses.Profile {
	return responses.Profile{
		UserID:         session.UserID,
		Name:           session.Name,
		Email:          session.Email,
		Role:           session.Role,
		OrganizationID: session.OrganizationID,
		LoggedInAt:     session.LoggedInAt,
	}
}
