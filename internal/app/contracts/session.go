package contracts

import (
	"context"
	"medicore-admin-service/internal/app/models"
	"time"
)

type SessionService interface {
	Create(ctx context.Context, session *models.Session, ttl time.Duration) error
	GetByID(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
}
