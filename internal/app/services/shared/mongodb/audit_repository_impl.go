package mongodb

import (
	"context"
	"medicore-admin-service/internal/app/config"
	"medicore-admin-service/internal/app/contracts"
	"medicore-admin-service/internal/app/models"
	"medicore-admin-service/internal/pkg/exceptions"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	auditRepositoryInstance contracts.AuditRepository
	onceAuditRepository     sync.Once
)

type auditRepository struct {
	collection *mongo.Collection
}

func NewAuditRepository(client *mongo.Client, driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) contracts.AuditRepository {
	onceAuditRepository.Do(func() {
		repository := &auditRepository{
			collection: client.Database(driverConfig.MongoDB.DbName).Collection(internalConfig.Audit.CollectionName),
		}
		auditRepositoryInstance = repository
	})
	return auditRepositoryInstance
}

func (r *auditRepository) Insert(ctx context.Context, event *models.AuditEvent) error {
	_, err := r.collection.InsertOne(ctx, event)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

// FindPage returns one page of events, newest first, plus the total count
// matching the filter for the pagination envelope.
func (r *auditRepository) FindPage(ctx context.Context, filter contracts.AuditEventFilter, page, pageSize int) ([]models.AuditEvent, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	query := bson.M{}
	if filter.ActorID != "" {
		query["actor_id"] = filter.ActorID
	}
	if filter.Entity != "" {
		query["entity"] = filter.Entity
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "recorded_at", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	events := make([]models.AuditEvent, 0, pageSize)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}

	return events, int(total), nil
}

func (r *auditRepository) FindRecent(ctx context.Context, limit int) ([]models.AuditEvent, error) {
	if limit < 1 {
		limit = 10
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "recorded_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	events := make([]models.AuditEvent, 0, limit)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	return events, nil
}
