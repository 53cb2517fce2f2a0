package lab

import (
	"bytes"
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
	labUsecaseInstance contracts.LabUsecase
	onceLabUsecase     sync.Once
)

type labUsecase struct {
	LabOrderPlatformClient contracts.LabOrderPlatformClient
	QueryCache             contracts.QueryCache
	AuditUsecase           contracts.AuditUsecase
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewLabUsecase(
	labOrderPlatformClient contracts.LabOrderPlatformClient,
	queryCache contracts.QueryCache,
	auditUsecase contracts.AuditUsecase,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.LabUsecase {
	onceLabUsecase.Do(func() {
		usecase := &labUsecase{
			LabOrderPlatformClient: labOrderPlatformClient,
			QueryCache:             queryCache,
			AuditUsecase:           auditUsecase,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
		labUsecaseInstance = usecase
	})
	return labUsecaseInstance
}

func (uc *labUsecase) FindAll(ctx context.Context, request *requests.ListLabOrders) ([]models.LabOrder, error) {
	orders, err := uc.fetchOrders(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.LabOrder, 0, len(orders))
	for _, order := range orders {
		if !utils.MatchesFilter(request.Status, order.Status) {
			continue
		}
		if !utils.MatchesFilter(request.Category, order.Category) {
			continue
		}
		if !utils.MatchesFilter(request.PatientID, order.PatientID) {
			continue
		}
		if !utils.MatchesSearch(request.Search, order.TestName, order.PatientName, order.Code) {
			continue
		}
		filtered = append(filtered, order)
	}
	return filtered, nil
}

func (uc *labUsecase) FindByID(ctx context.Context, orderID string) (*models.LabOrder, error) {
	ttl := time.Duration(uc.InternalConfig.Cache.DetailTTLInSeconds) * time.Second
	payload, err := uc.QueryCache.Fetch(ctx, constvars.CacheGroupLabOrders, "detail:"+orderID, ttl, func(ctx context.Context) ([]byte, error) {
		order, err := uc.LabOrderPlatformClient.FindLabOrderByID(ctx, orderID)
		if err != nil {
			return nil, err
		}
		return json.Marshal(order)
	})
	if err != nil {
		return nil, err
	}

	order := new(models.LabOrder)
	if err := json.Unmarshal(payload, order); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return order, nil
}

func (uc *labUsecase) UpdateStatus(ctx context.Context, request *requests.UpdateLabOrderStatus) (*models.LabOrder, error) {
	order, err := uc.LabOrderPlatformClient.UpdateLabOrderStatus(ctx, request.OrderID, request.Status)
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx)
	uc.AuditUsecase.Record(ctx, constvars.AuditActionUpdate, constvars.ResourceLabOrders, order.ID, fmt.Sprintf("status changed to %s", request.Status))
	return order, nil
}

func (uc *labUsecase) RecordResults(ctx context.Context, request *requests.RecordLabResults) (*models.LabOrder, error) {
	order, err := uc.LabOrderPlatformClient.RecordLabResults(ctx, request)
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx)
	uc.AuditUsecase.Record(ctx, constvars.AuditActionRecord, constvars.ResourceLabOrders, order.ID, fmt.Sprintf("%d entries", len(request.Entries)))
	return order, nil
}

// BuildPrintReport renders the standalone printable report for an order.
// The document is plain template output; nothing validates it downstream.
func (uc *labUsecase) BuildPrintReport(ctx context.Context, orderID string) ([]byte, error) {
	order, err := uc.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = labReportTemplate.Execute(&buf, labReportData{
		Order:       order,
		GeneratedAt: time.Now().UTC().Format("2006-01-02 15:04 MST"),
	})
	if err != nil {
		return nil, exceptions.ErrPrintTemplate(err)
	}
	return buf.Bytes(), nil
}

func (uc *labUsecase) fetchOrders(ctx context.Context) ([]models.LabOrder, error) {
	ttl := time.Duration(uc.InternalConfig.Cache.ListTTLInSeconds) * time.Second
	payload, err := uc.QueryCache.Fetch(ctx, constvars.CacheGroupLabOrders, "list", ttl, func(ctx context.Context) ([]byte, error) {
		orders, err := uc.LabOrderPlatformClient.ListLabOrders(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(orders)
	})
	if err != nil {
		return nil, err
	}

	var orders []models.LabOrder
	if err := json.Unmarshal(payload, &orders); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return orders, nil
}

func (uc *labUsecase) invalidate(ctx context.Context) {
	if err := uc.QueryCache.Invalidate(ctx, constvars.CacheGroupLabOrders); err != nil {
		uc.Log.Warn("labUsecase cache invalidation failed",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
	}
}
