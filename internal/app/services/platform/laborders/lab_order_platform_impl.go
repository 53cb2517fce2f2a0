package laborders

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
	labOrderPlatformClientInstance contracts.LabOrderPlatformClient
	onceLabOrderPlatformClient     sync.Once
)

type labOrderPlatformClient struct {
	requester *platform.Requester
	Log       *zap.Logger
}

func NewLabOrderPlatformClient(requester *platform.Requester, logger *zap.Logger) contracts.LabOrderPlatformClient {
	onceLabOrderPlatformClient.Do(func() {
		client := &labOrderPlatformClient{
			requester: requester,
			Log:       logger,
		}
		labOrderPlatformClientInstance = client
	})
	return labOrderPlatformClientInstance
}

func (c *labOrderPlatformClient) ListLabOrders(ctx context.Context) ([]models.LabOrder, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("labOrderPlatformClient.ListLabOrders called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.requester.Do(ctx, constvars.MethodGet, "/lab-orders", nil, constvars.ResourceLabOrders)
	if err != nil {
		return nil, err
	}

	var orders []models.LabOrder
	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceLabOrders)
	}

	c.Log.Info("labOrderPlatformClient.ListLabOrders succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(orders)),
	)
	return orders, nil
}

func (c *labOrderPlatformClient) FindLabOrderByID(ctx context.Context, orderID string) (*models.LabOrder, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("labOrderPlatformClient.FindLabOrderByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLabOrderIDKey, orderID),
	)

	path := fmt.Sprintf("/lab-orders/%s", orderID)
	body, err := c.requester.Do(ctx, constvars.MethodGet, path, nil, constvars.ResourceLabOrders)
	if err != nil {
		return nil, err
	}

	order := new(models.LabOrder)
	if err := json.Unmarshal(body, order); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceLabOrders)
	}

	return order, nil
}

func (c *labOrderPlatformClient) UpdateLabOrderStatus(ctx context.Context, orderID, status string) (*models.LabOrder, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("labOrderPlatformClient.UpdateLabOrderStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLabOrderIDKey, orderID),
		zap.String("status", status),
	)

	payload := map[string]string{"status": status}
	path := fmt.Sprintf("/lab-orders/%s/status", orderID)

	body, err := c.requester.Do(ctx, constvars.MethodPatch, path, payload, constvars.ResourceLabOrders)
	if err != nil {
		return nil, err
	}

	order := new(models.LabOrder)
	if err := json.Unmarshal(body, order); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceLabOrders)
	}

	return order, nil
}

func (c *labOrderPlatformClient) RecordLabResults(ctx context.Context, request *requests.RecordLabResults) (*models.LabOrder, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("labOrderPlatformClient.RecordLabResults called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLabOrderIDKey, request.OrderID),
		zap.Int(constvars.LoggingCountKey, len(request.Entries)),
	)

	path := fmt.Sprintf("/lab-orders/%s/results", request.OrderID)
	body, err := c.requester.Do(ctx, constvars.MethodPost, path, request, constvars.ResourceLabOrders)
	if err != nil {
		return nil, err
	}

	order := new(models.LabOrder)
	if err := json.Unmarshal(body, order); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceLabOrders)
	}

	return order, nil
}
