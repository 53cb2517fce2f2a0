package contracts

import (
	"context"
	"medicore-admin-service/internal/app/models"
	"medicore-admin-service/internal/pkg/dto/requests"
)

type LabOrderPlatformClient interface {
	ListLabOrders(ctx context.Context) ([]models.LabOrder, error)
	FindLabOrderByID(ctx context.Context, orderID string) (*models.LabOrder, error)
	UpdateLabOrderStatus(ctx context.Context, orderID, status string) (*models.LabOrder, error)
	RecordLabResults(ctx context.Context, request *requests.RecordLabResults) (*models.LabOrder, error)
}

type LabUsecase interface {
	FindAll(ctx context.Context, request *requests.ListLabOrders) ([]models.LabOrder, error)
	FindByID(ctx context.Context, orderID string) (*models.LabOrder, error)
	UpdateStatus(ctx context.Context, request *requests.UpdateLabOrderStatus) (*models.LabOrder, error)
	RecordResults(ctx context.Context, request *requests.RecordLabResults) (*models.LabOrder, error)
	// BuildPrintReport renders the standalone printable HTML document for an
	// order, results included.
	BuildPrintReport(ctx context.Context, orderID string) ([]byte, error)
}
