package contracts

import (
	"context"
	"medicore-admin-service/internal/app/models"
	"medicore-admin-service/internal/pkg/dto/requests"
	"medicore-admin-service/internal/pkg/dto/responses"
)

type MedicinePlatformClient interface {
	ListMedicines(ctx context.Context) ([]models.Medicine, error)
	CreateMedicine(ctx context.Context, request *requests.CreateMedicine) (*models.Medicine, error)
	UpdateMedicine(ctx context.Context, request *requests.UpdateMedicine) (*models.Medicine, error)
	DeleteMedicine(ctx context.Context, medicineID string) error
	SubmitReorder(ctx context.Context, request *requests.ReorderMedicine) error
}

// MedicineExport is the built CSV plus the outcome of the best-effort
// archive side effect. ArchiveErr being set must not fail the download.
type MedicineExport struct {
	CSV        []byte
	ObjectName string
	ArchiveErr error
}

type MedicineUsecase interface {
	FindAll(ctx context.Context, request *requests.ListMedicines) ([]responses.Medicine, error)
	Create(ctx context.Context, request *requests.CreateMedicine) (*models.Medicine, error)
	Update(ctx context.Context, request *requests.UpdateMedicine) (*models.Medicine, error)
	Delete(ctx context.Context, medicineID string) error
	Reorder(ctx context.Context, request *requests.ReorderMedicine) error
	ExportCSV(ctx context.Context) (*MedicineExport, error)
}
