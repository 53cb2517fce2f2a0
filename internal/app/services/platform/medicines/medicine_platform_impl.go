package medicines

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
	medicinePlatformClientInstance contracts.MedicinePlatformClient
	onceMedicinePlatformClient     sync.Once
)

type medicinePlatformClient struct {
	requester *platform.Requester
	Log       *zap.Logger
}

func NewMedicinePlatformClient(requester *platform.Requester, logger *zap.Logger) contracts.MedicinePlatformClient {
	onceMedicinePlatformClient.Do(func() {
		client := &medicinePlatformClient{
			requester: requester,
			Log:       logger,
		}
		medicinePlatformClientInstance = client
	})
	return medicinePlatformClientInstance
}

func (c *medicinePlatformClient) ListMedicines(ctx context.Context) ([]models.Medicine, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("medicinePlatformClient.ListMedicines called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.requester.Do(ctx, constvars.MethodGet, "/medicines", nil, constvars.ResourceMedicines)
	if err != nil {
		return nil, err
	}

	var medicines []models.Medicine
	if err := json.Unmarshal(body, &medicines); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceMedicines)
	}

	c.Log.Info("medicinePlatformClient.ListMedicines succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(medicines)),
	)
	return medicines, nil
}

func (c *medicinePlatformClient) CreateMedicine(ctx context.Context, request *requests.CreateMedicine) (*models.Medicine, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("medicinePlatformClient.CreateMedicine called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.requester.Do(ctx, constvars.MethodPost, "/medicines", request, constvars.ResourceMedicines)
	if err != nil {
		return nil, err
	}

	medicine := new(models.Medicine)
	if err := json.Unmarshal(body, medicine); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceMedicines)
	}

	return medicine, nil
}

func (c *medicinePlatformClient) UpdateMedicine(ctx context.Context, request *requests.UpdateMedicine) (*models.Medicine, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("medicinePlatformClient.UpdateMedicine called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineIDKey, request.MedicineID),
	)

	path := fmt.Sprintf("/medicines/%s", request.MedicineID)
	body, err := c.requester.Do(ctx, constvars.MethodPut, path, request, constvars.ResourceMedicines)
	if err != nil {
		return nil, err
	}

	medicine := new(models.Medicine)
	if err := json.Unmarshal(body, medicine); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceMedicines)
	}

	return medicine, nil
}

func (c *medicinePlatformClient) DeleteMedicine(ctx context.Context, medicineID string) error {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("medicinePlatformClient.DeleteMedicine called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineIDKey, medicineID),
	)

	path := fmt.Sprintf("/medicines/%s", medicineID)
	_, err := c.requester.Do(ctx, constvars.MethodDelete, path, nil, constvars.ResourceMedicines)
	return err
}

func (c *medicinePlatformClient) SubmitReorder(ctx context.Context, request *requests.ReorderMedicine) error {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("medicinePlatformClient.SubmitReorder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineIDKey, request.MedicineID),
	)

	path := fmt.Sprintf("/medicines/%s/reorder", request.MedicineID)
	_, err := c.requester.Do(ctx, constvars.MethodPost, path, request, constvars.ResourceMedicines)
	return err
}
