package medicines

import (
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"medicore-admin-service/internal/app/config"
	"medicore-admin-service/internal/app/contracts"
	"medicore-admin-service/internal/app/models"
	"medicore-admin-service/internal/pkg/constvars"
	"medicore-admin-service/internal/pkg/dto/requests"
	"medicore-admin-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeMedicineClient struct {
	medicines []models.Medicine
	reorders  []string
}

func (f *fakeMedicineClient) ListMedicines(ctx context.Context) ([]models.Medicine, error) {
	return f.medicines, nil
}

func (f *fakeMedicineClient) CreateMedicine(ctx context.Context, request *requests.CreateMedicine) (*models.Medicine, error) {
	return &models.Medicine{ID: "m-new", Name: request.Name}, nil
}

func (f *fakeMedicineClient) UpdateMedicine(ctx context.Context, request *requests.UpdateMedicine) (*models.Medicine, error) {
	return &models.Medicine{ID: request.MedicineID, Name: request.Name}, nil
}

func (f *fakeMedicineClient) DeleteMedicine(ctx context.Context, medicineID string) error {
	return nil
}

func (f *fakeMedicineClient) SubmitReorder(ctx context.Context, request *requests.ReorderMedicine) error {
	f.reorders = append(f.reorders, request.MedicineID)
	return nil
}

type fakeQueryCache struct {
	invalidated []string
}

func (f *fakeQueryCache) Fetch(ctx context.Context, group, key string, ttl time.Duration, fill func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	return fill(ctx)
}

func (f *fakeQueryCache) Invalidate(ctx context.Context, group string) error {
	f.invalidated = append(f.invalidated, group)
	return nil
}

type fakeExportStorage struct {
	objects map[string][]byte
	putErr  error
}

func (f *fakeExportStorage) PutObject(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	if f.putErr != nil {
		return "", f.putErr
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[objectName] = data
	return objectName, nil
}

type fakeAuditUsecase struct {
	actions []string
}

func (f *fakeAuditUsecase) Record(ctx context.Context, action, entity, entityID, detail string) {
	f.actions = append(f.actions, action)
}

func (f *fakeAuditUsecase) FindEvents(ctx context.Context, filter contracts.AuditEventFilter, page, pageSize int) ([]models.AuditEvent, int, error) {
	return nil, 0, nil
}

func newTestMedicineUsecase(client *fakeMedicineClient, cache *fakeQueryCache, storage *fakeExportStorage, audit *fakeAuditUsecase) *medicineUsecase {
	return &medicineUsecase{
		MedicinePlatformClient: client,
		QueryCache:             cache,
		ExportStorage:          storage,
		AuditUsecase:           audit,
		InternalConfig:         &config.InternalConfig{Cache: config.Cache{ListTTLInSeconds: 30}},
		Log:                    zap.NewNop(),
	}
}

func inventory() []models.Medicine {
	return []models.Medicine{
		{ID: "m-1", Name: "Amoxicillin 500mg", GenericName: "amoxicillin", Category: "antibiotic", SKU: "AMX-500", Quantity: 120, ReorderThreshold: 20, UnitPriceCents: 1250, Currency: "USD", ExpiryDate: "2027-03-01"},
		{ID: "m-2", Name: "Ibuprofen 200mg", GenericName: "ibuprofen", Category: "analgesic", SKU: "IBU-200", Quantity: 8, ReorderThreshold: 25, UnitPriceCents: 499, Currency: "USD", ExpiryDate: "2026-11-15"},
		{ID: "m-3", Name: "Insulin Glargine", GenericName: "insulin", Category: "hormone", SKU: "INS-GLA", Quantity: 0, ReorderThreshold: 10, UnitPriceCents: 8900, Currency: "USD", ExpiryDate: "2026-09-30"},
	}
}

func TestMedicineFindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown sort key is rejected before any fetch", func(t *testing.T) {
		uc := newTestMedicineUsecase(&fakeMedicineClient{medicines: inventory()}, &fakeQueryCache{}, &fakeExportStorage{}, &fakeAuditUsecase{})

		_, err := uc.FindAll(ctx, &requests.ListMedicines{SortBy: "supplier"})
		var customError *exceptions.CustomError
		assert.ErrorAs(t, err, &customError)
		assert.Equal(t, constvars.StatusBadRequest, customError.StatusCode)
	})

	t.Run("stock filter works on the derived status", func(t *testing.T) {
		uc := newTestMedicineUsecase(&fakeMedicineClient{medicines: inventory()}, &fakeQueryCache{}, &fakeExportStorage{}, &fakeAuditUsecase{})

		low, err := uc.FindAll(ctx, &requests.ListMedicines{Stock: constvars.StockStatusLowStock})
		assert.NoError(t, err)
		assert.Len(t, low, 1)
		assert.Equal(t, "m-2", low[0].ID)

		out, err := uc.FindAll(ctx, &requests.ListMedicines{Stock: constvars.StockStatusOutOfStock})
		assert.NoError(t, err)
		assert.Len(t, out, 1)
		assert.Equal(t, "m-3", out[0].ID)
	})

	t.Run("sorts by quantity descending", func(t *testing.T) {
		uc := newTestMedicineUsecase(&fakeMedicineClient{medicines: inventory()}, &fakeQueryCache{}, &fakeExportStorage{}, &fakeAuditUsecase{})

		medicines, err := uc.FindAll(ctx, &requests.ListMedicines{SortBy: "quantity", Order: "desc"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"m-1", "m-2", "m-3"}, []string{medicines[0].ID, medicines[1].ID, medicines[2].ID})
	})

	t.Run("decorates price and stock status", func(t *testing.T) {
		uc := newTestMedicineUsecase(&fakeMedicineClient{medicines: inventory()}, &fakeQueryCache{}, &fakeExportStorage{}, &fakeAuditUsecase{})

		medicines, err := uc.FindAll(ctx, &requests.ListMedicines{Search: "amoxicillin"})
		assert.NoError(t, err)
		assert.Len(t, medicines, 1)
		assert.Equal(t, constvars.StockStatusInStock, medicines[0].StockStatus)
		assert.Equal(t, "$12.50", medicines[0].UnitPriceDisplay)
	})
}

func TestMedicineExportCSV(t *testing.T) {
	ctx := context.Background()

	t.Run("full dump with header and derived columns", func(t *testing.T) {
		storage := &fakeExportStorage{}
		audit := &fakeAuditUsecase{}
		uc := newTestMedicineUsecase(&fakeMedicineClient{medicines: inventory()}, &fakeQueryCache{}, storage, audit)

		export, err := uc.ExportCSV(ctx)
		assert.NoError(t, err)
		assert.Nil(t, export.ArchiveErr)
		assert.Contains(t, export.ObjectName, "exports/medicines-")

		records, err := csv.NewReader(strings.NewReader(string(export.CSV))).ReadAll()
		assert.NoError(t, err)
		assert.Len(t, records, 4)
		assert.Equal(t, csvHeader, records[0])
		assert.Equal(t, "out_of_stock", records[3][8])
		assert.Equal(t, "$89.00", records[3][9])

		assert.Equal(t, export.CSV, storage.objects[export.ObjectName], "archived copy matches the download")
		assert.Equal(t, []string{constvars.AuditActionExport}, audit.actions)
	})

	t.Run("archive failure never blocks the download", func(t *testing.T) {
		storage := &fakeExportStorage{putErr: errors.New("bucket unreachable")}
		uc := newTestMedicineUsecase(&fakeMedicineClient{medicines: inventory()}, &fakeQueryCache{}, storage, &fakeAuditUsecase{})

		export, err := uc.ExportCSV(ctx)
		assert.NoError(t, err)
		assert.Error(t, export.ArchiveErr)
		assert.NotEmpty(t, export.CSV)
	})
}

func TestMedicineMutations(t *testing.T) {
	ctx := context.Background()

	t.Run("create invalidates the inventory cache", func(t *testing.T) {
		cache := &fakeQueryCache{}
		audit := &fakeAuditUsecase{}
		uc := newTestMedicineUsecase(&fakeMedicineClient{}, cache, &fakeExportStorage{}, audit)

		_, err := uc.Create(ctx, &requests.CreateMedicine{Name: "Paracetamol 500mg"})
		assert.NoError(t, err)
		assert.Equal(t, []string{constvars.CacheGroupMedicines}, cache.invalidated)
		assert.Equal(t, []string{constvars.AuditActionCreate}, audit.actions)
	})

	t.Run("reorder audits without invalidating", func(t *testing.T) {
		cache := &fakeQueryCache{}
		audit := &fakeAuditUsecase{}
		client := &fakeMedicineClient{}
		uc := newTestMedicineUsecase(client, cache, &fakeExportStorage{}, audit)

		err := uc.Reorder(ctx, &requests.ReorderMedicine{MedicineID: "m-2", Quantity: 50})
		assert.NoError(t, err)
		assert.Equal(t, []string{"m-2"}, client.reorders)
		assert.Empty(t, cache.invalidated, "a reorder changes nothing the platform has told us yet")
		assert.Equal(t, []string{constvars.AuditActionReorder}, audit.actions)
	})
}
