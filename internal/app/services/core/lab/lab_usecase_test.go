package lab

import (
	"context"
	"testing"
	"time"

	"medicore-admin-service/internal/app/config"
	"medicore-admin-service/internal/app/contracts"
	"medicore-admin-service/internal/app/models"
	"medicore-admin-service/internal/pkg/constvars"
	"medicore-admin-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeLabClient struct {
	orders []models.LabOrder
}

func (f *fakeLabClient) ListLabOrders(ctx context.Context) ([]models.LabOrder, error) {
	return f.orders, nil
}

func (f *fakeLabClient) FindLabOrderByID(ctx context.Context, orderID string) (*models.LabOrder, error) {
	for _, order := range f.orders {
		if order.ID == orderID {
			return &order, nil
		}
	}
	return nil, nil
}

func (f *fakeLabClient) UpdateLabOrderStatus(ctx context.Context, orderID, status string) (*models.LabOrder, error) {
	return &models.LabOrder{ID: orderID, Status: status}, nil
}

func (f *fakeLabClient) RecordLabResults(ctx context.Context, request *requests.RecordLabResults) (*models.LabOrder, error) {
	return &models.LabOrder{ID: request.OrderID, Status: "completed"}, nil
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

type fakeAuditUsecase struct {
	actions []string
}

func (f *fakeAuditUsecase) Record(ctx context.Context, action, entity, entityID, detail string) {
	f.actions = append(f.actions, action)
}

func (f *fakeAuditUsecase) FindEvents(ctx context.Context, filter contracts.AuditEventFilter, page, pageSize int) ([]models.AuditEvent, int, error) {
	return nil, 0, nil
}

func newTestLabUsecase(client *fakeLabClient, cache *fakeQueryCache, audit *fakeAuditUsecase) *labUsecase {
	return &labUsecase{
		LabOrderPlatformClient: client,
		QueryCache:             cache,
		AuditUsecase:           audit,
		InternalConfig:         &config.InternalConfig{Cache: config.Cache{ListTTLInSeconds: 30, DetailTTLInSeconds: 15}},
		Log:                    zap.NewNop(),
	}
}

func labOrders() []models.LabOrder {
	return []models.LabOrder{
		{ID: "lo-1", Code: "LAB-0001", TestName: "Complete Blood Count", Category: "hematology", PatientID: "p-1", PatientName: "Maya Santos", Status: "completed", OrderedBy: "Dr. Chen", OrderedAt: "2026-08-20T09:00:00Z", Results: []models.LabResult{
			{Parameter: "Hemoglobin", Value: "9.1", Unit: "g/dL", ReferenceRange: "12.0-15.5", Flag: "low"},
			{Parameter: "WBC", Value: "6.2", Unit: "10^9/L", ReferenceRange: "4.0-11.0", Flag: "normal"},
		}},
		{ID: "lo-2", Code: "LAB-0002", TestName: "Lipid Panel", Category: "chemistry", PatientID: "p-2", PatientName: "Jon Haraldsen", Status: "in_progress"},
		{ID: "lo-3", Code: "LAB-0003", TestName: "HbA1c", Category: "chemistry", PatientID: "p-1", PatientName: "Maya Santos", Status: "pending"},
	}
}

func TestLabFindAll(t *testing.T) {
	uc := newTestLabUsecase(&fakeLabClient{orders: labOrders()}, &fakeQueryCache{}, &fakeAuditUsecase{})
	ctx := context.Background()

	t.Run("category and patient filters stack", func(t *testing.T) {
		orders, err := uc.FindAll(ctx, &requests.ListLabOrders{Category: "chemistry", PatientID: "p-1"})
		assert.NoError(t, err)
		assert.Len(t, orders, 1)
		assert.Equal(t, "lo-3", orders[0].ID)
	})

	t.Run("search spans test name, patient name and code", func(t *testing.T) {
		orders, err := uc.FindAll(ctx, &requests.ListLabOrders{Search: "lab-0002"})
		assert.NoError(t, err)
		assert.Len(t, orders, 1)

		orders, err = uc.FindAll(ctx, &requests.ListLabOrders{Search: "santos"})
		assert.NoError(t, err)
		assert.Len(t, orders, 2)
	})
}

func TestLabMutations(t *testing.T) {
	ctx := context.Background()

	t.Run("status update invalidates and audits", func(t *testing.T) {
		cache := &fakeQueryCache{}
		audit := &fakeAuditUsecase{}
		uc := newTestLabUsecase(&fakeLabClient{}, cache, audit)

		order, err := uc.UpdateStatus(ctx, &requests.UpdateLabOrderStatus{OrderID: "lo-2", Status: "completed"})
		assert.NoError(t, err)
		assert.Equal(t, "completed", order.Status)
		assert.Equal(t, []string{constvars.CacheGroupLabOrders}, cache.invalidated)
		assert.Equal(t, []string{constvars.AuditActionUpdate}, audit.actions)
	})

	t.Run("recording results audits the entry count", func(t *testing.T) {
		cache := &fakeQueryCache{}
		audit := &fakeAuditUsecase{}
		uc := newTestLabUsecase(&fakeLabClient{}, cache, audit)

		_, err := uc.RecordResults(ctx, &requests.RecordLabResults{OrderID: "lo-3", Entries: []requests.LabResultEntry{
			{Parameter: "HbA1c", Value: "6.1", Flag: "normal"},
		}})
		assert.NoError(t, err)
		assert.Equal(t, []string{constvars.CacheGroupLabOrders}, cache.invalidated)
		assert.Equal(t, []string{constvars.AuditActionRecord}, audit.actions)
	})
}

func TestLabBuildPrintReport(t *testing.T) {
	uc := newTestLabUsecase(&fakeLabClient{orders: labOrders()}, &fakeQueryCache{}, &fakeAuditUsecase{})

	report, err := uc.BuildPrintReport(context.Background(), "lo-1")
	assert.NoError(t, err)

	html := string(report)
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "Maya Santos")
	assert.Contains(t, html, "Complete Blood Count")
	assert.Contains(t, html, `class="flag-low"`)
	assert.Contains(t, html, "12.0-15.5")
}
