package patients

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"medicore-admin-service/internal/app/config"
	"medicore-admin-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakePatientClient struct {
	patients      []models.Patient
	prescriptions []models.Prescription
	listErr       error
	findErr       error
}

func (f *fakePatientClient) ListPatients(ctx context.Context) ([]models.Patient, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.patients, nil
}

func (f *fakePatientClient) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, patient := range f.patients {
		if patient.ID == patientID {
			return &patient, nil
		}
	}
	return nil, errors.New("patient not found")
}

func (f *fakePatientClient) ListPrescriptions(ctx context.Context, patientID string) ([]models.Prescription, error) {
	return f.prescriptions, nil
}

func (f *fakePatientClient) FindPrescriptionByID(ctx context.Context, patientID, prescriptionID string) (*models.Prescription, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, prescription := range f.prescriptions {
		if prescription.ID == prescriptionID {
			return &prescription, nil
		}
	}
	return nil, errors.New("prescription not found")
}

// fakeQueryCache is pass-through: every Fetch calls fill.
type fakeQueryCache struct{}

func (f *fakeQueryCache) Fetch(ctx context.Context, group, key string, ttl time.Duration, fill func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	return fill(ctx)
}

func (f *fakeQueryCache) Invalidate(ctx context.Context, group string) error {
	return nil
}

func newTestPatientUsecase(client *fakePatientClient) *patientUsecase {
	return &patientUsecase{
		PatientPlatformClient: client,
		QueryCache:            &fakeQueryCache{},
		InternalConfig: &config.InternalConfig{
			App:   config.App{BaseUrl: "http://localhost:8080", EndpointPrefix: "/v1"},
			Cache: config.Cache{ListTTLInSeconds: 30, DetailTTLInSeconds: 60},
		},
		Log: zap.NewNop(),
	}
}

func samplePatients(n int) []models.Patient {
	patients := make([]models.Patient, 0, n)
	for i := 1; i <= n; i++ {
		patients = append(patients, models.Patient{
			ID:                  fmt.Sprintf("pat-%d", i),
			MedicalRecordNumber: fmt.Sprintf("MRN-%04d", i),
			Name:                fmt.Sprintf("Patient %d", i),
			Phone:               fmt.Sprintf("+62811%04d", i),
		})
	}
	return patients
}

func TestPatientUsecaseFindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("pagination envelope reflects the searched total", func(t *testing.T) {
		patients := samplePatients(23)
		uc := newTestPatientUsecase(&fakePatientClient{patients: patients})

		result, pagination, err := uc.FindAll(ctx, "", 2, 10)
		assert.NoError(t, err)
		assert.Len(t, result, 10)
		assert.Equal(t, "pat-11", result[0].ID)
		assert.Equal(t, 23, pagination.Total)
		assert.Equal(t, 2, pagination.Page)
		assert.Equal(t, "http://localhost:8080/v1/patients?page=3&page_size=10", pagination.NextURL)
		assert.Equal(t, "http://localhost:8080/v1/patients?page=1&page_size=10", pagination.PrevURL)
	})

	t.Run("search narrows before slicing", func(t *testing.T) {
		patients := samplePatients(23)
		uc := newTestPatientUsecase(&fakePatientClient{patients: patients})

		// "MRN-001" matches MRN-0010 through MRN-0019.
		result, pagination, err := uc.FindAll(ctx, "MRN-001", 1, 5)
		assert.NoError(t, err)
		assert.Len(t, result, 5)
		assert.Equal(t, 10, pagination.Total, "total must count search matches, not the directory")
		assert.NotEmpty(t, pagination.NextURL)
		assert.Empty(t, pagination.PrevURL)
	})

	t.Run("page past the end comes back empty with totals intact", func(t *testing.T) {
		uc := newTestPatientUsecase(&fakePatientClient{patients: samplePatients(7)})

		result, pagination, err := uc.FindAll(ctx, "", 5, 10)
		assert.NoError(t, err)
		assert.Empty(t, result)
		assert.Equal(t, 7, pagination.Total)
		assert.Empty(t, pagination.NextURL)
	})

	t.Run("zero paging falls back to page one size ten", func(t *testing.T) {
		uc := newTestPatientUsecase(&fakePatientClient{patients: samplePatients(15)})

		result, pagination, err := uc.FindAll(ctx, "", 0, 0)
		assert.NoError(t, err)
		assert.Len(t, result, 10)
		assert.Equal(t, 1, pagination.Page)
		assert.Equal(t, 10, pagination.PageSize)
	})

	t.Run("platform error passes through", func(t *testing.T) {
		boom := errors.New("platform 500")
		uc := newTestPatientUsecase(&fakePatientClient{listErr: boom})

		_, _, err := uc.FindAll(ctx, "", 1, 10)
		assert.ErrorIs(t, err, boom)
	})
}

func TestPatientUsecaseFindByID(t *testing.T) {
	ctx := context.Background()

	uc := newTestPatientUsecase(&fakePatientClient{patients: samplePatients(3)})
	patient, err := uc.FindByID(ctx, "pat-2")
	assert.NoError(t, err)
	assert.Equal(t, "MRN-0002", patient.MedicalRecordNumber)
}

func TestPatientUsecaseBuildPrescriptionPrint(t *testing.T) {
	ctx := context.Background()

	client := &fakePatientClient{
		patients: []models.Patient{{
			ID:                  "pat-1",
			MedicalRecordNumber: "MRN-0001",
			Name:                "Siti Rahma",
			Allergies:           []string{"penicillin", "sulfa"},
		}},
		prescriptions: []models.Prescription{{
			ID:         "rx-1",
			PatientID:  "pat-1",
			Prescriber: "dr. Budi Santoso",
			IssuedAt:   "2026-08-01",
			Status:     "active",
			Items: []models.PrescriptionItem{
				{MedicineName: "Amoxicillin 500mg", Dosage: "1 tablet", Frequency: "3x daily"},
			},
		}},
	}
	uc := newTestPatientUsecase(client)

	t.Run("renders the printable document", func(t *testing.T) {
		document, err := uc.BuildPrescriptionPrint(ctx, "pat-1", "rx-1")
		assert.NoError(t, err)

		html := string(document)
		assert.Contains(t, html, "<!DOCTYPE html>")
		assert.Contains(t, html, "Siti Rahma")
		assert.Contains(t, html, "MRN MRN-0001")
		assert.Contains(t, html, "penicillin, sulfa")
		assert.Contains(t, html, "Amoxicillin 500mg")
		assert.Contains(t, html, "dr. Budi Santoso")
	})

	t.Run("missing prescription fails the print", func(t *testing.T) {
		_, err := uc.BuildPrescriptionPrint(ctx, "pat-1", "rx-404")
		assert.Error(t, err)
	})
}
