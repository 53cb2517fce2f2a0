package patients

import (
	"context"
	"fmt"
	"medicore-admin-service/internal/app/contracts"
	"medicore-admin-service/internal/app/models"
	"medicore-admin-service/internal/app/services/platform"
	"medicore-admin-service/internal/pkg/constvars"
	"medicore-admin-service/internal/pkg/exceptions"
	"medicore-admin-service/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	patientPlatformClientInstance contracts.PatientPlatformClient
	oncePatientPlatformClient     sync.Once
)

type patientPlatformClient struct {
	requester *platform.Requester
	Log       *zap.Logger
}

func NewPatientPlatformClient(requester *platform.Requester, logger *zap.Logger) contracts.PatientPlatformClient {
	oncePatientPlatformClient.Do(func() {
		client := &patientPlatformClient{
			requester: requester,
			Log:       logger,
		}
		patientPlatformClientInstance = client
	})
	return patientPlatformClientInstance
}

func (c *patientPlatformClient) ListPatients(ctx context.Context) ([]models.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientPlatformClient.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.requester.Do(ctx, constvars.MethodGet, "/patients", nil, constvars.ResourcePatients)
	if err != nil {
		return nil, err
	}

	var patients []models.Patient
	if err := json.Unmarshal(body, &patients); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatients)
	}

	c.Log.Info("patientPlatformClient.ListPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(patients)),
	)
	return patients, nil
}

func (c *patientPlatformClient) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientPlatformClient.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	path := fmt.Sprintf("/patients/%s", patientID)
	body, err := c.requester.Do(ctx, constvars.MethodGet, path, nil, constvars.ResourcePatients)
	if err != nil {
		return nil, err
	}

	patient := new(models.Patient)
	if err := json.Unmarshal(body, patient); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatients)
	}

	return patient, nil
}

func (c *patientPlatformClient) ListPrescriptions(ctx context.Context, patientID string) ([]models.Prescription, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientPlatformClient.ListPrescriptions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	path := fmt.Sprintf("/patients/%s/prescriptions", patientID)
	body, err := c.requester.Do(ctx, constvars.MethodGet, path, nil, constvars.ResourcePatients)
	if err != nil {
		return nil, err
	}

	var prescriptions []models.Prescription
	if err := json.Unmarshal(body, &prescriptions); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatients)
	}

	return prescriptions, nil
}

func (c *patientPlatformClient) FindPrescriptionByID(ctx context.Context, patientID, prescriptionID string) (*models.Prescription, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientPlatformClient.FindPrescriptionByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String("prescription_id", prescriptionID),
	)

	path := fmt.Sprintf("/patients/%s/prescriptions/%s", patientID, prescriptionID)
	body, err := c.requester.Do(ctx, constvars.MethodGet, path, nil, constvars.ResourcePatients)
	if err != nil {
		return nil, err
	}

	prescription := new(models.Prescription)
	if err := json.Unmarshal(body, prescription); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatients)
	}

	return prescription, nil
}
