package patients

import (
	"bytes"
	"context"
	"medicore-admin-service/internal/app/config"
	"medicore-admin-service/internal/app/contracts"
	"medicore-admin-service/internal/app/models"
	"medicore-admin-service/internal/pkg/constvars"
	"medicore-admin-service/internal/pkg/dto/responses"
	"medicore-admin-service/internal/pkg/exceptions"
	"medicore-admin-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

type patientUsecase struct {
	PatientPlatformClient contracts.PatientPlatformClient
	QueryCache            contracts.QueryCache
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewPatientUsecase(
	patientPlatformClient contracts.PatientPlatformClient,
	queryCache contracts.QueryCache,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		usecase := &patientUsecase{
			PatientPlatformClient: patientPlatformClient,
			QueryCache:            queryCache,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
		patientUsecaseInstance = usecase
	})
	return patientUsecaseInstance
}

// FindAll pages over the cached directory gateway-side: search first, then
// slice the filtered list so the pagination totals reflect the search.
func (uc *patientUsecase) FindAll(ctx context.Context, search string, page, pageSize int) ([]models.Patient, *responses.Pagination, error) {
	patients, err := uc.fetchPatients(ctx)
	if err != nil {
		return nil, nil, err
	}

	filtered := make([]models.Patient, 0, len(patients))
	for _, patient := range patients {
		if !utils.MatchesSearch(search, patient.Name, patient.MedicalRecordNumber, patient.Phone) {
			continue
		}
		filtered = append(filtered, patient)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	start, end := utils.PageSlice(len(filtered), page, pageSize)
	baseURL := uc.InternalConfig.App.BaseUrl + uc.InternalConfig.App.EndpointPrefix + "/patients"
	pagination := utils.BuildPaginationResponse(len(filtered), page, pageSize, baseURL)
	return filtered[start:end], pagination, nil
}

func (uc *patientUsecase) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	ttl := time.Duration(uc.InternalConfig.Cache.DetailTTLInSeconds) * time.Second
	payload, err := uc.QueryCache.Fetch(ctx, constvars.CacheGroupPatients, "detail:"+patientID, ttl, func(ctx context.Context) ([]byte, error) {
		patient, err := uc.PatientPlatformClient.FindPatientByID(ctx, patientID)
		if err != nil {
			return nil, err
		}
		return json.Marshal(patient)
	})
	if err != nil {
		return nil, err
	}

	patient := new(models.Patient)
	if err := json.Unmarshal(payload, patient); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return patient, nil
}

func (uc *patientUsecase) FindPrescriptions(ctx context.Context, patientID string) ([]models.Prescription, error) {
	ttl := time.Duration(uc.InternalConfig.Cache.ListTTLInSeconds) * time.Second
	payload, err := uc.QueryCache.Fetch(ctx, constvars.CacheGroupPatients, "prescriptions:"+patientID, ttl, func(ctx context.Context) ([]byte, error) {
		prescriptions, err := uc.PatientPlatformClient.ListPrescriptions(ctx, patientID)
		if err != nil {
			return nil, err
		}
		return json.Marshal(prescriptions)
	})
	if err != nil {
		return nil, err
	}

	var prescriptions []models.Prescription
	if err := json.Unmarshal(payload, &prescriptions); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return prescriptions, nil
}

// BuildPrescriptionPrint renders the printable prescription document for
// one prescription of one patient.
func (uc *patientUsecase) BuildPrescriptionPrint(ctx context.Context, patientID, prescriptionID string) ([]byte, error) {
	patient, err := uc.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	prescription, err := uc.PatientPlatformClient.FindPrescriptionByID(ctx, patientID, prescriptionID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = prescriptionTemplate.Execute(&buf, prescriptionPrintData{
		Patient:      patient,
		Prescription: prescription,
		GeneratedAt:  time.Now().UTC().Format("2006-01-02 15:04 MST"),
	})
	if err != nil {
		return nil, exceptions.ErrPrintTemplate(err)
	}
	return buf.Bytes(), nil
}

func (uc *patientUsecase) fetchPatients(ctx context.Context) ([]models.Patient, error) {
	ttl := time.Duration(uc.InternalConfig.Cache.ListTTLInSeconds) * time.Second
	payload, err := uc.QueryCache.Fetch(ctx, constvars.CacheGroupPatients, "list", ttl, func(ctx context.Context) ([]byte, error) {
		patients, err := uc.PatientPlatformClient.ListPatients(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(patients)
	})
	if err != nil {
		return nil, err
	}

	var patients []models.Patient
	if err := json.Unmarshal(payload, &patients); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return patients, nil
}
