package contracts

import (
	"context"
	"medicore-admin-service/internal/app/models"
	"medicore-admin-service/internal/pkg/dto/responses"
)

type PatientPlatformClient interface {
	ListPatients(ctx context.Context) ([]models.Patient, error)
	FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
	ListPrescriptions(ctx context.Context, patientID string) ([]models.Prescription, error)
	FindPrescriptionByID(ctx context.Context, patientID, prescriptionID string) (*models.Prescription, error)
}

type PatientUsecase interface {
	FindAll(ctx context.Context, search string, page, pageSize int) ([]models.Patient, *responses.Pagination, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindPrescriptions(ctx context.Context, patientID string) ([]models.Prescription, error)
	BuildPrescriptionPrint(ctx context.Context, patientID, prescriptionID string) ([]byte, error)
}
