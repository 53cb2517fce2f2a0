package controllers

import (
	"context"
	"errors"
	"medicore-admin-service/internal/app/contracts"
	"medicore-admin-service/internal/pkg/constvars"
	"medicore-admin-service/internal/pkg/exceptions"
	"medicore-admin-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
	}
}

func (c *PatientController) GetPatients(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	search := r.URL.Query().Get("search")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	patients, pagination, err := c.PatientUsecase.FindAll(ctx, search, page, pageSize)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetPatientsSuccess, pagination, patients)
}

func (c *PatientController) GetPatient(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patientID := chi.URLParam(r, "patientId")
	if err := utils.ValidateUrlParamID(patientID); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "patientId"))
		return
	}

	patient, err := c.PatientUsecase.FindByID(ctx, patientID)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientSuccess, patient)
}

func (c *PatientController) GetPrescriptions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patientID := chi.URLParam(r, "patientId")
	if err := utils.ValidateUrlParamID(patientID); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "patientId"))
		return
	}

	prescriptions, err := c.PatientUsecase.FindPrescriptions(ctx, patientID)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPrescriptionsSuccess, prescriptions)
}

func (c *PatientController) PrintPrescription(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patientID := chi.URLParam(r, "patientId")
	if err := utils.ValidateUrlParamID(patientID); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "patientId"))
		return
	}
	prescriptionID := chi.URLParam(r, "prescriptionId")
	if err := utils.ValidateUrlParamID(prescriptionID); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "prescriptionId"))
		return
	}

	document, err := c.PatientUsecase.BuildPrescriptionPrint(ctx, patientID, prescriptionID)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.WriteHeader(constvars.StatusOK)
	w.Write(document)
}
