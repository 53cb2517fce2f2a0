package controllers

import (
	"context"
	"errors"
	"medicore-admin-service/internal/app/contracts"
	"medicore-admin-service/internal/pkg/constvars"
	"medicore-admin-service/internal/pkg/dto/requests"
	"medicore-admin-service/internal/pkg/exceptions"
	"medicore-admin-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MedicineController struct {
	Log             *zap.Logger
	MedicineUsecase contracts.MedicineUsecase
}

func NewMedicineController(logger *zap.Logger, medicineUsecase contracts.MedicineUsecase) *MedicineController {
	return &MedicineController{
		Log:             logger,
		MedicineUsecase: medicineUsecase,
	}
}

func (c *MedicineController) GetMedicines(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.ListMedicines{
		Category: r.URL.Query().Get("category"),
		Stock:    r.URL.Query().Get("stock"),
		Search:   r.URL.Query().Get("search"),
		SortBy:   r.URL.Query().Get("sort_by"),
		Order:    r.URL.Query().Get("order"),
	}

	medicines, err := c.MedicineUsecase.FindAll(ctx, request)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicinesSuccess, medicines)
}

func (c *MedicineController) CreateMedicine(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := new(requests.CreateMedicine)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	medicine, err := c.MedicineUsecase.Create(ctx, request)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.MedicineCreatedSuccess, medicine)
}

func (c *MedicineController) UpdateMedicine(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	medicineID := chi.URLParam(r, "medicineId")
	if err := utils.ValidateUrlParamID(medicineID); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "medicineId"))
		return
	}

	request := new(requests.UpdateMedicine)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	request.MedicineID = medicineID
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	medicine, err := c.MedicineUsecase.Update(ctx, request)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MedicineUpdatedSuccess, medicine)
}

func (c *MedicineController) DeleteMedicine(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	medicineID := chi.URLParam(r, "medicineId")
	if err := utils.ValidateUrlParamID(medicineID); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "medicineId"))
		return
	}

	if err := c.MedicineUsecase.Delete(ctx, medicineID); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MedicineDeletedSuccess, nil)
}

func (c *MedicineController) ReorderMedicine(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	medicineID := chi.URLParam(r, "medicineId")
	if err := utils.ValidateUrlParamID(medicineID); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "medicineId"))
		return
	}

	request := new(requests.ReorderMedicine)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	request.MedicineID = medicineID
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	if err := c.MedicineUsecase.Reorder(ctx, request); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.ReorderSubmittedSuccess, nil)
}

// ExportMedicines streams the CSV. The archived object name rides the
// X-Export-Object header; an archive failure rides X-Export-Archive-Error
// without failing the download.
func (c *MedicineController) ExportMedicines(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	export, err := c.MedicineUsecase.ExportCSV(ctx)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextCSV)
	w.Header().Set(constvars.HeaderContentDisposition, `attachment; filename="medicines.csv"`)
	w.Header().Set(constvars.HeaderXExportObject, export.ObjectName)
	if export.ArchiveErr != nil {
		w.Header().Set(constvars.HeaderXExportArchiveErr, "archive failed")
	}
	w.WriteHeader(constvars.StatusOK)
	w.Write(export.CSV)
}
