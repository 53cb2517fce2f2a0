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

type LabController struct {
	Log        *zap.Logger
	LabUsecase contracts.LabUsecase
}

func NewLabController(logger *zap.Logger, labUsecase contracts.LabUsecase) *LabController {
	return &LabController{
		Log:        logger,
		LabUsecase: labUsecase,
	}
}

func (c *LabController) GetLabOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.ListLabOrders{
		Status:    r.URL.Query().Get("status"),
		Category:  r.URL.Query().Get("category"),
		PatientID: r.URL.Query().Get("patient_id"),
		Search:    r.URL.Query().Get("search"),
	}

	orders, err := c.LabUsecase.FindAll(ctx, request)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLabOrdersSuccess, orders)
}

func (c *LabController) GetLabOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orderID := chi.URLParam(r, "orderId")
	if err := utils.ValidateUrlParamID(orderID); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "orderId"))
		return
	}

	order, err := c.LabUsecase.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLabOrderSuccess, order)
}

func (c *LabController) UpdateLabOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orderID := chi.URLParam(r, "orderId")
	if err := utils.ValidateUrlParamID(orderID); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "orderId"))
		return
	}

	request := new(requests.UpdateLabOrderStatus)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	request.OrderID = orderID
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	order, err := c.LabUsecase.UpdateStatus(ctx, request)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LabOrderStatusUpdate, order)
}

func (c *LabController) RecordLabResults(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orderID := chi.URLParam(r, "orderId")
	if err := utils.ValidateUrlParamID(orderID); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "orderId"))
		return
	}

	request := new(requests.RecordLabResults)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	request.OrderID = orderID
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	order, err := c.LabUsecase.RecordResults(ctx, request)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LabResultsRecordedSuccess, order)
}

// PrintLabReport returns text/html, not the JSON envelope; failures still
// use the envelope so the UI can toast them.
func (c *LabController) PrintLabReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orderID := chi.URLParam(r, "orderId")
	if err := utils.ValidateUrlParamID(orderID); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "orderId"))
		return
	}

	document, err := c.LabUsecase.BuildPrintReport(ctx, orderID)
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
