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

type OrganizationController struct {
	Log                 *zap.Logger
	OrganizationUsecase contracts.OrganizationUsecase
}

func NewOrganizationController(logger *zap.Logger, organizationUsecase contracts.OrganizationUsecase) *OrganizationController {
	return &OrganizationController{
		Log:                 logger,
		OrganizationUsecase: organizationUsecase,
	}
}

func (c *OrganizationController) GetOrganizations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.ListOrganizations{
		Status: r.URL.Query().Get("status"),
		Plan:   r.URL.Query().Get("plan"),
		Search: r.URL.Query().Get("search"),
	}

	organizations, err := c.OrganizationUsecase.FindAll(ctx, request)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetOrganizationsSuccess, organizations)
}

func (c *OrganizationController) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	overview, err := c.OrganizationUsecase.Overview(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetOverviewSuccess, overview)
}

func (c *OrganizationController) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := new(requests.CreateOrganization)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	organization, err := c.OrganizationUsecase.Create(ctx, request)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.OrganizationCreatedSuccess, organization)
}

func (c *OrganizationController) UpdateOrganizationStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	organizationID := chi.URLParam(r, "organizationId")
	if err := utils.ValidateUrlParamID(organizationID); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "organizationId"))
		return
	}

	request := new(requests.UpdateOrganizationStatus)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	request.OrganizationID = organizationID
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	organization, err := c.OrganizationUsecase.UpdateStatus(ctx, request)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OrganizationStatusUpdateSuccess, organization)
}

func (c *OrganizationController) DeleteOrganization(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	organizationID := chi.URLParam(r, "organizationId")
	if err := utils.ValidateUrlParamID(organizationID); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "organizationId"))
		return
	}

	if err := c.OrganizationUsecase.Delete(ctx, organizationID); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OrganizationDeletedSuccess, nil)
}
