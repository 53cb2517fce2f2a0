package controllers

import (
	"context"
	"errors"
	"medicore-admin-service/internal/app/config"
	"medicore-admin-service/internal/app/contracts"
	"medicore-admin-service/internal/pkg/constvars"
	"medicore-admin-service/internal/pkg/exceptions"
	"medicore-admin-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

type AuditController struct {
	Log            *zap.Logger
	AuditUsecase   contracts.AuditUsecase
	InternalConfig *config.InternalConfig
}

func NewAuditController(logger *zap.Logger, auditUsecase contracts.AuditUsecase, internalConfig *config.InternalConfig) *AuditController {
	return &AuditController{
		Log:            logger,
		AuditUsecase:   auditUsecase,
		InternalConfig: internalConfig,
	}
}

func (c *AuditController) GetAuditEvents(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	filter := contracts.AuditEventFilter{
		ActorID: r.URL.Query().Get("actor_id"),
		Entity:  r.URL.Query().Get("entity"),
	}

	events, total, err := c.AuditUsecase.FindEvents(ctx, filter, page, pageSize)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	baseURL := c.InternalConfig.App.BaseUrl + c.InternalConfig.App.EndpointPrefix + "/audit/events"
	pagination := utils.BuildPaginationResponse(total, page, pageSize, baseURL)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetAuditEventsSuccess, pagination, events)
}
