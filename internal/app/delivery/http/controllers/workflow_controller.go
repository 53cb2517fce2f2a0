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

type WorkflowController struct {
	Log             *zap.Logger
	WorkflowUsecase contracts.WorkflowUsecase
}

func NewWorkflowController(logger *zap.Logger, workflowUsecase contracts.WorkflowUsecase) *WorkflowController {
	return &WorkflowController{
		Log:             logger,
		WorkflowUsecase: workflowUsecase,
	}
}

func (c *WorkflowController) GetTasks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.ListWorkflowTasks{
		Type:           r.URL.Query().Get("type"),
		Priority:       r.URL.Query().Get("priority"),
		OrganizationID: r.URL.Query().Get("organization_id"),
		Search:         r.URL.Query().Get("search"),
	}

	board, err := c.WorkflowUsecase.FindTasks(ctx, request)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetWorkflowTasksSuccess, board)
}

func (c *WorkflowController) ApproveTask(w http.ResponseWriter, r *http.Request) {
	c.decideTask(w, r, constvars.AuditActionApprove)
}

func (c *WorkflowController) RejectTask(w http.ResponseWriter, r *http.Request) {
	c.decideTask(w, r, constvars.AuditActionReject)
}

func (c *WorkflowController) decideTask(w http.ResponseWriter, r *http.Request, action string) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	taskID := chi.URLParam(r, "taskId")
	if err := utils.ValidateUrlParamID(taskID); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "taskId"))
		return
	}

	request := new(requests.DecideTask)
	if r.ContentLength > 0 {
		if err := utils.DecodeJSONBody(r, request); err != nil {
			utils.BuildErrorResponse(c.Log, w, err)
			return
		}
	}
	request.TaskID = taskID

	var (
		task interface{}
		err  error
	)
	message := constvars.TaskApprovedSuccess
	if action == constvars.AuditActionApprove {
		task, err = c.WorkflowUsecase.ApproveTask(ctx, request)
	} else {
		task, err = c.WorkflowUsecase.RejectTask(ctx, request)
		message = constvars.TaskRejectedSuccess
	}
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, message, task)
}
