package contracts

import (
	"context"
	"medicore-admin-service/internal/app/models"
	"medicore-admin-service/internal/pkg/dto/requests"
	"medicore-admin-service/internal/pkg/dto/responses"
)

type TaskPlatformClient interface {
	ListTasks(ctx context.Context) ([]models.Task, error)
	ApproveTask(ctx context.Context, taskID, note string) (*models.Task, error)
	RejectTask(ctx context.Context, taskID, note string) (*models.Task, error)
}

type WorkflowUsecase interface {
	FindTasks(ctx context.Context, request *requests.ListWorkflowTasks) (*responses.WorkflowBoard, error)
	ApproveTask(ctx context.Context, request *requests.DecideTask) (*models.Task, error)
	RejectTask(ctx context.Context, request *requests.DecideTask) (*models.Task, error)
}
