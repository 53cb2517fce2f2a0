package tasks

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
	taskPlatformClientInstance contracts.TaskPlatformClient
	onceTaskPlatformClient     sync.Once
)

type taskPlatformClient struct {
	requester *platform.Requester
	Log       *zap.Logger
}

func NewTaskPlatformClient(requester *platform.Requester, logger *zap.Logger) contracts.TaskPlatformClient {
	onceTaskPlatformClient.Do(func() {
		client := &taskPlatformClient{
			requester: requester,
			Log:       logger,
		}
		taskPlatformClientInstance = client
	})
	return taskPlatformClientInstance
}

func (c *taskPlatformClient) ListTasks(ctx context.Context) ([]models.Task, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("taskPlatformClient.ListTasks called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.requester.Do(ctx, constvars.MethodGet, "/admin/workflow/tasks", nil, constvars.ResourceTasks)
	if err != nil {
		return nil, err
	}

	var tasks []models.Task
	if err := json.Unmarshal(body, &tasks); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceTasks)
	}

	c.Log.Info("taskPlatformClient.ListTasks succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(tasks)),
	)
	return tasks, nil
}

func (c *taskPlatformClient) ApproveTask(ctx context.Context, taskID, note string) (*models.Task, error) {
	return c.decide(ctx, taskID, "approve", note)
}

func (c *taskPlatformClient) RejectTask(ctx context.Context, taskID, note string) (*models.Task, error) {
	return c.decide(ctx, taskID, "reject", note)
}

func (c *taskPlatformClient) decide(ctx context.Context, taskID, decision, note string) (*models.Task, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("taskPlatformClient.decide called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTaskIDKey, taskID),
		zap.String("decision", decision),
	)

	payload := map[string]string{"note": note}
	path := fmt.Sprintf("/admin/workflow/tasks/%s/%s", taskID, decision)

	body, err := c.requester.Do(ctx, constvars.MethodPost, path, payload, constvars.ResourceTasks)
	if err != nil {
		return nil, err
	}

	task := new(models.Task)
	if err := json.Unmarshal(body, task); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceTasks)
	}

	c.Log.Info("taskPlatformClient.decide succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTaskIDKey, task.ID),
	)
	return task, nil
}
