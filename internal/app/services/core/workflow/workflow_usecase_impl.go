package workflow

import (
	"context"
	"fmt"
	"medicore-admin-service/internal/app/config"
	"medicore-admin-service/internal/app/contracts"
	"medicore-admin-service/internal/app/models"
	"medicore-admin-service/internal/pkg/constvars"
	"medicore-admin-service/internal/pkg/dto/requests"
	"medicore-admin-service/internal/pkg/dto/responses"
	"medicore-admin-service/internal/pkg/exceptions"
	"medicore-admin-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	workflowUsecaseInstance contracts.WorkflowUsecase
	onceWorkflowUsecase     sync.Once
)

const taskDecisionLockTTL = 30 * time.Second

type workflowUsecase struct {
	TaskPlatformClient contracts.TaskPlatformClient
	QueryCache         contracts.QueryCache
	LockerService      contracts.LockerService
	AuditUsecase       contracts.AuditUsecase
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewWorkflowUsecase(
	taskPlatformClient contracts.TaskPlatformClient,
	queryCache contracts.QueryCache,
	lockerService contracts.LockerService,
	auditUsecase contracts.AuditUsecase,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.WorkflowUsecase {
	onceWorkflowUsecase.Do(func() {
		usecase := &workflowUsecase{
			TaskPlatformClient: taskPlatformClient,
			QueryCache:         queryCache,
			LockerService:      lockerService,
			AuditUsecase:       auditUsecase,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
		workflowUsecaseInstance = usecase
	})
	return workflowUsecaseInstance
}

// FindTasks serves the approval board. The unfiltered platform list is what
// gets cached; filtering, search and bucketing happen per request so every
// filter combination reuses one cache entry.
func (uc *workflowUsecase) FindTasks(ctx context.Context, request *requests.ListWorkflowTasks) (*responses.WorkflowBoard, error) {
	tasks, err := uc.fetchTasks(ctx)
	if err != nil {
		return nil, err
	}

	board := &responses.WorkflowBoard{
		Pending:  []models.Task{},
		Approved: []models.Task{},
		Rejected: []models.Task{},
	}

	for _, task := range tasks {
		if !utils.MatchesFilter(request.Type, task.Type) {
			continue
		}
		if !utils.MatchesFilter(request.Priority, task.Priority) {
			continue
		}
		if !utils.MatchesFilter(request.OrganizationID, task.OrganizationID) {
			continue
		}
		if !utils.MatchesSearch(request.Search, task.Title, task.RequesterName) {
			continue
		}

		switch task.Status {
		case constvars.TaskStatusPending:
			board.Pending = append(board.Pending, task)
		case constvars.TaskStatusApproved:
			board.Approved = append(board.Approved, task)
		case constvars.TaskStatusRejected:
			board.Rejected = append(board.Rejected, task)
		default:
			// Unknown statuses are dropped rather than guessed into a bucket.
		}
	}

	board.Counts = responses.WorkflowCounts{
		Pending:  len(board.Pending),
		Approved: len(board.Approved),
		Rejected: len(board.Rejected),
	}
	return board, nil
}

func (uc *workflowUsecase) ApproveTask(ctx context.Context, request *requests.DecideTask) (*models.Task, error) {
	return uc.decideTask(ctx, request, constvars.AuditActionApprove)
}

// RejectTask requires a note; an approval can go through without one.
func (uc *workflowUsecase) RejectTask(ctx context.Context, request *requests.DecideTask) (*models.Task, error) {
	if strings.TrimSpace(request.Note) == "" {
		return nil, exceptions.ErrInputValidation(fmt.Errorf("note is required when rejecting a task"))
	}
	return uc.decideTask(ctx, request, constvars.AuditActionReject)
}

// decideTask serializes concurrent decisions on one task behind a redis
// lock: the second admin gets a 409 instead of a double-submit racing to
// the platform.
func (uc *workflowUsecase) decideTask(ctx context.Context, request *requests.DecideTask, action string) (*models.Task, error) {
	requestID := utils.RequestIDFromContext(ctx)
	lockKey := constvars.LockKeyTaskDecision + request.TaskID

	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, taskDecisionLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrTaskDecisionLocked()
	}
	defer func() {
		if err := uc.LockerService.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Warn("workflowUsecase.decideTask unlock failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingTaskIDKey, request.TaskID),
				zap.Error(err),
			)
		}
	}()

	var task *models.Task
	switch action {
	case constvars.AuditActionApprove:
		task, err = uc.TaskPlatformClient.ApproveTask(ctx, request.TaskID, request.Note)
	default:
		task, err = uc.TaskPlatformClient.RejectTask(ctx, request.TaskID, request.Note)
	}
	if err != nil {
		return nil, err
	}

	if err := uc.QueryCache.Invalidate(ctx, constvars.CacheGroupWorkflow); err != nil {
		uc.Log.Warn("workflowUsecase.decideTask cache invalidation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.AuditUsecase.Record(ctx, action, constvars.ResourceTasks, task.ID, request.Note)
	return task, nil
}

func (uc *workflowUsecase) fetchTasks(ctx context.Context) ([]models.Task, error) {
	ttl := time.Duration(uc.InternalConfig.Cache.ListTTLInSeconds) * time.Second
	payload, err := uc.QueryCache.Fetch(ctx, constvars.CacheGroupWorkflow, "tasks", ttl, func(ctx context.Context) ([]byte, error) {
		tasks, err := uc.TaskPlatformClient.ListTasks(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(tasks)
	})
	if err != nil {
		return nil, err
	}

	var tasks []models.Task
	if err := json.Unmarshal(payload, &tasks); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return tasks, nil
}
