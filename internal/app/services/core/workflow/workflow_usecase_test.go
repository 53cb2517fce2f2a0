package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"medicore-admin-service/internal/app/config"
	"medicore-admin-service/internal/app/contracts"
	"medicore-admin-service/internal/app/models"
	"medicore-admin-service/internal/pkg/constvars"
	"medicore-admin-service/internal/pkg/dto/requests"
	"medicore-admin-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeTaskClient struct {
	tasks      []models.Task
	listErr    error
	approved   []string
	rejected   []string
	decideErr  error
	lastNote   string
	listCalled int
}

func (f *fakeTaskClient) ListTasks(ctx context.Context) ([]models.Task, error) {
	f.listCalled++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.tasks, nil
}

func (f *fakeTaskClient) ApproveTask(ctx context.Context, taskID, note string) (*models.Task, error) {
	if f.decideErr != nil {
		return nil, f.decideErr
	}
	f.approved = append(f.approved, taskID)
	f.lastNote = note
	return &models.Task{ID: taskID, Status: constvars.TaskStatusApproved, Note: note}, nil
}

func (f *fakeTaskClient) RejectTask(ctx context.Context, taskID, note string) (*models.Task, error) {
	if f.decideErr != nil {
		return nil, f.decideErr
	}
	f.rejected = append(f.rejected, taskID)
	f.lastNote = note
	return &models.Task{ID: taskID, Status: constvars.TaskStatusRejected, Note: note}, nil
}

// fakeQueryCache is pass-through: every Fetch calls fill, Invalidate only
// records the group.
type fakeQueryCache struct {
	invalidated []string
}

func (f *fakeQueryCache) Fetch(ctx context.Context, group, key string, ttl time.Duration, fill func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	return fill(ctx)
}

func (f *fakeQueryCache) Invalidate(ctx context.Context, group string) error {
	f.invalidated = append(f.invalidated, group)
	return nil
}

type fakeLocker struct {
	held      bool
	unlocked  []string
	tryErr    error
	lockValue string
}

func (f *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	if f.tryErr != nil {
		return false, "", f.tryErr
	}
	if f.held {
		return false, "", nil
	}
	f.lockValue = "lock-value-1"
	return true, f.lockValue, nil
}

func (f *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error {
	f.unlocked = append(f.unlocked, key)
	return nil
}

type recordedAudit struct {
	Action   string
	Entity   string
	EntityID string
	Detail   string
}

type fakeAuditUsecase struct {
	records []recordedAudit
}

func (f *fakeAuditUsecase) Record(ctx context.Context, action, entity, entityID, detail string) {
	f.records = append(f.records, recordedAudit{Action: action, Entity: entity, EntityID: entityID, Detail: detail})
}

func (f *fakeAuditUsecase) FindEvents(ctx context.Context, filter contracts.AuditEventFilter, page, pageSize int) ([]models.AuditEvent, int, error) {
	return nil, 0, nil
}

func newTestWorkflowUsecase(client *fakeTaskClient, cache *fakeQueryCache, locker *fakeLocker, audit *fakeAuditUsecase) *workflowUsecase {
	return &workflowUsecase{
		TaskPlatformClient: client,
		QueryCache:         cache,
		LockerService:      locker,
		AuditUsecase:       audit,
		InternalConfig:     &config.InternalConfig{Cache: config.Cache{ListTTLInSeconds: 30}},
		Log:                zap.NewNop(),
	}
}

func boardTasks() []models.Task {
	return []models.Task{
		{ID: "t-1", Type: "user_invite", Title: "Invite Dr. Chen", RequesterName: "Amara Osei", OrganizationID: "org-1", Priority: "high", Status: constvars.TaskStatusPending},
		{ID: "t-2", Type: "refund", Title: "Refund invoice 4411", RequesterName: "Jon Haraldsen", OrganizationID: "org-2", Priority: "low", Status: constvars.TaskStatusApproved},
		{ID: "t-3", Type: "user_invite", Title: "Invite locum nurse", RequesterName: "Amara Osei", OrganizationID: "org-1", Priority: "normal", Status: constvars.TaskStatusRejected},
		{ID: "t-4", Type: "plan_change", Title: "Upgrade to premium", RequesterName: "Priya Nair", OrganizationID: "org-3", Priority: "high", Status: "escalated"},
	}
}

func TestWorkflowFindTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("partitions by status and drops unknown ones", func(t *testing.T) {
		uc := newTestWorkflowUsecase(&fakeTaskClient{tasks: boardTasks()}, &fakeQueryCache{}, &fakeLocker{}, &fakeAuditUsecase{})

		board, err := uc.FindTasks(ctx, &requests.ListWorkflowTasks{})
		assert.NoError(t, err)
		assert.Len(t, board.Pending, 1)
		assert.Len(t, board.Approved, 1)
		assert.Len(t, board.Rejected, 1)
		assert.Equal(t, 1, board.Counts.Pending)
		assert.Equal(t, 1, board.Counts.Approved)
		assert.Equal(t, 1, board.Counts.Rejected)
	})

	t.Run("filters are equality, search spans title and requester", func(t *testing.T) {
		uc := newTestWorkflowUsecase(&fakeTaskClient{tasks: boardTasks()}, &fakeQueryCache{}, &fakeLocker{}, &fakeAuditUsecase{})

		board, err := uc.FindTasks(ctx, &requests.ListWorkflowTasks{Type: "user_invite", OrganizationID: "org-1"})
		assert.NoError(t, err)
		assert.Len(t, board.Pending, 1)
		assert.Len(t, board.Rejected, 1)
		assert.Empty(t, board.Approved)

		board, err = uc.FindTasks(ctx, &requests.ListWorkflowTasks{Search: "osei"})
		assert.NoError(t, err)
		assert.Equal(t, 2, board.Counts.Pending+board.Counts.Approved+board.Counts.Rejected)

		// Search does not look at organization name.
		board, err = uc.FindTasks(ctx, &requests.ListWorkflowTasks{Search: "invoice"})
		assert.NoError(t, err)
		assert.Len(t, board.Approved, 1)
		assert.Empty(t, board.Pending)
	})

	t.Run("platform failure surfaces as-is", func(t *testing.T) {
		boom := exceptions.ErrSendHTTPRequest(errors.New("connection refused"))
		uc := newTestWorkflowUsecase(&fakeTaskClient{listErr: boom}, &fakeQueryCache{}, &fakeLocker{}, &fakeAuditUsecase{})

		_, err := uc.FindTasks(ctx, &requests.ListWorkflowTasks{})
		assert.ErrorIs(t, err, boom)
	})
}

func TestWorkflowDecideTask(t *testing.T) {
	ctx := context.Background()

	t.Run("approve decides, invalidates and audits", func(t *testing.T) {
		client := &fakeTaskClient{}
		cache := &fakeQueryCache{}
		locker := &fakeLocker{}
		audit := &fakeAuditUsecase{}
		uc := newTestWorkflowUsecase(client, cache, locker, audit)

		task, err := uc.ApproveTask(ctx, &requests.DecideTask{TaskID: "t-1", Note: "looks fine"})
		assert.NoError(t, err)
		assert.Equal(t, constvars.TaskStatusApproved, task.Status)
		assert.Equal(t, []string{"t-1"}, client.approved)
		assert.Equal(t, []string{constvars.CacheGroupWorkflow}, cache.invalidated)
		assert.Len(t, audit.records, 1)
		assert.Equal(t, constvars.AuditActionApprove, audit.records[0].Action)
		assert.Equal(t, constvars.ResourceTasks, audit.records[0].Entity)
		assert.Len(t, locker.unlocked, 1, "lock must be released after the decision")
	})

	t.Run("reject without a note is a validation error", func(t *testing.T) {
		client := &fakeTaskClient{}
		uc := newTestWorkflowUsecase(client, &fakeQueryCache{}, &fakeLocker{}, &fakeAuditUsecase{})

		_, err := uc.RejectTask(ctx, &requests.DecideTask{TaskID: "t-1", Note: "   "})
		var customError *exceptions.CustomError
		assert.ErrorAs(t, err, &customError)
		assert.Equal(t, constvars.StatusBadRequest, customError.StatusCode)
		assert.Empty(t, client.rejected, "platform must not be called")
	})

	t.Run("held lock turns into a conflict", func(t *testing.T) {
		client := &fakeTaskClient{}
		cache := &fakeQueryCache{}
		uc := newTestWorkflowUsecase(client, cache, &fakeLocker{held: true}, &fakeAuditUsecase{})

		_, err := uc.ApproveTask(ctx, &requests.DecideTask{TaskID: "t-1"})
		var customError *exceptions.CustomError
		assert.ErrorAs(t, err, &customError)
		assert.Equal(t, constvars.StatusConflict, customError.StatusCode)
		assert.Empty(t, client.approved)
		assert.Empty(t, cache.invalidated)
	})

	t.Run("platform decision failure leaves the cache untouched", func(t *testing.T) {
		boom := exceptions.ErrSendHTTPRequest(errors.New("platform down"))
		client := &fakeTaskClient{decideErr: boom}
		cache := &fakeQueryCache{}
		locker := &fakeLocker{}
		audit := &fakeAuditUsecase{}
		uc := newTestWorkflowUsecase(client, cache, locker, audit)

		_, err := uc.RejectTask(ctx, &requests.DecideTask{TaskID: "t-2", Note: "duplicate request"})
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, cache.invalidated)
		assert.Empty(t, audit.records)
		assert.Len(t, locker.unlocked, 1)
	})
}
