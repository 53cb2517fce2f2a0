package dashboard

import (
	"context"
	"medicore-admin-service/internal/app/config"
	"medicore-admin-service/internal/app/contracts"
	"medicore-admin-service/internal/app/models"
	"medicore-admin-service/internal/pkg/constvars"
	"medicore-admin-service/internal/pkg/dto/requests"
	"medicore-admin-service/internal/pkg/dto/responses"
	"medicore-admin-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

var (
	dashboardUsecaseInstance contracts.DashboardUsecase
	onceDashboardUsecase     sync.Once
)

type dashboardUsecase struct {
	WorkflowUsecase     contracts.WorkflowUsecase
	OrganizationUsecase contracts.OrganizationUsecase
	MedicineUsecase     contracts.MedicineUsecase
	LabUsecase          contracts.LabUsecase
	AuditRepository     contracts.AuditRepository
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

func NewDashboardUsecase(
	workflowUsecase contracts.WorkflowUsecase,
	organizationUsecase contracts.OrganizationUsecase,
	medicineUsecase contracts.MedicineUsecase,
	labUsecase contracts.LabUsecase,
	auditRepository contracts.AuditRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DashboardUsecase {
	onceDashboardUsecase.Do(func() {
		usecase := &dashboardUsecase{
			WorkflowUsecase:     workflowUsecase,
			OrganizationUsecase: organizationUsecase,
			MedicineUsecase:     medicineUsecase,
			LabUsecase:          labUsecase,
			AuditRepository:     auditRepository,
			InternalConfig:      internalConfig,
			Log:                 logger,
		}
		dashboardUsecaseInstance = usecase
	})
	return dashboardUsecaseInstance
}

// Overview composes the landing panel from the same cached lists the
// individual pages use, so the figures line up with what those pages show.
// The recent-audit strip is best effort: a mongo hiccup empties it instead
// of failing the whole panel.
func (uc *dashboardUsecase) Overview(ctx context.Context) (*responses.Dashboard, error) {
	board, err := uc.WorkflowUsecase.FindTasks(ctx, &requests.ListWorkflowTasks{})
	if err != nil {
		return nil, err
	}

	organizationOverview, err := uc.OrganizationUsecase.Overview(ctx)
	if err != nil {
		return nil, err
	}

	medicines, err := uc.MedicineUsecase.FindAll(ctx, &requests.ListMedicines{})
	if err != nil {
		return nil, err
	}

	orders, err := uc.LabUsecase.FindAll(ctx, &requests.ListLabOrders{})
	if err != nil {
		return nil, err
	}

	dashboard := &responses.Dashboard{
		WorkflowCounts:      board.Counts,
		OrganizationsStatus: organizationOverview.ByStatus,
		RecentAuditEvents:   []models.AuditEvent{},
	}
	for _, medicine := range medicines {
		switch medicine.StockStatus {
		case constvars.StockStatusLowStock:
			dashboard.LowStockCount++
		case constvars.StockStatusOutOfStock:
			dashboard.OutOfStockCount++
		}
	}
	for _, order := range orders {
		if order.Status == "in_progress" {
			dashboard.LabOrdersInProgress++
		}
	}

	recent, err := uc.AuditRepository.FindRecent(ctx, uc.InternalConfig.Audit.RecentLimit)
	if err != nil {
		uc.Log.Warn("dashboardUsecase.Overview recent audit fetch failed",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
	} else {
		dashboard.RecentAuditEvents = recent
	}

	return dashboard, nil
}
