package medicines

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"medicore-admin-service/internal/app/config"
	"medicore-admin-service/internal/app/contracts"
	"medicore-admin-service/internal/app/models"
	"medicore-admin-service/internal/pkg/constvars"
	"medicore-admin-service/internal/pkg/dto/requests"
	"medicore-admin-service/internal/pkg/dto/responses"
	"medicore-admin-service/internal/pkg/exceptions"
	"medicore-admin-service/internal/pkg/utils"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	medicineUsecaseInstance contracts.MedicineUsecase
	onceMedicineUsecase     sync.Once
)

var csvHeader = []string{
	"ID", "Name", "Generic Name", "Category", "SKU", "Unit",
	"Quantity", "Reorder Threshold", "Stock Status", "Unit Price",
	"Currency", "Expiry Date", "Supplier",
}

type medicineUsecase struct {
	MedicinePlatformClient contracts.MedicinePlatformClient
	QueryCache             contracts.QueryCache
	ExportStorage          contracts.ExportStorage
	AuditUsecase           contracts.AuditUsecase
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewMedicineUsecase(
	medicinePlatformClient contracts.MedicinePlatformClient,
	queryCache contracts.QueryCache,
	exportStorage contracts.ExportStorage,
	auditUsecase contracts.AuditUsecase,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.MedicineUsecase {
	onceMedicineUsecase.Do(func() {
		usecase := &medicineUsecase{
			MedicinePlatformClient: medicinePlatformClient,
			QueryCache:             queryCache,
			ExportStorage:          exportStorage,
			AuditUsecase:           auditUsecase,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
		medicineUsecaseInstance = usecase
	})
	return medicineUsecaseInstance
}

// FindAll serves the inventory page: category filter, derived stock-status
// filter, substring search, then one whitelisted sort key with asc/desc.
func (uc *medicineUsecase) FindAll(ctx context.Context, request *requests.ListMedicines) ([]responses.Medicine, error) {
	if request.SortBy != "" && !isSortKeyAllowed(request.SortBy) {
		return nil, exceptions.ErrUnknownSortKey(request.SortBy)
	}

	medicines, err := uc.fetchMedicines(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Medicine, 0, len(medicines))
	for _, medicine := range medicines {
		if !utils.MatchesFilter(request.Category, medicine.Category) {
			continue
		}
		if !utils.MatchesFilter(request.Stock, medicine.StockStatus()) {
			continue
		}
		if !utils.MatchesSearch(request.Search, medicine.Name, medicine.GenericName, medicine.SKU) {
			continue
		}
		filtered = append(filtered, medicine)
	}

	if request.SortBy != "" {
		sortMedicines(filtered, request.SortBy, request.Order == "desc")
	}

	decorated := make([]responses.Medicine, 0, len(filtered))
	for _, medicine := range filtered {
		decorated = append(decorated, responses.Medicine{
			Medicine:         medicine,
			StockStatus:      medicine.StockStatus(),
			UnitPriceDisplay: utils.FormatCurrency(medicine.UnitPriceCents, medicine.Currency),
		})
	}
	return decorated, nil
}

func (uc *medicineUsecase) Create(ctx context.Context, request *requests.CreateMedicine) (*models.Medicine, error) {
	medicine, err := uc.MedicinePlatformClient.CreateMedicine(ctx, request)
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx)
	uc.AuditUsecase.Record(ctx, constvars.AuditActionCreate, constvars.ResourceMedicines, medicine.ID, medicine.Name)
	return medicine, nil
}

func (uc *medicineUsecase) Update(ctx context.Context, request *requests.UpdateMedicine) (*models.Medicine, error) {
	medicine, err := uc.MedicinePlatformClient.UpdateMedicine(ctx, request)
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx)
	uc.AuditUsecase.Record(ctx, constvars.AuditActionUpdate, constvars.ResourceMedicines, medicine.ID, medicine.Name)
	return medicine, nil
}

func (uc *medicineUsecase) Delete(ctx context.Context, medicineID string) error {
	if err := uc.MedicinePlatformClient.DeleteMedicine(ctx, medicineID); err != nil {
		return err
	}

	uc.invalidate(ctx)
	uc.AuditUsecase.Record(ctx, constvars.AuditActionDelete, constvars.ResourceMedicines, medicineID, "")
	return nil
}

func (uc *medicineUsecase) Reorder(ctx context.Context, request *requests.ReorderMedicine) error {
	if err := uc.MedicinePlatformClient.SubmitReorder(ctx, request); err != nil {
		return err
	}

	uc.AuditUsecase.Record(ctx, constvars.AuditActionReorder, constvars.ResourceMedicines, request.MedicineID, fmt.Sprintf("requested %d units", request.Quantity))
	return nil
}

// ExportCSV builds the full inventory dump and archives a copy to the
// export bucket. The archive is best effort: a failure is reported on the
// result, never as an error, so the download itself always goes through.
func (uc *medicineUsecase) ExportCSV(ctx context.Context) (*contracts.MedicineExport, error) {
	requestID := utils.RequestIDFromContext(ctx)

	medicines, err := uc.fetchMedicines(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := buildCSV(medicines)
	if err != nil {
		return nil, err
	}

	export := &contracts.MedicineExport{
		CSV:        payload,
		ObjectName: fmt.Sprintf("exports/medicines-%s-%s.csv", time.Now().UTC().Format("20060102T150405Z"), uuid.NewString()),
	}

	if _, err := uc.ExportStorage.PutObject(ctx, export.ObjectName, payload, constvars.MIMETextCSV); err != nil {
		uc.Log.Error("medicineUsecase.ExportCSV archive failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, export.ObjectName),
			zap.Error(err),
		)
		export.ArchiveErr = err
	}

	uc.AuditUsecase.Record(ctx, constvars.AuditActionExport, constvars.ResourceMedicines, export.ObjectName, fmt.Sprintf("%d rows", len(medicines)))
	return export, nil
}

func buildCSV(medicines []models.Medicine) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	for _, medicine := range medicines {
		record := []string{
			medicine.ID,
			medicine.Name,
			medicine.GenericName,
			medicine.Category,
			medicine.SKU,
			medicine.Unit,
			strconv.Itoa(medicine.Quantity),
			strconv.Itoa(medicine.ReorderThreshold),
			medicine.StockStatus(),
			utils.FormatCurrency(medicine.UnitPriceCents, medicine.Currency),
			medicine.Currency,
			medicine.ExpiryDate,
			medicine.Supplier,
		}
		if err := writer.Write(record); err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	return buf.Bytes(), nil
}

func isSortKeyAllowed(sortKey string) bool {
	switch sortKey {
	case "name", "category", "quantity", "unit_price", "expiry_date":
		return true
	}
	return false
}

func sortMedicines(medicines []models.Medicine, sortKey string, descending bool) {
	sort.SliceStable(medicines, func(i, j int) bool {
		a, b := medicines[i], medicines[j]
		if descending {
			a, b = b, a
		}
		switch sortKey {
		case "quantity":
			return a.Quantity < b.Quantity
		case "unit_price":
			return a.UnitPriceCents < b.UnitPriceCents
		case "category":
			return a.Category < b.Category
		case "expiry_date":
			return a.ExpiryDate < b.ExpiryDate
		default:
			return a.Name < b.Name
		}
	})
}

func (uc *medicineUsecase) fetchMedicines(ctx context.Context) ([]models.Medicine, error) {
	ttl := time.Duration(uc.InternalConfig.Cache.ListTTLInSeconds) * time.Second
	payload, err := uc.QueryCache.Fetch(ctx, constvars.CacheGroupMedicines, "list", ttl, func(ctx context.Context) ([]byte, error) {
		medicines, err := uc.MedicinePlatformClient.ListMedicines(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(medicines)
	})
	if err != nil {
		return nil, err
	}

	var medicines []models.Medicine
	if err := json.Unmarshal(payload, &medicines); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return medicines, nil
}

func (uc *medicineUsecase) invalidate(ctx context.Context) {
	if err := uc.QueryCache.Invalidate(ctx, constvars.CacheGroupMedicines); err != nil {
		uc.Log.Warn("medicineUsecase cache invalidation failed",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
	}
}
