package logisticrepo

import (
	"context"
	"errors"

	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/core/domain/model/logistic"
	"logistic/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLogisticRecordRepository implements LogisticRecordRepository using GORM.
type GormLogisticRecordRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLogisticRecordRepository creates a new GORM logistic record repository.
func NewGormLogisticRecordRepository(db *gorm.DB, tracker aggregateTracker) *GormLogisticRecordRepository {
	return &GormLogisticRecordRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves a logistic record by ID.
func (r *GormLogisticRecordRepository) Get(ctx context.Context, id kernel.UUID) (*logistic.Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("logistic record", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update saves an existing logistic record to the database.
func (r *GormLogisticRecordRepository) Update(ctx context.Context, aggregate *logistic.Record) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	// A struct update would skip zero-valued columns; the map writes every
	// mutable column, zero or not.
	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RecordDTO{}).Where("id = ?", dto.ID).Updates(updateColumns(dto))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func updateColumns(dto RecordDTO) map[string]any {
	return map[string]any{
		"order_id":                dto.OrderID,
		"provider_id":             dto.ProviderID,
		"carrier_id":              dto.CarrierID,
		"amount_paid_cents":       dto.AmountPaidCents,
		"origin_city":             dto.OriginCity,
		"origin_address":          dto.OriginAddress,
		"destination_city":        dto.DestinationCity,
		"destination_address":     dto.DestinationAddress,
		"estimated_shipping_date": dto.EstimatedShippingDate,
		"shipping_date":           dto.ShippingDate,
		"estimated_arrival_date":  dto.EstimatedArrivalDate,
		"arrival_date":            dto.ArrivalDate,
		"status_id":               dto.StatusID,
		"purchasing_order_id":     dto.PurchasingOrderID,
	}
}

// GetEligibleForPurchasing retrieves records ready to be converted into
// purchase orders: closed status, no purchasing order yet, provider set.
// Results are ordered by id and capped at limit.
func (r *GormLogisticRecordRepository) GetEligibleForPurchasing(
	ctx context.Context,
	statusIDs []kernel.UUID,
	limit int,
) ([]*logistic.Record, error) {
	if len(statusIDs) == 0 {
		return []*logistic.Record{}, nil
	}

	rawIDs := make([]uuid.UUID, 0, len(statusIDs))
	for _, id := range statusIDs {
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []RecordDTO
	err := r.db.WithContext(ctx).
		Where("status_id IN ?", rawIDs).
		Where("purchasing_order_id IS NULL").
		Where("provider_id IS NOT NULL").
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*logistic.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
