package queries

import (
	"context"

	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/core/domain/model/status"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EligibleLogisticRecordsQueryResponse carries one eligible record together
// with the sale order data the transformation will consume.
type EligibleLogisticRecordsQueryResponse struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	Price       kernel.Money
	AmountPaid  kernel.Money
	StatusName  string
	CarrierName string
}

// EligibleLogisticRecordsQueryHandler reads eligible logistic records
// straight from the database. Eligibility mirrors the batch: the record's
// status resolves to a closed logistic status, it has a provider and no
// purchase order attached yet.
type EligibleLogisticRecordsQueryHandler struct {
	db *gorm.DB
}

// NewEligibleLogisticRecordsQueryHandler creates a handler for eligible
// record listings. Requires a GORM database connection for query execution.
func NewEligibleLogisticRecordsQueryHandler(db *gorm.DB) EligibleLogisticRecordsQueryHandler {
	return EligibleLogisticRecordsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by record ID for consistent
// output and capped at the query's limit.
func (h EligibleLogisticRecordsQueryHandler) Handle(
	ctx context.Context,
	query EligibleLogisticRecordsQuery,
) ([]EligibleLogisticRecordsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records := make([]EligibleLogisticRecordsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			lr.id,
			lr.order_id,
			lr.amount_paid_cents,
			o.price_cents,
			o.quote_carrier_name,
			s.name
		FROM logistic_records lr
		JOIN statuses s ON s.id = lr.status_id
		JOIN orders o ON o.id = lr.order_id
		WHERE s.real_status = ?
		  AND s.context = ?
		  AND lr.purchasing_order_id IS NULL
		  AND lr.provider_id IS NOT NULL
		ORDER BY lr.id
		LIMIT ?
	`, status.RealStatusClosed, status.ContextLogistic.String(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var recordResp EligibleLogisticRecordsQueryResponse
		var id, orderID uuid.UUID
		var amountPaidCents, priceCents int64

		err = rows.Scan(
			&id,
			&orderID,
			&amountPaidCents,
			&priceCents,
			&recordResp.CarrierName,
			&recordResp.StatusName,
		)
		if err != nil {
			return nil, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		recordResp.ID = recordID

		saleOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		recordResp.OrderID = saleOrderID

		amountPaid, moneyErr := kernel.NewMoneyFromCents(amountPaidCents)
		if moneyErr != nil {
			return nil, moneyErr
		}
		recordResp.AmountPaid = amountPaid

		price, moneyErr := kernel.NewMoneyFromCents(priceCents)
		if moneyErr != nil {
			return nil, moneyErr
		}
		recordResp.Price = price

		records = append(records, recordResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
