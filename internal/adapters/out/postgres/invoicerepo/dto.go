// Package invoicerepo provides data transfer objects and mapping functions
// for receivable invoice persistence.
package invoicerepo

import (
	"time"

	"logistic/internal/core/domain/model/invoice"

	"github.com/google/uuid"
)

// InvoiceDTO represents the database structure for persisting invoices.
type InvoiceDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PriceCents  int64
	DueDate     time.Time
	StatusID    uuid.UUID `gorm:"type:uuid;index"`
	Notified    bool
	Description string
	CategoryID  uuid.UUID `gorm:"type:uuid;index"`
}

// TableName overrides GORM's default naming convention to use "invoices".
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// OrderInvoiceDTO is the join row between an invoice and one billed order.
// RealizedPriceCents carries the purchase cost, distinct from the invoice price.
type OrderInvoiceDTO struct {
	InvoiceID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RealizedPriceCents int64
}

// TableName overrides GORM's default naming convention to use "order_invoices".
func (OrderInvoiceDTO) TableName() string {
	return "order_invoices"
}

func fromDomain(aggregate *invoice.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:          aggregate.ID().Bytes(),
		PriceCents:  aggregate.Price().Cents(),
		DueDate:     aggregate.DueDate(),
		StatusID:    aggregate.StatusID().Bytes(),
		Notified:    aggregate.Notified(),
		Description: aggregate.Description(),
		CategoryID:  aggregate.CategoryID().Bytes(),
	}
}

func linesFromDomain(aggregate *invoice.Invoice) []OrderInvoiceDTO {
	lines := aggregate.Lines()
	dtos := make([]OrderInvoiceDTO, 0, len(lines))
	for _, line := range lines {
		dtos = append(dtos, OrderInvoiceDTO{
			InvoiceID:          aggregate.ID().Bytes(),
			OrderID:            line.OrderID.Bytes(),
			RealizedPriceCents: line.RealizedPrice.Cents(),
		})
	}
	return dtos
}
