// Package http exposes the notification workflow over a small REST API:
// a health probe, a listing of records waiting for purchasing and a
// trigger for an on-demand batch run.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"logistic/internal/core/application/targets"
	"logistic/internal/core/application/usecases/commands"
	"logistic/internal/core/application/usecases/queries"
	"logistic/internal/core/ports"
	"logistic/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// EligibleRecord is the JSON shape of one record awaiting purchasing.
type EligibleRecord struct {
	ID          string `json:"id"`
	OrderID     string `json:"orderId"`
	PriceCents  int64  `json:"priceCents"`
	PaidCents   int64  `json:"paidCents"`
	StatusName  string `json:"statusName"`
	CarrierName string `json:"carrierName"`
}

// RunRequest triggers a batch run for one notification target.
type RunRequest struct {
	Target string `json:"target"`
	Limit  int    `json:"limit"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	batchHandler commands.RunNotificationBatchCommandHandler
	tenants      ports.TenantRegistry
}

// NewServer creates a new HTTP server with the required dependencies.
func NewServer(
	batchHandler commands.RunNotificationBatchCommandHandler,
	tenants ports.TenantRegistry,
) *Server {
	return &Server{
		batchHandler: batchHandler,
		tenants:      tenants,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.GET("/api/v1/logistic-records/eligible", s.GetEligibleRecords)
	e.POST("/api/v1/notifications/run", s.RunNotifications)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetEligibleRecords handles GET /api/v1/logistic-records/eligible.
// The tenant query parameter selects the store to read; limit is optional.
func (s *Server) GetEligibleRecords(ctx echo.Context) error {
	tenantName := ctx.QueryParam("tenant")
	if tenantName == "" {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Missing tenant parameter",
		})
	}

	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid limit parameter",
			})
		}
		limit = parsed
	}

	session, err := s.tenants.Activate(ctx.Request().Context(), ports.Tenant{Name: tenantName})
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Unknown tenant: " + tenantName,
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to activate tenant",
		})
	}

	query, err := queries.NewEligibleLogisticRecordsQuery(limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid limit: " + err.Error(),
		})
	}

	handler := queries.NewEligibleLogisticRecordsQueryHandler(session.ReadDB)
	records, err := handler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to list eligible records",
		})
	}

	response := make([]EligibleRecord, len(records))
	for i, record := range records {
		response[i] = EligibleRecord{
			ID:          record.ID.String(),
			OrderID:     record.OrderID.String(),
			PriceCents:  record.Price.Cents(),
			PaidCents:   record.AmountPaid.Cents(),
			StatusName:  record.StatusName,
			CarrierName: record.CarrierName,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RunNotifications handles POST /api/v1/notifications/run.
// Triggers a synchronous batch run for the requested target.
func (s *Server) RunNotifications(ctx echo.Context) error {
	var request RunRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewRunNotificationBatchCommand(request.Target, request.Limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid run request: " + err.Error(),
		})
	}

	if handleErr := s.batchHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, targets.ErrTargetNotDefined) {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Unknown notification target: " + request.Target,
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Batch run failed",
		})
	}

	return ctx.NoContent(http.StatusAccepted)
}
