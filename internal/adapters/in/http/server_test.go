package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	server "logistic/internal/adapters/in/http"
	postgres_adapter "logistic/internal/adapters/out/postgres"
	"logistic/internal/adapters/out/postgres/logisticrepo"
	"logistic/internal/adapters/out/postgres/orderrepo"
	"logistic/internal/adapters/out/postgres/statusrepo"
	"logistic/internal/adapters/out/report"
	"logistic/internal/core/application/targets"
	"logistic/internal/core/application/usecases/commands"
	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/core/ports"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type noopInvoicer struct{}

func (noopInvoicer) CreatePurchaseInvoice(context.Context, ports.TenantSession, kernel.UUID) error {
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sqliteOpen(t *testing.T) postgres_adapter.OpenFunc {
	t.Helper()
	return func(dsn string) (*gorm.DB, error) {
		db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		if err := db.AutoMigrate(
			&orderrepo.OrderDTO{},
			&logisticrepo.RecordDTO{},
			&statusrepo.StatusDTO{},
		); err != nil {
			return nil, err
		}
		return db, nil
	}
}

func newTestServer(t *testing.T) (*server.Server, *echo.Echo, ports.TenantRegistry) {
	t.Helper()

	registry := postgres_adapter.NewGormTenantRegistry([]postgres_adapter.TenantConfig{
		{Name: "acme.example", DSN: fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())},
	}, sqliteOpen(t))

	batchHandler := commands.NewRunNotificationBatchCommandHandler(
		targets.NewRegistry(noopInvoicer{}),
		registry,
		targets.NewDispatcher(report.NewWriterSink(io.Discard), discardLogger()),
		report.NewWriterSink(io.Discard),
		discardLogger(),
	)

	srv := server.NewServer(batchHandler, registry)
	e := echo.New()
	srv.RegisterRoutes(e)
	return srv, e, registry
}

func doRequest(e *echo.Echo, method, target string, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetHealth(t *testing.T) {
	_, e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGetEligibleRecords_MissingTenant(t *testing.T) {
	_, e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/v1/logistic-records/eligible", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetEligibleRecords_UnknownTenant(t *testing.T) {
	_, e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/v1/logistic-records/eligible?tenant=nowhere.example", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetEligibleRecords_InvalidLimit(t *testing.T) {
	_, e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/v1/logistic-records/eligible?tenant=acme.example&limit=abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetEligibleRecords_ListsSeededRecord(t *testing.T) {
	_, e, registry := newTestServer(t)

	session, err := registry.Activate(t.Context(), ports.Tenant{Name: "acme.example"})
	require.NoError(t, err)

	statusID := uuid.New()
	require.NoError(t, session.ReadDB.Create(&statusrepo.StatusDTO{
		ID: statusID, Name: "finished", RealStatus: "closed", Context: "logistic",
	}).Error)

	saleID := uuid.New()
	require.NoError(t, session.ReadDB.Create(&orderrepo.OrderDTO{
		ID: saleID, Type: 1, PriceCents: 10000, QuoteCarrierName: "Speedy Freight",
	}).Error)

	provider := uuid.New()
	recordID := uuid.New()
	require.NoError(t, session.ReadDB.Create(&logisticrepo.RecordDTO{
		ID: recordID, OrderID: saleID, ProviderID: &provider,
		AmountPaidCents: 8000, OriginCity: "Lisbon", DestinationCity: "Porto",
		StatusID: statusID,
	}).Error)

	rec := doRequest(e, http.MethodGet, "/api/v1/logistic-records/eligible?tenant=acme.example", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var records []server.EligibleRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, recordID.String(), records[0].ID)
	assert.Equal(t, saleID.String(), records[0].OrderID)
	assert.Equal(t, int64(10000), records[0].PriceCents)
	assert.Equal(t, int64(8000), records[0].PaidCents)
	assert.Equal(t, "Speedy Freight", records[0].CarrierName)
}

func TestRunNotifications_UnknownTarget(t *testing.T) {
	_, e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/v1/notifications/run",
		`{"target":"no_such_target","limit":5}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRunNotifications_TriggersBatch(t *testing.T) {
	_, e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/v1/notifications/run",
		`{"target":"create_logistic_invoice","limit":5}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestRunNotifications_InvalidBody(t *testing.T) {
	_, e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/v1/notifications/run", `{"target":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
