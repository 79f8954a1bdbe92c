package commands_test

import (
	"context"
	"testing"
	"time"

	"logistic/internal/core/domain/model/category"
	"logistic/internal/core/domain/model/invoice"
	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/core/domain/model/logistic"
	"logistic/internal/core/domain/model/order"
	"logistic/internal/core/domain/model/people"
	"logistic/internal/core/domain/model/status"
	"logistic/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockLogisticRecordRepository struct{ mock.Mock }

func (m *MockLogisticRecordRepository) Get(ctx context.Context, id kernel.UUID) (*logistic.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logistic.Record), args.Error(1)
}
func (m *MockLogisticRecordRepository) Update(ctx context.Context, aggregate *logistic.Record) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockLogisticRecordRepository) GetEligibleForPurchasing(ctx context.Context, statusIDs []kernel.UUID, limit int) ([]*logistic.Record, error) {
	args := m.Called(ctx, statusIDs, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*logistic.Record), args.Error(1)
}

type MockStatusRepository struct{ mock.Mock }

func (m *MockStatusRepository) GetByRealStatus(ctx context.Context, realStatus string, scope status.Context) ([]*status.Status, error) {
	args := m.Called(ctx, realStatus, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*status.Status), args.Error(1)
}
func (m *MockStatusRepository) GetByName(ctx context.Context, name string, scope status.Context) (*status.Status, error) {
	args := m.Called(ctx, name, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*status.Status), args.Error(1)
}

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) GetByName(ctx context.Context, scope, name string, companyIDs []kernel.UUID) (*category.Category, error) {
	args := m.Called(ctx, scope, name, companyIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, aggregate *invoice.Invoice) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockInvoiceRepository) AddLines(ctx context.Context, aggregate *invoice.Invoice) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockPeopleRepository struct{ mock.Mock }

func (m *MockPeopleRepository) Get(ctx context.Context, id kernel.UUID) (*people.People, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*people.People), args.Error(1)
}

type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUnitOfWork) LogisticRecordRepository() ports.LogisticRecordRepository {
	args := m.Called()
	return args.Get(0).(ports.LogisticRecordRepository)
}
func (m *MockUnitOfWork) StatusRepository() ports.StatusRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusRepository)
}
func (m *MockUnitOfWork) CategoryRepository() ports.CategoryRepository {
	args := m.Called()
	return args.Get(0).(ports.CategoryRepository)
}
func (m *MockUnitOfWork) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}
func (m *MockUnitOfWork) PeopleRepository() ports.PeopleRepository {
	args := m.Called()
	return args.Get(0).(ports.PeopleRepository)
}

type MockUnitOfWorkFactory struct{ mock.Mock }

func (m *MockUnitOfWorkFactory) Create() ports.UnitOfWork {
	args := m.Called()
	return args.Get(0).(ports.UnitOfWork)
}

type MockTenantRegistry struct{ mock.Mock }

func (m *MockTenantRegistry) Tenants(ctx context.Context) ([]ports.Tenant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.Tenant), args.Error(1)
}
func (m *MockTenantRegistry) Activate(ctx context.Context, tenant ports.Tenant) (ports.TenantSession, error) {
	args := m.Called(ctx, tenant)
	return args.Get(0).(ports.TenantSession), args.Error(1)
}

type MockPaymentTermsResolver struct{ mock.Mock }

func (m *MockPaymentTermsResolver) DueDate(ctx context.Context, session ports.TenantSession, clientID *kernel.UUID) (time.Time, error) {
	args := m.Called(ctx, session, clientID)
	return args.Get(0).(time.Time), args.Error(1)
}

type MockPurchaseInvoicer struct{ mock.Mock }

func (m *MockPurchaseInvoicer) CreatePurchaseInvoice(ctx context.Context, session ports.TenantSession, recordID kernel.UUID) error {
	args := m.Called(ctx, session, recordID)
	return args.Error(0)
}

type recordingSink struct {
	lines []string
}

func (s *recordingSink) WriteLines(lines ...string) error {
	s.lines = append(s.lines, lines...)
	return nil
}

func sessionWith(uow *MockUnitOfWork) ports.TenantSession {
	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(uow)
	return ports.TenantSession{
		Tenant:     ports.Tenant{Name: "acme.example"},
		UoWFactory: factory,
	}
}

func mustMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromCents(cents)
	require.NoError(t, err)
	return m
}

// transformationFixture is a closed shipment ready to be invoiced: a sale
// priced at 100.00 with a logistic record that cost 80.00.
type transformationFixture struct {
	record     *logistic.Record
	source     *order.Order
	waiting    *status.Status
	expense    *category.Category
	clientID   kernel.UUID
	providerID kernel.UUID
	dueDate    time.Time
}

func newTransformationFixture(t *testing.T) transformationFixture {
	t.Helper()

	clientID := kernel.NewUUID()
	providerID := kernel.NewUUID()
	logisticProviderID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	source, err := order.RestoreOrder(
		orderID, order.Sale,
		&clientID, &providerID, &clientID, nil,
		mustMoney(t, 10000), nil, "Speedy Freight",
	)
	require.NoError(t, err)

	record, err := logistic.NewRecord(
		kernel.NewUUID(), orderID,
		&logisticProviderID, nil,
		mustMoney(t, 8000),
		logistic.Waypoint{City: "Lisbon"}, logistic.Waypoint{City: "Porto"},
		logistic.Schedule{},
		kernel.NewUUID(),
	)
	require.NoError(t, err)

	waiting, err := status.NewStatus(kernel.NewUUID(), status.WaitingPayment, status.RealStatusOpen, status.ContextInvoice)
	require.NoError(t, err)

	expense, err := category.NewCategory(kernel.NewUUID(), "Frete", category.ContextExpense, []kernel.UUID{providerID})
	require.NoError(t, err)

	return transformationFixture{
		record:     record,
		source:     source,
		waiting:    waiting,
		expense:    expense,
		clientID:   clientID,
		providerID: providerID,
		dueDate:    time.Date(2026, time.September, 29, 0, 0, 0, 0, time.UTC),
	}
}
