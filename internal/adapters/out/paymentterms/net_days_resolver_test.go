package paymentterms_test

import (
	"context"
	"testing"
	"time"

	"logistic/internal/adapters/out/paymentterms"
	"logistic/internal/core/domain/model/kernel"
	"logistic/internal/core/domain/model/people"
	"logistic/internal/core/ports"
	"logistic/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPeopleRepository struct {
	parties map[kernel.UUID]*people.People
}

func (s stubPeopleRepository) Get(_ context.Context, id kernel.UUID) (*people.People, error) {
	if party, ok := s.parties[id]; ok {
		return party, nil
	}
	return nil, errs.NewObjectNotFoundError("people", id.String())
}

type stubUnitOfWork struct {
	people stubPeopleRepository
}

func (stubUnitOfWork) Begin(context.Context) error            { return nil }
func (stubUnitOfWork) Commit(context.Context) error           { return nil }
func (stubUnitOfWork) Rollback(context.Context) error         { return nil }
func (stubUnitOfWork) OrderRepository() ports.OrderRepository { return nil }
func (stubUnitOfWork) LogisticRecordRepository() ports.LogisticRecordRepository {
	return nil
}
func (stubUnitOfWork) StatusRepository() ports.StatusRepository     { return nil }
func (stubUnitOfWork) CategoryRepository() ports.CategoryRepository { return nil }
func (stubUnitOfWork) InvoiceRepository() ports.InvoiceRepository   { return nil }
func (u stubUnitOfWork) PeopleRepository() ports.PeopleRepository   { return u.people }

type stubUnitOfWorkFactory struct {
	uow stubUnitOfWork
}

func (f stubUnitOfWorkFactory) Create() ports.UnitOfWork { return f.uow }

func sessionWithParties(parties map[kernel.UUID]*people.People) ports.TenantSession {
	return ports.TenantSession{
		Tenant: ports.Tenant{Name: "acme.example"},
		UoWFactory: stubUnitOfWorkFactory{
			uow: stubUnitOfWork{people: stubPeopleRepository{parties: parties}},
		},
	}
}

func expectedDueDate(days int) time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, days)
}

func TestDueDate_UsesClientPaymentTerm(t *testing.T) {
	clientID := kernel.NewUUID()
	client, err := people.NewPeople(clientID, "Acme Corp", 45)
	require.NoError(t, err)

	resolver := paymentterms.NewNetDaysResolver(30)
	session := sessionWithParties(map[kernel.UUID]*people.People{clientID: client})

	dueDate, err := resolver.DueDate(t.Context(), session, &clientID)

	require.NoError(t, err)
	assert.Equal(t, expectedDueDate(45), dueDate)
}

func TestDueDate_FallsBackToDefaultWhenClientHasNoTerm(t *testing.T) {
	clientID := kernel.NewUUID()
	client, err := people.NewPeople(clientID, "Acme Corp", 0)
	require.NoError(t, err)

	resolver := paymentterms.NewNetDaysResolver(30)
	session := sessionWithParties(map[kernel.UUID]*people.People{clientID: client})

	dueDate, err := resolver.DueDate(t.Context(), session, &clientID)

	require.NoError(t, err)
	assert.Equal(t, expectedDueDate(30), dueDate)
}

func TestDueDate_FallsBackToDefaultForUnknownClient(t *testing.T) {
	clientID := kernel.NewUUID()
	resolver := paymentterms.NewNetDaysResolver(15)
	session := sessionWithParties(nil)

	dueDate, err := resolver.DueDate(t.Context(), session, &clientID)

	require.NoError(t, err)
	assert.Equal(t, expectedDueDate(15), dueDate)
}

func TestDueDate_FallsBackToDefaultForMissingClient(t *testing.T) {
	resolver := paymentterms.NewNetDaysResolver(30)
	session := sessionWithParties(nil)

	dueDate, err := resolver.DueDate(t.Context(), session, nil)

	require.NoError(t, err)
	assert.Equal(t, expectedDueDate(30), dueDate)
}

func TestNewNetDaysResolver_NonPositiveDefaultFallsBack(t *testing.T) {
	resolver := paymentterms.NewNetDaysResolver(0)
	session := sessionWithParties(nil)

	dueDate, err := resolver.DueDate(t.Context(), session, nil)

	require.NoError(t, err)
	assert.Equal(t, expectedDueDate(paymentterms.DefaultNetDays), dueDate)
}
