package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

const adminDigits = "201000000000"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func phone(t *testing.T, raw string) kernel.PhoneNumber {
	t.Helper()
	number, err := kernel.NewPhoneNumber(raw)
	require.NoError(t, err)
	return number
}

func testSettings(t *testing.T) commands.AssignmentSettings {
	t.Helper()
	return commands.AssignmentSettings{
		AdminNumber:    phone(t, adminDigits),
		MaxAttempts:    5,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}
}

func newAssigner(
	t *testing.T,
	factory commands.UoWFactory,
	notifier ports.Notifier,
	clock kernel.Clock,
	settings commands.AssignmentSettings,
) *commands.OrderAssigner {
	t.Helper()
	assigner, err := commands.NewOrderAssigner(
		factory, notifier, services.NewMessageComposer(time.UTC), clock, settings, discardLogger(),
	)
	require.NoError(t, err)
	return assigner
}

// seedWorker stores a worker with the given load. created orders the roster.
func seedWorker(
	t *testing.T,
	store *memory.Store,
	name, number string,
	status worker.Status,
	count int,
	created time.Duration,
) *worker.Worker {
	t.Helper()
	w, err := worker.RestoreWorker(kernel.NewUUID(), name, phone(t, number), status, count, nil, epoch.Add(created), 0)
	require.NoError(t, err)
	require.NoError(t, memory.NewUnitOfWork(store).WorkerRepository().Add(testContext(t), w))
	return w
}

func storedWorker(t *testing.T, store *memory.Store, id kernel.UUID) *worker.Worker {
	t.Helper()
	w, err := memory.NewUnitOfWork(store).WorkerRepository().Get(testContext(t), id)
	require.NoError(t, err)
	return w
}

func mustSubmit(t *testing.T, customerName string) commands.SubmitOrderCommand {
	t.Helper()
	cmd, err := commands.NewSubmitOrderCommand(customerName, "12 Nile St, Cairo", "+20 100 555 0101", "2x koshary")
	require.NoError(t, err)
	return cmd
}

// conflictingUoWFactory hands out in-memory units of work whose worker updates lose the
// version race the first `remaining` times.
type conflictingUoWFactory struct {
	factory   *memory.UnitOfWorkFactory
	remaining *atomic.Int32
	created   *atomic.Int32
}

func newConflictingUoWFactory(store *memory.Store, conflicts int32) conflictingUoWFactory {
	f := conflictingUoWFactory{
		factory:   memory.NewUnitOfWorkFactory(store),
		remaining: new(atomic.Int32),
		created:   new(atomic.Int32),
	}
	f.remaining.Store(conflicts)
	return f
}

func (f conflictingUoWFactory) Create() commands.UoW {
	f.created.Add(1)
	return conflictingUoW{UnitOfWork: f.factory.Create(), remaining: f.remaining}
}

type conflictingUoW struct {
	ports.UnitOfWork
	remaining *atomic.Int32
}

func (u conflictingUoW) WorkerRepository() ports.WorkerRepository {
	return conflictingWorkers{WorkerRepository: u.UnitOfWork.WorkerRepository(), remaining: u.remaining}
}

type conflictingWorkers struct {
	ports.WorkerRepository
	remaining *atomic.Int32
}

func (r conflictingWorkers) Update(ctx context.Context, aggregate *worker.Worker) error {
	if r.remaining.Add(-1) >= 0 {
		return errs.NewConcurrencyConflictError("worker", aggregate.ID(), aggregate.Version())
	}
	return r.WorkerRepository.Update(ctx, aggregate)
}
