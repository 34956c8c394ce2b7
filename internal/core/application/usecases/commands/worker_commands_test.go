package commands_test

import (
	"testing"

	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAddWorkerCommand(t *testing.T) {
	t.Run("normalizes input", func(t *testing.T) {
		cmd, err := commands.NewAddWorkerCommand("  Omar  ", "+20 (100) 123-4567")

		require.NoError(t, err)
		assert.Equal(t, "Omar", cmd.Name())
		assert.Equal(t, "201001234567", cmd.WhatsAppNumber().String())
		require.NoError(t, cmd.WorkerID().Validate())
	})

	t.Run("reports every bad field", func(t *testing.T) {
		_, err := commands.NewAddWorkerCommand(" ", "12ab")

		var validationErr *errs.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "name")
		assert.Len(t, validationErr.Fields, 2)
	})
}

func TestAddWorkerCommandHandler_Handle(t *testing.T) {
	// Arrange
	ctx := testContext(t)
	cmd, err := commands.NewAddWorkerCommand("Omar", "201001234567")
	require.NoError(t, err)

	repo := new(MockWorkerRepository)
	uow := new(MockUoW)
	factory := new(MockWorkerUoWFactory)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkerRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(w *worker.Worker) bool {
			return w.ID().IsEqual(cmd.WorkerID()) &&
				w.IsActive() &&
				w.OrdersCount() == 0 &&
				w.LastOrderTime() == nil &&
				w.CreatedAt().Equal(epoch)
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddWorkerCommandHandler(factory, fixedClock(epoch))

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestWorkerAdministration(t *testing.T) {
	ctx := testContext(t)
	store := memory.NewStore()
	factories := newMemoryFactories(store)

	add, err := commands.NewAddWorkerCommand("Omar", "201001234567")
	require.NoError(t, err)
	require.NoError(t, commands.NewAddWorkerCommandHandler(factories.workers(), fixedClock(epoch)).Handle(ctx, add))

	t.Run("edit keeps the load", func(t *testing.T) {
		loaded := storedWorker(t, store, add.WorkerID())
		require.NoError(t, loaded.TakeOrder(epoch))
		require.NoError(t, memory.NewUnitOfWork(store).WorkerRepository().Update(ctx, loaded))

		cmd, err := commands.NewUpdateWorkerCommand(add.WorkerID(), "Omar Said", "201009999999")
		require.NoError(t, err)

		require.NoError(t, commands.NewUpdateWorkerCommandHandler(factories.workers()).Handle(ctx, cmd))

		edited := storedWorker(t, store, add.WorkerID())
		assert.Equal(t, "Omar Said", edited.Name())
		assert.Equal(t, "201009999999", edited.WhatsAppNumber().String())
		assert.Equal(t, 1, edited.OrdersCount())
	})

	t.Run("deactivate", func(t *testing.T) {
		cmd, err := commands.NewSetWorkerStatusCommand(add.WorkerID(), "inactive")
		require.NoError(t, err)

		require.NoError(t, commands.NewSetWorkerStatusCommandHandler(factories.workers()).Handle(ctx, cmd))
		require.NoError(t, commands.NewSetWorkerStatusCommandHandler(factories.workers()).Handle(ctx, cmd))

		stored := storedWorker(t, store, add.WorkerID())
		assert.False(t, stored.IsActive())
		assert.Equal(t, 1, stored.OrdersCount())
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := commands.NewSetWorkerStatusCommand(add.WorkerID(), "on-leave")

		var validationErr *errs.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"status"}, validationErr.Fields)
	})

	t.Run("delete", func(t *testing.T) {
		cmd, err := commands.NewDeleteWorkerCommand(add.WorkerID())
		require.NoError(t, err)

		require.NoError(t, commands.NewDeleteWorkerCommandHandler(factories.workers()).Handle(ctx, cmd))

		_, err = factories.raw().WorkerRepository().Get(ctx, add.WorkerID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		err = commands.NewDeleteWorkerCommandHandler(factories.workers()).Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("edit unknown worker", func(t *testing.T) {
		cmd, err := commands.NewUpdateWorkerCommand(kernel.NewUUID(), "Nobody", "201001234567")
		require.NoError(t, err)

		err = commands.NewUpdateWorkerCommandHandler(factories.workers()).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestUpdateWorkerCommandHandler_Handle_LosesToConcurrentAssignment(t *testing.T) {
	// Arrange
	ctx := testContext(t)
	w := storedFixtureWorker(t)
	cmd, err := commands.NewUpdateWorkerCommand(w.ID(), "Omar Said", "201001234567")
	require.NoError(t, err)
	conflict := errs.NewConcurrencyConflictError("worker", w.ID(), w.Version())

	repo := new(MockWorkerRepository)
	uow := new(MockUoW)
	factory := new(MockWorkerUoWFactory)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkerRepository").Return(repo).Once(),
		repo.On("Get", ctx, w.ID()).Return(w, nil).Once(),
		repo.On("Update", ctx, w).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory.On("Create").Return(uow).Once()

	// Act
	err = commands.NewUpdateWorkerCommandHandler(factory).Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrConcurrencyConflict)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func storedFixtureWorker(t *testing.T) *worker.Worker {
	t.Helper()
	w, err := worker.RestoreWorker(kernel.NewUUID(), "Omar", phone(t, "201001234567"), worker.Active, 3, nil, epoch, 7)
	require.NoError(t, err)
	return w
}
