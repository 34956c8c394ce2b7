package commands_test

import (
	"context"
	"sync"
	"time"

	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing.
type MockOrderRepository struct {
	mock.Mock
}

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

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) GetOldestPending(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockWorkerRepository struct {
	mock.Mock
}

func (m *MockWorkerRepository) Add(ctx context.Context, aggregate *worker.Worker) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockWorkerRepository) Update(ctx context.Context, aggregate *worker.Worker) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockWorkerRepository) Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.Worker), args.Error(1)
}

func (m *MockWorkerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWorkerRepository) GetRoster(ctx context.Context) ([]*worker.Worker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*worker.Worker), args.Error(1)
}

type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) Add(ctx context.Context, aggregate *offer.Offer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOfferRepository) Update(ctx context.Context, aggregate *offer.Offer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Offer), args.Error(1)
}

func (m *MockOfferRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUoW satisfies every narrowed unit of work view.
type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) WorkerRepository() ports.WorkerRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkerRepository)
}

func (m *MockUoW) OfferRepository() ports.OfferRepository {
	args := m.Called()
	return args.Get(0).(ports.OfferRepository)
}

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct {
	mock.Mock
}

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockWorkerUoWFactory struct {
	mock.Mock
}

func (m *MockWorkerUoWFactory) Create() commands.WorkerUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkerUoW)
}

type MockOfferUoWFactory struct {
	mock.Mock
}

func (m *MockOfferUoWFactory) Create() commands.OfferUoW {
	args := m.Called()
	return args.Get(0).(commands.OfferUoW)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, destination kernel.PhoneNumber, message string) error {
	args := m.Called(ctx, destination, message)
	return args.Error(0)
}

// recordingNotifier is safe for concurrent use.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

type sentMessage struct {
	to   string
	text string
}

func (n *recordingNotifier) Notify(_ context.Context, destination kernel.PhoneNumber, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentMessage{to: destination.String(), text: message})
	return n.err
}

func (n *recordingNotifier) messages() []sentMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]sentMessage(nil), n.sent...)
}

// stepClock advances by one second on every reading.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time {
	return time.Time(c)
}

// memoryFactories adapts one in-memory store to every handler's factory type.
type memoryFactories struct {
	factory *memory.UnitOfWorkFactory
}

func newMemoryFactories(store *memory.Store) memoryFactories {
	return memoryFactories{factory: memory.NewUnitOfWorkFactory(store)}
}

func (f memoryFactories) uow() commands.UoWFactory {
	return uowFactoryFunc(func() commands.UoW { return f.factory.Create() })
}

func (f memoryFactories) orders() commands.OrderUoWFactory {
	return orderUoWFactoryFunc(func() commands.OrderUoW { return f.factory.Create() })
}

func (f memoryFactories) workers() commands.WorkerUoWFactory {
	return workerUoWFactoryFunc(func() commands.WorkerUoW { return f.factory.Create() })
}

func (f memoryFactories) offers() commands.OfferUoWFactory {
	return offerUoWFactoryFunc(func() commands.OfferUoW { return f.factory.Create() })
}

func (f memoryFactories) raw() ports.UnitOfWork {
	return f.factory.Create()
}

type uowFactoryFunc func() commands.UoW

func (fn uowFactoryFunc) Create() commands.UoW { return fn() }

type orderUoWFactoryFunc func() commands.OrderUoW

func (fn orderUoWFactoryFunc) Create() commands.OrderUoW { return fn() }

type workerUoWFactoryFunc func() commands.WorkerUoW

func (fn workerUoWFactoryFunc) Create() commands.WorkerUoW { return fn() }

type offerUoWFactoryFunc func() commands.OfferUoW

func (fn offerUoWFactoryFunc) Create() commands.OfferUoW { return fn() }
