package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const adminPassword = "open sesame"

type testApp struct {
	t        *testing.T
	echo     *echo.Echo
	store    *memory.Store
	notifier *recordingNotifier
	orders   *fakeOrdersReader
	workers  *fakeWorkersReader
	offers   *fakeOffersReader
}

type appOption func(*appOptions)

type appOptions struct {
	assignUoWs func(commands.UoWFactory) commands.UoWFactory
}

// withAssignmentStore lets a test replace the store seen by the assignment phase only.
func withAssignmentStore(wrap func(commands.UoWFactory) commands.UoWFactory) appOption {
	return func(o *appOptions) { o.assignUoWs = wrap }
}

func newTestApp(t *testing.T, opts ...appOption) *testApp {
	t.Helper()

	options := appOptions{assignUoWs: func(f commands.UoWFactory) commands.UoWFactory { return f }}
	for _, opt := range opts {
		opt(&options)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := kernel.SystemClock{}
	store := memory.NewStore()
	factory := memory.NewUnitOfWorkFactory(store)

	uows := uowFactoryFunc(func() commands.UoW { return factory.Create() })
	orderUoWs := orderUoWFactoryFunc(func() commands.OrderUoW { return factory.Create() })
	workerUoWs := workerUoWFactoryFunc(func() commands.WorkerUoW { return factory.Create() })
	offerUoWs := offerUoWFactoryFunc(func() commands.OfferUoW { return factory.Create() })

	admin, err := kernel.NewPhoneNumber("201000000000")
	require.NoError(t, err)

	notifier := &recordingNotifier{}
	assigner, err := commands.NewOrderAssigner(
		options.assignUoWs(uows),
		notifier,
		services.NewMessageComposer(time.UTC),
		clock,
		commands.AssignmentSettings{
			AdminNumber:    admin,
			MaxAttempts:    3,
			InitialBackoff: time.Millisecond,
			MaxBackoff:     2 * time.Millisecond,
		},
		logger,
	)
	require.NoError(t, err)

	gate, err := httpadapter.NewAdminGate(adminPassword, "test-secret", time.Hour, clock)
	require.NoError(t, err)

	app := &testApp{
		t:        t,
		store:    store,
		notifier: notifier,
		orders:   &fakeOrdersReader{},
		workers:  &fakeWorkersReader{},
		offers:   &fakeOffersReader{},
	}

	server := httpadapter.NewServer(
		httpadapter.CommandHandlers{
			SubmitOrder:     commands.NewSubmitOrderCommandHandler(orderUoWs, assigner, clock),
			RetryAssignment: commands.NewRetryOrderAssignmentCommandHandler(assigner),
			CompleteOrder:   commands.NewCompleteOrderCommandHandler(orderUoWs),
			DeleteOrder:     commands.NewDeleteOrderCommandHandler(orderUoWs),
			AddWorker:       commands.NewAddWorkerCommandHandler(workerUoWs, clock),
			UpdateWorker:    commands.NewUpdateWorkerCommandHandler(workerUoWs),
			SetWorkerStatus: commands.NewSetWorkerStatusCommandHandler(workerUoWs),
			DeleteWorker:    commands.NewDeleteWorkerCommandHandler(workerUoWs),
			CreateOffer:     commands.NewCreateOfferCommandHandler(offerUoWs, clock),
			UpdateOffer:     commands.NewUpdateOfferCommandHandler(offerUoWs),
			SetOfferStatus:  commands.NewSetOfferStatusCommandHandler(offerUoWs),
			DeleteOffer:     commands.NewDeleteOfferCommandHandler(offerUoWs),
		},
		httpadapter.QueryHandlers{
			Orders:  app.orders,
			Workers: app.workers,
			Offers:  app.offers,
		},
		gate,
	)

	app.echo, err = httpadapter.NewRouter(server, logger)
	require.NoError(t, err)

	return app
}

func (a *testApp) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			data, err := json.Marshal(body)
			require.NoError(a.t, err)
			raw = string(data)
		}
		reader = bytes.NewBufferString(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) login() string {
	a.t.Helper()

	rec := a.do(http.MethodPost, "/api/v1/admin/login", map[string]string{"password": adminPassword}, "")
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())

	var session httpadapter.SessionResponse
	decode(a.t, rec, &session)
	return session.Token
}

func (a *testApp) addWorker(token, name, number string) string {
	a.t.Helper()

	rec := a.do(http.MethodPost, "/api/v1/admin/workers",
		httpadapter.WorkerInput{Name: name, WhatsAppNumber: number}, token)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())

	var created httpadapter.CreatedResponse
	decode(a.t, rec, &created)
	return created.ID.String()
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}

type uowFactoryFunc func() commands.UoW

func (fn uowFactoryFunc) Create() commands.UoW { return fn() }

type orderUoWFactoryFunc func() commands.OrderUoW

func (fn orderUoWFactoryFunc) Create() commands.OrderUoW { return fn() }

type workerUoWFactoryFunc func() commands.WorkerUoW

func (fn workerUoWFactoryFunc) Create() commands.WorkerUoW { return fn() }

type offerUoWFactoryFunc func() commands.OfferUoW

func (fn offerUoWFactoryFunc) Create() commands.OfferUoW { return fn() }

// unavailableUoW fails every transaction it is asked to open.
type unavailableUoW struct {
	commands.UoW
}

var errStoreDown = errors.New("connection refused")

func (unavailableUoW) Begin(context.Context) error { return errStoreDown }

type sentMessage struct {
	to   string
	text string
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentMessage
}

func (n *recordingNotifier) Notify(_ context.Context, destination kernel.PhoneNumber, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentMessage{to: destination.String(), text: message})
	return nil
}

func (n *recordingNotifier) messages() []sentMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]sentMessage(nil), n.sent...)
}

type fakeOrdersReader struct {
	got    []queries.GetAllOrdersQuery
	result []queries.GetAllOrdersQueryResponse
	err    error
}

func (f *fakeOrdersReader) Handle(
	_ context.Context,
	query queries.GetAllOrdersQuery,
) ([]queries.GetAllOrdersQueryResponse, error) {
	f.got = append(f.got, query)
	return f.result, f.err
}

type fakeWorkersReader struct {
	result []queries.GetAllWorkersQueryResponse
	err    error
}

func (f *fakeWorkersReader) Handle(
	context.Context,
	queries.GetAllWorkersQuery,
) ([]queries.GetAllWorkersQueryResponse, error) {
	return f.result, f.err
}

type fakeOffersReader struct {
	got    []queries.GetOffersQuery
	result []queries.GetOffersQueryResponse
	err    error
}

func (f *fakeOffersReader) Handle(
	_ context.Context,
	query queries.GetOffersQuery,
) ([]queries.GetOffersQueryResponse, error) {
	f.got = append(f.got, query)
	return f.result, f.err
}
