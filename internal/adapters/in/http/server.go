package http

import (
	"context"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	OrdersReader interface {
		Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]queries.GetAllOrdersQueryResponse, error)
	}

	WorkersReader interface {
		Handle(ctx context.Context, query queries.GetAllWorkersQuery) ([]queries.GetAllWorkersQueryResponse, error)
	}

	OffersReader interface {
		Handle(ctx context.Context, query queries.GetOffersQuery) ([]queries.GetOffersQueryResponse, error)
	}
)

// CommandHandlers groups the write side used by the API.
type CommandHandlers struct {
	SubmitOrder     commands.SubmitOrderCommandHandler
	RetryAssignment commands.RetryOrderAssignmentCommandHandler
	CompleteOrder   commands.CompleteOrderCommandHandler
	DeleteOrder     commands.DeleteOrderCommandHandler
	AddWorker       commands.AddWorkerCommandHandler
	UpdateWorker    commands.UpdateWorkerCommandHandler
	SetWorkerStatus commands.SetWorkerStatusCommandHandler
	DeleteWorker    commands.DeleteWorkerCommandHandler
	CreateOffer     commands.CreateOfferCommandHandler
	UpdateOffer     commands.UpdateOfferCommandHandler
	SetOfferStatus  commands.SetOfferStatusCommandHandler
	DeleteOffer     commands.DeleteOfferCommandHandler
}

// QueryHandlers groups the read side used by the API.
type QueryHandlers struct {
	Orders  OrdersReader
	Workers WorkersReader
	Offers  OffersReader
}

// Server implements ServerInterface on top of the application handlers.
// Errors are returned to echo and rendered by NewErrorHandler.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	gate     *AdminGate
}

func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers, gate *AdminGate) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		gate:     gate,
	}
}

// SubmitOrder handles POST /api/v1/orders.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var body NewOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewSubmitOrderCommand(body.CustomerName, body.Address, body.Phone, body.OrderDetails)
	if err != nil {
		return err
	}

	result, err := s.commands.SubmitOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toAssignmentResult(result))
}

// RetryOrderAssignment handles POST /api/v1/orders/{orderId}/assignment.
func (s *Server) RetryOrderAssignment(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := fromAPIUUID(orderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRetryOrderAssignmentCommand(id)
	if err != nil {
		return err
	}

	result, err := s.commands.RetryAssignment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toAssignmentResult(result))
}

// GetVisibleOffers handles GET /api/v1/offers.
func (s *Server) GetVisibleOffers(ctx echo.Context) error {
	return s.listOffers(ctx, true)
}

// AdminLogin handles POST /api/v1/admin/login.
func (s *Server) AdminLogin(ctx echo.Context) error {
	var body LoginRequest
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	session, err := s.gate.Login(body.Password)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, SessionResponse{Token: session.Token, ExpiresAt: session.ExpiresAt})
}

// GetOrders handles GET /api/v1/admin/orders.
func (s *Server) GetOrders(ctx echo.Context, params GetOrdersParams) error {
	var status string
	if params.Status != nil {
		status = *params.Status
	}

	query, err := queries.NewGetAllOrdersQuery(status)
	if err != nil {
		return err
	}

	orders, err := s.queries.Orders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CompleteOrder handles POST /api/v1/admin/orders/{orderId}/complete.
func (s *Server) CompleteOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := fromAPIUUID(orderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCompleteOrderCommand(id)
	if err != nil {
		return err
	}

	if err = s.commands.CompleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/admin/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := fromAPIUUID(orderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return err
	}

	if err = s.commands.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetWorkers handles GET /api/v1/admin/workers.
func (s *Server) GetWorkers(ctx echo.Context) error {
	workers, err := s.queries.Workers.Handle(ctx.Request().Context(), queries.NewGetAllWorkersQuery())
	if err != nil {
		return err
	}

	response := make([]WorkerResponse, len(workers))
	for i, w := range workers {
		response[i] = toWorkerResponse(w)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddWorker handles POST /api/v1/admin/workers.
func (s *Server) AddWorker(ctx echo.Context) error {
	var body WorkerInput
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewAddWorkerCommand(body.Name, body.WhatsAppNumber)
	if err != nil {
		return err
	}

	if err = s.commands.AddWorker.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: toAPIUUID(cmd.WorkerID())})
}

// UpdateWorker handles PUT /api/v1/admin/workers/{workerId}.
func (s *Server) UpdateWorker(ctx echo.Context, workerID openapi_types.UUID) error {
	id, err := fromAPIUUID(workerID)
	if err != nil {
		return err
	}

	var body WorkerInput
	if err = ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateWorkerCommand(id, body.Name, body.WhatsAppNumber)
	if err != nil {
		return err
	}

	if err = s.commands.UpdateWorker.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetWorkerStatus handles PUT /api/v1/admin/workers/{workerId}/status.
func (s *Server) SetWorkerStatus(ctx echo.Context, workerID openapi_types.UUID) error {
	id, err := fromAPIUUID(workerID)
	if err != nil {
		return err
	}

	var body WorkerStatusInput
	if err = ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewSetWorkerStatusCommand(id, body.Status)
	if err != nil {
		return err
	}

	if err = s.commands.SetWorkerStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteWorker handles DELETE /api/v1/admin/workers/{workerId}.
func (s *Server) DeleteWorker(ctx echo.Context, workerID openapi_types.UUID) error {
	id, err := fromAPIUUID(workerID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteWorkerCommand(id)
	if err != nil {
		return err
	}

	if err = s.commands.DeleteWorker.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOffers handles GET /api/v1/admin/offers.
func (s *Server) GetOffers(ctx echo.Context) error {
	return s.listOffers(ctx, false)
}

// CreateOffer handles POST /api/v1/admin/offers.
func (s *Server) CreateOffer(ctx echo.Context) error {
	var body OfferInput
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd := commands.NewCreateOfferCommand(body.details())
	if err := s.commands.CreateOffer.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: toAPIUUID(cmd.OfferID())})
}

// UpdateOffer handles PUT /api/v1/admin/offers/{offerId}.
func (s *Server) UpdateOffer(ctx echo.Context, offerID openapi_types.UUID) error {
	id, err := fromAPIUUID(offerID)
	if err != nil {
		return err
	}

	var body OfferInput
	if err = ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOfferCommand(id, body.details())
	if err != nil {
		return err
	}

	if err = s.commands.UpdateOffer.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetOfferStatus handles PUT /api/v1/admin/offers/{offerId}/status.
func (s *Server) SetOfferStatus(ctx echo.Context, offerID openapi_types.UUID) error {
	id, err := fromAPIUUID(offerID)
	if err != nil {
		return err
	}

	var body OfferStatusInput
	if err = ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewSetOfferStatusCommand(id, body.IsActive)
	if err != nil {
		return err
	}

	if err = s.commands.SetOfferStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOffer handles DELETE /api/v1/admin/offers/{offerId}.
func (s *Server) DeleteOffer(ctx echo.Context, offerID openapi_types.UUID) error {
	id, err := fromAPIUUID(offerID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOfferCommand(id)
	if err != nil {
		return err
	}

	if err = s.commands.DeleteOffer.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) listOffers(ctx echo.Context, visibleOnly bool) error {
	offers, err := s.queries.Offers.Handle(ctx.Request().Context(), queries.NewGetOffersQuery(visibleOnly))
	if err != nil {
		return err
	}

	response := make([]OfferResponse, len(offers))
	for i, o := range offers {
		response[i] = toOfferResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}
