package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface lists one method per operation of api/openapi.yml.
type ServerInterface interface {
	SubmitOrder(ctx echo.Context) error
	RetryOrderAssignment(ctx echo.Context, orderID openapi_types.UUID) error
	GetVisibleOffers(ctx echo.Context) error
	AdminLogin(ctx echo.Context) error

	GetOrders(ctx echo.Context, params GetOrdersParams) error
	CompleteOrder(ctx echo.Context, orderID openapi_types.UUID) error
	DeleteOrder(ctx echo.Context, orderID openapi_types.UUID) error
	GetWorkers(ctx echo.Context) error
	AddWorker(ctx echo.Context) error
	UpdateWorker(ctx echo.Context, workerID openapi_types.UUID) error
	SetWorkerStatus(ctx echo.Context, workerID openapi_types.UUID) error
	DeleteWorker(ctx echo.Context, workerID openapi_types.UUID) error
	GetOffers(ctx echo.Context) error
	CreateOffer(ctx echo.Context) error
	UpdateOffer(ctx echo.Context, offerID openapi_types.UUID) error
	SetOfferStatus(ctx echo.Context, offerID openapi_types.UUID) error
	DeleteOffer(ctx echo.Context, offerID openapi_types.UUID) error
}

type GetOrdersParams struct {
	Status *string `form:"status,omitempty" json:"status,omitempty"`
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// serverInterfaceWrapper converts echo contexts to typed parameters.
type serverInterfaceWrapper struct {
	handler ServerInterface
}

func bindUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter "+name+": "+err.Error())
	}
	return id, nil
}

func (w *serverInterfaceWrapper) withID(name string, call func(echo.Context, openapi_types.UUID) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := bindUUID(ctx, name)
		if err != nil {
			return err
		}
		return call(ctx, id)
	}
}

func (w *serverInterfaceWrapper) GetOrders(ctx echo.Context) error {
	var params GetOrdersParams
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter status: "+err.Error())
	}
	return w.handler.GetOrders(ctx, params)
}

// RegisterHandlers mounts every operation. Admin operations check the token before the
// request is validated, so an anonymous caller learns nothing about the expected payloads.
func RegisterHandlers(router EchoRouter, si ServerInterface, validate, authorize echo.MiddlewareFunc) {
	w := &serverInterfaceWrapper{handler: si}
	public := []echo.MiddlewareFunc{validate}
	admin := []echo.MiddlewareFunc{authorize, validate}

	router.POST("/api/v1/orders", si.SubmitOrder, public...)
	router.POST("/api/v1/orders/:orderId/assignment", w.withID("orderId", si.RetryOrderAssignment), public...)
	router.GET("/api/v1/offers", si.GetVisibleOffers, public...)
	router.POST("/api/v1/admin/login", si.AdminLogin, public...)

	router.GET("/api/v1/admin/orders", w.GetOrders, admin...)
	router.POST("/api/v1/admin/orders/:orderId/complete", w.withID("orderId", si.CompleteOrder), admin...)
	router.DELETE("/api/v1/admin/orders/:orderId", w.withID("orderId", si.DeleteOrder), admin...)

	router.GET("/api/v1/admin/workers", si.GetWorkers, admin...)
	router.POST("/api/v1/admin/workers", si.AddWorker, admin...)
	router.PUT("/api/v1/admin/workers/:workerId", w.withID("workerId", si.UpdateWorker), admin...)
	router.DELETE("/api/v1/admin/workers/:workerId", w.withID("workerId", si.DeleteWorker), admin...)
	router.PUT("/api/v1/admin/workers/:workerId/status", w.withID("workerId", si.SetWorkerStatus), admin...)

	router.GET("/api/v1/admin/offers", si.GetOffers, admin...)
	router.POST("/api/v1/admin/offers", si.CreateOffer, admin...)
	router.PUT("/api/v1/admin/offers/:offerId", w.withID("offerId", si.UpdateOffer), admin...)
	router.DELETE("/api/v1/admin/offers/:offerId", w.withID("offerId", si.DeleteOffer), admin...)
	router.PUT("/api/v1/admin/offers/:offerId/status", w.withID("offerId", si.SetOfferStatus), admin...)
}
