package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"dispatch/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

var registerDocOnce sync.Once

// swaggerDoc serves the embedded document to the swagger UI.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

func registerSwaggerDoc(doc *openapi3.T) error {
	data, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode openapi document: %w", err)
	}

	registerDocOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: string(data)})
	})
	return nil
}

// NewRouter assembles the echo instance: shared middleware, health and documentation routes,
// and every API operation.
func NewRouter(server *Server, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}

	validate, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger))
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/api/openapi.yml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", api.Raw())
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	RegisterHandlers(e, server, validate, server.gate.Middleware())

	return e, nil
}
