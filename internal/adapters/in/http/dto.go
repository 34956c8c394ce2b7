package http

import (
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Fields  []string            `json:"fields,omitempty"`
	OrderID *openapi_types.UUID `json:"orderId,omitempty"`
}

type NewOrderRequest struct {
	CustomerName string `json:"customerName"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	OrderDetails string `json:"orderDetails"`
}

type AssignedWorker struct {
	ID   openapi_types.UUID `json:"id"`
	Name string             `json:"name"`
}

type AssignmentResultResponse struct {
	OrderID  openapi_types.UUID `json:"orderId"`
	Outcome  string             `json:"outcome"`
	Worker   *AssignedWorker    `json:"worker,omitempty"`
	Warnings []string           `json:"warnings"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type OrderResponse struct {
	ID           openapi_types.UUID  `json:"id"`
	CustomerName string              `json:"customerName"`
	Address      string              `json:"address"`
	Phone        string              `json:"phone"`
	OrderDetails string              `json:"orderDetails"`
	Status       string              `json:"status"`
	WorkerID     *openapi_types.UUID `json:"workerId,omitempty"`
	WorkerName   *string             `json:"workerName,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
}

type WorkerResponse struct {
	ID             openapi_types.UUID `json:"id"`
	Name           string             `json:"name"`
	WhatsAppNumber string             `json:"whatsappNumber"`
	Status         string             `json:"status"`
	OrdersCount    int                `json:"ordersCount"`
	LastOrderTime  *time.Time         `json:"lastOrderTime,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
}

type WorkerInput struct {
	Name           string `json:"name"`
	WhatsAppNumber string `json:"whatsappNumber"`
}

type WorkerStatusInput struct {
	Status string `json:"status"`
}

type OfferResponse struct {
	ID                 openapi_types.UUID `json:"id"`
	Title              string             `json:"title"`
	Description        string             `json:"description,omitempty"`
	DiscountPercentage *int               `json:"discountPercentage,omitempty"`
	OriginalPrice      *decimal.Decimal   `json:"originalPrice,omitempty"`
	OfferPrice         *decimal.Decimal   `json:"offerPrice,omitempty"`
	ExpiresAt          *time.Time         `json:"expiresAt,omitempty"`
	ImageURL           string             `json:"imageUrl,omitempty"`
	IsActive           bool               `json:"isActive"`
	CreatedAt          time.Time          `json:"createdAt"`
}

type OfferInput struct {
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	DiscountPercentage *int             `json:"discountPercentage"`
	OriginalPrice      *decimal.Decimal `json:"originalPrice"`
	OfferPrice         *decimal.Decimal `json:"offerPrice"`
	ExpiresAt          *time.Time       `json:"expiresAt"`
	ImageURL           string           `json:"imageUrl"`
}

func (in OfferInput) details() offer.Details {
	return offer.Details{
		Title:              in.Title,
		Description:        in.Description,
		DiscountPercentage: in.DiscountPercentage,
		OriginalPrice:      in.OriginalPrice,
		OfferPrice:         in.OfferPrice,
		ExpiresAt:          in.ExpiresAt,
		ImageURL:           in.ImageURL,
	}
}

type OfferStatusInput struct {
	IsActive bool `json:"isActive"`
}

type CreatedResponse struct {
	ID openapi_types.UUID `json:"id"`
}

func toAPIUUID(id kernel.UUID) openapi_types.UUID {
	return id.Bytes()
}

func fromAPIUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toAssignmentResult(result commands.AssignmentResult) AssignmentResultResponse {
	resp := AssignmentResultResponse{
		OrderID:  toAPIUUID(result.OrderID),
		Outcome:  result.Outcome.String(),
		Warnings: result.Warnings,
	}
	if resp.Warnings == nil {
		resp.Warnings = []string{}
	}
	if result.Outcome == commands.OutcomeAssigned {
		resp.Worker = &AssignedWorker{
			ID:   toAPIUUID(result.WorkerID),
			Name: result.WorkerName,
		}
	}
	return resp
}

func toOrderResponse(o queries.GetAllOrdersQueryResponse) OrderResponse {
	resp := OrderResponse{
		ID:           toAPIUUID(o.ID),
		CustomerName: o.CustomerName,
		Address:      o.Address,
		Phone:        o.Phone,
		OrderDetails: o.OrderDetails,
		Status:       o.Status.String(),
		WorkerName:   o.WorkerName,
		CreatedAt:    o.CreatedAt,
	}
	if o.WorkerID != nil {
		id := toAPIUUID(*o.WorkerID)
		resp.WorkerID = &id
	}
	return resp
}

func toWorkerResponse(w queries.GetAllWorkersQueryResponse) WorkerResponse {
	return WorkerResponse{
		ID:             toAPIUUID(w.ID),
		Name:           w.Name,
		WhatsAppNumber: w.WhatsAppNumber,
		Status:         w.Status.String(),
		OrdersCount:    w.OrdersCount,
		LastOrderTime:  w.LastOrderTime,
		CreatedAt:      w.CreatedAt,
	}
}

func toOfferResponse(o queries.GetOffersQueryResponse) OfferResponse {
	return OfferResponse{
		ID:                 toAPIUUID(o.ID),
		Title:              o.Title,
		Description:        o.Description,
		DiscountPercentage: o.DiscountPercentage,
		OriginalPrice:      o.OriginalPrice,
		OfferPrice:         o.OfferPrice,
		ExpiresAt:          o.ExpiresAt,
		ImageURL:           o.ImageURL,
		IsActive:           o.IsActive,
		CreatedAt:          o.CreatedAt,
	}
}
