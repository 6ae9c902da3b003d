package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sweetlane/pos-backend-go/internal/domain/order"
	"github.com/sweetlane/pos-backend-go/internal/handler/http/response"
)

type OrderHandler interface {
	AddToCart(w http.ResponseWriter, r *http.Request)
	GetCart(w http.ResponseWriter, r *http.Request)
	RemoveFromCart(w http.ResponseWriter, r *http.Request)
	Checkout(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type orderHandlerImpl struct {
	orderService order.OrderService
}

func NewOrderHandler(orderService order.OrderService) OrderHandler {
	return &orderHandlerImpl{orderService: orderService}
}

// AddToCart implements OrderHandler.
func (h *orderHandlerImpl) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req order.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.orderService.AddToCart(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetCart implements OrderHandler.
func (h *orderHandlerImpl) GetCart(w http.ResponseWriter, r *http.Request) {
	result, err := h.orderService.GetCart(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RemoveFromCart implements OrderHandler.
func (h *orderHandlerImpl) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	if err := h.orderService.RemoveFromCart(r.Context(), chi.URLParam(r, "itemID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Item removed", nil)
}

// Checkout implements OrderHandler.
func (h *orderHandlerImpl) Checkout(w http.ResponseWriter, r *http.Request) {
	result, err := h.orderService.Checkout(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Order completed", result)
}

// Get implements OrderHandler.
func (h *orderHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.orderService.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements OrderHandler.
func (h *orderHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
