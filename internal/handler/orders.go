package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/medikit/ClinicStock_Go/internal/domain"
	"github.com/medikit/ClinicStock_Go/internal/logger"
	"github.com/medikit/ClinicStock_Go/internal/order"
)

// OrderLineRequest is one line item of a purchase-order request. Quantity
// tolerates numbers and numeric strings.
type OrderLineRequest struct {
	ItemID   string          `json:"itemId" validate:"required"`
	Name     string          `json:"name" validate:"max=200"`
	Quantity domain.Quantity `json:"quantity"`
}

// CreateOrderRequest represents the request to create a purchase order
type CreateOrderRequest struct {
	Supplier string             `json:"supplier" validate:"max=200"`
	Items    []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderStatusRequest represents the request to change an order's status
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,orderstatus"`
}

// OrderHandler handles purchase-order HTTP requests
type OrderHandler struct {
	orderSvc order.Service
}

// NewOrderHandler creates a new purchase-order handler
func NewOrderHandler(orderSvc order.Service) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

// Create handles the purchase-order creation endpoint
// @Summary Create a purchase order
// @Description Records the order and credits ordered quantities onto matching items
// @Tags orders
// @Accept json
// @Produce json
// @Param request body CreateOrderRequest true "Order to create"
// @Success 201 {object} domain.PurchaseOrder
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /purchase-orders [post]
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CreateOrderRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create purchase order"); err != nil {
		return
	}

	lines := make([]domain.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		lines = append(lines, domain.OrderItem{
			ItemID:   line.ItemID,
			Name:     line.Name,
			Quantity: line.Quantity,
		})
	}

	created, err := h.orderSvc.CreatePurchaseOrder(r.Context(), req.Supplier, lines)
	if err != nil {
		respondServiceError(w, r, "Create purchase order", err)
		return
	}

	log.Info("Purchase order created", "orderID", created.ID, "lines", len(lines))
	respondJSON(w, http.StatusCreated, created)
}

// List handles the purchase-order listing endpoint
// @Summary List purchase orders
// @Tags orders
// @Produce json
// @Success 200 {array} domain.PurchaseOrder
// @Failure 500 {object} ErrorResponse
// @Router /purchase-orders [get]
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderSvc.ListOrders(r.Context())
	if err != nil {
		respondServiceError(w, r, "List purchase orders", err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

// UpdateStatus handles the order status update endpoint
// @Summary Update a purchase order's status
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body UpdateOrderStatusRequest true "New status"
// @Success 200 {object} domain.PurchaseOrder
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /purchase-orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateOrderStatusRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update order status"); err != nil {
		return
	}

	updated, err := h.orderSvc.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		respondServiceError(w, r, "Update order status", err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}
