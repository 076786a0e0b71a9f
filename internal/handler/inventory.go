package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/medikit/ClinicStock_Go/internal/domain"
	"github.com/medikit/ClinicStock_Go/internal/inventory"
	"github.com/medikit/ClinicStock_Go/internal/logger"
)

// CreateItemRequest represents the request to add an inventory item
type CreateItemRequest struct {
	Name           string  `json:"name" validate:"required,max=200"`
	Category       string  `json:"category" validate:"max=100"`
	Barcode        string  `json:"barcode" validate:"max=100"`
	CurrentStock   int     `json:"currentStock" validate:"gte=0"`
	MinThreshold   int     `json:"minThreshold" validate:"gte=0"`
	UnitPrice      float64 `json:"unitPrice" validate:"gte=0"`
	Supplier       string  `json:"supplier" validate:"max=200"`
	ExpirationDate string  `json:"expirationDate"`
	Description    string  `json:"description" validate:"max=1000"`
}

// UpdateItemRequest represents a partial item update. Absent fields are
// left unchanged.
type UpdateItemRequest struct {
	Name           *string  `json:"name" validate:"omitempty,max=200"`
	Category       *string  `json:"category" validate:"omitempty,max=100"`
	Barcode        *string  `json:"barcode" validate:"omitempty,max=100"`
	CurrentStock   *int     `json:"currentStock" validate:"omitempty,gte=0"`
	MinThreshold   *int     `json:"minThreshold" validate:"omitempty,gte=0"`
	UnitPrice      *float64 `json:"unitPrice" validate:"omitempty,gte=0"`
	Supplier       *string  `json:"supplier" validate:"omitempty,max=200"`
	ExpirationDate *string  `json:"expirationDate"`
	Description    *string  `json:"description" validate:"omitempty,max=1000"`
}

// ScanBarcodeRequest represents a barcode lookup request
type ScanBarcodeRequest struct {
	Barcode string `json:"barcode" validate:"required,max=100"`
}

// ScanBarcodeResponse represents the result of a barcode lookup
type ScanBarcodeResponse struct {
	Success bool        `json:"success"`
	Item    interface{} `json:"item,omitempty"`
	Message string      `json:"message,omitempty"`
}

// InventoryHandler handles inventory catalog HTTP requests
type InventoryHandler struct {
	inventorySvc inventory.Service
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventorySvc inventory.Service) *InventoryHandler {
	return &InventoryHandler{inventorySvc: inventorySvc}
}

// List handles the inventory listing endpoint
// @Summary List inventory items
// @Tags inventory
// @Produce json
// @Success 200 {array} domain.Item
// @Failure 500 {object} ErrorResponse
// @Router /inventory [get]
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventorySvc.ListItems(r.Context())
	if err != nil {
		respondServiceError(w, r, "List inventory", err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// Create handles the item creation endpoint
// @Summary Add an inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body CreateItemRequest true "New item"
// @Success 201 {object} domain.Item
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /inventory [post]
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create item"); err != nil {
		return
	}

	item, err := h.inventorySvc.CreateItem(r.Context(), inventory.CreateItemInput{
		Name:           req.Name,
		Category:       req.Category,
		Barcode:        req.Barcode,
		CurrentStock:   req.CurrentStock,
		MinThreshold:   req.MinThreshold,
		UnitPrice:      req.UnitPrice,
		Supplier:       req.Supplier,
		ExpirationDate: req.ExpirationDate,
		Description:    req.Description,
	})
	if err != nil {
		respondServiceError(w, r, "Create item", err)
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

// Update handles the item update endpoint
// @Summary Update an inventory item
// @Description Merges the provided fields onto the existing item
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body UpdateItemRequest true "Fields to update"
// @Success 200 {object} domain.Item
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventory/{id} [put]
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update item"); err != nil {
		return
	}

	item, err := h.inventorySvc.UpdateItem(r.Context(), id, inventory.UpdateItemInput{
		Name:           req.Name,
		Category:       req.Category,
		Barcode:        req.Barcode,
		CurrentStock:   req.CurrentStock,
		MinThreshold:   req.MinThreshold,
		UnitPrice:      req.UnitPrice,
		Supplier:       req.Supplier,
		ExpirationDate: req.ExpirationDate,
		Description:    req.Description,
	})
	if err != nil {
		respondServiceError(w, r, "Update item", err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// Delete handles the item deletion endpoint
// @Summary Delete an inventory item
// @Tags inventory
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventory/{id} [delete]
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.inventorySvc.DeleteItem(r.Context(), id); err != nil {
		respondServiceError(w, r, "Delete item", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemDeletedSuccess})
}

// ScanBarcode handles the barcode lookup endpoint. A miss is a successful
// request with success=false, not an HTTP error.
// @Summary Look up an item by barcode
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body ScanBarcodeRequest true "Barcode"
// @Success 200 {object} ScanBarcodeResponse
// @Failure 400 {object} ErrorResponse
// @Router /scan-barcode [post]
func (h *InventoryHandler) ScanBarcode(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req ScanBarcodeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Scan barcode"); err != nil {
		return
	}

	item, err := h.inventorySvc.FindByBarcode(r.Context(), req.Barcode)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			log.Info("Barcode not matched", "barcode", req.Barcode)
			respondJSON(w, http.StatusOK, ScanBarcodeResponse{
				Success: false,
				Message: ErrMsgItemNotFoundError,
			})
			return
		}
		respondServiceError(w, r, "Scan barcode", err)
		return
	}

	respondJSON(w, http.StatusOK, ScanBarcodeResponse{
		Success: true,
		Item:    item,
	})
}

// GetAlerts handles the alerts endpoint
// @Summary List current stock and expiration alerts
// @Tags inventory
// @Produce json
// @Success 200 {array} domain.Alert
// @Failure 500 {object} ErrorResponse
// @Router /alerts [get]
func (h *InventoryHandler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.inventorySvc.GetAlerts(r.Context())
	if err != nil {
		respondServiceError(w, r, "Get alerts", err)
		return
	}
	respondJSON(w, http.StatusOK, alerts)
}
