package handler

import (
	"net/http"

	"github.com/medikit/ClinicStock_Go/internal/logger"
	"github.com/medikit/ClinicStock_Go/internal/usage"
)

// RecordUsageRequest represents the request to record item consumption
type RecordUsageRequest struct {
	ItemID   string `json:"itemId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Notes    string `json:"notes" validate:"max=500"`
}

// UsageHandler handles usage-ledger HTTP requests
type UsageHandler struct {
	usageSvc usage.Service
}

// NewUsageHandler creates a new usage handler
func NewUsageHandler(usageSvc usage.Service) *UsageHandler {
	return &UsageHandler{usageSvc: usageSvc}
}

// Record handles the usage recording endpoint
// @Summary Record item consumption
// @Description Decrements stock and appends a ledger entry atomically
// @Tags usage
// @Accept json
// @Produce json
// @Param request body RecordUsageRequest true "Usage to record"
// @Success 201 {object} domain.UsageEvent
// @Failure 400 {object} ErrorResponse "Invalid request or insufficient stock"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Router /usage [post]
func (h *UsageHandler) Record(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req RecordUsageRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Record usage"); err != nil {
		return
	}

	recorded, err := h.usageSvc.RecordUsage(r.Context(), req.ItemID, req.Quantity, req.Notes)
	if err != nil {
		respondServiceError(w, r, "Record usage", err)
		return
	}

	log.Info("Usage recorded", "itemID", req.ItemID, "quantity", req.Quantity)
	respondJSON(w, http.StatusCreated, recorded)
}

// History handles the usage-history listing endpoint
// @Summary List usage history
// @Description Returns the consumption ledger, newest first, with item names
// @Tags usage
// @Produce json
// @Success 200 {array} domain.UsageHistoryEntry
// @Failure 500 {object} ErrorResponse
// @Router /usage-history [get]
func (h *UsageHandler) History(w http.ResponseWriter, r *http.Request) {
	history, err := h.usageSvc.GetHistory(r.Context())
	if err != nil {
		respondServiceError(w, r, "Get usage history", err)
		return
	}
	respondJSON(w, http.StatusOK, history)
}
