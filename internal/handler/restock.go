package handler

import (
	"net/http"

	"github.com/medikit/ClinicStock_Go/internal/insights"
	"github.com/medikit/ClinicStock_Go/internal/logger"
	"github.com/medikit/ClinicStock_Go/internal/restock"
)

// RestockHandler handles restock analytics HTTP requests
type RestockHandler struct {
	restockSvc  restock.Service
	insightsSvc insights.Service
}

// NewRestockHandler creates a new restock handler
func NewRestockHandler(restockSvc restock.Service, insightsSvc insights.Service) *RestockHandler {
	return &RestockHandler{
		restockSvc:  restockSvc,
		insightsSvc: insightsSvc,
	}
}

// Suggestions handles the restock suggestion listing endpoint
// @Summary List restock suggestions
// @Description Ranked reorder recommendations for low-stock or consumed items
// @Tags restock
// @Produce json
// @Success 200 {array} domain.RestockSuggestion
// @Failure 500 {object} ErrorResponse
// @Router /restock/suggestions [get]
func (h *RestockHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.restockSvc.GetSuggestions(r.Context())
	if err != nil {
		respondServiceError(w, r, "Get restock suggestions", err)
		return
	}
	respondJSON(w, http.StatusOK, suggestions)
}

// Preview handles the automated-restock dry-run endpoint
// @Summary Preview automated restock
// @Description Reports the batch an automated restock would order, without writing
// @Tags restock
// @Produce json
// @Success 200 {object} domain.RestockPreview
// @Failure 500 {object} ErrorResponse
// @Router /restock/preview [get]
func (h *RestockHandler) Preview(w http.ResponseWriter, r *http.Request) {
	preview, err := h.restockSvc.PreviewAutomatedRestock(r.Context())
	if err != nil {
		respondServiceError(w, r, "Preview automated restock", err)
		return
	}
	respondJSON(w, http.StatusOK, preview)
}

// Execute handles the automated-restock execution endpoint
// @Summary Execute automated restock
// @Description Orders and credits stock for every item at or below threshold
// @Tags restock
// @Produce json
// @Success 200 {object} domain.RestockResult
// @Failure 500 {object} ErrorResponse
// @Router /restock/execute [post]
func (h *RestockHandler) Execute(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	result, err := h.restockSvc.ExecuteAutomatedRestock(r.Context())
	if err != nil {
		respondServiceError(w, r, "Execute automated restock", err)
		return
	}

	log.Info("Automated restock completed", "itemsRestocked", result.ItemsRestocked)
	respondJSON(w, http.StatusOK, result)
}

// Chart handles the restock chart endpoint
// @Summary Restock chart with generated commentary
// @Description Stock-vs-suggestion bar chart data plus generated insights text
// @Tags restock
// @Produce json
// @Success 200 {object} insights.ChartResponse
// @Failure 502 {object} ErrorResponse "Insights service unavailable"
// @Router /restock/chart [get]
func (h *RestockHandler) Chart(w http.ResponseWriter, r *http.Request) {
	chart, err := h.insightsSvc.RestockChart(r.Context())
	if err != nil {
		respondServiceError(w, r, "Generate restock chart", err)
		return
	}
	respondJSON(w, http.StatusOK, chart)
}
