package handler

import (
	"net/http"

	"github.com/medikit/ClinicStock_Go/internal/insights"
)

// ChatRequest represents an inventory question for the assistant
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// ChatResponse represents the assistant's reply
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ChatHandler handles assistant chat HTTP requests
type ChatHandler struct {
	insightsSvc insights.Service
}

// NewChatHandler creates a new chat handler
func NewChatHandler(insightsSvc insights.Service) *ChatHandler {
	return &ChatHandler{insightsSvc: insightsSvc}
}

// Chat handles the assistant chat endpoint
// @Summary Ask the inventory assistant a question
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Question"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Insights service unavailable"
// @Router /chat [post]
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Chat"); err != nil {
		return
	}

	reply, err := h.insightsSvc.Chat(r.Context(), req.Message)
	if err != nil {
		respondServiceError(w, r, "Chat", err)
		return
	}

	respondJSON(w, http.StatusOK, ChatResponse{Reply: reply})
}
