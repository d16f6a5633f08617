package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studyloop/backend/internal/models"
	"github.com/studyloop/backend/libs/handlers"
	"go.uber.org/zap"
)

// HistoryService is the interface that wraps methods for study history business logic.
type HistoryService interface {
	// Method Append records a study session stamped with the current time.
	//
	// The subject name is stored as given, even if no such subject exists.
	Append(ctx context.Context, userID int64, req *models.HistoryRequest) (*models.HistoryEntry, error)
	// Method List retrieves the user's history, newest first.
	List(ctx context.Context, userID int64) ([]models.HistoryEntry, error)
}

// HistoryHandler handles HTTP requests for the study history
type HistoryHandler struct {
	handlers.BaseHandler
	service HistoryService
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(svc HistoryService, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{
		BaseHandler: handlers.BaseHandler{Logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all history handler routes
func (h *HistoryHandler) RegisterRoutes(r chi.Router) {
	r.Post("/historico", h.Append)
	r.Get("/historico", h.List)
}

// Append handles POST /historico
// @Summary Log a study session
// @Tags historico
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.HistoryRequest true "Study session"
// @Success 200 {object} models.HistoryEntry
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /historico [post]
func (h *HistoryHandler) Append(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(&h.BaseHandler, w, r)
	if !ok {
		return
	}

	var req models.HistoryRequest
	if err := decodeBody(&h.BaseHandler, r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	entry, err := h.service.Append(r.Context(), userID, &req)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err, "Erro ao salvar histórico")
		return
	}

	h.RespondJSON(w, http.StatusOK, entry)
}

// List handles GET /historico
// @Summary List study history
// @Description List the caller's study sessions, newest first
// @Tags historico
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.HistoryEntry
// @Failure 500 {object} map[string]string
// @Router /historico [get]
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(&h.BaseHandler, w, r)
	if !ok {
		return
	}

	entries, err := h.service.List(r.Context(), userID)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err, "Erro ao buscar histórico")
		return
	}

	h.RespondJSON(w, http.StatusOK, entries)
}
