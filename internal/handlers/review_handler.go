package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/studyloop/backend/internal/models"
	"github.com/studyloop/backend/libs/handlers"
	"go.uber.org/zap"
)

// ReviewService is the interface that wraps methods for subject review schedule business logic.
type ReviewService interface {
	// Method AppendDates adds the requested dates after the subject's existing review dates and returns the subject.
	//
	// If no subject of the user has such ID, models.ErrSubjectNotFound will be returned together with "nil" value.
	AppendDates(ctx context.Context, userID, subjectID int64, req *models.ReviewRequest) (*models.Subject, error)
	// Method ListDates retrieves the subject's review dates in the order they were added.
	//
	// Please reference AppendDates method for error values.
	ListDates(ctx context.Context, userID, subjectID int64) ([]time.Time, error)
}

// ReviewHandler handles HTTP requests for subject review dates
type ReviewHandler struct {
	handlers.BaseHandler
	service ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(svc ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler: handlers.BaseHandler{Logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all review handler routes
func (h *ReviewHandler) RegisterRoutes(r chi.Router) {
	r.Post("/materias/{id}/revisoes", h.AppendDates)
	r.Get("/materias/{id}/revisoes", h.ListDates)
}

// AppendDates handles POST /materias/{id}/revisoes
// @Summary Add review dates
// @Description Append dates to the subject's review schedule. Dates are ISO 8601 strings or epoch milliseconds.
// @Tags revisoes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Subject ID"
// @Param request body models.ReviewRequest true "Dates to add"
// @Success 200 {object} models.Subject
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /materias/{id}/revisoes [post]
func (h *ReviewHandler) AppendDates(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(&h.BaseHandler, w, r)
	if !ok {
		return
	}

	id, ok := subjectIDParam(r)
	if !ok {
		h.RespondError(w, http.StatusNotFound, msgSubjectNotFound)
		return
	}

	var req models.ReviewRequest
	if err := decodeBody(&h.BaseHandler, r, &req); err != nil {
		message := msgInvalidBody
		if errors.Is(err, models.ErrValidation) {
			message = msgInvalidReviewDate
		}
		h.RespondError(w, http.StatusBadRequest, message)
		return
	}

	subject, err := h.service.AppendDates(r.Context(), userID, id, &req)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err, "Erro ao salvar revisões")
		return
	}

	h.RespondJSON(w, http.StatusOK, subject)
}

// ListDates handles GET /materias/{id}/revisoes
// @Summary List review dates
// @Tags revisoes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Subject ID"
// @Success 200 {array} string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /materias/{id}/revisoes [get]
func (h *ReviewHandler) ListDates(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(&h.BaseHandler, w, r)
	if !ok {
		return
	}

	id, ok := subjectIDParam(r)
	if !ok {
		h.RespondError(w, http.StatusNotFound, msgSubjectNotFound)
		return
	}

	dates, err := h.service.ListDates(r.Context(), userID, id)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err, "Erro ao buscar revisões")
		return
	}

	h.RespondJSON(w, http.StatusOK, dates)
}
