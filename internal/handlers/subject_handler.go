package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studyloop/backend/internal/models"
	"github.com/studyloop/backend/libs/handlers"
	"go.uber.org/zap"
)

// SubjectService is the interface that wraps methods for subject business logic.
//
// "userID" always comes from the verified token, never from the request body.
type SubjectService interface {
	// Method List retrieves all subjects of the user ordered by ID.
	List(ctx context.Context, userID int64) ([]models.Subject, error)
	// Method Create adds a subject with zero cycles and no review dates.
	//
	// If the name is missing, models.ErrSubjectNameRequired will be returned together with "nil" value.
	Create(ctx context.Context, userID int64, req *models.SubjectRequest) (*models.Subject, error)
	// Method Update changes the fields present in "req".
	//
	// If no subject of the user has such ID, "nil" is returned together with a "nil" error.
	Update(ctx context.Context, userID, id int64, req *models.SubjectRequest) (*models.Subject, error)
	// Method Delete removes the subject and the history entries recorded under its name.
	//
	// If no subject of the user has such ID, models.ErrSubjectNotFound will be returned.
	Delete(ctx context.Context, userID, id int64) error
}

// SubjectHandler handles HTTP requests for subjects
type SubjectHandler struct {
	handlers.BaseHandler
	service SubjectService
}

// NewSubjectHandler creates a new subject handler
func NewSubjectHandler(svc SubjectService, logger *zap.Logger) *SubjectHandler {
	return &SubjectHandler{
		BaseHandler: handlers.BaseHandler{Logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all subject handler routes
func (h *SubjectHandler) RegisterRoutes(r chi.Router) {
	r.Get("/materias", h.List)
	r.Post("/materias", h.Create)
	r.Put("/materias/{id}", h.Update)
	r.Delete("/materias/{id}", h.Delete)
}

// List handles GET /materias
// @Summary List subjects
// @Description List the caller's subjects with their review dates, ordered by id
// @Tags materias
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Subject
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /materias [get]
func (h *SubjectHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(&h.BaseHandler, w, r)
	if !ok {
		return
	}

	subjects, err := h.service.List(r.Context(), userID)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err, "Erro ao buscar matérias")
		return
	}

	h.RespondJSON(w, http.StatusOK, subjects)
}

// Create handles POST /materias
// @Summary Create a subject
// @Tags materias
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.SubjectRequest true "Subject name and weight"
// @Success 200 {object} models.Subject
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /materias [post]
func (h *SubjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(&h.BaseHandler, w, r)
	if !ok {
		return
	}

	var req models.SubjectRequest
	if err := decodeBody(&h.BaseHandler, r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	subject, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err, "Erro ao criar matéria")
		return
	}

	h.RespondJSON(w, http.StatusOK, subject)
}

// Update handles PUT /materias/{id}
// @Summary Update a subject
// @Description Change name and/or weight. Absent fields keep their value. Answers null when the subject does not exist.
// @Tags materias
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Subject ID"
// @Param request body models.SubjectRequest true "Fields to change"
// @Success 200 {object} models.Subject
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /materias/{id} [put]
func (h *SubjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(&h.BaseHandler, w, r)
	if !ok {
		return
	}

	id, ok := subjectIDParam(r)
	if !ok {
		h.RespondError(w, http.StatusNotFound, msgSubjectNotFound)
		return
	}

	var req models.SubjectRequest
	if err := decodeBody(&h.BaseHandler, r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	subject, err := h.service.Update(r.Context(), userID, id, &req)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err, "Erro ao atualizar matéria")
		return
	}

	// a nil subject is encoded as null
	h.RespondJSON(w, http.StatusOK, subject)
}

// Delete handles DELETE /materias/{id}
// @Summary Delete a subject
// @Description Delete the subject, its review dates and every history entry recorded under its name
// @Tags materias
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /materias/{id} [delete]
func (h *SubjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(&h.BaseHandler, w, r)
	if !ok {
		return
	}

	id, ok := subjectIDParam(r)
	if !ok {
		h.RespondError(w, http.StatusNotFound, msgSubjectNotFound)
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		respondServiceError(&h.BaseHandler, w, err, "Erro ao deletar matéria")
		return
	}

	h.RespondMessage(w, http.StatusOK, "Matéria e histórico deletados com sucesso")
}
