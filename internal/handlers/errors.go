package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/studyloop/backend/internal/models"
	"github.com/studyloop/backend/libs/auth/middleware"
	"github.com/studyloop/backend/libs/handlers"
	"go.uber.org/zap"
)

// Messages are kept in Portuguese; the bundled front end shows them as is.
const (
	msgInvalidBody        = "Dados inválidos"
	msgMissingCredentials = "Usuário e senha são obrigatórios"
	msgUsernameTaken      = "Usuário já existe"
	msgPasswordTooLong    = "Senha muito longa"
	msgUserNotFound       = "Usuário não encontrado"
	msgWrongPassword      = "Senha incorreta"
	msgSubjectNameMissing = "Nome da matéria é obrigatório"
	msgSubjectNotFound    = "Matéria não encontrada"
	msgInvalidReviewDate  = "Data de revisão inválida"
	msgMissingToken       = "Token não fornecido"
)

// respondServiceError translates a service error into a status code and message.
// Unexpected errors are logged and answered with 500 and the fallback message; their text is never sent.
func respondServiceError(h *handlers.BaseHandler, w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrMissingCredentials):
		h.RespondError(w, http.StatusBadRequest, msgMissingCredentials)
	case errors.Is(err, models.ErrUsernameTaken):
		h.RespondError(w, http.StatusBadRequest, msgUsernameTaken)
	case errors.Is(err, models.ErrPasswordTooLong):
		h.RespondError(w, http.StatusBadRequest, msgPasswordTooLong)
	case errors.Is(err, models.ErrSubjectNameRequired):
		h.RespondError(w, http.StatusBadRequest, msgSubjectNameMissing)
	case errors.Is(err, models.ErrValidation):
		h.RespondError(w, http.StatusBadRequest, msgInvalidBody)
	case errors.Is(err, models.ErrUserNotFound):
		// login reports an unknown user as a bad request
		h.RespondError(w, http.StatusBadRequest, msgUserNotFound)
	case errors.Is(err, models.ErrInvalidCredentials):
		h.RespondError(w, http.StatusBadRequest, msgWrongPassword)
	case errors.Is(err, models.ErrNotFound):
		h.RespondError(w, http.StatusNotFound, msgSubjectNotFound)
	default:
		h.Logger.Error(fallback, zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, fallback)
	}
}

// decodeBody reads a JSON body into dst. An empty body leaves dst untouched.
func decodeBody(h *handlers.BaseHandler, r *http.Request, dst any) error {
	if err := h.DecodeJSON(r, dst); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		return err
	}
	return nil
}

// subjectIDParam parses the {id} path parameter.
// A malformed id cannot name any stored subject, so callers answer it with 404.
func subjectIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// requireUserID reads the caller id set by the auth middleware, answering 401 when it is absent
func requireUserID(h *handlers.BaseHandler, w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, msgMissingToken)
		return 0, false
	}
	return userID, true
}
