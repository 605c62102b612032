package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskmesh/internal/common"
)

// errorEnvelope is the generic error wire shape.
type errorEnvelope struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Code    int    `json:"code"`
	Type    string `json:"type,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// validationBody is the wire shape for field-level failures: one message
// per offending field.
type validationBody struct {
	Errors map[string]string `json:"errors"`
}

// writeError translates a taxonomy error into its HTTP shape. Field-level
// failures (validation, conflicts) get a 422 with an errors map; everything
// else gets the generic envelope. Unknown errors collapse to a 500 without
// leaking their message.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *common.ValidationError
	var conflictErr *common.ConflictError

	switch {
	case errors.As(err, &validationErr):
		fields := make(map[string]string, len(validationErr.Violations))
		for _, v := range validationErr.Violations {
			fields[v.Field] = v.Message
		}
		writeJSON(w, http.StatusUnprocessableEntity, validationBody{Errors: fields})

	case errors.As(err, &conflictErr):
		writeJSON(w, http.StatusUnprocessableEntity, validationBody{
			Errors: map[string]string{conflictErr.Field: "already exists"},
		})

	case errors.Is(err, common.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnprocessableEntity, errorEnvelope{
			Name:    "AuthenticationError",
			Message: common.ErrInvalidCredentials.Error(),
			Code:    http.StatusUnprocessableEntity,
			Type:    "LOGIN_FAILED",
		})

	case errors.Is(err, common.ErrMissingToken):
		writeJSON(w, http.StatusUnauthorized, errorEnvelope{
			Name:    "UnAuthorizedError",
			Message: common.ErrMissingToken.Error(),
			Code:    http.StatusUnauthorized,
			Type:    "NO_TOKEN",
		})

	case errors.Is(err, common.ErrInvalidToken):
		writeJSON(w, http.StatusUnauthorized, errorEnvelope{
			Name:    "UnAuthorizedError",
			Message: common.ErrInvalidToken.Error(),
			Code:    http.StatusUnauthorized,
			Type:    "INVALID_TOKEN",
		})

	case errors.Is(err, common.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorEnvelope{
			Name:    "NotFoundError",
			Message: common.ErrNotFound.Error(),
			Code:    http.StatusNotFound,
		})

	default:
		writeJSON(w, http.StatusInternalServerError, errorEnvelope{
			Name:    "InternalServerError",
			Message: common.ErrInternal.Error(),
			Code:    http.StatusInternalServerError,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
