package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/taskmesh/internal/common"
	"github.com/dmitrijs2005/taskmesh/internal/gateway/models"
)

// userBody is the wrapper all user-returning endpoints share.
type userBody struct {
	User *models.PublicUser `json:"user"`
}

type signupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &common.ValidationError{Violations: []common.FieldViolation{
			{Field: "body", Message: "must be valid JSON"},
		}})
		return
	}

	user, err := s.identity.Register(r.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userBody{User: user})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &common.ValidationError{Violations: []common.FieldViolation{
			{Field: "body", Message: "must be valid JSON"},
		}})
		return
	}

	user, err := s.identity.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userBody{User: user})
}

// handleUser is soft-gated at the route; the identity requirement lives
// here. The profile is re-read from the identity node rather than served
// from the resolve cache.
func (s *Server) handleUser(w http.ResponseWriter, r *http.Request) {
	if identityFromContext(r.Context()) == nil {
		writeError(w, common.ErrMissingToken)
		return
	}

	user, err := s.identity.Me(r.Context(), tokenFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userBody{User: user})
}

func (s *Server) handleGreet(w http.ResponseWriter, r *http.Request) {
	msg, err := s.tasks.Welcome(r.Context(), tokenFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.tasks.List(r.Context(), tokenFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	if tasks == nil {
		tasks = []*models.Task{}
	}

	writeJSON(w, http.StatusOK, tasks)
}

type addTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (s *Server) handleAddTask(w http.ResponseWriter, r *http.Request) {
	var req addTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &common.ValidationError{Violations: []common.FieldViolation{
			{Field: "body", Message: "must be valid JSON"},
		}})
		return
	}

	task, err := s.tasks.Add(r.Context(), tokenFromContext(r.Context()), req.Title, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	task, err := s.tasks.Complete(r.Context(), tokenFromContext(r.Context()), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleRemoveTask(w http.ResponseWriter, r *http.Request) {
	if err := s.tasks.Remove(r.Context(), tokenFromContext(r.Context()), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
