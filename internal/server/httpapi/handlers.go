package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mkravets/tasklist/internal/common"
	"github.com/mkravets/tasklist/internal/logging"
	"github.com/mkravets/tasklist/internal/server/models"
	"github.com/mkravets/tasklist/internal/server/services"
)

// UserService is the authentication surface the handlers depend on.
type UserService interface {
	Signup(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (token string, name string, err error)
}

// TodoService is the todo CRUD surface the handlers depend on.
type TodoService interface {
	List(ctx context.Context, ownerID int64) ([]*models.Todo, error)
	Create(ctx context.Context, ownerID int64, text string, time *string, isChecked bool) (int64, error)
	Update(ctx context.Context, id, ownerID int64, upd services.TodoUpdate) error
	Delete(ctx context.Context, id, ownerID int64) error
}

// Handler holds the HTTP handlers of the JSON API.
type Handler struct {
	users  UserService
	todos  TodoService
	logger logging.Logger
}

func NewHandler(users UserService, todos TodoService, logger logging.Logger) *Handler {
	return &Handler{users: users, todos: todos, logger: logger}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createTodoRequest struct {
	Text      string  `json:"text"`
	Time      *string `json:"time"`
	IsChecked bool    `json:"isChecked"`
}

// updateTodoRequest keeps the absent/null distinction for time: a missing
// key leaves the stored value alone, while an explicit null clears it.
type updateTodoRequest struct {
	Text      *string         `json:"text"`
	Time      json.RawMessage `json:"time"`
	IsChecked *bool           `json:"isChecked"`
}

// Signup registers a new account.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err := h.users.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			writeError(w, http.StatusBadRequest, "All fields required")
		case errors.Is(err, common.ErrorAlreadyExists):
			writeError(w, http.StatusBadRequest, "Email already exists")
		default:
			h.logger.Error(r.Context(), "signup failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Signup successful"})
}

// Login authenticates an account and returns a bearer token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, name, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		h.logger.Error(r.Context(), "login failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token, "name": name})
}

// ListTodos returns the caller's todos, newest first.
func (h *Handler) ListTodos(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	todos, err := h.todos.List(r.Context(), identity.ID)
	if err != nil {
		h.logger.Error(r.Context(), "list todos failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if todos == nil {
		todos = []*models.Todo{}
	}

	writeJSON(w, http.StatusOK, todos)
}

// CreateTodo stores a new todo for the caller.
func (h *Handler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req createTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.todos.Create(r.Context(), identity.ID, req.Text, req.Time, req.IsChecked)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeError(w, http.StatusBadRequest, "text is required")
			return
		}
		h.logger.Error(r.Context(), "create todo failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"id": id})
}

// UpdateTodo writes the fields present in the request body. A body touching
// zero fields, or an id owned by someone else, still reports success.
func (h *Handler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid todo id")
		return
	}

	var req updateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	upd := services.TodoUpdate{Text: req.Text, IsChecked: req.IsChecked}
	if req.Time != nil {
		var t *string
		if err := json.Unmarshal(req.Time, &t); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		upd.Time = &t
	}
	if err := h.todos.Update(r.Context(), id, identity.ID, upd); err != nil {
		h.logger.Error(r.Context(), "update todo failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Updated"})
}

// DeleteTodo removes the todo when the caller owns it; otherwise it is a
// success-shaped no-op.
func (h *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid todo id")
		return
	}

	if err := h.todos.Delete(r.Context(), id, identity.ID); err != nil {
		h.logger.Error(r.Context(), "delete todo failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
}
