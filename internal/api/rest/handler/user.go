package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/formforge/formforge-server/internal/logger"
	"github.com/formforge/formforge-server/internal/model"
)

// UserService handles user lifecycle operations.
type UserService interface {
	Create(ctx context.Context, view model.UserCreate) (model.UserBase, error)
	GetByID(ctx context.Context, id int64) (model.UserDetail, error)
	GetAll(ctx context.Context) ([]model.UserList, error)
	Update(ctx context.Context, id int64, view model.UserUpdate) (model.UserBase, error)
	Delete(ctx context.Context, id int64) error
}

// User handles user CRUD endpoints.
type User struct {
	userService UserService
	validate    *validator.Validate
	logger      *logger.Logger
}

// NewUser creates a new User handler instance.
func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		logger:      logger,
	}
}

func (h *User) Create(w http.ResponseWriter, r *http.Request) {
	var view model.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&view); err != nil {
		WriteError(w, h.logger, &model.ValidationError{Message: "malformed request body"})
		return
	}

	if err := h.validate.Struct(view); err != nil {
		WriteError(w, h.logger, validationError(err))
		return
	}

	created, err := h.userService.Create(r.Context(), view)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *User) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *User) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.GetAll(r.Context())
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}
	if users == nil {
		users = []model.UserList{}
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *User) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	var view model.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&view); err != nil {
		WriteError(w, h.logger, &model.ValidationError{Message: "malformed request body"})
		return
	}

	if err := h.validate.Struct(view); err != nil {
		WriteError(w, h.logger, validationError(err))
		return
	}

	updated, err := h.userService.Update(r.Context(), id, view)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *User) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		WriteError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, &model.ValidationError{Field: "id", Message: "id must be an integer"}
	}
	return id, nil
}

// validationError converts a validator.v10 failure into the domain shape,
// reporting the first offending field.
func validationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		first := fieldErrors[0]
		return &model.ValidationError{
			Field:   first.Field(),
			Message: "failed validation on " + first.Tag(),
		}
	}
	return &model.ValidationError{Message: err.Error()}
}
