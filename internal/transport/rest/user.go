package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/didivui/phongnha-backend/internal/domain"
	"github.com/didivui/phongnha-backend/internal/service/user"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	Me(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) (*user.UserPage, error)
	SetUserRole(ctx context.Context, input user.SetRoleInput) (*domain.User, error)
	SetUserActive(ctx context.Context, input user.SetActiveInput) (*domain.User, error)
}

// UserHandler serves profile and user management endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type updateProfileRequest struct {
	Name string `json:"name"`
}

type setRoleRequest struct {
	Role string `json:"role"`
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

type userPageResponse struct {
	Users []userResponse `json:"users"`
	Total int            `json:"total"`
}

// Me handles GET /api/v1/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Me(r.Context())
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// UpdateProfile handles PATCH /api/v1/me.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{Name: req.Name})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// List handles GET /api/v1/admin/users?limit=50&offset=0.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListUsers(r.Context(), queryInt(r, "limit", 0), queryInt(r, "offset", 0))
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	resp := userPageResponse{Users: make([]userResponse, 0, len(page.Users)), Total: page.Total}
	for _, u := range page.Users {
		resp.Users = append(resp.Users, toUserResponse(u))
	}
	writeJSON(w, http.StatusOK, resp)
}

// SetRole handles PUT /api/v1/admin/users/{id}/role.
func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	var req setRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.SetUserRole(r.Context(), user.SetRoleInput{
		UserID: id,
		Role:   domain.Role(req.Role),
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// SetActive handles PUT /api/v1/admin/users/{id}/active.
func (h *UserHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	var req setActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.SetUserActive(r.Context(), user.SetActiveInput{
		UserID: id,
		Active: req.Active,
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}
