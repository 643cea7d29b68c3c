package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/didivui/phongnha-backend/internal/domain"
	"github.com/didivui/phongnha-backend/internal/service/business"
)

// businessService defines the minimal interface needed by BusinessHandler.
type businessService interface {
	List(ctx context.Context, input business.ListInput) ([]*domain.Business, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	Create(ctx context.Context, input business.CreateInput) (*domain.Business, error)
	Update(ctx context.Context, input business.UpdateInput) (*domain.Business, error)
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) (*domain.Business, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Like(ctx context.Context, businessID uuid.UUID) error
	Unlike(ctx context.Context, businessID uuid.UUID) error
}

// BusinessHandler serves the business directory endpoints.
type BusinessHandler struct {
	svc businessService
	log *slog.Logger
}

// NewBusinessHandler creates a BusinessHandler.
func NewBusinessHandler(svc businessService, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{svc: svc, log: logger.With("handler", "business")}
}

type businessRequest struct {
	CategoryID  uuid.UUID `json:"categoryId"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Address     *string   `json:"address,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Website     *string   `json:"website,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
}

type verifyRequest struct {
	Verified bool `json:"verified"`
}

type businessResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	CategoryID  string    `json:"categoryId"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Address     *string   `json:"address,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Website     *string   `json:"website,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Verified    bool      `json:"verified"`
	LikeCount   int       `json:"likeCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// List handles GET /api/v1/businesses. Anyone may list; only admins see
// unverified listings, and only when they ask.
func (h *BusinessHandler) List(w http.ResponseWriter, r *http.Request) {
	input := business.ListInput{
		IncludeUnverified: r.URL.Query().Get("includeUnverified") == "true",
		Limit:             queryInt(r, "limit", 0),
		Offset:            queryInt(r, "offset", 0),
	}
	if v := r.URL.Query().Get("categoryId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "categoryId must be a valid UUID")
			return
		}
		input.CategoryID = &id
	}

	listings, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	resp := make([]businessResponse, 0, len(listings))
	for _, b := range listings {
		resp = append(resp, toBusinessResponse(b))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/businesses/{id}.
func (h *BusinessHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBusinessResponse(b))
}

// Create handles POST /api/v1/businesses.
func (h *BusinessHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req businessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.svc.Create(r.Context(), business.CreateInput{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		Website:     req.Website,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBusinessResponse(b))
}

// Update handles PUT /api/v1/businesses/{id}.
func (h *BusinessHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	var req businessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.svc.Update(r.Context(), business.UpdateInput{
		BusinessID:  id,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		Website:     req.Website,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBusinessResponse(b))
}

// Verify handles POST /api/v1/admin/businesses/{id}/verify.
func (h *BusinessHandler) Verify(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.svc.SetVerified(r.Context(), id, req.Verified)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBusinessResponse(b))
}

// Delete handles DELETE /api/v1/businesses/{id}.
func (h *BusinessHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Like handles POST /api/v1/businesses/{id}/like.
func (h *BusinessHandler) Like(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	if err := h.svc.Like(r.Context(), id); err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Unlike handles DELETE /api/v1/businesses/{id}/like.
func (h *BusinessHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	if err := h.svc.Unlike(r.Context(), id); err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toBusinessResponse(b *domain.Business) businessResponse {
	return businessResponse{
		ID:          b.ID.String(),
		OwnerID:     b.OwnerID.String(),
		CategoryID:  b.CategoryID.String(),
		Name:        b.Name,
		Description: b.Description,
		Address:     b.Address,
		Phone:       b.Phone,
		Website:     b.Website,
		Latitude:    b.Latitude,
		Longitude:   b.Longitude,
		Verified:    b.Verified,
		LikeCount:   b.LikeCount,
		CreatedAt:   b.CreatedAt,
	}
}
