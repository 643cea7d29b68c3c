package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/didivui/phongnha-backend/internal/domain"
	"github.com/didivui/phongnha-backend/internal/service/guestbook"
)

// guestbookService defines the minimal interface needed by GuestbookHandler.
type guestbookService interface {
	Submit(ctx context.Context, input guestbook.SubmitInput) (*domain.GuestbookEntry, error)
	ListApproved(ctx context.Context, limit, offset int) (*guestbook.QueuePage, error)
	ListQueue(ctx context.Context, input guestbook.ListQueueInput) (*guestbook.QueuePage, error)
	GetEntry(ctx context.Context, id uuid.UUID) (*domain.GuestbookEntry, error)
	Moderate(ctx context.Context, input guestbook.ModerateInput) (*domain.GuestbookEntry, error)
	Edit(ctx context.Context, input guestbook.EditInput) (*domain.GuestbookEntry, error)
}

// GuestbookHandler serves the public guestbook and the moderation queue.
type GuestbookHandler struct {
	svc guestbookService
	log *slog.Logger
}

// NewGuestbookHandler creates a GuestbookHandler.
func NewGuestbookHandler(svc guestbookService, logger *slog.Logger) *GuestbookHandler {
	return &GuestbookHandler{svc: svc, log: logger.With("handler", "guestbook")}
}

type submitEntryRequest struct {
	AuthorName     string     `json:"authorName"`
	Message        string     `json:"message"`
	Nationality    *string    `json:"nationality,omitempty"`
	Location       *string    `json:"location,omitempty"`
	RelatedPlaceID *uuid.UUID `json:"relatedPlaceId,omitempty"`
	Rating         *int       `json:"rating,omitempty"`
}

type moderateEntryRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}

type editEntryRequest struct {
	Message        *string    `json:"message,omitempty"`
	Nationality    *string    `json:"nationality,omitempty"`
	Location       *string    `json:"location,omitempty"`
	RelatedPlaceID *uuid.UUID `json:"relatedPlaceId,omitempty"`
	Rating         *int       `json:"rating,omitempty"`
}

type entryResponse struct {
	ID              string     `json:"id"`
	AuthorName      string     `json:"authorName"`
	Message         string     `json:"message"`
	Nationality     *string    `json:"nationality,omitempty"`
	Location        *string    `json:"location,omitempty"`
	RelatedPlaceID  *uuid.UUID `json:"relatedPlaceId,omitempty"`
	Rating          *int       `json:"rating,omitempty"`
	SpamScore       *float64   `json:"spamScore,omitempty"`
	Status          string     `json:"status"`
	ModerationNotes *string    `json:"moderationNotes,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	ModeratedAt     *time.Time `json:"moderatedAt,omitempty"`
	ModeratedBy     *uuid.UUID `json:"moderatedBy,omitempty"`
}

type entryPageResponse struct {
	Entries []entryResponse `json:"entries"`
	Total   int             `json:"total"`
}

// Submit handles POST /api/v1/guestbook. Public; the entry lands in the
// moderation queue as pending.
func (h *GuestbookHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.Submit(r.Context(), guestbook.SubmitInput{
		AuthorName:     req.AuthorName,
		Message:        req.Message,
		Nationality:    req.Nationality,
		Location:       req.Location,
		RelatedPlaceID: req.RelatedPlaceID,
		Rating:         req.Rating,
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPublicEntryResponse(entry))
}

// ListApproved handles GET /api/v1/guestbook?limit=20&offset=0. Public.
func (h *GuestbookHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListApproved(r.Context(), queryInt(r, "limit", 0), queryInt(r, "offset", 0))
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	resp := entryPageResponse{Entries: make([]entryResponse, 0, len(page.Entries)), Total: page.Total}
	for _, e := range page.Entries {
		resp.Entries = append(resp.Entries, toPublicEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Queue handles GET /api/v1/admin/guestbook?status=pending&limit=50&offset=0.
func (h *GuestbookHandler) Queue(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = domain.EntryStatusPending.String()
	}

	page, err := h.svc.ListQueue(r.Context(), guestbook.ListQueueInput{
		Status: domain.EntryStatus(status),
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	resp := entryPageResponse{Entries: make([]entryResponse, 0, len(page.Entries)), Total: page.Total}
	for _, e := range page.Entries {
		resp.Entries = append(resp.Entries, toEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/admin/guestbook/{id}.
func (h *GuestbookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	entry, err := h.svc.GetEntry(r.Context(), id)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Moderate handles POST /api/v1/admin/guestbook/{id}/moderate.
func (h *GuestbookHandler) Moderate(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	var req moderateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.Moderate(r.Context(), guestbook.ModerateInput{
		EntryID: id,
		Status:  domain.EntryStatus(req.Status),
		Notes:   req.Notes,
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Edit handles PATCH /api/v1/admin/guestbook/{id}. Content only; the
// moderation status is untouchable from here.
func (h *GuestbookHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	var req editEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.Edit(r.Context(), guestbook.EditInput{
		EntryID: id,
		Patch: domain.EntryPatch{
			Message:        req.Message,
			Nationality:    req.Nationality,
			Location:       req.Location,
			RelatedPlaceID: req.RelatedPlaceID,
			Rating:         req.Rating,
		},
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

func toEntryResponse(e *domain.GuestbookEntry) entryResponse {
	return entryResponse{
		ID:              e.ID.String(),
		AuthorName:      e.AuthorName,
		Message:         e.Message,
		Nationality:     e.Nationality,
		Location:        e.Location,
		RelatedPlaceID:  e.RelatedPlaceID,
		Rating:          e.Rating,
		SpamScore:       e.SpamScore,
		Status:          e.Status.String(),
		ModerationNotes: e.ModerationNotes,
		CreatedAt:       e.CreatedAt,
		ModeratedAt:     e.ModeratedAt,
		ModeratedBy:     e.ModeratedBy,
	}
}

// toPublicEntryResponse strips moderation internals from entries shown
// on the public site.
func toPublicEntryResponse(e *domain.GuestbookEntry) entryResponse {
	resp := toEntryResponse(e)
	resp.SpamScore = nil
	resp.ModerationNotes = nil
	resp.ModeratedBy = nil
	resp.ModeratedAt = nil
	return resp
}
