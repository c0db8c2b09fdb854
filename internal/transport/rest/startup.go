package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
	"github.com/launchhub/launchpad-backend/internal/service/startup"
	"github.com/launchhub/launchpad-backend/pkg/ctxutil"
)

// startupService defines the minimal interface needed by StartupHandler.
type startupService interface {
	Create(ctx context.Context, actor domain.Actor, input startup.CreateInput) (*domain.Startup, error)
	Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Startup, error)
	GetBySlug(ctx context.Context, actor domain.Actor, slug string) (*domain.Startup, error)
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input startup.UpdateInput) (*domain.Startup, error)
	Submit(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Startup, error)
	Decide(ctx context.Context, actor domain.Actor, id uuid.UUID, input startup.DecisionInput) (*domain.Startup, error)
	SetFeatured(ctx context.Context, actor domain.Actor, id uuid.UUID, featured bool) error
	List(ctx context.Context, f domain.StartupFilter) ([]domain.Startup, domain.PageMeta, error)
	ReviewList(ctx context.Context, actor domain.Actor, f domain.StartupFilter) ([]domain.Startup, domain.PageMeta, error)
}

// StartupHandler serves startup directory REST endpoints.
type StartupHandler struct {
	svc startupService
	log *slog.Logger
}

// NewStartupHandler creates a StartupHandler.
func NewStartupHandler(svc startupService, logger *slog.Logger) *StartupHandler {
	return &StartupHandler{svc: svc, log: logger.With("handler", "startup")}
}

type startupRequest struct {
	Name     string   `json:"name"`
	Pitch    *string  `json:"pitch"`
	Industry *string  `json:"industry"`
	Stage    *string  `json:"stage"`
	Country  *string  `json:"country"`
	Tags     []string `json:"tags"`
}

type startupUpdateRequest struct {
	Name     *string  `json:"name"`
	Pitch    *string  `json:"pitch"`
	Industry *string  `json:"industry"`
	Stage    *string  `json:"stage"`
	Country  *string  `json:"country"`
	Tags     []string `json:"tags"`
}

type decisionRequest struct {
	Target string `json:"target"`
	Notes  string `json:"notes"`
}

type featureRequest struct {
	Featured bool `json:"featured"`
}

type startupResponse struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Name        string     `json:"name"`
	Pitch       *string    `json:"pitch,omitempty"`
	Industry    *string    `json:"industry,omitempty"`
	Stage       *string    `json:"stage,omitempty"`
	Country     *string    `json:"country,omitempty"`
	Tags        []string   `json:"tags"`
	Featured    bool       `json:"featured"`
	Status      string     `json:"status"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
	ModNotes    *string    `json:"modNotes,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// List handles GET /startups.
func (h *StartupHandler) List(w http.ResponseWriter, r *http.Request) {
	f := domain.StartupFilter{
		Tag:      queryStr(r, "tag"),
		Stage:    queryStr(r, "stage"),
		Country:  queryStr(r, "country"),
		Industry: queryStr(r, "industry"),
		Page:     parsePage(r),
	}

	items, meta, err := h.svc.List(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeList(w, toStartupResponses(items), meta)
}

// GetBySlug handles GET /startups/{slug}.
func (h *StartupHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	actor := ctxutil.ActorFromCtx(r.Context())

	s, err := h.svc.GetBySlug(r.Context(), actor, r.PathValue("slug"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStartupResponse(s))
}

// Create handles POST /startups.
func (h *StartupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req startupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid request body")
		return
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	s, err := h.svc.Create(r.Context(), actor, startup.CreateInput{
		Name:     req.Name,
		Pitch:    req.Pitch,
		Industry: req.Industry,
		Stage:    req.Stage,
		Country:  req.Country,
		Tags:     req.Tags,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toStartupResponse(s))
}

// Update handles PATCH /startups/{id}.
func (h *StartupHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid id")
		return
	}

	var req startupUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid request body")
		return
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	s, err := h.svc.Update(r.Context(), actor, id, startup.UpdateInput{
		StartupUpdateParams: domain.StartupUpdateParams{
			Name:     req.Name,
			Pitch:    req.Pitch,
			Industry: req.Industry,
			Stage:    req.Stage,
			Country:  req.Country,
			Tags:     req.Tags,
		},
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStartupResponse(s))
}

// Submit handles POST /startups/{id}/submit.
func (h *StartupHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid id")
		return
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	s, err := h.svc.Submit(r.Context(), actor, id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStartupResponse(s))
}

// Decide handles POST /admin/startups/{id}/decision.
func (h *StartupHandler) Decide(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid id")
		return
	}

	var req decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid request body")
		return
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	s, err := h.svc.Decide(r.Context(), actor, id, startup.DecisionInput{
		Target: domain.Status(req.Target),
		Notes:  req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStartupResponse(s))
}

// SetFeatured handles POST /admin/startups/{id}/feature.
func (h *StartupHandler) SetFeatured(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid id")
		return
	}

	var req featureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid request body")
		return
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	if err := h.svc.SetFeatured(r.Context(), actor, id, req.Featured); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ReviewList handles GET /admin/startups.
func (h *StartupHandler) ReviewList(w http.ResponseWriter, r *http.Request) {
	f := domain.StartupFilter{
		Tag:      queryStr(r, "tag"),
		Stage:    queryStr(r, "stage"),
		Country:  queryStr(r, "country"),
		Industry: queryStr(r, "industry"),
		Status:   queryStatus(r),
		Page:     parsePage(r),
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	items, meta, err := h.svc.ReviewList(r.Context(), actor, f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeList(w, toStartupResponses(items), meta)
}

func toStartupResponse(s *domain.Startup) startupResponse {
	return startupResponse{
		ID:          s.ID.String(),
		Slug:        s.Slug,
		Name:        s.Name,
		Pitch:       s.Pitch,
		Industry:    s.Industry,
		Stage:       s.Stage,
		Country:     s.Country,
		Tags:        s.Tags,
		Featured:    s.Featured,
		Status:      s.Status.String(),
		SubmittedAt: s.SubmittedAt,
		ModNotes:    s.ModNotes,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toStartupResponses(items []domain.Startup) []startupResponse {
	out := make([]startupResponse, 0, len(items))
	for i := range items {
		out = append(out, toStartupResponse(&items[i]))
	}
	return out
}
