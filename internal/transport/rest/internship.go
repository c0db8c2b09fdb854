package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
	"github.com/launchhub/launchpad-backend/internal/service/internship"
	"github.com/launchhub/launchpad-backend/pkg/ctxutil"
)

// internshipService defines the minimal interface needed by InternshipHandler.
type internshipService interface {
	Apply(ctx context.Context, actor domain.Actor, input internship.ApplyInput) (*domain.InternshipApplication, error)
	Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.InternshipApplication, error)
	GetMine(ctx context.Context, actor domain.Actor) (*domain.InternshipApplication, error)
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input internship.UpdateInput) (*domain.InternshipApplication, error)
	Submit(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.InternshipApplication, error)
	Advance(ctx context.Context, actor domain.Actor, id uuid.UUID, input internship.AdvanceInput) (*domain.InternshipApplication, error)
	Score(ctx context.Context, actor domain.Actor, id uuid.UUID, input internship.ScoreInput) error
	BulkAdvance(ctx context.Context, actor domain.Actor, input internship.BulkStatusInput) (int, error)
	List(ctx context.Context, actor domain.Actor, f domain.InternshipFilter) ([]domain.InternshipApplication, domain.PageMeta, error)
	ExportCSV(ctx context.Context, actor domain.Actor, f domain.InternshipFilter, w io.Writer) (int, error)
}

// InternshipHandler serves internship application REST endpoints.
type InternshipHandler struct {
	svc internshipService
	log *slog.Logger
}

// NewInternshipHandler creates an InternshipHandler.
func NewInternshipHandler(svc internshipService, logger *slog.Logger) *InternshipHandler {
	return &InternshipHandler{svc: svc, log: logger.With("handler", "internship")}
}

type applicationRequest struct {
	FullName    *string `json:"fullName"`
	Email       *string `json:"email"`
	University  *string `json:"university"`
	ResumeURL   *string `json:"resumeUrl"`
	CoverLetter *string `json:"coverLetter"`
}

type scoreRequest struct {
	Score int `json:"score"`
}

type advanceRequest struct {
	Target string `json:"target"`
}

type bulkStatusRequest struct {
	IDs    []string `json:"ids"`
	Target string   `json:"target"`
}

type applicationResponse struct {
	ID          string     `json:"id"`
	FullName    *string    `json:"fullName,omitempty"`
	Email       *string    `json:"email,omitempty"`
	University  *string    `json:"university,omitempty"`
	ResumeURL   *string    `json:"resumeUrl,omitempty"`
	CoverLetter *string    `json:"coverLetter,omitempty"`
	Score       *int       `json:"score,omitempty"`
	Status      string     `json:"status"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Apply handles POST /internships/applications.
func (h *InternshipHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req applicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid request body")
		return
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	app, err := h.svc.Apply(r.Context(), actor, internship.ApplyInput{
		FullName:    req.FullName,
		Email:       req.Email,
		University:  req.University,
		ResumeURL:   req.ResumeURL,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toApplicationResponse(app))
}

// GetMine handles GET /internships/applications/me.
func (h *InternshipHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	actor := ctxutil.ActorFromCtx(r.Context())

	app, err := h.svc.GetMine(r.Context(), actor)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

// Status handles GET /internships/applications/{id}/status.
func (h *InternshipHandler) Status(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid id")
		return
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	app, err := h.svc.Get(r.Context(), actor, id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": app.Status.String()})
}

// Update handles PATCH /internships/applications/{id}.
func (h *InternshipHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid id")
		return
	}

	var req applicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid request body")
		return
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	app, err := h.svc.Update(r.Context(), actor, id, internship.UpdateInput{
		InternshipUpdateParams: domain.InternshipUpdateParams{
			FullName:    req.FullName,
			Email:       req.Email,
			University:  req.University,
			ResumeURL:   req.ResumeURL,
			CoverLetter: req.CoverLetter,
		},
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

// Submit handles POST /internships/applications/{id}/submit.
func (h *InternshipHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid id")
		return
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	app, err := h.svc.Submit(r.Context(), actor, id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

// Advance handles POST /admin/internships/applications/{id}/advance.
func (h *InternshipHandler) Advance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid id")
		return
	}

	var req advanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid request body")
		return
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	app, err := h.svc.Advance(r.Context(), actor, id, internship.AdvanceInput{
		Target: domain.Status(req.Target),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

// Score handles POST /admin/internships/applications/{id}/score.
func (h *InternshipHandler) Score(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid id")
		return
	}

	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid request body")
		return
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	if err := h.svc.Score(r.Context(), actor, id, internship.ScoreInput{Score: req.Score}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// BulkAdvance handles POST /admin/internships/applications/bulk-status.
func (h *InternshipHandler) BulkAdvance(w http.ResponseWriter, r *http.Request) {
	var req bulkStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid request body")
		return
	}

	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid id in batch")
			return
		}
		ids = append(ids, id)
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	moved, err := h.svc.BulkAdvance(r.Context(), actor, internship.BulkStatusInput{
		IDs:    ids,
		Target: domain.Status(req.Target),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"moved": moved})
}

// List handles GET /admin/internships/applications.
func (h *InternshipHandler) List(w http.ResponseWriter, r *http.Request) {
	f := domain.InternshipFilter{
		Status:   queryStatus(r),
		ScoreMin: queryInt(r, "score_min"),
		Page:     parsePage(r),
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	items, meta, err := h.svc.List(r.Context(), actor, f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]applicationResponse, 0, len(items))
	for i := range items {
		out = append(out, toApplicationResponse(&items[i]))
	}
	writeList(w, out, meta)
}

// Export handles GET /admin/internships/applications/export.
func (h *InternshipHandler) Export(w http.ResponseWriter, r *http.Request) {
	f := domain.InternshipFilter{
		Status:   queryStatus(r),
		ScoreMin: queryInt(r, "score_min"),
	}

	actor := ctxutil.ActorFromCtx(r.Context())

	// Buffer the export so failures still produce a clean error envelope.
	var buf bytes.Buffer
	if _, err := h.svc.ExportCSV(r.Context(), actor, f, &buf); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="applications.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck
}

func toApplicationResponse(a *domain.InternshipApplication) applicationResponse {
	return applicationResponse{
		ID:          a.ID.String(),
		FullName:    a.FullName,
		Email:       a.Email,
		University:  a.University,
		ResumeURL:   a.ResumeURL,
		CoverLetter: a.CoverLetter,
		Score:       a.Score,
		Status:      a.Status.String(),
		SubmittedAt: a.SubmittedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
