package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
	"github.com/launchhub/launchpad-backend/internal/service/project"
	"github.com/launchhub/launchpad-backend/pkg/ctxutil"
)

// Uploads above this size are rejected before reading the body.
const maxUploadBytes = 10 << 20

// projectService defines the minimal interface needed by ProjectHandler.
type projectService interface {
	Create(ctx context.Context, actor domain.Actor, input project.CreateInput) (*domain.Project, error)
	Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Project, error)
	GetBySlug(ctx context.Context, actor domain.Actor, slug string) (*domain.Project, error)
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input project.UpdateInput) (*domain.Project, error)
	Submit(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Project, error)
	Approve(ctx context.Context, actor domain.Actor, id uuid.UUID, input project.ApproveInput) (*domain.Project, error)
	Reject(ctx context.Context, actor domain.Actor, id uuid.UUID, input project.ModerateInput) (*domain.Project, error)
	RequestChanges(ctx context.Context, actor domain.Actor, id uuid.UUID, input project.ModerateInput) (*domain.Project, error)
	AttachMedia(ctx context.Context, actor domain.Actor, projectID uuid.UUID, input project.AttachMediaInput) (*domain.ProjectMedia, error)
	ListMedia(ctx context.Context, actor domain.Actor, projectID uuid.UUID) ([]domain.ProjectMedia, error)
	Flag(ctx context.Context, actor domain.Actor, projectID uuid.UUID, input project.FlagInput) (*domain.ProjectFlag, error)
	ListFlags(ctx context.Context, actor domain.Actor, unresolvedOnly bool) ([]domain.ProjectFlag, error)
	ResolveFlag(ctx context.Context, actor domain.Actor, flagID uuid.UUID) error
	List(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, domain.PageMeta, error)
	AdminList(ctx context.Context, actor domain.Actor, f domain.ProjectFilter) ([]domain.Project, domain.PageMeta, error)
}

// ProjectHandler serves project REST endpoints.
type ProjectHandler struct {
	svc projectService
	log *slog.Logger
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc projectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: logger.With("handler", "project")}
}

type projectRequest struct {
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	TeamName    string   `json:"teamName"`
	Description *string  `json:"description"`
	TeamMembers *string  `json:"teamMembers"`
	DemoLink    *string  `json:"demoLink"`
	RepoLink    *string  `json:"repoLink"`
	Stack       []string `json:"stack"`
	Country     *string  `json:"country"`
}

type projectUpdateRequest struct {
	Title       *string  `json:"title"`
	Summary     *string  `json:"summary"`
	TeamName    *string  `json:"teamName"`
	Description *string  `json:"description"`
	TeamMembers *string  `json:"teamMembers"`
	DemoLink    *string  `json:"demoLink"`
	RepoLink    *string  `json:"repoLink"`
	Stack       []string `json:"stack"`
	Country     *string  `json:"country"`
}

type approveRequest struct {
	Featured bool `json:"featured"`
}

type moderateRequest struct {
	Notes string `json:"notes"`
}

type flagRequest struct {
	Reason string `json:"reason"`
}

type projectResponse struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	TeamName    string     `json:"teamName"`
	Description *string    `json:"description,omitempty"`
	TeamMembers *string    `json:"teamMembers,omitempty"`
	DemoLink    *string    `json:"demoLink,omitempty"`
	RepoLink    *string    `json:"repoLink,omitempty"`
	Stack       []string   `json:"stack"`
	Country     *string    `json:"country,omitempty"`
	CoverImage  *string    `json:"coverImage,omitempty"`
	Status      string     `json:"status"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
	FeaturedAt  *time.Time `json:"featuredAt,omitempty"`
	ModNotes    *string    `json:"modNotes,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type mediaResponse struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

type flagResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	Reason    string    `json:"reason"`
	Resolved  bool      `json:"resolved"`
	CreatedAt time.Time `json:"createdAt"`
}

// List handles GET /projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	f := domain.ProjectFilter{
		Tag:     queryStr(r, "tag"),
		Team:    queryStr(r, "team"),
		Stack:   queryStr(r, "stack"),
		Country: queryStr(r, "country"),
		Page:    parsePage(r),
	}

	items, meta, err := h.svc.List(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeList(w, toProjectResponses(items), meta)
}

// GetBySlug handles GET /projects/{slug}.
func (h *ProjectHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	actor := ctxutil.ActorFromCtx(r.Context())

	p, err := h.svc.GetBySlug(r.Context(), actor, r.PathValue("slug"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// Create handles POST /projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid request body")
		return
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	p, err := h.svc.Create(r.Context(), actor, project.CreateInput{
		Title:       req.Title,
		Summary:     req.Summary,
		TeamName:    req.TeamName,
		Description: req.Description,
		TeamMembers: req.TeamMembers,
		DemoLink:    req.DemoLink,
		RepoLink:    req.RepoLink,
		Stack:       req.Stack,
		Country:     req.Country,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProjectResponse(p))
}

// Update handles PATCH /projects/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid id")
		return
	}

	var req projectUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid request body")
		return
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	p, err := h.svc.Update(r.Context(), actor, id, project.UpdateInput{
		ProjectUpdateParams: domain.ProjectUpdateParams{
			Title:       req.Title,
			Summary:     req.Summary,
			TeamName:    req.TeamName,
			Description: req.Description,
			TeamMembers: req.TeamMembers,
			DemoLink:    req.DemoLink,
			RepoLink:    req.RepoLink,
			Stack:       req.Stack,
			Country:     req.Country,
		},
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// Submit handles POST /projects/{id}/submit.
func (h *ProjectHandler) Submit(w http.ResponseWriter, r *http.Request) {
	h.runTransition(w, r, h.svc.Submit)
}

// Approve handles POST /admin/projects/{id}/approve.
func (h *ProjectHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid id")
		return
	}

	var req approveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid request body")
		return
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	p, err := h.svc.Approve(r.Context(), actor, id, project.ApproveInput{Featured: req.Featured})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// Reject handles POST /admin/projects/{id}/reject.
func (h *ProjectHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.runModeration(w, r, h.svc.Reject)
}

// RequestChanges handles POST /admin/projects/{id}/request-changes.
func (h *ProjectHandler) RequestChanges(w http.ResponseWriter, r *http.Request) {
	h.runModeration(w, r, h.svc.RequestChanges)
}

// AttachMedia handles POST /projects/{id}/media. The body is the raw file;
// metadata rides in headers and query params.
func (h *ProjectHandler) AttachMedia(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid id")
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "unreadable request body")
		return
	}
	if len(data) > maxUploadBytes {
		writeError(w, http.StatusRequestEntityTooLarge, codeUnprocessable, "file too large")
		return
	}

	mediaType := domain.MediaImage
	if v := r.URL.Query().Get("type"); v != "" {
		mediaType = domain.MediaType(v)
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	m, err := h.svc.AttachMedia(r.Context(), actor, id, project.AttachMediaInput{
		FileName:    r.URL.Query().Get("filename"),
		ContentType: r.Header.Get("Content-Type"),
		Data:        data,
		Type:        mediaType,
		SetAsCover:  r.URL.Query().Get("cover") == "true",
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMediaResponse(m))
}

// ListMedia handles GET /projects/{id}/media.
func (h *ProjectHandler) ListMedia(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid id")
		return
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	items, err := h.svc.ListMedia(r.Context(), actor, id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]mediaResponse, 0, len(items))
	for i := range items {
		out = append(out, toMediaResponse(&items[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": out})
}

// Flag handles POST /projects/{id}/flag.
func (h *ProjectHandler) Flag(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid id")
		return
	}

	var req flagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid request body")
		return
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	f, err := h.svc.Flag(r.Context(), actor, id, project.FlagInput{Reason: req.Reason})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFlagResponse(f))
}

// ListFlags handles GET /admin/projects/flags.
func (h *ProjectHandler) ListFlags(w http.ResponseWriter, r *http.Request) {
	unresolvedOnly := r.URL.Query().Get("unresolved") == "true"

	actor := ctxutil.ActorFromCtx(r.Context())
	items, err := h.svc.ListFlags(r.Context(), actor, unresolvedOnly)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]flagResponse, 0, len(items))
	for i := range items {
		out = append(out, toFlagResponse(&items[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": out})
}

// ResolveFlag handles POST /admin/projects/flags/{id}/resolve.
func (h *ProjectHandler) ResolveFlag(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid id")
		return
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	if err := h.svc.ResolveFlag(r.Context(), actor, id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// AdminList handles GET /admin/projects.
func (h *ProjectHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	f := domain.ProjectFilter{
		Tag:     queryStr(r, "tag"),
		Team:    queryStr(r, "team"),
		Stack:   queryStr(r, "stack"),
		Country: queryStr(r, "country"),
		Status:  queryStatus(r),
		Page:    parsePage(r),
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	items, meta, err := h.svc.AdminList(r.Context(), actor, f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeList(w, toProjectResponses(items), meta)
}

func (h *ProjectHandler) runTransition(w http.ResponseWriter, r *http.Request, fn func(context.Context, domain.Actor, uuid.UUID) (*domain.Project, error)) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid id")
		return
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	p, err := fn(r.Context(), actor, id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

func (h *ProjectHandler) runModeration(w http.ResponseWriter, r *http.Request, fn func(context.Context, domain.Actor, uuid.UUID, project.ModerateInput) (*domain.Project, error)) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid id")
		return
	}

	var req moderateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid request body")
		return
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	p, err := fn(r.Context(), actor, id, project.ModerateInput{Notes: req.Notes})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:          p.ID.String(),
		Slug:        p.Slug,
		Title:       p.Title,
		Summary:     p.Summary,
		TeamName:    p.TeamName,
		Description: p.Description,
		TeamMembers: p.TeamMembers,
		DemoLink:    p.DemoLink,
		RepoLink:    p.RepoLink,
		Stack:       p.Stack,
		Country:     p.Country,
		CoverImage:  p.CoverImage,
		Status:      p.Status.String(),
		SubmittedAt: p.SubmittedAt,
		FeaturedAt:  p.FeaturedAt,
		ModNotes:    p.ModNotes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProjectResponses(items []domain.Project) []projectResponse {
	out := make([]projectResponse, 0, len(items))
	for i := range items {
		out = append(out, toProjectResponse(&items[i]))
	}
	return out
}

func toMediaResponse(m *domain.ProjectMedia) mediaResponse {
	return mediaResponse{
		ID:        m.ID.String(),
		URL:       m.URL,
		Type:      m.Type.String(),
		CreatedAt: m.CreatedAt,
	}
}

func toFlagResponse(f *domain.ProjectFlag) flagResponse {
	return flagResponse{
		ID:        f.ID.String(),
		ProjectID: f.ProjectID.String(),
		Reason:    f.Reason,
		Resolved:  f.Resolved,
		CreatedAt: f.CreatedAt,
	}
}
