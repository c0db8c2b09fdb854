package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
	"github.com/launchhub/launchpad-backend/internal/service/article"
	"github.com/launchhub/launchpad-backend/pkg/ctxutil"
)

// articleService defines the minimal interface needed by ArticleHandler.
type articleService interface {
	Create(ctx context.Context, actor domain.Actor, input article.CreateInput) (*domain.Article, error)
	Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Article, error)
	GetBySlug(ctx context.Context, actor domain.Actor, slug string) (*domain.Article, error)
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input article.UpdateInput) (*domain.Article, error)
	Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error
	Publish(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Article, error)
	Schedule(ctx context.Context, actor domain.Actor, id uuid.UUID, input article.ScheduleInput) (*domain.Article, error)
	Related(ctx context.Context, actor domain.Actor, id uuid.UUID, limit int) ([]domain.Article, error)
	List(ctx context.Context, f domain.ArticleFilter) ([]domain.Article, domain.PageMeta, error)
	AdminList(ctx context.Context, actor domain.Actor, f domain.ArticleFilter) ([]domain.Article, domain.PageMeta, error)
}

// ArticleHandler serves article REST endpoints.
type ArticleHandler struct {
	svc articleService
	log *slog.Logger
}

// NewArticleHandler creates an ArticleHandler.
func NewArticleHandler(svc articleService, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{svc: svc, log: logger.With("handler", "article")}
}

type articleRequest struct {
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	Summary         *string  `json:"summary"`
	FeaturedImage   *string  `json:"featuredImage"`
	MetaTitle       *string  `json:"metaTitle"`
	MetaDescription *string  `json:"metaDescription"`
	CategorySlug    *string  `json:"categorySlug"`
	CategoryName    *string  `json:"categoryName"`
	Tags            []string `json:"tags"`
}

type articleUpdateRequest struct {
	Title           *string  `json:"title"`
	Content         *string  `json:"content"`
	Summary         *string  `json:"summary"`
	FeaturedImage   *string  `json:"featuredImage"`
	MetaTitle       *string  `json:"metaTitle"`
	MetaDescription *string  `json:"metaDescription"`
	CategorySlug    *string  `json:"categorySlug"`
	CategoryName    *string  `json:"categoryName"`
	Tags            []string `json:"tags"`
}

type scheduleRequest struct {
	PublishAt time.Time `json:"publishAt"`
}

type articleResponse struct {
	ID            string     `json:"id"`
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Content       string     `json:"content,omitempty"`
	Summary       *string    `json:"summary,omitempty"`
	FeaturedImage *string    `json:"featuredImage,omitempty"`
	CategorySlug  *string    `json:"categorySlug,omitempty"`
	CategoryName  *string    `json:"categoryName,omitempty"`
	Tags          []string   `json:"tags"`
	Status        string     `json:"status"`
	PublishedAt   *time.Time `json:"publishedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// List handles GET /articles.
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	f := domain.ArticleFilter{
		Tag:      queryStr(r, "tag"),
		Category: queryStr(r, "category"),
		Page:     parsePage(r),
	}

	items, meta, err := h.svc.List(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeList(w, toArticleResponses(items), meta)
}

// GetBySlug handles GET /articles/{slug}.
func (h *ArticleHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	actor := ctxutil.ActorFromCtx(r.Context())

	a, err := h.svc.GetBySlug(r.Context(), actor, r.PathValue("slug"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toArticleResponse(a))
}

// Related handles GET /articles/{id}/related.
func (h *ArticleHandler) Related(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid id")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	items, err := h.svc.Related(r.Context(), actor, id, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": toArticleResponses(items)})
}

// AdminList handles GET /admin/articles.
func (h *ArticleHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	f := domain.ArticleFilter{
		Tag:      queryStr(r, "tag"),
		Category: queryStr(r, "category"),
		Status:   queryStatus(r),
		Page:     parsePage(r),
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	items, meta, err := h.svc.AdminList(r.Context(), actor, f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeList(w, toArticleResponses(items), meta)
}

// Create handles POST /admin/articles.
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req articleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid request body")
		return
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	a, err := h.svc.Create(r.Context(), actor, article.CreateInput{
		Title:           req.Title,
		Content:         req.Content,
		Summary:         req.Summary,
		FeaturedImage:   req.FeaturedImage,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		CategorySlug:    req.CategorySlug,
		CategoryName:    req.CategoryName,
		Tags:            req.Tags,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toArticleResponse(a))
}

// Update handles PATCH /admin/articles/{id}.
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid id")
		return
	}

	var req articleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid request body")
		return
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	a, err := h.svc.Update(r.Context(), actor, id, article.UpdateInput{
		ArticleUpdateParams: domain.ArticleUpdateParams{
			Title:           req.Title,
			Content:         req.Content,
			Summary:         req.Summary,
			FeaturedImage:   req.FeaturedImage,
			MetaTitle:       req.MetaTitle,
			MetaDescription: req.MetaDescription,
			CategorySlug:    req.CategorySlug,
			CategoryName:    req.CategoryName,
			Tags:            req.Tags,
		},
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toArticleResponse(a))
}

// Delete handles DELETE /admin/articles/{id}.
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid id")
		return
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	if err := h.svc.Delete(r.Context(), actor, id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Publish handles POST /admin/articles/{id}/publish.
func (h *ArticleHandler) Publish(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid id")
		return
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	a, err := h.svc.Publish(r.Context(), actor, id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toArticleResponse(a))
}

// Schedule handles POST /admin/articles/{id}/schedule.
func (h *ArticleHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid id")
		return
	}

	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeUnprocessable, "invalid request body")
		return
	}

	actor := ctxutil.ActorFromCtx(r.Context())
	a, err := h.svc.Schedule(r.Context(), actor, id, article.ScheduleInput{PublishAt: req.PublishAt})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toArticleResponse(a))
}

func toArticleResponse(a *domain.Article) articleResponse {
	return articleResponse{
		ID:            a.ID.String(),
		Slug:          a.Slug,
		Title:         a.Title,
		Content:       a.Content,
		Summary:       a.Summary,
		FeaturedImage: a.FeaturedImage,
		CategorySlug:  a.CategorySlug,
		CategoryName:  a.CategoryName,
		Tags:          a.Tags,
		Status:        a.Status.String(),
		PublishedAt:   a.PublishedAt,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func toArticleResponses(items []domain.Article) []articleResponse {
	out := make([]articleResponse, 0, len(items))
	for i := range items {
		out = append(out, toArticleResponse(&items[i]))
	}
	return out
}
