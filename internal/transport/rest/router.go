package rest

import "net/http"

// Handlers bundles all REST handlers served by the router.
type Handlers struct {
	Auth       *AuthHandler
	Article    *ArticleHandler
	Project    *ProjectHandler
	Startup    *StartupHandler
	Internship *InternshipHandler
	User       *UserHandler
	Health     *HealthHandler
}

// NewRouter builds the route table. Authentication and the rest of the
// middleware chain wrap the returned mux in the app, not here.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	// Probes.
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	// Auth.
	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("POST /auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /auth/logout", h.Auth.Logout)
	mux.HandleFunc("POST /auth/logout-all", h.Auth.LogoutAll)

	// Users.
	mux.HandleFunc("GET /users/me", h.User.Me)
	mux.HandleFunc("PATCH /users/me", h.User.UpdateMe)
	mux.HandleFunc("POST /admin/users/{id}/role", h.User.SetRole)

	// Articles.
	mux.HandleFunc("GET /articles", h.Article.List)
	mux.HandleFunc("GET /articles/{slug}", h.Article.GetBySlug)
	mux.HandleFunc("GET /articles/{id}/related", h.Article.Related)
	mux.HandleFunc("GET /admin/articles", h.Article.AdminList)
	mux.HandleFunc("POST /admin/articles", h.Article.Create)
	mux.HandleFunc("PATCH /admin/articles/{id}", h.Article.Update)
	mux.HandleFunc("DELETE /admin/articles/{id}", h.Article.Delete)
	mux.HandleFunc("POST /admin/articles/{id}/publish", h.Article.Publish)
	mux.HandleFunc("POST /admin/articles/{id}/schedule", h.Article.Schedule)

	// Projects.
	mux.HandleFunc("GET /projects", h.Project.List)
	mux.HandleFunc("POST /projects", h.Project.Create)
	mux.HandleFunc("GET /projects/{slug}", h.Project.GetBySlug)
	mux.HandleFunc("PATCH /projects/{id}", h.Project.Update)
	mux.HandleFunc("POST /projects/{id}/submit", h.Project.Submit)
	mux.HandleFunc("POST /projects/{id}/media", h.Project.AttachMedia)
	mux.HandleFunc("GET /projects/{id}/media", h.Project.ListMedia)
	mux.HandleFunc("POST /projects/{id}/flag", h.Project.Flag)
	mux.HandleFunc("GET /admin/projects", h.Project.AdminList)
	mux.HandleFunc("POST /admin/projects/{id}/approve", h.Project.Approve)
	mux.HandleFunc("POST /admin/projects/{id}/reject", h.Project.Reject)
	mux.HandleFunc("POST /admin/projects/{id}/request-changes", h.Project.RequestChanges)
	mux.HandleFunc("GET /admin/projects/flags", h.Project.ListFlags)
	mux.HandleFunc("POST /admin/projects/flags/{id}/resolve", h.Project.ResolveFlag)

	// Startups.
	mux.HandleFunc("GET /startups", h.Startup.List)
	mux.HandleFunc("POST /startups", h.Startup.Create)
	mux.HandleFunc("GET /startups/{slug}", h.Startup.GetBySlug)
	mux.HandleFunc("PATCH /startups/{id}", h.Startup.Update)
	mux.HandleFunc("POST /startups/{id}/submit", h.Startup.Submit)
	mux.HandleFunc("GET /admin/startups", h.Startup.ReviewList)
	mux.HandleFunc("POST /admin/startups/{id}/decision", h.Startup.Decide)
	mux.HandleFunc("POST /admin/startups/{id}/feature", h.Startup.SetFeatured)

	// Internship applications.
	mux.HandleFunc("POST /internships/applications", h.Internship.Apply)
	mux.HandleFunc("GET /internships/applications/me", h.Internship.GetMine)
	mux.HandleFunc("GET /internships/applications/{id}/status", h.Internship.Status)
	mux.HandleFunc("PATCH /internships/applications/{id}", h.Internship.Update)
	mux.HandleFunc("POST /internships/applications/{id}/submit", h.Internship.Submit)
	mux.HandleFunc("GET /admin/internships/applications", h.Internship.List)
	mux.HandleFunc("GET /admin/internships/applications/export", h.Internship.Export)
	mux.HandleFunc("POST /admin/internships/applications/{id}/advance", h.Internship.Advance)
	mux.HandleFunc("POST /admin/internships/applications/{id}/score", h.Internship.Score)
	mux.HandleFunc("POST /admin/internships/applications/bulk-status", h.Internship.BulkAdvance)

	return mux
}
