package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/launchhub/launchpad-backend/internal/adapter/media"
	"github.com/launchhub/launchpad-backend/internal/adapter/postgres"
	articlerepo "github.com/launchhub/launchpad-backend/internal/adapter/postgres/article"
	internshiprepo "github.com/launchhub/launchpad-backend/internal/adapter/postgres/internship"
	projectrepo "github.com/launchhub/launchpad-backend/internal/adapter/postgres/project"
	startuprepo "github.com/launchhub/launchpad-backend/internal/adapter/postgres/startup"
	tokenrepo "github.com/launchhub/launchpad-backend/internal/adapter/postgres/token"
	userrepo "github.com/launchhub/launchpad-backend/internal/adapter/postgres/user"
	authpkg "github.com/launchhub/launchpad-backend/internal/auth"
	"github.com/launchhub/launchpad-backend/internal/config"
	"github.com/launchhub/launchpad-backend/internal/domain"
	articlesvc "github.com/launchhub/launchpad-backend/internal/service/article"
	authsvc "github.com/launchhub/launchpad-backend/internal/service/auth"
	internshipsvc "github.com/launchhub/launchpad-backend/internal/service/internship"
	projectsvc "github.com/launchhub/launchpad-backend/internal/service/project"
	startupsvc "github.com/launchhub/launchpad-backend/internal/service/startup"
	usersvc "github.com/launchhub/launchpad-backend/internal/service/user"
	"github.com/launchhub/launchpad-backend/internal/transport/middleware"
	"github.com/launchhub/launchpad-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services, and handlers, and serves
// HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	articles := articlerepo.New(pool)
	projects := projectrepo.New(pool)
	startups := startuprepo.New(pool)
	internships := internshiprepo.New(pool)
	tx := postgres.NewTxManager(pool)

	mediaStore, err := media.NewDiskStore(cfg.Media)
	if err != nil {
		return fmt.Errorf("init media store: %w", err)
	}

	jwtManager := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	engine := domain.NewEngine()

	authService := authsvc.NewService(logger, users, tokens, tx, jwtManager, cfg.Auth)
	articleService := articlesvc.NewService(logger, articles, engine)
	projectService := projectsvc.NewService(logger, projects, mediaStore, engine)
	startupService := startupsvc.NewService(logger, startups, engine)
	internshipService := internshipsvc.NewService(logger, internships, engine, cfg.Submissions)
	userService := usersvc.NewService(logger, users)

	mux := rest.NewRouter(rest.Handlers{
		Auth:       rest.NewAuthHandler(authService, logger),
		Article:    rest.NewArticleHandler(articleService, logger),
		Project:    rest.NewProjectHandler(projectService, logger),
		Startup:    rest.NewStartupHandler(startupService, logger),
		Internship: rest.NewInternshipHandler(internshipService, logger),
		User:       rest.NewUserHandler(userService, logger),
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
	})

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(time.Minute)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.RateLimit))
	}
	mws = append(mws, middleware.Auth(authService))

	handler := middleware.Chain(mws...)(mux)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
