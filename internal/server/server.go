package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/thomas-vilte/mateforge/internal/config"
	"github.com/thomas-vilte/mateforge/internal/i18n"
	"github.com/thomas-vilte/mateforge/internal/logger"
	"github.com/thomas-vilte/mateforge/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// Server is the HTTP front door. It owns no domain state; every handler
// decodes, validates, extracts the caller's credential and delegates to a
// service.
type Server struct {
	cfg          *config.Config
	translations *i18n.Translations
	pullRequests PullRequestCreator
	issues       IssueManager
	suggestions  FixSuggester
	repositories RepositoryManager
}

type Option func(*Server)

func WithConfig(cfg *config.Config) Option {
	return func(s *Server) {
		s.cfg = cfg
	}
}

func WithTranslations(translations *i18n.Translations) Option {
	return func(s *Server) {
		s.translations = translations
	}
}

func WithPullRequestCreator(creator PullRequestCreator) Option {
	return func(s *Server) {
		s.pullRequests = creator
	}
}

func WithIssueManager(manager IssueManager) Option {
	return func(s *Server) {
		s.issues = manager
	}
}

func WithFixSuggester(suggester FixSuggester) Option {
	return func(s *Server) {
		s.suggestions = suggester
	}
}

func WithRepositoryManager(manager RepositoryManager) Option {
	return func(s *Server) {
		s.repositories = manager
	}
}

func New(opts ...Option) *Server {
	s := &Server{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router assembles the middleware chain and the route table. Exposed so
// tests can drive the full stack through httptest.
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()

	router.Use(requestID)
	router.Use(requestLogger)
	router.Use(recoverer)
	router.Use(observeRequests)

	router.Post("/create-pull-request", s.handleCreatePullRequest)
	router.Post("/create-issue", s.handleCreateIssue)
	router.Patch("/issues/update", s.handleUpdateIssue)
	router.Get("/issues/list", s.handleListIssues)
	router.Post("/suggest-fix", s.handleSuggestFix)
	router.Post("/repos/create", s.handleCreateRepository)
	router.Delete("/repos/delete", s.handleDeleteRepository)
	router.Post("/branches/create", s.handleCreateBranch)
	router.Get("/health", s.handleHealth)
	router.Get("/", s.handleRoot)
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	return router
}

// Run serves until ctx is canceled, then drains in-flight requests within
// the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info(ctx, "http server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		logger.Info(ctx, "shutting down http server")
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
