package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/carelink-lab/carelink/frontend"
	"github.com/carelink-lab/carelink/pkg/domain/model"
	"github.com/carelink-lab/carelink/pkg/domain/types"
	"github.com/carelink-lab/carelink/pkg/metrics"
	"github.com/carelink-lab/carelink/pkg/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// UseCases bundles the use cases the HTTP layer depends on
type UseCases struct {
	portal     usecase.PortalUseCase
	shell      usecase.ShellUseCase
	onboarding usecase.OnboardingUseCase
}

// NewUseCases creates a new UseCases bundle
func NewUseCases(portal usecase.PortalUseCase, shell usecase.ShellUseCase, onboarding usecase.OnboardingUseCase) *UseCases {
	return &UseCases{
		portal:     portal,
		shell:      shell,
		onboarding: onboarding,
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

type serverOptions struct {
	metrics  *metrics.Metrics
	proxy    *Proxy
	navItems []model.NavItem
}

// Option configures the server
type Option func(*serverOptions)

// WithMetrics sets the metrics collectors. A private set is created otherwise.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *serverOptions) {
		o.metrics = m
	}
}

// WithProxy mounts the backend proxy on the backend path prefixes
func WithProxy(p *Proxy) Option {
	return func(o *serverOptions) {
		o.proxy = p
	}
}

// WithNavItems sets the menu whose pages are routed. Defaults to the patient menu.
func WithNavItems(items []model.NavItem) Option {
	return func(o *serverOptions) {
		o.navItems = items
	}
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, addr string, useCases *UseCases, opts ...Option) (*Server, error) {
	if useCases == nil || useCases.portal == nil || useCases.shell == nil || useCases.onboarding == nil {
		return nil, goerr.New("all use cases are required")
	}

	o := serverOptions{
		navItems: model.PatientNavItems(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.metrics == nil {
		o.metrics = metrics.New()
	}
	if err := model.ValidateNavItems(o.navItems); err != nil {
		return nil, goerr.Wrap(err, "invalid navigation menu")
	}

	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(MetricsMiddleware(o.metrics))
	router.Use(middleware.Recoverer)

	h := &handlers{
		useCases: useCases,
		metrics:  o.metrics,
	}

	// Health check and metrics
	router.Get("/health", handleHealth)
	router.Handle("/metrics", o.metrics.Handler())

	// Static assets
	assets, err := frontend.GetHTTPFS()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load embedded assets")
	}
	router.Handle("/static/*", http.StripPrefix("/static", NewAssetHandler(assets)))

	// Pages in front of the portal
	router.Get(types.PathRoot.String(), h.handleLanding)
	router.Get(types.PathRegister.String(), h.handleRegister)
	router.Get(types.PathRoleSelection.String(), h.handleRoleSelection)

	// Patient pages
	for _, item := range o.navItems {
		router.Get(item.Path.String(), h.handlePage(item.Path))
	}

	// Shell events
	router.Route("/shell", func(r chi.Router) {
		r.Get("/"+model.ShellEventMenuOpen.String(), h.handleShellEvent(model.ShellEventMenuOpen))
		r.Get("/"+model.ShellEventClose.String(), h.handleShellEvent(model.ShellEventClose))
		r.Get("/"+model.ShellEventNavigate.String(), h.handleShellEvent(model.ShellEventNavigate))
		r.Post("/"+model.ShellEventLogout.String(), h.handleShellEvent(model.ShellEventLogout))
	})

	// Backend proxy
	if o.proxy != nil {
		for _, prefix := range types.BackendPrefixes {
			router.Handle(prefix.String(), o.proxy)
			router.Handle(prefix.String()+"/*", o.proxy)
		}
		ctxlog.From(ctx).Info("Backend proxy enabled", "backend", o.proxy.Target())
	}

	router.NotFound(h.handleNotFound)

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}

	return server, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "carelink",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, r *http.Request, err error, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	if err := json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode error response", "error", err)
	}
}
