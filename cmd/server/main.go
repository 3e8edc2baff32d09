package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/masks-frame/internal/http/health"
	"github.com/janisto/masks-frame/internal/http/v1/routes"
	"github.com/janisto/masks-frame/internal/platform/config"
	applog "github.com/janisto/masks-frame/internal/platform/logging"
	appmiddleware "github.com/janisto/masks-frame/internal/platform/middleware"
	"github.com/janisto/masks-frame/internal/platform/respond"
	"github.com/janisto/masks-frame/internal/service/farscore"
	framesvc "github.com/janisto/masks-frame/internal/service/frame"
	"github.com/janisto/masks-frame/internal/service/masks"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogError(context.Background(), "config load failed", err)
		os.Exit(1)
	}

	profiles, stats := newServices(cfg)
	srv := newServer(cfg, newRouter(cfg, profiles, stats))

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	applog.LogInfo(ctx, "server listening",
		zap.String("addr", ln.Addr().String()),
		zap.String("frameUrl", cfg.FrameURL),
		zap.String("upstreamMode", cfg.UpstreamMode),
	)
	if err := serve(ctx, srv, ln); err != nil {
		applog.LogError(context.Background(), "server error", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	}
	applog.LogInfo(context.Background(), "server exited")
}

func newServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
}

// serve runs srv on ln until ctx is done or serving fails, then shuts down
// gracefully.
func serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	listenErr := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
		applog.LogInfo(context.Background(), "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

// newServices picks live upstream clients or the offline demo data.
func newServices(cfg *config.Config) (farscore.Service, masks.Service) {
	if cfg.UpstreamMode == config.UpstreamMock {
		return farscore.NewMockService(), masks.NewMockService()
	}
	// No client timeout: calls are bounded by the request context, which the
	// server write timeout cancels.
	httpClient := &http.Client{}
	return farscore.NewClient(httpClient, farscore.WithBaseURL(cfg.FarscoreBaseURL)),
		masks.NewClient(httpClient, masks.WithBaseURL(cfg.MasksBaseURL))
}

func newRouter(cfg *config.Config, profiles farscore.Service, stats masks.Service) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security("/api-docs"),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., Cloud Run, nginx).
		// Without a trusted proxy, clients can spoof their IP address.
		chimiddleware.RealIP,
		// Frame action payloads are small; 64 KB leaves room for trusted message bytes.
		chimiddleware.RequestSize(64<<10),
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/health", health.Handler(Version))

	humaCfg := huma.DefaultConfig("Masks Stats Frame", Version)
	humaCfg.DocsPath = "/api-docs"
	// Allow JSON fallback for wildcard Accept headers (e.g., */*) since Huma's
	// negotiation uses exact matching and doesn't interpret wildcards per
	// RFC 9110 section 12.5.1.
	api := humachi.New(router, humaCfg)

	// Add CBOR content type to OpenAPI requests and responses
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation, addCBORContent)

	builder := framesvc.NewBuilder(profiles, stats, framesvc.Options{
		FrameURL:      cfg.FrameURL,
		ShareEmbedURL: cfg.ShareEmbedURL,
		ComposerURL:   cfg.ComposerURL,
	})
	routes.Register(api, builder)

	return router
}

func addCBORContent(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}
