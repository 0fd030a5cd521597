package serverapp

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"cookbook/internal/config"
	"cookbook/internal/cookbook"
	"cookbook/internal/httpmw"
	"cookbook/internal/server"
	"cookbook/internal/telemetry"
)

type Options struct {
	Config *config.Config
	Logger *zap.Logger
	Now    func() time.Time
}

// NewHandler builds the fully wired HTTP handler: seeded cookbook,
// resolver, telemetry, API routes, health and metrics endpoints, and the
// middleware chain.
func NewHandler(opts Options) (http.Handler, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	repo := cookbook.NewMemoryRepo()
	if err := repo.Seed(context.Background(), opts.Config.Seed); err != nil {
		return nil, errors.Wrap(err, "seed cookbook")
	}

	summaries := cookbook.NewService(repo)
	if opts.Config.Resolver.MaxDepth > 0 {
		summaries.SetMaxDepth(opts.Config.Resolver.MaxDepth)
	}

	app := &server.App{
		Cookbook:  repo,
		Summaries: summaries,
		Telemetry: telemetry.NewMemoryRepository(),
		BootNow:   opts.Now(),
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true,"service":"cookbook","time":"` + opts.Now().UTC().Format(time.RFC3339) + `"}` + "\n"))
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	rr := &server.RouteRegistry{}
	server.RegisterAPIRoutes(mux, rr, app)

	handler := httpmw.Chain(mux,
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
		httpmw.WithMetrics,
		httpmw.WithAccessLog(opts.Logger),
	)

	if len(opts.Config.Seed) > 0 {
		opts.Logger.Info("cookbook seeded", zap.Int("entries", len(opts.Config.Seed)))
	}

	return handler, nil
}
