package config

import (
	"log/slog"
	"time"

	controller "github.com/carelink-lab/carelink/pkg/controller/http"
	"github.com/carelink-lab/carelink/pkg/metrics"
	"github.com/urfave/cli/v3"
)

// DefaultBackendURL is where the backend service listens in development
const DefaultBackendURL = "http://localhost:5000"

// Backend holds the reverse proxy configuration
type Backend struct {
	URL     string
	Timeout time.Duration
	Disable bool
}

// Flags returns CLI flags for Backend configuration
func (b *Backend) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "backend-url",
			Usage:       "Backend service the API paths are forwarded to",
			Category:    "Backend",
			Value:       DefaultBackendURL,
			Sources:     cli.EnvVars("CARELINK_BACKEND_URL"),
			Destination: &b.URL,
		},
		&cli.DurationFlag{
			Name:        "backend-timeout",
			Usage:       "Maximum wait for the backend response headers",
			Category:    "Backend",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("CARELINK_BACKEND_TIMEOUT"),
			Destination: &b.Timeout,
		},
		&cli.BoolFlag{
			Name:        "no-backend",
			Usage:       "Do not forward the API paths",
			Category:    "Backend",
			Sources:     cli.EnvVars("CARELINK_NO_BACKEND"),
			Destination: &b.Disable,
		},
	}
}

// Configure creates the reverse proxy, or nil when forwarding is disabled
func (b *Backend) Configure(m *metrics.Metrics) (*controller.Proxy, error) {
	if b.Disable {
		return nil, nil
	}
	return controller.NewProxy(b.URL, b.Timeout, m)
}

// LogValue returns structured log value
func (b Backend) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", b.URL),
		slog.Duration("timeout", b.Timeout),
		slog.Bool("disabled", b.Disable),
	)
}
