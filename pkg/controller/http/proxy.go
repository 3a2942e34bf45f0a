package http

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/carelink-lab/carelink/pkg/domain/model"
	"github.com/carelink-lab/carelink/pkg/domain/types"
	"github.com/carelink-lab/carelink/pkg/metrics"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Proxy forwards the backend API paths to the backend service
type Proxy struct {
	target  *url.URL
	proxy   *httputil.ReverseProxy
	metrics *metrics.Metrics
}

// NewProxy creates a reverse proxy to backendURL. A zero timeout leaves the
// response header wait unbounded.
func NewProxy(backendURL string, timeout time.Duration, m *metrics.Metrics) (*Proxy, error) {
	target, err := url.Parse(backendURL)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid backend URL",
			goerr.V("url", backendURL),
			goerr.T(model.ErrTagInvalidInput))
	}
	if (target.Scheme != "http" && target.Scheme != "https") || target.Host == "" {
		return nil, goerr.New("backend URL must be absolute http(s)",
			goerr.V("url", backendURL),
			goerr.T(model.ErrTagInvalidInput))
	}
	if m == nil {
		m = metrics.New()
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = timeout

	p := &Proxy{
		target:  target,
		metrics: m,
	}
	p.proxy = &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
		},
		Transport:    transport,
		ErrorHandler: p.handleError,
	}

	return p, nil
}

// Target returns the backend URL
func (p *Proxy) Target() string {
	return p.target.String()
}

// ServeHTTP implements the http.Handler interface
func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	prefix, ok := types.BackendPrefix(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
	p.proxy.ServeHTTP(ww, r)
	p.metrics.ProxyForwarded(prefix.String(), ww.Status())
}

func (p *Proxy) handleError(w http.ResponseWriter, r *http.Request, err error) {
	ctxlog.From(r.Context()).Warn("Backend request failed",
		"error", err,
		"backend", p.target.String(),
		"path", r.URL.Path,
	)
	writeError(w, r, goerr.New("backend unavailable"), http.StatusBadGateway)
}
