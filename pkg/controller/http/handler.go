package http

import (
	"net/http"

	"github.com/carelink-lab/carelink/pkg/domain/model"
	"github.com/carelink-lab/carelink/pkg/domain/types"
	"github.com/carelink-lab/carelink/pkg/metrics"
	"github.com/carelink-lab/carelink/pkg/utils/apperr"
	"github.com/carelink-lab/carelink/pkg/view"
	"github.com/m-mizutani/ctxlog"
	g "maragu.dev/gomponents"
)

type handlers struct {
	useCases *UseCases
	metrics  *metrics.Metrics
}

// handlePage serves a patient page. The sidebar state comes from the query.
func (h *handlers) handlePage(path types.Path) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		state := types.ParseSidebarState(r.URL.Query().Get(types.SidebarQueryKey))

		page, err := h.useCases.portal.Page(ctx, path, state)
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		h.metrics.PageRendered(path.String())
		render(w, r, http.StatusOK, view.Page(page))
	}
}

// handleShellEvent applies a shell interaction and redirects to the resulting state
func (h *handlers) handleShellEvent(kind model.ShellEventKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		event := model.ShellEvent{
			Kind:   kind,
			From:   types.Path(q.Get(model.ShellFromQueryKey)),
			State:  types.ParseSidebarState(q.Get(types.SidebarQueryKey)),
			Target: types.Path(q.Get(model.ShellTargetQueryKey)),
		}

		nav, err := h.useCases.shell.Apply(r.Context(), event)
		h.metrics.ShellTransition(kind.String(), err == nil)
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		http.Redirect(w, r, nav.URL(), http.StatusSeeOther)
	}
}

func (h *handlers) handleLanding(w http.ResponseWriter, r *http.Request) {
	h.metrics.PageRendered(types.PathRoot.String())
	render(w, r, http.StatusOK, view.Landing())
}

// handleRegister redirects once to role selection
func (h *handlers) handleRegister(w http.ResponseWriter, r *http.Request) {
	nav := h.useCases.onboarding.Register(r.Context())
	http.Redirect(w, r, nav.URL(), http.StatusFound)
}

func (h *handlers) handleRoleSelection(w http.ResponseWriter, r *http.Request) {
	page, nav, err := h.useCases.onboarding.SelectRole(r.Context(), r.URL.Query().Get("role"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if nav != nil {
		http.Redirect(w, r, nav.URL(), http.StatusSeeOther)
		return
	}

	h.metrics.PageRendered(types.PathRoleSelection.String())
	render(w, r, http.StatusOK, view.RoleSelection(page))
}

func (h *handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusNotFound, view.ErrorPage(http.StatusNotFound, "The page you requested does not exist."))
}

// renderError logs the error and renders the error page with the mapped status
func (h *handlers) renderError(w http.ResponseWriter, r *http.Request, err error) {
	apperr.Handle(r.Context(), err)

	status := apperr.StatusCode(err)
	message := "Something went wrong. Please try again later."
	switch status {
	case http.StatusBadRequest:
		message = "The request could not be processed."
	case http.StatusNotFound:
		message = "The requested information could not be found."
	}
	render(w, r, status, view.ErrorPage(status, message))
}

func render(w http.ResponseWriter, r *http.Request, status int, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := node.Render(w); err != nil {
		ctxlog.From(r.Context()).Error("Failed to render page", "error", err)
	}
}
