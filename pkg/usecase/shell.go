package usecase

import (
	"context"
	"slices"

	"github.com/carelink-lab/carelink/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Shell applies navigation shell interactions. Every event is applied to a
// fresh shell built for the page it came from, so no state outlives a page.
type Shell struct {
	navItems []model.NavItem
}

// NewShell creates a new Shell use case for the given menu
func NewShell(items []model.NavItem) *Shell {
	return &Shell{
		navItems: slices.Clone(items),
	}
}

// Apply applies a user interaction and returns where the browser goes next
func (uc *Shell) Apply(ctx context.Context, event model.ShellEvent) (model.Navigation, error) {
	shell := model.NewNavigationShell(uc.navItems, event.From, event.State)

	// Only pages that host the shell can emit shell events
	if !shell.HasItem(event.From) {
		return model.Navigation{}, goerr.Wrap(model.ErrNotShellPage, "cannot apply shell event",
			goerr.V("from", event.From),
			goerr.V("kind", event.Kind))
	}

	nav, err := shell.Apply(event)
	if err != nil {
		return model.Navigation{}, err
	}

	ctxlog.From(ctx).Debug("Shell event applied",
		"kind", event.Kind,
		"from", event.From,
		"before", event.State.String(),
		"after", shell.State().String(),
		"target", nav.URL(),
	)

	return nav, nil
}
