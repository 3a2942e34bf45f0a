package model

import (
	"net/url"
	"slices"

	"github.com/carelink-lab/carelink/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// SidebarTransform is the visual placement of the sidebar panel
type SidebarTransform string

const (
	// TransformVisible shows the panel on every viewport
	TransformVisible SidebarTransform = "visible"
	// TransformHiddenNarrow hides the panel on narrow viewports only
	TransformHiddenNarrow SidebarTransform = "hidden-narrow"
)

// NavItemView is a NavItem as rendered for one active path
type NavItemView struct {
	NavItem
	Active bool
}

// ShellView is everything needed to draw the navigation shell
type ShellView struct {
	State      types.SidebarState
	ActivePath types.Path
	Backdrop   bool
	Transform  SidebarTransform
	Items      []NavItemView
}

// Navigation is a route change requested by the shell
type Navigation struct {
	Target types.Path
	State  types.SidebarState
}

// URL returns the location to send the browser to
func (n Navigation) URL() string {
	return n.Target.WithSidebar(n.State)
}

// NavigationShell owns the sidebar state of a single page instance.
//
// Closed --OnMenuOpen--> Open
// Open --OnClose|OnNavItemSelected--> Closed
type NavigationShell struct {
	state      types.SidebarState
	items      []NavItem
	activePath types.Path
}

// NewNavigationShell creates a shell positioned on activePath
func NewNavigationShell(items []NavItem, activePath types.Path, state types.SidebarState) *NavigationShell {
	return &NavigationShell{
		state:      state,
		items:      slices.Clone(items),
		activePath: activePath,
	}
}

// State returns the current sidebar state
func (s *NavigationShell) State() types.SidebarState {
	return s.state
}

// IsOpen reports whether the sidebar is open
func (s *NavigationShell) IsOpen() bool {
	return s.state.IsOpen()
}

// HasItem reports whether path is one of the menu destinations
func (s *NavigationShell) HasItem(path types.Path) bool {
	return slices.ContainsFunc(s.items, func(item NavItem) bool {
		return item.Path == path
	})
}

// OnMenuOpen opens the sidebar
func (s *NavigationShell) OnMenuOpen() Navigation {
	s.state = s.state.Open()
	return Navigation{Target: s.activePath, State: s.state}
}

// OnClose closes the sidebar. Backdrop clicks and the close control land here.
func (s *NavigationShell) OnClose() Navigation {
	s.state = s.state.Close()
	return Navigation{Target: s.activePath, State: s.state}
}

// OnNavItemSelected closes the sidebar and navigates to path. The new page
// always starts closed.
func (s *NavigationShell) OnNavItemSelected(path types.Path) (Navigation, error) {
	if !s.HasItem(path) {
		return Navigation{}, goerr.Wrap(ErrUnknownNavTarget, "cannot select nav item",
			goerr.V("path", path),
			goerr.V("from", s.activePath),
		)
	}

	s.state = s.state.Close()
	return Navigation{Target: path, State: types.SidebarClosed}, nil
}

// OnLogout navigates to the root path. There is no session to clear.
func (s *NavigationShell) OnLogout() Navigation {
	s.state = s.state.Close()
	return Navigation{Target: types.PathRoot, State: types.SidebarClosed}
}

// View computes the render data for the current state
func (s *NavigationShell) View() ShellView {
	items := make([]NavItemView, len(s.items))
	for i, item := range s.items {
		items[i] = NavItemView{
			NavItem: item,
			Active:  item.Path == s.activePath,
		}
	}

	transform := TransformHiddenNarrow
	if s.IsOpen() {
		transform = TransformVisible
	}

	return ShellView{
		State:      s.state,
		ActivePath: s.activePath,
		Backdrop:   s.IsOpen(),
		Transform:  transform,
		Items:      items,
	}
}

// ShellEventKind identifies a user interaction with the shell
type ShellEventKind string

const (
	ShellEventMenuOpen ShellEventKind = "open"
	ShellEventClose    ShellEventKind = "close"
	ShellEventNavigate ShellEventKind = "navigate"
	ShellEventLogout   ShellEventKind = "logout"
)

// String returns the string representation
func (k ShellEventKind) String() string {
	return string(k)
}

// ShellEvent is a user interaction dispatched to the shell of the page at From
type ShellEvent struct {
	Kind   ShellEventKind
	From   types.Path
	State  types.SidebarState
	Target types.Path
}

// Query parameters of shell event URLs
const (
	ShellEventPathPrefix = "/shell/"
	ShellFromQueryKey    = "from"
	ShellTargetQueryKey  = "to"
)

// URL returns the endpoint the browser calls to dispatch the event
func (e ShellEvent) URL() string {
	q := url.Values{}
	q.Set(ShellFromQueryKey, e.From.String())
	if e.State.IsOpen() {
		q.Set(types.SidebarQueryKey, e.State.String())
	}
	if e.Kind == ShellEventNavigate {
		q.Set(ShellTargetQueryKey, e.Target.String())
	}
	return ShellEventPathPrefix + e.Kind.String() + "?" + q.Encode()
}

// Apply dispatches the event to the matching transition
func (s *NavigationShell) Apply(event ShellEvent) (Navigation, error) {
	switch event.Kind {
	case ShellEventMenuOpen:
		return s.OnMenuOpen(), nil
	case ShellEventClose:
		return s.OnClose(), nil
	case ShellEventNavigate:
		return s.OnNavItemSelected(event.Target)
	case ShellEventLogout:
		return s.OnLogout(), nil
	default:
		return Navigation{}, goerr.Wrap(ErrUnknownShellEvent, "cannot apply shell event",
			goerr.V("kind", event.Kind))
	}
}
