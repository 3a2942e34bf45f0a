package types

// SidebarState is the open/closed state of the navigation sidebar.
// The zero value is SidebarClosed.
type SidebarState int

const (
	SidebarClosed SidebarState = iota
	SidebarOpen
)

// SidebarQueryKey is the query parameter carrying the sidebar state
const SidebarQueryKey = "sidebar"

// String returns the query representation of the state
func (s SidebarState) String() string {
	if s == SidebarOpen {
		return "open"
	}
	return "closed"
}

// IsOpen reports whether the sidebar is open
func (s SidebarState) IsOpen() bool {
	return s == SidebarOpen
}

// Open returns the state after a menu-open event
func (s SidebarState) Open() SidebarState {
	return SidebarOpen
}

// Close returns the state after a close event
func (s SidebarState) Close() SidebarState {
	return SidebarClosed
}

// ParseSidebarState parses the query representation. Anything other than
// "open" is closed.
func ParseSidebarState(v string) SidebarState {
	if v == "open" {
		return SidebarOpen
	}
	return SidebarClosed
}
