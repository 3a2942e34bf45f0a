package types

import (
	"net/url"
	"strings"
)

// Path is a route path inside the portal
type Path string

// Portal routes
const (
	PathRoot          Path = "/"
	PathRegister      Path = "/register"
	PathRoleSelection Path = "/role-selection"

	PathDashboard     Path = "/patient/dashboard"
	PathRecords       Path = "/patient/records"
	PathPrescriptions Path = "/patient/prescriptions"
	PathLabResults    Path = "/patient/lab-results"
	PathAppointments  Path = "/patient/appointments"
)

// String returns the string representation
func (p Path) String() string {
	return string(p)
}

// IsPatientPage reports whether the path is a page hosted inside the
// navigation shell
func (p Path) IsPatientPage() bool {
	switch p {
	case PathDashboard, PathRecords, PathPrescriptions, PathLabResults, PathAppointments:
		return true
	default:
		return false
	}
}

// WithSidebar returns the URL of the path with the given sidebar state encoded.
// A closed sidebar is the default and is not encoded.
func (p Path) WithSidebar(state SidebarState) string {
	if !state.IsOpen() {
		return p.String()
	}
	q := url.Values{}
	q.Set(SidebarQueryKey, state.String())
	return p.String() + "?" + q.Encode()
}

// BackendPrefixes are the API paths forwarded to the backend service
var BackendPrefixes = []Path{
	"/users",
	"/roles",
	"/patient_profile",
	"/doctor_profile",
	"/admin_profile",
	"/technician_profile",
}

// BackendPrefix returns the backend prefix serving the request path, if any.
// A prefix matches the path itself and anything below it.
func BackendPrefix(requestPath string) (Path, bool) {
	for _, prefix := range BackendPrefixes {
		p := prefix.String()
		if requestPath == p || strings.HasPrefix(requestPath, p+"/") {
			return prefix, true
		}
	}
	return "", false
}
