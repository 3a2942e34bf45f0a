package types

import "github.com/m-mizutani/goerr/v2"

// Role is the kind of portal user chosen on the role selection page
type Role string

const (
	RolePatient    Role = "patient"
	RoleDoctor     Role = "doctor"
	RoleAdmin      Role = "admin"
	RoleTechnician Role = "technician"
)

// Roles lists the roles in display order
var Roles = []Role{RolePatient, RoleDoctor, RoleAdmin, RoleTechnician}

// String returns the string representation
func (r Role) String() string {
	return string(r)
}

// ParseRole parses a role name
func ParseRole(v string) (Role, error) {
	for _, r := range Roles {
		if string(r) == v {
			return r, nil
		}
	}
	return "", goerr.New("unknown role", goerr.V("role", v))
}

// HomePath returns the landing page of the role's portal. Only patients have
// a portal today.
func (r Role) HomePath() (Path, bool) {
	if r == RolePatient {
		return PathDashboard, true
	}
	return "", false
}
