package usecase

import (
	"context"
	"fmt"

	"github.com/carelink-lab/carelink/pkg/domain/model"
	"github.com/carelink-lab/carelink/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

var roleLabels = map[types.Role]string{
	types.RolePatient:    "Patient",
	types.RoleDoctor:     "Doctor",
	types.RoleAdmin:      "Administrator",
	types.RoleTechnician: "Lab Technician",
}

// Onboarding serves the registration redirect and the role selection page
type Onboarding struct{}

// NewOnboarding creates a new Onboarding use case
func NewOnboarding() *Onboarding {
	return &Onboarding{}
}

// Register returns the registration redirect. Registration itself happens
// after a role is chosen.
func (uc *Onboarding) Register(ctx context.Context) model.Navigation {
	ctxlog.From(ctx).Debug("Redirecting registration to role selection")
	return model.Navigation{Target: types.PathRoleSelection}
}

// SelectRole builds the role selection page, or the navigation into the
// chosen role's portal
func (uc *Onboarding) SelectRole(ctx context.Context, role string) (*model.RoleSelection, *model.Navigation, error) {
	page := &model.RoleSelection{
		Options: make([]model.RoleOption, 0, len(types.Roles)),
	}
	for _, r := range types.Roles {
		opt := model.RoleOption{
			Role:  r,
			Label: roleLabels[r],
		}
		if _, ok := r.HomePath(); ok {
			opt.Available = true
			opt.Href = types.PathRoleSelection.String() + "?role=" + r.String()
		}
		page.Options = append(page.Options, opt)
	}

	if role == "" {
		return page, nil, nil
	}

	selected, err := types.ParseRole(role)
	if err != nil {
		return nil, nil, goerr.Wrap(model.ErrUnknownRole, "cannot select role", goerr.V("role", role))
	}

	home, ok := selected.HomePath()
	if !ok {
		page.Notice = fmt.Sprintf("The %s portal is not available yet.", roleLabels[selected])
		return page, nil, nil
	}

	ctxlog.From(ctx).Debug("Role selected", "role", selected)
	return nil, &model.Navigation{Target: home}, nil
}
