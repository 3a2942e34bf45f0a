package usecase

import (
	"context"

	"github.com/carelink-lab/carelink/pkg/domain/model"
	"github.com/carelink-lab/carelink/pkg/domain/types"
)

// PortalUseCase defines the interface for assembling patient pages
type PortalUseCase interface {
	// Page builds the data of the page at path with the given sidebar state
	Page(ctx context.Context, path types.Path, state types.SidebarState) (*model.Page, error)
}

// ShellUseCase defines the interface for navigation shell interactions
type ShellUseCase interface {
	// Apply applies a user interaction and returns where the browser goes next
	Apply(ctx context.Context, event model.ShellEvent) (model.Navigation, error)
}

// OnboardingUseCase defines the interface for the pages in front of the portal
type OnboardingUseCase interface {
	// Register returns the registration redirect
	Register(ctx context.Context) model.Navigation

	// SelectRole builds the role selection page, or the navigation into the
	// chosen role's portal. An empty role renders the plain page.
	SelectRole(ctx context.Context, role string) (*model.RoleSelection, *model.Navigation, error)
}
