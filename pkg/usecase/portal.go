package usecase

import (
	"context"
	"slices"

	"github.com/carelink-lab/carelink/pkg/domain/interfaces"
	"github.com/carelink-lab/carelink/pkg/domain/model"
	"github.com/carelink-lab/carelink/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

const defaultDashboardLimit = 3

// Portal assembles the data of the patient pages
type Portal struct {
	repo           interfaces.Repository
	patientID      types.PatientID
	navItems       []model.NavItem
	dashboardLimit int
}

// PortalOption configures Portal
type PortalOption func(*Portal)

// WithNavItems overrides the sidebar menu
func WithNavItems(items []model.NavItem) PortalOption {
	return func(p *Portal) {
		p.navItems = slices.Clone(items)
	}
}

// WithDashboardLimit sets how many appointments and lab results the dashboard shows
func WithDashboardLimit(n int) PortalOption {
	return func(p *Portal) {
		if n > 0 {
			p.dashboardLimit = n
		}
	}
}

// NewPortal creates a new Portal use case serving the given patient
func NewPortal(repo interfaces.Repository, patientID types.PatientID, opts ...PortalOption) *Portal {
	p := &Portal{
		repo:           repo,
		patientID:      patientID,
		navItems:       model.PatientNavItems(),
		dashboardLimit: defaultDashboardLimit,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NavItems returns the sidebar menu
func (uc *Portal) NavItems() []model.NavItem {
	return slices.Clone(uc.navItems)
}

// Page builds the data of the page at path
func (uc *Portal) Page(ctx context.Context, path types.Path, state types.SidebarState) (*model.Page, error) {
	shell := model.NewNavigationShell(uc.navItems, path, state)
	if !shell.HasItem(path) {
		return nil, goerr.Wrap(model.ErrNotShellPage, "cannot build page", goerr.V("path", path))
	}

	patient, err := uc.repo.GetPatient(ctx, uc.patientID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get patient", goerr.V("patientID", uc.patientID))
	}

	page := &model.Page{
		Path:    path,
		Title:   model.PageTitle(path),
		Patient: *patient,
		Shell:   shell.View(),
	}

	switch path {
	case types.PathDashboard:
		err = uc.fillDashboard(ctx, page)
	case types.PathAppointments:
		err = uc.fillAppointments(ctx, page)
	case types.PathLabResults:
		err = uc.fillLabResults(ctx, page)
	case types.PathPrescriptions:
		err = uc.fillPrescriptions(ctx, page)
	case types.PathRecords:
		err = uc.fillRecords(ctx, page)
	}
	if err != nil {
		return nil, err
	}

	ctxlog.From(ctx).Debug("Built page",
		"path", path,
		"sidebar", state.String(),
	)

	return page, nil
}

// fillDashboard reads the three dashboard sources concurrently
func (uc *Portal) fillDashboard(ctx context.Context, page *model.Page) error {
	var (
		cards   []model.SummaryCard
		appts   []model.Appointment
		results []model.LabResult
	)

	eg, egctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		if cards, err = uc.repo.ListSummaryCards(egctx, uc.patientID); err != nil {
			return goerr.Wrap(err, "failed to list summary cards")
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		if appts, err = uc.repo.ListAppointments(egctx, uc.patientID); err != nil {
			return goerr.Wrap(err, "failed to list appointments")
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		if results, err = uc.repo.ListLabResults(egctx, uc.patientID); err != nil {
			return goerr.Wrap(err, "failed to list lab results")
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	page.SummaryCards = cards

	upcoming := slices.DeleteFunc(appts, func(a model.Appointment) bool {
		return !a.IsUpcoming()
	})
	slices.SortStableFunc(upcoming, func(a, b model.Appointment) int {
		return a.Date.Compare(b.Date)
	})
	page.Appointments = limit(upcoming, uc.dashboardLimit)

	sortLabResults(results)
	page.LabResults = limit(results, uc.dashboardLimit)

	return nil
}

func (uc *Portal) fillAppointments(ctx context.Context, page *model.Page) error {
	appts, err := uc.repo.ListAppointments(ctx, uc.patientID)
	if err != nil {
		return goerr.Wrap(err, "failed to list appointments")
	}

	// Upcoming first, soonest at the top; past ones newest first
	slices.SortStableFunc(appts, func(a, b model.Appointment) int {
		switch {
		case a.IsUpcoming() && !b.IsUpcoming():
			return -1
		case !a.IsUpcoming() && b.IsUpcoming():
			return 1
		case a.IsUpcoming():
			return a.Date.Compare(b.Date)
		default:
			return b.Date.Compare(a.Date)
		}
	})
	page.Appointments = appts
	return nil
}

func (uc *Portal) fillLabResults(ctx context.Context, page *model.Page) error {
	results, err := uc.repo.ListLabResults(ctx, uc.patientID)
	if err != nil {
		return goerr.Wrap(err, "failed to list lab results")
	}
	sortLabResults(results)
	page.LabResults = results
	return nil
}

func (uc *Portal) fillPrescriptions(ctx context.Context, page *model.Page) error {
	rxs, err := uc.repo.ListPrescriptions(ctx, uc.patientID)
	if err != nil {
		return goerr.Wrap(err, "failed to list prescriptions")
	}
	slices.SortStableFunc(rxs, func(a, b model.Prescription) int {
		return b.PrescribedAt.Compare(a.PrescribedAt)
	})
	page.Prescriptions = rxs
	return nil
}

func (uc *Portal) fillRecords(ctx context.Context, page *model.Page) error {
	recs, err := uc.repo.ListRecords(ctx, uc.patientID)
	if err != nil {
		return goerr.Wrap(err, "failed to list records")
	}
	slices.SortStableFunc(recs, func(a, b model.MedicalRecord) int {
		return b.Date.Compare(a.Date)
	})
	page.Records = recs
	return nil
}

// sortLabResults orders lab results newest first
func sortLabResults(results []model.LabResult) {
	slices.SortStableFunc(results, func(a, b model.LabResult) int {
		return b.Date.Compare(a.Date)
	})
}

func limit[T any](s []T, n int) []T {
	if n > 0 && len(s) > n {
		return s[:n]
	}
	return s
}
