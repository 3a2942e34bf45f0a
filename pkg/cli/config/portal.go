package config

import (
	"log/slog"

	"github.com/carelink-lab/carelink/pkg/domain/interfaces"
	"github.com/carelink-lab/carelink/pkg/domain/model"
	"github.com/carelink-lab/carelink/pkg/domain/types"
	"github.com/carelink-lab/carelink/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Portal holds the patient portal configuration
type Portal struct {
	PatientID      string
	DashboardLimit int64
}

// Flags returns CLI flags for Portal configuration
func (p *Portal) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "patient-id",
			Usage:       "Patient whose dashboard is served",
			Category:    "Portal",
			Value:       "demo-patient",
			Sources:     cli.EnvVars("CARELINK_PATIENT_ID"),
			Destination: &p.PatientID,
		},
		&cli.Int64Flag{
			Name:        "dashboard-limit",
			Usage:       "Number of appointments and lab results on the dashboard",
			Category:    "Portal",
			Value:       3,
			Sources:     cli.EnvVars("CARELINK_DASHBOARD_LIMIT"),
			Destination: &p.DashboardLimit,
		},
	}
}

// Configure creates the portal use case on top of repo, serving the given menu
func (p *Portal) Configure(repo interfaces.Repository, navItems []model.NavItem) (*usecase.Portal, error) {
	id := types.PatientID(p.PatientID)
	if err := id.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid patient ID")
	}
	if p.DashboardLimit < 1 {
		return nil, goerr.New("dashboard limit must be positive", goerr.V("limit", p.DashboardLimit))
	}

	return usecase.NewPortal(repo, id,
		usecase.WithDashboardLimit(int(p.DashboardLimit)),
		usecase.WithNavItems(navItems),
	), nil
}

// LogValue returns structured log value
func (p Portal) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("patient_id", p.PatientID),
		slog.Int64("dashboard_limit", p.DashboardLimit),
	)
}
