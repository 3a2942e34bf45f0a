package cli

import (
	"context"
	"log/slog"

	"github.com/carelink-lab/carelink/pkg/cli/config"
	"github.com/carelink-lab/carelink/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var fixtureCfg config.Fixture

	return &cli.Command{
		Name:  "validate",
		Usage: "Validate the patient fixture and the navigation menu",
		Flags: fixtureCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := model.ValidateNavItems(model.PatientNavItems()); err != nil {
				return goerr.Wrap(err, "invalid patient menu")
			}

			data, err := fixtureCfg.Load()
			if err != nil {
				return err
			}

			ctxlog.From(ctx).Info("Fixture is valid",
				slog.Any("fixture", fixtureCfg),
				slog.String("patient_id", data.Profile.ID.String()),
				slog.Int("summary_cards", len(data.SummaryCards)),
				slog.Int("appointments", len(data.Appointments)),
				slog.Int("lab_results", len(data.LabResults)),
				slog.Int("prescriptions", len(data.Prescriptions)),
				slog.Int("records", len(data.Records)),
			)
			return nil
		},
	}
}
