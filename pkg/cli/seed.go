package cli

import (
	"context"
	"log/slog"
	"slices"

	"github.com/carelink-lab/carelink/pkg/cli/config"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdSeed() *cli.Command {
	var (
		fixtureCfg   config.Fixture
		firestoreCfg config.Firestore
	)

	return &cli.Command{
		Name:  "seed",
		Usage: "Write the patient fixture into Firestore",
		Flags: slices.Concat(fixtureCfg.Flags(), firestoreCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			data, err := fixtureCfg.Load()
			if err != nil {
				return err
			}

			repo, err := firestoreCfg.Connect(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			if err := repo.PutPatientData(ctx, data); err != nil {
				return goerr.Wrap(err, "failed to seed patient data",
					goerr.V("patient_id", data.Profile.ID))
			}

			ctxlog.From(ctx).Info("Patient data seeded",
				slog.Any("firestore", firestoreCfg),
				slog.Any("fixture", fixtureCfg),
				slog.String("patient_id", data.Profile.ID.String()),
				slog.Int("appointments", len(data.Appointments)),
				slog.Int("lab_results", len(data.LabResults)),
				slog.Int("prescriptions", len(data.Prescriptions)),
				slog.Int("records", len(data.Records)),
			)
			return nil
		},
	}
}
