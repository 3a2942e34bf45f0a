package config

import (
	"context"
	"log/slog"

	"github.com/carelink-lab/carelink/pkg/domain/interfaces"
	"github.com/carelink-lab/carelink/pkg/domain/model"
	"github.com/carelink-lab/carelink/pkg/repository"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Firestore holds Firestore configuration
type Firestore struct {
	ProjectID  string
	DatabaseID string
}

// Flags returns CLI flags for Firestore configuration
func (f *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP project ID for Firestore",
			Category:    "Firestore",
			Sources:     cli.EnvVars("CARELINK_FIRESTORE_PROJECT"),
			Destination: &f.ProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Value:       "(default)",
			Sources:     cli.EnvVars("CARELINK_FIRESTORE_DATABASE"),
			Destination: &f.DatabaseID,
		},
	}
}

// Configure creates the repository the portal reads from. Without a
// Firestore project the data is served from memory, loaded by fixture.
func (f *Firestore) Configure(ctx context.Context, fixture *Fixture) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	if !f.IsConfigured() {
		data, err := fixture.Load()
		if err != nil {
			return nil, err
		}

		logger.Warn("Using memory database instead of firestore. Serving fixture data",
			"fixture", fixture,
			"patient_id", data.Profile.ID,
		)
		return repository.NewMemoryWithData(ctx, data)
	}

	return f.Connect(ctx)
}

// Connect creates a Firestore repository. Firestore must be configured.
func (f *Firestore) Connect(ctx context.Context) (interfaces.Repository, error) {
	if !f.IsConfigured() {
		return nil, goerr.New("firestore project is not configured",
			goerr.T(model.ErrTagInvalidInput))
	}

	repo, err := repository.NewFirestore(ctx, f.ProjectID, f.DatabaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to init firestore",
			goerr.V("project", f.ProjectID),
			goerr.V("database", f.DatabaseID),
		)
	}

	return repo, nil
}

// IsConfigured checks if Firestore is properly configured
func (f *Firestore) IsConfigured() bool {
	return f.ProjectID != ""
}

// LogValue returns structured log value
func (f Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project", f.ProjectID),
		slog.String("database", f.DatabaseID),
	)
}
