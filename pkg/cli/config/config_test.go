package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/carelink-lab/carelink/frontend"
	"github.com/carelink-lab/carelink/pkg/cli/config"
	"github.com/carelink-lab/carelink/pkg/domain/model"
	"github.com/carelink-lab/carelink/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patient.yaml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestParseEmbeddedFixture(t *testing.T) {
	data, err := config.ParsePatientData(frontend.DefaultPatientData)
	gt.NoError(t, err).Required()

	gt.Equal(t, data.Profile.ID, types.PatientID("demo-patient"))
	gt.Equal(t, data.Profile.Name, "Sarah Johnson")
	gt.Equal(t, len(data.SummaryCards), 4)
	gt.Equal(t, len(data.Appointments), 4)
	gt.Equal(t, data.Appointments[0].Status, types.AppointmentUpcoming)
	gt.Equal(t, data.Appointments[0].Date, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))
	gt.Equal(t, len(data.LabResults), 4)
	gt.Equal(t, len(data.Prescriptions), 4)
	gt.Equal(t, len(data.Records), 3)
}

func TestParsePatientData(t *testing.T) {
	t.Run("missing IDs are assigned", func(t *testing.T) {
		data, err := config.ParsePatientData([]byte(`
profile:
  id: p-1
  name: Jane Doe
appointments:
  - doctor: Dr. Chen
    date: 2025-02-01
    status: Upcoming
`))
		gt.NoError(t, err).Required()
		gt.NotEqual(t, data.Appointments[0].ID, types.RecordID(""))
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		_, err := config.ParsePatientData([]byte(`
profile:
  id: p-1
  name: Jane Doe
apointments: []
`))
		gt.Error(t, err)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := config.ParsePatientData([]byte(`
profile:
  id: p-1
  name: Jane Doe
lab_results:
  - test: CBC
    date: 2025-01-01
    result: ok
    status: Weird
`))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrInvalidPatientData))
	})

	t.Run("missing profile is rejected", func(t *testing.T) {
		_, err := config.ParsePatientData([]byte(`summary_cards: []`))
		gt.Error(t, err)
	})
}

func TestFixtureLoad(t *testing.T) {
	t.Run("embedded data when no path is set", func(t *testing.T) {
		f := config.Fixture{}
		data, err := f.Load()
		gt.NoError(t, err).Required()
		gt.Equal(t, data.Profile.ID, types.PatientID("demo-patient"))
	})

	t.Run("file data", func(t *testing.T) {
		f := config.Fixture{Path: writeFixture(t, "profile:\n  id: p-2\n  name: John Roe\n")}
		data, err := f.Load()
		gt.NoError(t, err).Required()
		gt.Equal(t, data.Profile.Name, "John Roe")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadPatientDataFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		gt.Error(t, err)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := config.LoadPatientDataFromFile("")
		gt.Error(t, err)
	})
}

func TestFirestoreFallsBackToMemory(t *testing.T) {
	ctx := context.Background()
	f := config.Firestore{}
	gt.False(t, f.IsConfigured())

	repo, err := f.Configure(ctx, &config.Fixture{})
	gt.NoError(t, err).Required()
	defer repo.Close()

	profile, err := repo.GetPatient(ctx, "demo-patient")
	gt.NoError(t, err).Required()
	gt.Equal(t, profile.Name, "Sarah Johnson")

	_, err = f.Connect(ctx)
	gt.Error(t, err)
}

func TestPortalConfigure(t *testing.T) {
	repo, err := (&config.Firestore{}).Configure(context.Background(), &config.Fixture{})
	gt.NoError(t, err).Required()

	t.Run("valid", func(t *testing.T) {
		p := config.Portal{PatientID: "demo-patient", DashboardLimit: 3}
		uc, err := p.Configure(repo, model.PatientNavItems())
		gt.NoError(t, err)
		gt.V(t, uc).NotNil()
	})

	t.Run("serves the given menu", func(t *testing.T) {
		p := config.Portal{PatientID: "demo-patient", DashboardLimit: 3}
		items := model.PatientNavItems()[:2]
		uc, err := p.Configure(repo, items)
		gt.NoError(t, err).Required()
		gt.Equal(t, uc.NavItems(), items)
	})

	t.Run("empty patient", func(t *testing.T) {
		p := config.Portal{DashboardLimit: 3}
		_, err := p.Configure(repo, model.PatientNavItems())
		gt.Error(t, err)
	})

	t.Run("non-positive limit", func(t *testing.T) {
		p := config.Portal{PatientID: "demo-patient"}
		_, err := p.Configure(repo, model.PatientNavItems())
		gt.Error(t, err)
	})
}

func TestBackendConfigure(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		b := config.Backend{URL: config.DefaultBackendURL, Disable: true}
		proxy, err := b.Configure(nil)
		gt.NoError(t, err)
		gt.V(t, proxy).Nil()
	})

	t.Run("default backend", func(t *testing.T) {
		b := config.Backend{URL: config.DefaultBackendURL, Timeout: time.Second}
		proxy, err := b.Configure(nil)
		gt.NoError(t, err).Required()
		gt.Equal(t, proxy.Target(), "http://localhost:5000")
	})

	t.Run("invalid URL", func(t *testing.T) {
		b := config.Backend{URL: "localhost"}
		_, err := b.Configure(nil)
		gt.Error(t, err)
	})
}

func TestLoggerValidate(t *testing.T) {
	gt.NoError(t, (&config.Logger{Level: "debug", Format: "json"}).Validate())
	gt.Error(t, (&config.Logger{Level: "verbose"}).Validate())
	gt.Error(t, (&config.Logger{Level: "info", Format: "xml"}).Validate())

	_, err := (&config.Logger{Level: "info", Format: "xml"}).Configure()
	gt.Error(t, err)
}
