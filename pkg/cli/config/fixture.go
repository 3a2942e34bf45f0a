package config

import (
	"bytes"
	"log/slog"
	"os"

	"github.com/carelink-lab/carelink/frontend"
	"github.com/carelink-lab/carelink/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Fixture holds the location of the patient display data
type Fixture struct {
	Path string
}

// Flags returns CLI flags for Fixture configuration
func (f *Fixture) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "fixture",
			Usage:       "YAML file with the patient display data (embedded demo data if empty)",
			Category:    "Data",
			Sources:     cli.EnvVars("CARELINK_FIXTURE"),
			Destination: &f.Path,
		},
	}
}

// Load reads and validates the configured fixture
func (f *Fixture) Load() (*model.PatientData, error) {
	if f.Path == "" {
		data, err := ParsePatientData(frontend.DefaultPatientData)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid embedded fixture")
		}
		return data, nil
	}
	return LoadPatientDataFromFile(f.Path)
}

// LogValue returns structured log value
func (f Fixture) LogValue() slog.Value {
	path := f.Path
	if path == "" {
		path = "(embedded)"
	}
	return slog.GroupValue(slog.String("path", path))
}

// LoadPatientDataFromFile loads patient display data from a YAML file
func LoadPatientDataFromFile(path string) (*model.PatientData, error) {
	if path == "" {
		return nil, goerr.New("fixture file path is required")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "fixture file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read fixture file",
			goerr.V("path", path))
	}

	data, err := ParsePatientData(raw)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid fixture file", goerr.V("path", path))
	}
	return data, nil
}

// ParsePatientData decodes and validates YAML patient display data. Unknown
// keys are rejected so that typos do not silently drop records.
func ParsePatientData(raw []byte) (*model.PatientData, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)

	var data model.PatientData
	if err := decoder.Decode(&data); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML fixture",
			goerr.T(model.ErrTagInvalidInput))
	}

	if err := data.Validate(); err != nil {
		return nil, err
	}
	data.AssignIDs()

	return &data, nil
}
