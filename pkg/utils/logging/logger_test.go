package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/carelink-lab/carelink/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]logging.Format{
		"":        logging.FormatAuto,
		"auto":    logging.FormatAuto,
		"console": logging.FormatConsole,
		"JSON":    logging.FormatJSON,
	} {
		got, err := logging.ParseFormat(input)
		gt.NoError(t, err)
		gt.Equal(t, got, want)
	}

	_, err := logging.ParseFormat("xml")
	gt.Error(t, err)
	gt.Equal(t, logging.FormatConsole.String(), "console")
}

func TestParseLevel(t *testing.T) {
	for input, want := range map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"WARNING": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := logging.ParseLevel(input)
		gt.NoError(t, err)
		gt.Equal(t, got, want)
	}

	_, err := logging.ParseLevel("verbose")
	gt.Error(t, err)
}

func TestNewAutoUsesJSONOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo, logging.FormatAuto)

	logger.Debug("hidden")
	logger.Info("page rendered", "path", "/patient/dashboard")

	var entry map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &entry)).Required()
	gt.Equal(t, entry["msg"], "page rendered")
	gt.Equal(t, entry["path"], "/patient/dashboard")
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelDebug, logging.FormatConsole)

	logger.Debug("shell event applied")
	gt.S(t, buf.String()).Contains("shell event applied")
}
