package frontend

import (
	"embed"
	"io/fs"
	"net/http"
)

// FS embeds the stylesheet and other static assets
//
//go:embed all:static
var FS embed.FS

// DefaultPatientData is the fixture served when no fixture file or
// Firestore project is configured
//
//go:embed data/patient.yaml
var DefaultPatientData []byte

// GetHTTPFS returns the embedded static filesystem for HTTP serving
func GetHTTPFS() (http.FileSystem, error) {
	sub, err := fs.Sub(FS, "static")
	if err != nil {
		return nil, err
	}

	// The stylesheet is the one asset every page links
	if _, err := fs.Stat(sub, "portal.css"); err != nil {
		return nil, err
	}

	return http.FS(sub), nil
}
