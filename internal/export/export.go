// ABOUTME: Entry points for writing the weekly report as a PDF file.
// ABOUTME: Builds the document from tracker state and names the output file.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/harperreed/wellness/internal/logging"
)

// ErrNoReport is returned when there is no generated summary to export.
var ErrNoReport = errors.New("no report has been generated yet")

var whitespace = regexp.MustCompile(`\s+`)

// FileName returns the download name for a report belonging to name.
func FileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Reporte_usuario.pdf"
	}
	return "Reporte_" + whitespace.ReplaceAllString(name, "_") + ".pdf"
}

// WritePDF renders doc as a PDF to w.
func WritePDF(w io.Writer, doc Document) (Layout, error) {
	if strings.TrimSpace(doc.Body) == "" {
		return Layout{}, ErrNoReport
	}
	c := NewPDFCanvas()
	layout, err := Render(c, doc)
	if err != nil {
		return Layout{}, err
	}
	if err := c.Output(w); err != nil {
		return Layout{}, fmt.Errorf("write pdf: %w", err)
	}
	logging.For("export").WithField("pages", layout.Pages).Debug("pdf rendered")
	return layout, nil
}

// SaveFile writes doc into dir using FileName and returns the full path.
func SaveFile(dir string, doc Document) (string, error) {
	if strings.TrimSpace(doc.Body) == "" {
		return "", ErrNoReport
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(dir, FileName(doc.Profile.Name))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := WritePDF(f, doc); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
