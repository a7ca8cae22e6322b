// Package export converts circuits to text-based output formats.
package export

import (
	"fmt"

	"circed/circuit"
)

// Format identifies an export format.
type Format string

const (
	// FormatSVG exports a scalable vector drawing of the circuit.
	FormatSVG Format = "svg"
	// FormatJSON exports the snapshot document used for saved files.
	FormatJSON Format = "json"
)

// Exporter converts a circuit to a target format.
type Exporter interface {
	// Export renders the circuit in the target format.
	Export(c *circuit.Circuit) (string, error)
	// FileExtension returns the recommended file extension, with dot.
	FileExtension() string
	// FormatName returns a human-readable name for the format.
	FormatName() string
}

// Options carries format-specific output settings. Zero values use each
// format's defaults.
type Options struct {
	// GridSize is the spacing of the SVG background grid.
	GridSize float64
}

// NewExporter creates an exporter for the specified format.
func NewExporter(format Format, opts Options) (Exporter, error) {
	switch format {
	case FormatSVG:
		return NewSVGExporter(opts.GridSize), nil
	case FormatJSON:
		return NewJSONExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "svg":
		return FormatSVG, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// AvailableFormats returns all export formats.
func AvailableFormats() []Format {
	return []Format{FormatSVG, FormatJSON}
}
