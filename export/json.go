package export

import (
	"strings"

	"circed/circuit"
)

// JSONExporter exports the circuit as its indented snapshot document, the
// same shape the editor saves and loads.
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export converts a circuit to JSON.
func (e *JSONExporter) Export(c *circuit.Circuit) (string, error) {
	var sb strings.Builder
	if err := circuit.TakeSnapshot(c).EncodeJSON(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// FileExtension returns the file extension for JSON.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}

// FormatName returns the format name.
func (e *JSONExporter) FormatName() string {
	return "JSON"
}
