package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"circed/export"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export <file.json>",
	Short: "Render a saved circuit to another format",
	Long: `Render a saved circuit file to an export format.

Examples:
  circed export -f svg blinky.json
  circed export -f json -o out.json blinky.json`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	formats := make([]string, 0)
	for _, f := range export.AvailableFormats() {
		formats = append(formats, string(f))
	}
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "svg",
		"output format: "+strings.Join(formats, ", "))
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "",
		"output file (default input name with the format's extension)")
}

func runExport(cmd *cobra.Command, args []string) error {
	filename := args[0]

	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}
	prefs := loadPreferences()
	exporter, err := export.NewExporter(format, export.Options{GridSize: prefs.GridSize})
	if err != nil {
		return err
	}

	c, err := loadCircuit(filename)
	if err != nil {
		return err
	}

	out, err := exporter.Export(c)
	if err != nil {
		return fmt.Errorf("exporting to %s: %w", exporter.FormatName(), err)
	}

	target := exportOutput
	if target == "" {
		target = strings.TrimSuffix(filename, ".json") + exporter.FileExtension()
	}
	if err := os.WriteFile(target, []byte(out), 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%s)\n", target, exporter.FormatName())
	return nil
}
