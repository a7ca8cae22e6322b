package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"circed/circuit"
	"circed/config"
	"circed/editor"
	"circed/terminal"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "circed [file.json]",
	Short: "Interactive circuit diagram editor",
	Long: `An interactive editor for simple circuit diagrams: batteries, cells and
LEDs joined by orthogonally routed wires, with full undo and redo.

Examples:
  circed                       # start with an empty circuit
  circed blinky.json           # open a saved circuit
  circed export -f svg c.json  # render a saved circuit to SVG`,
	Version: "0.1.0",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runEditor,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/circed/config.yaml)")
}

func loadPreferences() config.Preferences {
	if configPath != "" {
		prefs, err := config.LoadFile(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		return prefs
	}
	return config.Load()
}

func runEditor(cmd *cobra.Command, args []string) error {
	prefs := loadPreferences()
	ed := editor.New(editor.Options{
		HistoryDepth:    prefs.HistoryDepth,
		SnapDistance:    prefs.SnapDistance,
		CornerHitRadius: prefs.CornerHitRadius,
		LEDColor:        prefs.LEDColor,
	})

	filename := ""
	if len(args) == 1 {
		filename = args[0]
		f, err := os.Open(filename)
		if err != nil {
			return fmt.Errorf("opening %s: %w", filename, err)
		}
		err = ed.Load(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("loading %s: %w", filename, err)
		}
	}

	return terminal.Run(ed, prefs, filename)
}

// loadCircuit reads a saved circuit file for the non-interactive commands.
func loadCircuit(filename string) (*circuit.Circuit, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	snap, err := circuit.DecodeJSON(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	return snap.Restore()
}
