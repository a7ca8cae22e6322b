package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"circed/circuit"
	"circed/render"
)

var infoCmd = &cobra.Command{
	Use:   "info <file.json>",
	Short: "Summarize a saved circuit file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	c, err := loadCircuit(args[0])
	if err != nil {
		return err
	}
	scene := render.View(c)

	name := c.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Printf("Circuit: %s\n", name)
	fmt.Printf("Components: %d\n", len(scene.Components))

	counts := make(map[circuit.Kind]int)
	for _, comp := range scene.Components {
		counts[comp.Kind]++
	}
	for _, kind := range circuit.Kinds() {
		if counts[kind] > 0 {
			fmt.Printf("  %-12s %d\n", kind.DisplayName(), counts[kind])
		}
	}

	fmt.Printf("Wires: %d\n", len(scene.Wires))
	for _, comp := range scene.Components {
		for _, t := range comp.Terminals {
			if !t.Connected {
				fmt.Printf("  free terminal: %s %s at (%g, %g)\n",
					comp.Kind.DisplayName(), t.Name, t.Position.X, t.Position.Y)
			}
		}
	}
	if len(scene.Components) > 0 {
		b := scene.Bounds
		fmt.Printf("Bounds: (%g, %g) to (%g, %g)\n", b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
	}
	return nil
}
