package export

import (
	"fmt"
	"strings"

	"circed/circuit"
	"circed/render"
)

const (
	// svgPadding keeps content away from the canvas edge.
	svgPadding = 100.0
	// Default canvas size when the circuit is small or empty.
	svgDefaultWidth  = 2000.0
	svgDefaultHeight = 1500.0
	// svgDefaultGridSize is the background grid spacing.
	svgDefaultGridSize = 20.0
)

// SVGExporter renders the circuit as a scalable vector drawing: a grid
// background, wires underneath, component glyphs on top and colour-coded
// terminal dots last.
type SVGExporter struct {
	gridSize float64
}

// NewSVGExporter creates a new SVG exporter. A non-positive gridSize uses
// the default spacing.
func NewSVGExporter(gridSize float64) *SVGExporter {
	if gridSize <= 0 {
		gridSize = svgDefaultGridSize
	}
	return &SVGExporter{gridSize: gridSize}
}

// Export converts a circuit to an SVG document.
func (e *SVGExporter) Export(c *circuit.Circuit) (string, error) {
	scene := render.View(c)
	width, height := canvasSize(scene)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg width="%.0f" height="%.0f" xmlns="http://www.w3.org/2000/svg" style="background-color: #f8f9fa;">`+"\n", width, height)
	fmt.Fprintf(&sb, `  <defs>
    <pattern id="grid" width="%[1]g" height="%[1]g" patternUnits="userSpaceOnUse">
      <path d="M %[1]g 0 L 0 0 0 %[1]g" fill="none" stroke="#e0e0e0" stroke-width="0.5"/>
    </pattern>
`, e.gridSize)
	sb.WriteString(`    <filter id="glow" x="-50%" y="-50%" width="200%" height="200%">
      <feGaussianBlur stdDeviation="4" result="coloredBlur"/>
      <feMerge>
        <feMergeNode in="coloredBlur"/>
        <feMergeNode in="SourceGraphic"/>
      </feMerge>
    </filter>
  </defs>
  <rect width="100%" height="100%" fill="url(#grid)"/>
`)

	for _, w := range scene.Wires {
		writeWire(&sb, w)
	}
	for _, comp := range scene.Components {
		writeComponent(&sb, comp)
	}
	for _, comp := range scene.Components {
		for _, t := range comp.Terminals {
			writeTerminalDot(&sb, t)
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String(), nil
}

// FileExtension returns the file extension for SVG.
func (e *SVGExporter) FileExtension() string {
	return ".svg"
}

// FormatName returns the format name.
func (e *SVGExporter) FormatName() string {
	return "SVG"
}

// canvasSize grows the default canvas to fit content plus padding.
func canvasSize(scene render.Scene) (float64, float64) {
	width, height := svgDefaultWidth, svgDefaultHeight
	if len(scene.Components) > 0 || len(scene.Wires) > 0 {
		if w := scene.Bounds.Max.X + svgPadding; w > width {
			width = w
		}
		if h := scene.Bounds.Max.Y + svgPadding; h > height {
			height = h
		}
	}
	return width, height
}

func writeWire(sb *strings.Builder, w render.WireView) {
	if len(w.Points) < 2 {
		return
	}
	var d strings.Builder
	fmt.Fprintf(&d, "M %g %g", w.Points[0].X, w.Points[0].Y)
	for _, p := range w.Points[1:] {
		fmt.Fprintf(&d, " L %g %g", p.X, p.Y)
	}
	fmt.Fprintf(sb, `  <path d="%s" fill="none" stroke="#333" stroke-width="3" stroke-linecap="round" stroke-linejoin="round"/>`+"\n", d.String())

	// Corners are draggable in the editor; mark them.
	for _, p := range w.Points[1 : len(w.Points)-1] {
		fmt.Fprintf(sb, `  <circle cx="%g" cy="%g" r="6" fill="#6366f1" stroke="#fff" stroke-width="2"/>`+"\n", p.X, p.Y)
	}
}

func writeComponent(sb *strings.Builder, c render.ComponentView) {
	transform := fmt.Sprintf("translate(%g, %g)", c.Position.X, c.Position.Y)
	if c.Rotation != 0 {
		transform += fmt.Sprintf(" rotate(%d)", c.Rotation)
	}
	fmt.Fprintf(sb, `  <g transform="%s">`+"\n", transform)
	switch c.Kind {
	case circuit.KindBattery:
		sb.WriteString(`    <rect x="-35" y="-15" width="70" height="30" rx="3" fill="#fbbf24" stroke="#92400e" stroke-width="2"/>
    <rect x="35" y="-8" width="5" height="16" fill="#92400e"/>
    <text x="-20" y="5" text-anchor="middle" font-size="14" font-weight="bold" fill="#92400e">+</text>
    <text x="20" y="5" text-anchor="middle" font-size="14" font-weight="bold" fill="#92400e">-</text>
`)
	case circuit.KindLiIonCell:
		sb.WriteString(`    <rect x="-30" y="-10" width="60" height="20" rx="10" fill="#d1d5db" stroke="#374151" stroke-width="2"/>
    <rect x="30" y="-4" width="4" height="8" fill="#374151"/>
    <text x="0" y="4" text-anchor="middle" font-size="10" fill="#374151">3.7V</text>
`)
	case circuit.KindLED:
		glow := ""
		if c.On {
			glow = ` filter="url(#glow)"`
		}
		fmt.Fprintf(sb, `    <polygon points="0,-20 15,15 -15,15" fill="%s" stroke="#333" stroke-width="2"%s/>
    <line x1="-15" y1="15" x2="15" y2="15" stroke="#333" stroke-width="3"/>
    <line x1="0" y1="-20" x2="0" y2="-30" stroke="#333" stroke-width="2"/>
    <line x1="0" y1="15" x2="0" y2="30" stroke="#333" stroke-width="2"/>
`, ledFill(c.Color, c.On), glow)
	}
	sb.WriteString("  </g>\n")
}

func writeTerminalDot(sb *strings.Builder, t render.TerminalView) {
	color := "#3b82f6"
	switch {
	case t.Connected:
		color = "#22c55e"
	case t.Name == circuit.TerminalPositive:
		color = "#ef4444"
	case t.Name == circuit.TerminalNegative:
		color = "#1e40af"
	}
	fmt.Fprintf(sb, `  <circle cx="%g" cy="%g" r="6" fill="%s" stroke="#fff" stroke-width="2"/>`+"\n", t.Position.X, t.Position.Y, color)
}

// ledFill picks the LED body colour for the given colour name and state.
func ledFill(color string, on bool) string {
	colors := map[string][2]string{
		"red":    {"#ff6b6b", "#cc0000"},
		"green":  {"#6bff6b", "#00cc00"},
		"blue":   {"#6b6bff", "#0000cc"},
		"yellow": {"#ffff6b", "#cccc00"},
	}
	pair, ok := colors[color]
	if !ok {
		pair = colors["red"]
	}
	if on {
		return pair[0]
	}
	return pair[1]
}
