package circuit

// Kind identifies a component type. The set is closed: terminal layout,
// size and default attributes are all keyed by Kind.
type Kind string

const (
	KindBattery   Kind = "battery"
	KindLiIonCell Kind = "liion_cell"
	KindLED       Kind = "led"
)

// DisplayName returns the human-readable name for the kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindBattery:
		return "Battery"
	case KindLiIonCell:
		return "Li-Ion Cell"
	case KindLED:
		return "LED"
	default:
		return string(k)
	}
}

// Valid reports whether the kind is one of the known component types.
func (k Kind) Valid() bool {
	_, ok := terminalTable[k]
	return ok
}

// Kinds returns all known component kinds in palette order.
func Kinds() []Kind {
	return []Kind{KindBattery, KindLiIonCell, KindLED}
}

// terminalSpec fixes a terminal's layout in the component's local frame.
type terminalSpec struct {
	Name   string
	Offset Point
	Facing Direction
}

// Terminal names. Batteries and cells expose positive/negative, LEDs expose
// anode/cathode.
const (
	TerminalPositive = "positive"
	TerminalNegative = "negative"
	TerminalAnode    = "anode"
	TerminalCathode  = "cathode"
)

// terminalTable maps each kind to its fixed terminal layout. Offsets are
// relative to the component origin at rotation 0; a wire leaves the terminal
// travelling along Facing.
var terminalTable = map[Kind][]terminalSpec{
	// 9V battery: snap terminals protrude from the top edge.
	KindBattery: {
		{Name: TerminalPositive, Offset: Point{X: -15, Y: -35}, Facing: Up},
		{Name: TerminalNegative, Offset: Point{X: 15, Y: -35}, Facing: Up},
	},
	// Cylindrical cell lying horizontally: button terminal on the right.
	KindLiIonCell: {
		{Name: TerminalPositive, Offset: Point{X: 35, Y: 0}, Facing: Right},
		{Name: TerminalNegative, Offset: Point{X: -33, Y: 0}, Facing: Left},
	},
	// LED with both leads pointing down.
	KindLED: {
		{Name: TerminalAnode, Offset: Point{X: -6, Y: 30}, Facing: Down},
		{Name: TerminalCathode, Offset: Point{X: 6, Y: 30}, Facing: Down},
	},
}

// halfSizeTable maps each kind to its half-extents at rotation 0.
var halfSizeTable = map[Kind]Point{
	KindBattery:   {X: 40, Y: 20},
	KindLiIonCell: {X: 30, Y: 10},
	KindLED:       {X: 15, Y: 30},
}

// defaultVoltage maps power-source kinds to their nominal voltage.
var defaultVoltage = map[Kind]float64{
	KindBattery:   9.0,
	KindLiIonCell: 3.7,
}
