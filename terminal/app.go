// Package terminal is the interactive tcell front end. It owns the screen
// and input loop only; every edit goes through the editor package.
package terminal

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"circed/circuit"
	"circed/config"
	"circed/editor"
)

// World units per terminal cell. Cells are roughly twice as tall as wide,
// so the vertical scale is doubled to keep shapes square-ish.
const (
	cellWidth  = 10.0
	cellHeight = 20.0
)

// App drives the interactive session.
type App struct {
	screen tcell.Screen
	ed     *editor.Editor
	prefs  config.Preferences

	filename string
	message  string

	// tool is the component kind armed for placement, empty for the
	// select tool.
	tool circuit.Kind
	// wiring is true while the wire tool is armed.
	wiring bool

	selectedKind editor.ObjectKind
	selected     uuid.UUID

	lastButtons tcell.ButtonMask
}

// Run opens the screen and blocks until the user quits.
func Run(ed *editor.Editor, prefs config.Preferences, filename string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	screen.EnableMouse()
	screen.Clear()
	defer screen.Fini()

	app := &App{
		screen:   screen,
		ed:       ed,
		prefs:    prefs,
		filename: filename,
	}
	app.loop()
	return nil
}

func (a *App) loop() {
	for {
		a.draw()
		a.screen.Show()

		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			if a.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			a.handleMouse(ev)
		}
	}
}

// worldAt maps a screen cell to world coordinates, at the cell centre.
func worldAt(x, y int) circuit.Point {
	return circuit.Point{
		X: (float64(x) + 0.5) * cellWidth,
		Y: (float64(y) + 0.5) * cellHeight,
	}
}

// cellAt maps world coordinates to a screen cell.
func cellAt(p circuit.Point) (int, int) {
	return int(p.X / cellWidth), int(p.Y / cellHeight)
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape:
		a.ed.CancelWire()
		a.tool = ""
		a.wiring = false
		a.selected = uuid.Nil
		a.message = ""
		return false
	case tcell.KeyCtrlR:
		a.redo()
		return false
	case tcell.KeyDelete, tcell.KeyBackspace2:
		a.deleteSelected()
		return false
	}

	switch ev.Rune() {
	case 'q':
		return true
	case 'u':
		if !a.ed.Undo() {
			a.message = "nothing to undo"
		} else {
			a.message = "undo"
		}
	case 'U':
		a.redo()
	case 'r':
		a.rotateSelected(90)
	case 'R':
		a.rotateSelected(-90)
	case 'd':
		a.deleteSelected()
	case 'b':
		a.armTool(circuit.KindBattery)
	case 'c':
		a.armTool(circuit.KindLiIonCell)
	case 'l':
		a.armTool(circuit.KindLED)
	case 'w':
		a.wiring = true
		a.tool = ""
		a.message = "wire: click a free terminal to start"
	case 's':
		a.save()
	}
	return false
}

func (a *App) armTool(kind circuit.Kind) {
	a.tool = kind
	a.wiring = false
	a.ed.CancelWire()
	a.message = "place: " + kind.DisplayName()
}

func (a *App) redo() {
	if !a.ed.Redo() {
		a.message = "nothing to redo"
	} else {
		a.message = "redo"
	}
}

func (a *App) rotateSelected(delta int) {
	if a.selectedKind != editor.ObjectComponent || a.selected == uuid.Nil {
		a.message = "select a component to rotate"
		return
	}
	if err := a.ed.RotateComponent(a.selected, delta); err != nil {
		a.message = err.Error()
	}
}

func (a *App) deleteSelected() {
	if a.selected == uuid.Nil {
		a.message = "nothing selected"
		return
	}
	if err := a.ed.Delete(a.selectedKind, a.selected); err != nil {
		a.message = err.Error()
		return
	}
	a.selected = uuid.Nil
	a.message = "deleted"
}

func (a *App) save() {
	name := a.filename
	if name == "" {
		name = "untitled.json"
		a.filename = name
	}
	f, err := os.Create(name)
	if err != nil {
		a.message = err.Error()
		return
	}
	defer f.Close()
	if err := a.ed.Save(f); err != nil {
		a.message = err.Error()
		return
	}
	a.message = "saved " + name
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	world := worldAt(x, y)

	pressed := buttons&tcell.Button1 != 0 && a.lastButtons&tcell.Button1 == 0
	released := buttons&tcell.Button1 == 0 && a.lastButtons&tcell.Button1 != 0
	held := buttons&tcell.Button1 != 0 && a.lastButtons&tcell.Button1 != 0
	a.lastButtons = buttons

	switch {
	case pressed:
		a.mouseDown(world)
	case held && a.ed.Dragging():
		a.ed.UpdateDrag(world)
	case released && a.ed.Dragging():
		a.ed.EndDrag()
	default:
		if a.ed.Drawing() {
			a.ed.UpdateWirePreview(world)
		}
	}
}

func (a *App) mouseDown(world circuit.Point) {
	if a.wiring || a.ed.Drawing() {
		if err := a.ed.StartWire(world); err != nil {
			a.message = err.Error()
		} else if !a.ed.Drawing() {
			// Draft just committed.
			a.wiring = false
			a.message = "wire connected"
		}
		return
	}

	if a.tool != "" {
		if _, err := a.ed.PlaceComponent(a.tool, world); err != nil {
			a.message = err.Error()
		} else {
			a.message = "placed " + a.tool.DisplayName()
		}
		return
	}

	if kind, id, ok := a.ed.BeginDrag(world); ok {
		if kind == editor.DragComponent {
			a.selectedKind = editor.ObjectComponent
		} else {
			a.selectedKind = editor.ObjectWire
		}
		a.selected = id
		return
	}

	if kind, id, ok := a.ed.HitTest(world); ok {
		a.selectedKind = kind
		a.selected = id
	} else {
		a.selected = uuid.Nil
	}
}
