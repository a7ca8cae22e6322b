package editor

import "circed/circuit"

// History manages undo/redo using two capped stacks of encoded snapshots.
// Entries are msgpack blobs of circuit.Snapshot: deep copies, never shared
// with the live circuit.
type History struct {
	undo [][]byte
	redo [][]byte
	max  int
}

// NewHistory creates a history keeping at most max states per stack.
func NewHistory(max int) *History {
	if max <= 0 {
		max = 50
	}
	return &History{
		undo: make([][]byte, 0, max),
		redo: make([][]byte, 0, max),
		max:  max,
	}
}

// Push records the pre-mutation state and discards any redo branch. The
// oldest entry is dropped once the stack is full.
func (h *History) Push(c *circuit.Circuit) error {
	state, err := circuit.TakeSnapshot(c).EncodeBinary()
	if err != nil {
		return err
	}
	h.undo = cappedPush(h.undo, state, h.max)
	h.redo = h.redo[:0]
	return nil
}

// CanUndo returns true if we can undo.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo returns true if we can redo.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Undo trades the current state for the most recent undo entry. It returns
// nil with no error when the stack is empty; callers report that as a no-op.
func (h *History) Undo(current *circuit.Circuit) (*circuit.Circuit, error) {
	if !h.CanUndo() {
		return nil, nil
	}
	state, err := circuit.TakeSnapshot(current).EncodeBinary()
	if err != nil {
		return nil, err
	}
	restored, err := decode(h.undo[len(h.undo)-1])
	if err != nil {
		return nil, err
	}
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = cappedPush(h.redo, state, h.max)
	return restored, nil
}

// Redo is the mirror of Undo.
func (h *History) Redo(current *circuit.Circuit) (*circuit.Circuit, error) {
	if !h.CanRedo() {
		return nil, nil
	}
	state, err := circuit.TakeSnapshot(current).EncodeBinary()
	if err != nil {
		return nil, err
	}
	restored, err := decode(h.redo[len(h.redo)-1])
	if err != nil {
		return nil, err
	}
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = cappedPush(h.undo, state, h.max)
	return restored, nil
}

// Clear drops both stacks. Called after load: loaded state has no edit
// history.
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

// Depth returns the number of entries on each stack.
func (h *History) Depth() (undo, redo int) {
	return len(h.undo), len(h.redo)
}

func cappedPush(stack [][]byte, state []byte, max int) [][]byte {
	stack = append(stack, state)
	if len(stack) > max {
		stack = stack[1:]
	}
	return stack
}

func decode(state []byte) (*circuit.Circuit, error) {
	snap, err := circuit.DecodeBinary(state)
	if err != nil {
		return nil, err
	}
	return snap.Restore()
}
