// Package input turns terminal events into a per-frame snapshot of held keys
// and mouse movement.
package input

// Key is a logical control, independent of the physical key bound to it.
type Key int

const (
	Forward Key = iota
	Back
	Left
	Right
	Jump
	Up   // free-fly only
	Down // free-fly only
	LookLeft
	LookRight
	LookUp
	LookDown
	Quit

	numKeys
)

var keyNames = [numKeys]string{
	Forward:   "forward",
	Back:      "back",
	Left:      "left",
	Right:     "right",
	Jump:      "jump",
	Up:        "up",
	Down:      "down",
	LookLeft:  "look-left",
	LookRight: "look-right",
	LookUp:    "look-up",
	LookDown:  "look-down",
	Quit:      "quit",
}

func (k Key) String() string {
	if k < 0 || k >= numKeys {
		return "unknown"
	}
	return keyNames[k]
}

// KeyByName returns the key with the given name.
func KeyByName(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name {
			return Key(k), true
		}
	}
	return 0, false
}

// Keys returns every logical key in declaration order.
func Keys() []Key {
	out := make([]Key, numKeys)
	for i := range out {
		out[i] = Key(i)
	}
	return out
}

// KeySet is a set of held keys.
type KeySet uint32

// With returns the set with k added.
func (s KeySet) With(k Key) KeySet {
	return s | 1<<uint(k)
}

// Has reports whether k is in the set.
func (s KeySet) Has(k Key) bool {
	return s&(1<<uint(k)) != 0
}

// State is the input seen by one frame.
type State struct {
	Keys KeySet

	// MouseDX and MouseDY are the look movement for this frame, positive
	// right and down.
	MouseDX, MouseDY float64
}

// NewState returns a state with the given keys held and no mouse movement.
func NewState(keys ...Key) State {
	var s State
	for _, k := range keys {
		s.Keys = s.Keys.With(k)
	}
	return s
}

// Pressed reports whether k is held this frame.
func (s State) Pressed(k Key) bool {
	return s.Keys.Has(k)
}
