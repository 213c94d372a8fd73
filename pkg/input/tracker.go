package input

import "time"

// DefaultHold is how long a key counts as held after its last press event.
// Most terminals never report key releases, only auto-repeat, so a key is
// considered released once repeats stop arriving.
const DefaultHold = 150 * time.Millisecond

// Tracker keeps the set of held keys and the mouse movement accumulated
// between frames. It is not safe for concurrent use; feed it from the frame
// loop.
type Tracker struct {
	hold    time.Duration
	until   [numKeys]time.Time
	latched KeySet
	dx, dy  float64

	lastX, lastY int
	haveMouse    bool
}

// NewTracker creates a tracker. A non-positive hold uses DefaultHold.
func NewTracker(hold time.Duration) *Tracker {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Tracker{hold: hold}
}

// Press records a press or auto-repeat of k at now.
func (t *Tracker) Press(k Key, now time.Time) {
	if k < 0 || k >= numKeys {
		return
	}
	t.until[k] = now.Add(t.hold)
	if k == Quit {
		t.latched = t.latched.With(Quit)
	}
}

// Release records an explicit release of k, for terminals that report one.
func (t *Tracker) Release(k Key) {
	if k < 0 || k >= numKeys {
		return
	}
	t.until[k] = time.Time{}
}

// MouseMove records the pointer at cell (x, y). The first call only sets the
// reference position.
func (t *Tracker) MouseMove(x, y int) {
	if t.haveMouse {
		t.dx += float64(x - t.lastX)
		t.dy += float64(y - t.lastY)
	}
	t.lastX, t.lastY = x, y
	t.haveMouse = true
}

// MouseDelta adds a relative movement directly.
func (t *Tracker) MouseDelta(dx, dy float64) {
	t.dx += dx
	t.dy += dy
}

// Snapshot returns the state at now and clears the accumulated mouse
// movement. Quit stays set once pressed.
func (t *Tracker) Snapshot(now time.Time) State {
	s := State{Keys: t.latched, MouseDX: t.dx, MouseDY: t.dy}
	for k := range numKeys {
		if now.Before(t.until[k]) {
			s.Keys = s.Keys.With(k)
		}
	}
	t.dx, t.dy = 0, 0
	return s
}
