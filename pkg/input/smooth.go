package input

import "github.com/charmbracelet/harmonica"

// Spring parameters for look smoothing: moderate speed, critically damped.
const (
	lookFrequency = 6.0
	lookDamping   = 1.0
)

type lookAxis struct {
	velocity float64
	accel    float64 // spring velocity of velocity
	spring   harmonica.Spring
}

func (a *lookAxis) step() float64 {
	out := a.velocity
	a.velocity, a.accel = a.spring.Update(a.velocity, a.accel, 0)
	return out
}

// LookSmoother spreads raw mouse movement over a few frames. Terminal mouse
// reports are cell-sized jumps; feeding them through a spring turns each jump
// into a short glide that settles back to zero.
type LookSmoother struct {
	x, y lookAxis
}

// NewLookSmoother creates a smoother stepped fps times per second.
func NewLookSmoother(fps int) *LookSmoother {
	if fps <= 0 {
		fps = 60
	}
	s := harmonica.NewSpring(harmonica.FPS(fps), lookFrequency, lookDamping)
	return &LookSmoother{
		x: lookAxis{spring: s},
		y: lookAxis{spring: s},
	}
}

// Impulse adds raw movement.
func (l *LookSmoother) Impulse(dx, dy float64) {
	l.x.velocity += dx
	l.y.velocity += dy
}

// Step advances one frame and returns the movement to apply in it.
func (l *LookSmoother) Step() (dx, dy float64) {
	return l.x.step(), l.y.step()
}

// Apply feeds s's mouse movement into the smoother and replaces it with the
// smoothed movement for this frame.
func (l *LookSmoother) Apply(s State) State {
	l.Impulse(s.MouseDX, s.MouseDY)
	s.MouseDX, s.MouseDY = l.Step()
	return s
}

// Reset drops any movement still in flight.
func (l *LookSmoother) Reset() {
	l.x.velocity, l.x.accel = 0, 0
	l.y.velocity, l.y.accel = 0, 0
}
