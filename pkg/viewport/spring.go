package viewport

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	// springStep is the fixed integration step. Frame times are split into
	// steps of this size so the motion does not depend on the frame rate.
	springStep = time.Second / springFPS
	springFPS  = 240

	restDelta = 1e-3
	restSpeed = 1e-3
)

// SpringConfig parameterizes the damped spring driving each camera channel.
type SpringConfig struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// DefaultSpring returns the camera spring used by the map.
func DefaultSpring() SpringConfig {
	return SpringConfig{Stiffness: 140, Damping: 22, Mass: 0.7}
}

// AngularFrequency returns ω = √(k/m).
func (c SpringConfig) AngularFrequency() float64 {
	return math.Sqrt(c.Stiffness / c.Mass)
}

// DampingRatio returns ζ = c / (2√(km)).
func (c SpringConfig) DampingRatio() float64 {
	return c.Damping / (2 * math.Sqrt(c.Stiffness*c.Mass))
}

// motion builds the per-step integrator for c.
func (c SpringConfig) motion() harmonica.Spring {
	return harmonica.NewSpring(harmonica.FPS(springFPS), c.AngularFrequency(), c.DampingRatio())
}

// spring is one animated scalar chasing a target.
type spring struct {
	pos, vel, target float64
}

// jump places the spring at v with no motion.
func (s *spring) jump(v float64) {
	s.pos, s.vel, s.target = v, 0, v
}

// atRest reports whether the spring has settled on its target.
func (s *spring) atRest() bool {
	return s.vel == 0 && s.pos == s.target
}

// step advances the spring by one fixed step and snaps it to the target once
// both offset and speed are negligible.
func (s *spring) step(m harmonica.Spring) {
	if s.atRest() {
		return
	}
	s.pos, s.vel = m.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < restDelta && math.Abs(s.vel) < restSpeed {
		s.pos, s.vel = s.target, 0
	}
}
