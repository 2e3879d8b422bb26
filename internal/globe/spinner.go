package globe

// Spinner accumulates the rotation angle. The angle only grows; it feeds sin
// and cos, so it never needs wrapping.
type Spinner struct {
	angle float64
	step  float64
}

func NewSpinner(step float64) Spinner {
	return Spinner{step: step}
}

// Advance adds one step.
func (s *Spinner) Advance() { s.angle += s.step }

func (s Spinner) Angle() float64 { return s.angle }
