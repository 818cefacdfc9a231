package motion

// Clock turns variable frame deltas into a whole number of fixed physics
// steps.
type Clock struct {
	FixedStep   float64
	MaxSteps    int
	Accumulator float64
}

// NewClock returns a clock stepping every fixedStep seconds, running at most
// maxSteps steps per frame.
func NewClock(fixedStep float64, maxSteps int) *Clock {
	return &Clock{FixedStep: fixedStep, MaxSteps: maxSteps}
}

// Advance adds frameDelta seconds and returns how many fixed steps to run.
// Time beyond MaxSteps steps is dropped so a long stall cannot snowball.
func (c *Clock) Advance(frameDelta float64) int {
	if c.FixedStep <= 0 || frameDelta <= 0 {
		return 0
	}
	c.Accumulator += frameDelta
	steps := 0
	for c.Accumulator >= c.FixedStep-1e-12 {
		if c.MaxSteps > 0 && steps == c.MaxSteps {
			c.Accumulator = 0
			break
		}
		c.Accumulator -= c.FixedStep
		steps++
	}
	if c.Accumulator < 0 {
		c.Accumulator = 0
	}
	return steps
}
