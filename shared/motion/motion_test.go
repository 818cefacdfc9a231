package motion

import (
	"math"
	"testing"

	"github.com/automoto/runslide/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gravity = mgl64.Vec3{0, -9.81, 0}

func testTuning() Tuning {
	t := DefaultTuning()
	t.MovementSpeed = 5
	return t
}

func approxVec(t *testing.T, want, got mgl64.Vec3, msg string) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], 1e-9, msg)
}

func TestMoveForce_ForwardNotSliding(t *testing.T) {
	tune := testTuning()
	s := &State{}
	Sample(s, Input{Vertical: 1}, true, tune)

	fwd, right := gamemath.OrientationAxes(0.4)
	f := MoveForce(s, fwd, right, tune)

	approxVec(t, fwd.Mul(5), f, "force")
	assert.InDelta(t, 5, f.Len(), 1e-9)
}

func TestMoveForce_SlidingUsesMultiplier(t *testing.T) {
	tune := testTuning()
	s := &State{Sliding: true, Horizontal: 1}

	fwd, right := gamemath.OrientationAxes(0)
	f := MoveForce(s, fwd, right, tune)
	approxVec(t, right.Mul(5*tune.SlideMultiplier), f, "slide force")

	tune.SlideEnabled = false
	f = MoveForce(s, fwd, right, tune)
	approxVec(t, right.Mul(5), f, "slide disabled")
}

func TestMoveForce_DiagonalIsNormalized(t *testing.T) {
	tune := testTuning()
	s := &State{Horizontal: 1, Vertical: 1}

	fwd, right := gamemath.OrientationAxes(0)
	f := MoveForce(s, fwd, right, tune)
	assert.InDelta(t, 5, f.Len(), 1e-9)
}

func TestMoveForce_QuarterTurn(t *testing.T) {
	tune := testTuning()
	s := &State{Vertical: 1}

	fwd, right := gamemath.OrientationAxes(math.Pi / 2)
	approxVec(t, mgl64.Vec3{5, 0, 0}, MoveForce(s, fwd, right, tune), "forward at yaw 90")
}

func TestSample_NaNAxesReadAsZero(t *testing.T) {
	s := &State{}
	Sample(s, Input{Horizontal: math.NaN(), Vertical: math.NaN()}, true, testTuning())
	assert.Zero(t, s.Horizontal)
	assert.Zero(t, s.Vertical)

	fwd, right := gamemath.OrientationAxes(0)
	assert.Equal(t, mgl64.Vec3{}, MoveForce(s, fwd, right, testTuning()))
}

func TestMoveForce_NoInputIsZero(t *testing.T) {
	fwd, right := gamemath.OrientationAxes(1)
	assert.Equal(t, mgl64.Vec3{}, MoveForce(&State{}, fwd, right, testTuning()))
}

func TestDrag(t *testing.T) {
	tune := testTuning()
	assert.Equal(t, tune.GroundDrag, Drag(&State{}, tune))
	assert.Equal(t, tune.SlideDrag, Drag(&State{Sliding: true}, tune))

	b := &Body{}
	ApplyMovement(b, &State{Sliding: true}, gamemath.WorldForward, gamemath.WorldRight, tune)
	assert.Equal(t, tune.SlideDrag, b.Drag)
	ApplyMovement(b, &State{}, gamemath.WorldForward, gamemath.WorldRight, tune)
	assert.Equal(t, tune.GroundDrag, b.Drag)
}

func TestSample_ModeKeys(t *testing.T) {
	tune := testTuning()
	s := &State{}

	Sample(s, Input{SlidePressed: true}, true, tune)
	assert.True(t, s.Sliding)

	Sample(s, Input{}, true, tune)
	assert.True(t, s.Sliding, "mode persists without key edges")

	Sample(s, Input{MovePressed: true}, true, tune)
	assert.False(t, s.Sliding)

	tune.SlideEnabled = false
	Sample(s, Input{SlidePressed: true}, true, tune)
	assert.False(t, s.Sliding)
}

func TestSample_ClampsAxes(t *testing.T) {
	s := &State{}
	Sample(s, Input{Horizontal: -2, Vertical: 3}, false, testTuning())
	assert.Equal(t, -1.0, s.Horizontal)
	assert.Equal(t, 1.0, s.Vertical)
}

func TestSample_JumpRequiresGroundAndReady(t *testing.T) {
	tune := testTuning()

	s := &State{}
	assert.False(t, Sample(s, Input{JumpPressed: true}, false, tune))
	assert.Equal(t, JumpReady, s.Jump)

	assert.True(t, Sample(s, Input{JumpPressed: true}, true, tune))
	assert.Equal(t, JumpCooling, s.Jump)
	assert.Equal(t, tune.JumpCooldown, s.Cooldown)

	assert.False(t, Sample(s, Input{JumpPressed: true}, true, tune), "cooling blocks jump")
}

func TestSample_SlideEdgeWinsOverJump(t *testing.T) {
	s := &State{}
	jumped := Sample(s, Input{SlidePressed: true, JumpPressed: true}, true, testTuning())
	assert.False(t, jumped)
	assert.True(t, s.Sliding)
	assert.Equal(t, JumpReady, s.Jump)
}

func TestJumpCooldown_ReturnsToReadyAfterDuration(t *testing.T) {
	tune := testTuning()
	tune.JumpCooldown = 0.25
	s := &State{}
	require.True(t, Sample(s, Input{JumpPressed: true}, true, tune))

	elapsed := 0.0
	const dt = 1.0 / 60
	for s.Jump == JumpCooling {
		s.TickCooldown(dt)
		elapsed += dt
		require.Less(t, elapsed, 1.0)
	}
	assert.GreaterOrEqual(t, elapsed, tune.JumpCooldown-1e-9)
	assert.LessOrEqual(t, elapsed, tune.JumpCooldown+dt+1e-9)
	assert.Zero(t, s.Cooldown)
}

func TestTickCooldown_ReadyIsNoop(t *testing.T) {
	s := &State{}
	s.TickCooldown(5)
	assert.Equal(t, JumpReady, s.Jump)
	assert.Zero(t, s.Cooldown)
}

func TestJump_ZeroesVerticalThenImpulse(t *testing.T) {
	tune := testTuning()
	tune.JumpForce = 6
	tune.Mass = 2
	b := &Body{Velocity: mgl64.Vec3{1, -4, 2}, Mass: tune.Mass}

	Jump(b, tune)

	approxVec(t, mgl64.Vec3{1, 3, 2}, b.Velocity, "velocity after jump")
}

func TestNoJumpWhenAirborne_LeavesBodyUntouched(t *testing.T) {
	tune := testTuning()
	s := &State{}
	b := &Body{Velocity: mgl64.Vec3{1, -4, 2}, Mass: 1}

	if Sample(s, Input{JumpPressed: true}, false, tune) {
		Jump(b, tune)
	}

	approxVec(t, mgl64.Vec3{1, -4, 2}, b.Velocity, "velocity")
	assert.Equal(t, mgl64.Vec3{}, b.PendingForce())
	assert.Equal(t, JumpReady, s.Jump)
}

func TestStep_ClampsHorizontalOnly(t *testing.T) {
	tune := testTuning()
	tune.GroundDrag = 0
	s := &State{Vertical: 1}
	b := &Body{Velocity: mgl64.Vec3{0, 12, 30}, Mass: 1}

	Step(b, s, gamemath.WorldForward, gamemath.WorldRight, tune, 0.02, mgl64.Vec3{})

	assert.InDelta(t, tune.MovementSpeed, gamemath.HorizontalSpeed(b.Velocity), 1e-9)
	assert.Equal(t, 12.0, b.Velocity.Y())
}

func TestStep_SpeedNeverExceedsLimit(t *testing.T) {
	tune := testTuning()
	s := &State{Sliding: true}
	b := &Body{Mass: 1, UseGravity: true}

	inputs := [][2]float64{{1, 0}, {1, 1}, {-1, 0.3}, {0, -1}}
	for i := 0; i < 600; i++ {
		in := inputs[(i/50)%len(inputs)]
		s.Vertical, s.Horizontal = in[0], in[1]
		Step(b, s, gamemath.WorldForward, gamemath.WorldRight, tune, 0.02, gravity)
		require.LessOrEqual(t, gamemath.HorizontalSpeed(b.Velocity), tune.MovementSpeed+1e-9, "step %d", i)
	}
}

func TestStep_AccelerationFromForce(t *testing.T) {
	tune := testTuning()
	tune.GroundDrag = 0
	tune.Mass = 2
	s := &State{Vertical: 1}
	b := &Body{Mass: 2}

	Step(b, s, gamemath.WorldForward, gamemath.WorldRight, tune, 0.5, mgl64.Vec3{})

	// a = F/m = 5/2, v = a*dt
	approxVec(t, mgl64.Vec3{0, 0, 1.25}, b.Velocity, "velocity")
	assert.Equal(t, mgl64.Vec3{}, b.PendingForce(), "forces cleared after integration")
}

func TestBody_GravityAndDamping(t *testing.T) {
	b := &Body{Mass: 1, UseGravity: true, Drag: 1}
	b.IntegrateVelocity(0.1, gravity)
	assert.InDelta(t, -0.981/1.1, b.Velocity.Y(), 1e-12)

	b = &Body{Mass: 1}
	b.IntegrateVelocity(0.1, gravity)
	assert.Equal(t, mgl64.Vec3{}, b.Velocity, "gravity off")

	b = &Body{Velocity: mgl64.Vec3{1, 2, 3}}
	b.IntegratePosition(0.5)
	approxVec(t, mgl64.Vec3{0.5, 1, 1.5}, b.Position, "position")
}

func TestTuning_Validate(t *testing.T) {
	require.NoError(t, DefaultTuning().Validate())

	bad := DefaultTuning()
	bad.MovementSpeed = 0
	bad.Mass = -1
	bad.JumpCooldown = -0.1
	err := bad.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "movement speed")
	assert.ErrorContains(t, err, "mass")
	assert.ErrorContains(t, err, "cooldown")
}

func TestTuning_GroundCheckDistance(t *testing.T) {
	tune := DefaultTuning()
	tune.Height = 2
	assert.InDelta(t, 1.2, tune.GroundCheckDistance(), 1e-12)
}

func TestClock_Advance(t *testing.T) {
	c := NewClock(0.02, 5)

	assert.Equal(t, 0, c.Advance(0.01))
	assert.Equal(t, 1, c.Advance(0.01))
	assert.Equal(t, 2, c.Advance(0.05))
	assert.InDelta(t, 0.01, c.Accumulator, 1e-9)

	// Long stall is capped and the backlog dropped.
	assert.Equal(t, 5, c.Advance(1))
	assert.Zero(t, c.Accumulator)

	assert.Equal(t, 0, c.Advance(-1))
	assert.Equal(t, 0, NewClock(0, 5).Advance(1))
}

func TestClock_SixtyHzFrames(t *testing.T) {
	c := NewClock(0.02, 8)
	total := 0
	for i := 0; i < 60; i++ {
		total += c.Advance(1.0 / 60)
	}
	assert.Equal(t, 50, total)
}
