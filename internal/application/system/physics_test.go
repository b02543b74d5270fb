package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/charctl/internal/domain/entity"
	"github.com/younwookim/charctl/internal/infrastructure/config"
)

func TestPhysics_IdleOnGround(t *testing.T) {
	stage := roomStage()
	sys := NewPhysicsSystem(config.Default(), stage)
	c := createTestCharacter(stage, 32, 56)

	for frameNum := 0; frameNum < 60; frameNum++ {
		sys.Update(c, frame)

		require.True(t, c.OnGround, "frame %d: should stay grounded", frameNum)
		assert.Equal(t, 56, c.PixelY(), "frame %d: should not sink or bounce", frameNum)
		assert.Equal(t, 0.0, c.VY, "frame %d: resting VY", frameNum)
		assert.Equal(t, 0.0, c.SinceGrounded)
	}
}

func TestPhysics_FallAndLand(t *testing.T) {
	stage := roomStage()
	sys := NewPhysicsSystem(config.Default(), stage)
	c := createTestCharacter(stage, 32, 20)

	sys.Update(c, frame)
	assert.False(t, c.OnGround)
	assert.Greater(t, c.SinceGrounded, 0.0)

	run(sys, c, 120)

	assert.True(t, c.OnGround)
	assert.Equal(t, 56, c.PixelY(), "feet rest on the floor top")
	assert.Equal(t, 0.0, c.SinceGrounded)
}

func TestPhysics_MaxFallSpeed(t *testing.T) {
	cfg := config.Default()
	stage := createTestStage(
		"##########",
		"#........#",
		"#........#",
		"#........#",
		"#........#",
		"#........#",
		"#........#",
		"#........#",
		"#........#",
		"#........#",
		"#........#",
		"#........#",
		"#........#",
		"#........#",
		"##########",
	)
	sys := NewPhysicsSystem(cfg, stage)
	c := createTestCharacter(stage, 32, 16)

	run(sys, c, 40)

	assert.LessOrEqual(t, c.VY, cfg.Physics.MaxFallSpeed*100)
}

func TestPhysics_RunIntoWall(t *testing.T) {
	stage := roomStage()
	sys := NewPhysicsSystem(config.Default(), stage)
	c := createTestCharacter(stage, 32, 56)
	c.InputDir.X = 1

	run(sys, c, 120)

	// Body spans px+2..px+13, the right wall starts at 144
	assert.Equal(t, 130, c.PixelX())
	assert.True(t, c.OnWallRight)
	assert.Equal(t, 0.0, c.VX)
}

func TestPhysics_Deceleration(t *testing.T) {
	stage := roomStage()
	sys := NewPhysicsSystem(config.Default(), stage)
	c := createTestCharacter(stage, 32, 56)
	c.InputDir.X = 1
	run(sys, c, 20)
	require.Greater(t, c.VX, 0.0)

	c.InputDir.X = 0
	run(sys, c, 60)

	assert.Equal(t, 0.0, c.VX)
}

func TestPhysics_StunnedIgnoresInput(t *testing.T) {
	stage := roomStage()
	sys := NewPhysicsSystem(config.Default(), stage)
	c := createTestCharacter(stage, 32, 56)
	c.InputDir.X = 1
	c.StunTimer = 1

	run(sys, c, 10)

	assert.Equal(t, 0.0, c.VX)
	assert.Equal(t, 32, c.PixelX())
}

func TestPhysics_VehicleBoost(t *testing.T) {
	cfg := config.Default()
	stage := roomStage()
	sys := NewPhysicsSystem(cfg, stage)
	c := createTestCharacter(stage, 16, 56)
	c.InputDir.X = 1
	c.Vehicle = "cart"

	run(sys, c, 30)

	assert.InDelta(t, cfg.Movement.MaxSpeed*100*vehicleSpeedBoost, c.VX, 0.001)
}

func TestPhysics_OneWayPlatform(t *testing.T) {
	t.Run("lands on top", func(t *testing.T) {
		stage := roomStage()
		sys := NewPhysicsSystem(config.Default(), stage)
		c := createTestCharacter(stage, 72, 16)

		run(sys, c, 60)

		assert.True(t, c.OnGround)
		assert.Equal(t, 24, c.PixelY(), "feet rest on the platform top at 48")
		assert.True(t, sys.StandingOnPlatform(c))
	})

	t.Run("jumps up through it", func(t *testing.T) {
		stage := roomStage()
		sys := NewPhysicsSystem(config.Default(), stage)
		c := createTestCharacter(stage, 72, 56)
		sys.Update(c, frame)
		require.True(t, c.OnGround)

		c.VY = -300 * 100
		run(sys, c, 60)

		assert.True(t, c.OnGround)
		assert.Equal(t, 24, c.PixelY())
	})

	t.Run("drops through while the timer runs", func(t *testing.T) {
		stage := roomStage()
		sys := NewPhysicsSystem(config.Default(), stage)
		c := createTestCharacter(stage, 72, 24)
		sys.Update(c, frame)
		require.True(t, c.OnGround)

		c.DropThroughTime = 0.25
		c.OnGround = false
		run(sys, c, 60)

		assert.True(t, c.OnGround)
		assert.Equal(t, 56, c.PixelY())
		assert.False(t, sys.StandingOnPlatform(c))
	})
}

// ledgeStage has a raised block on the right whose top is at pixel 48
func ledgeStage() *entity.Stage {
	return createTestStage(
		"##########",
		"#........#",
		"#........#",
		"#.....####",
		"#.....####",
		"##########",
	)
}

func TestPhysics_LedgeAssist(t *testing.T) {
	setup := func(ledge *LedgeModule) (*PhysicsSystem, *entity.Character) {
		stage := ledgeStage()
		sys := NewPhysicsSystem(config.Default(), stage)
		sys.SetLedge(ledge)
		// Feet bottom at 50, two pixels below the ledge top
		c := createTestCharacter(stage, 82, 27)
		c.OnGround = false
		c.VX = 6000
		c.VY = 100
		c.InputDir.X = 1
		return sys, c
	}

	t.Run("climbs when the gate agrees", func(t *testing.T) {
		gate := &gateStub{answer: true}
		ledge := NewLedgeModule(nil)
		ledge.SetShouldGetOnLedge(gate.fn)
		sys, c := setup(ledge)

		sys.Update(c, frame)

		assert.Equal(t, 1, gate.asked)
		assert.Equal(t, 1, ledge.Grabs())
		assert.Equal(t, 24, c.PixelY())
		assert.Greater(t, c.PixelX(), 82)
		assert.True(t, c.OnGround)
	})

	t.Run("blocked when the gate refuses", func(t *testing.T) {
		gate := &gateStub{answer: false}
		ledge := NewLedgeModule(nil)
		ledge.SetShouldGetOnLedge(gate.fn)
		sys, c := setup(ledge)

		sys.Update(c, frame)

		assert.Equal(t, 1, gate.asked)
		assert.Equal(t, 0, ledge.Grabs())
		assert.Equal(t, 82, c.PixelX())
		assert.True(t, c.OnWallRight)
	})

	t.Run("no gate installed", func(t *testing.T) {
		ledge := NewLedgeModule(nil)
		sys, c := setup(ledge)

		sys.Update(c, frame)

		assert.Equal(t, 0, ledge.Grabs())
		assert.Equal(t, 82, c.PixelX())
	})

	t.Run("disabled in config", func(t *testing.T) {
		gate := &gateStub{answer: true}
		ledge := NewLedgeModule(nil)
		ledge.SetShouldGetOnLedge(gate.fn)
		sys, c := setup(ledge)
		cfg := config.Default()
		cfg.Collision.LedgeAssist.Enabled = false
		sys.SetConfig(cfg)

		sys.Update(c, frame)

		assert.Equal(t, 0, gate.asked)
		assert.Equal(t, 82, c.PixelX())
	})
}

func TestPhysics_TraversalHoldsPosition(t *testing.T) {
	stage := roomStage()
	sys := NewPhysicsSystem(config.Default(), stage)
	c := createTestCharacter(stage, 40, 30)
	c.Traversal = TraversalHook
	c.VY = 5000

	run(sys, c, 10)

	assert.Equal(t, 40, c.PixelX())
	assert.Equal(t, 30, c.PixelY())
	assert.False(t, c.OnGround)
	assert.InDelta(t, 10*frame, c.SinceGrounded, 1e-9)
}

func TestPhysics_TumbleEndsOnLanding(t *testing.T) {
	stage := roomStage()
	sys := NewPhysicsSystem(config.Default(), stage)
	c := createTestCharacter(stage, 32, 40)
	c.Tumbling = true
	c.CanDash = false

	run(sys, c, 60)

	assert.True(t, c.OnGround)
	assert.False(t, c.Tumbling)
	assert.True(t, c.CanDash)
}

func TestPhysics_ResolveOverlap(t *testing.T) {
	t.Run("pushes out of a wall", func(t *testing.T) {
		stage := roomStage()
		sys := NewPhysicsSystem(config.Default(), stage)
		// Body starts at pixel 14, two pixels inside the left wall
		c := createTestCharacter(stage, 12, 56)

		sys.Update(c, frame)

		assert.Equal(t, 14, c.PixelX())
		assert.True(t, c.OnWallLeft)
	})

	t.Run("respawns when buried", func(t *testing.T) {
		stage := createTestStage(
			"##########",
			"##########",
			"##########",
			"##########",
			"##########",
			"##########",
		)
		sys := NewPhysicsSystem(config.Default(), stage)
		c := createTestCharacter(stage, 64, 40)

		sys.Update(c, frame)

		assert.Equal(t, stage.SpawnX, c.PixelX())
	})
}
