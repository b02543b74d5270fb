package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/charctl/internal/domain/entity"
	"github.com/younwookim/charctl/internal/domain/event"
	"github.com/younwookim/charctl/internal/infrastructure/config"
)

func spikeStage() *entity.Stage {
	return createTestStage(
		"##########",
		"#........#",
		"#........#",
		"#........#",
		"#..^.....#",
		"##########",
	)
}

func newHazardSystem(stage *entity.Stage) *HazardSystem {
	cfg := config.Default()
	return NewHazardSystem(cfg, NewPhysicsSystem(cfg, stage))
}

func TestHazard_SpikeDamage(t *testing.T) {
	stage := spikeStage()
	sys := newHazardSystem(stage)
	c := createTestCharacter(stage, 48, 56)
	c.OnGround = true
	var hits []event.Hit
	sys.OnHit = func(h event.Hit) { hits = append(hits, h) }

	sys.Update(c, frame)

	require.Len(t, hits, 1)
	assert.Equal(t, 25, hits[0].Damage)
	assert.True(t, hits[0].Knockback, "damage over the tumble threshold knocks back")
	assert.Equal(t, event.CauseHazard, hits[0].Cause)
	assert.Equal(t, 75, c.Health)
	assert.True(t, c.Tumbling)
	assert.True(t, c.IsStunned())
	assert.False(t, c.OnGround)
	assert.Equal(t, -200.0*100, c.VY)
}

func TestHazard_InvincibleAfterHit(t *testing.T) {
	stage := spikeStage()
	sys := newHazardSystem(stage)
	c := createTestCharacter(stage, 48, 56)
	hits := 0
	sys.OnHit = func(event.Hit) { hits++ }

	sys.Update(c, frame)
	sys.Update(c, 0.5)

	assert.Equal(t, 1, hits)
	assert.Equal(t, 75, c.Health)
	assert.InDelta(t, 0.5, c.IframeTimer, 1e-9)
}

func TestHazard_NoContact(t *testing.T) {
	stage := spikeStage()
	sys := newHazardSystem(stage)
	c := createTestCharacter(stage, 96, 56)
	c.StunTimer = 0.2

	sys.Update(c, 0.1)

	assert.Equal(t, 100, c.Health)
	assert.InDelta(t, 0.1, c.StunTimer, 1e-9)
}

func TestHazard_LethalSpike(t *testing.T) {
	stage := spikeStage()
	sys := newHazardSystem(stage)
	c := createTestCharacter(stage, 48, 56)
	c.Health = 10
	c.VX = 5000
	var cause event.Cause
	c.Events.Death.Connect(func(d event.Death) { cause = d.Cause })

	sys.Update(c, frame)

	assert.True(t, c.Dead)
	assert.Equal(t, event.CauseHazard, cause)
	assert.Equal(t, 0.0, c.VX)

	sys.Update(c, 2)
	assert.Equal(t, 10-25, c.Health, "dead characters take no further damage")
}

func TestHazard_KnocksOffTraversal(t *testing.T) {
	stage := spikeStage()
	sys := newHazardSystem(stage)
	c := createTestCharacter(stage, 48, 56)
	c.Traversal = TraversalHook

	sys.Update(c, frame)

	assert.Empty(t, c.Traversal)
}
