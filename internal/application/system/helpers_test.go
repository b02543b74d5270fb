package system

import (
	"github.com/younwookim/charctl/internal/application/control"
	"github.com/younwookim/charctl/internal/domain/entity"
	"github.com/younwookim/charctl/internal/infrastructure/config"
)

const frame = 1.0 / 60.0

var testTileMapping = map[string]config.TileMappingConfig{
	"#": {Type: "wall", Solid: true},
	"=": {Type: "platform", Solid: false},
	"^": {Type: "spike", Solid: false, Damage: 25},
	"-": {Type: "zipline", Solid: false},
	"o": {Type: "hook", Solid: false},
}

// createTestStage builds a stage of 16px tiles from collision rows
func createTestStage(rows ...string) *entity.Stage {
	return LoadStage(&config.StageConfig{
		Size: config.StageSizeConfig{
			Width:    len(rows[0]) * 16,
			Height:   len(rows) * 16,
			TileSize: 16,
		},
		PlayerSpawn: config.PositionConfig{X: 32, Y: 56},
		Layers:      config.LayersConfig{Collision: rows},
		TileMapping: testTileMapping,
	})
}

// roomStage is a closed room with a one-way platform over tiles 4 and 5.
// The floor top is at pixel 80, the platform top at pixel 48.
func roomStage() *entity.Stage {
	return createTestStage(
		"##########",
		"#........#",
		"#........#",
		"#...==...#",
		"#........#",
		"##########",
	)
}

func createTestCharacter(stage *entity.Stage, x, y int) *entity.Character {
	c := NewCharacter(config.Default(), stage)
	c.SetPixelPos(x, y)
	return c
}

func run(sys *PhysicsSystem, c *entity.Character, frames int) {
	for i := 0; i < frames; i++ {
		sys.Update(c, frame)
	}
}

type gateStub struct {
	answer bool
	asked  int
}

func (g *gateStub) fn(control.Actor) bool {
	g.asked++
	return g.answer
}
