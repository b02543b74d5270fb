package system

import (
	"fmt"

	"github.com/younwookim/charctl/internal/domain/entity"
	"github.com/younwookim/charctl/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a Stage entity
func LoadStage(cfg *config.StageConfig) *entity.Stage {
	tileWidth := cfg.Size.Width / cfg.Size.TileSize
	tileHeight := len(cfg.Layers.Collision)

	tiles := make([][]entity.Tile, tileHeight)
	for y, row := range cfg.Layers.Collision {
		tiles[y] = make([]entity.Tile, tileWidth)
		for x, char := range row {
			if x >= tileWidth {
				break
			}
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				tiles[y][x] = entity.Tile{Type: entity.TileEmpty, Solid: false}
				continue
			}

			tileType := entity.ParseTileType(mapping.Type)
			tiles[y][x] = entity.Tile{
				Type:   tileType,
				Solid:  mapping.Solid && tileType != entity.TilePlatform,
				OneWay: tileType == entity.TilePlatform,
				Damage: mapping.Damage,
			}
		}
	}

	return &entity.Stage{
		Width:    tileWidth,
		Height:   tileHeight,
		TileSize: cfg.Size.TileSize,
		Tiles:    tiles,
		SpawnX:   cfg.PlayerSpawn.X,
		SpawnY:   cfg.PlayerSpawn.Y,
	}
}

// SpawnProps places the stage's props into world. Wisps expire after
// wispLifetime seconds.
func SpawnProps(cfg *config.StageConfig, world *PropWorld, wispLifetime float64) error {
	for i, spawn := range cfg.Props {
		kind, ok := entity.ParsePropKind(spawn.Type)
		if !ok {
			return fmt.Errorf("failed to spawn prop %d: unknown type %q", i, spawn.Type)
		}
		lifetime := 0.0
		if kind == entity.PropWisp {
			lifetime = wispLifetime
		}
		world.Spawn(kind, spawn.Label, spawn.X, spawn.Y, lifetime)
	}
	return nil
}

// NewCharacter creates the character at the stage spawn point
func NewCharacter(cfg *config.ControlConfig, stage *entity.Stage) *entity.Character {
	ch := cfg.Character
	hitbox := entity.TrapezoidHitbox{
		Head: hitboxRect(ch.Hitbox.Head),
		Body: hitboxRect(ch.Hitbox.Body),
		Feet: hitboxRect(ch.Hitbox.Feet),
	}

	c := entity.NewCharacter(stage.SpawnX, stage.SpawnY, hitbox, ch.MaxHealth)
	if ch.Width > 0 {
		c.Width = ch.Width
	}
	if ch.Height > 0 {
		c.Height = ch.Height
	}
	return c
}

func hitboxRect(r config.Rect) entity.HitboxRect {
	return entity.HitboxRect{
		OffsetX: r.OffsetX,
		OffsetY: r.OffsetY,
		Width:   r.Width,
		Height:  r.Height,
	}
}
