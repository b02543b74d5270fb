package entity

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// EntityID is a unique identifier for an entity
type EntityID uint32

// Vec2 is a 2D vector in world units. Y points up.
type Vec2 = dmath.Vec2

// Distance returns the euclidean distance between a and b
func Distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Sign returns -1, 0 or 1
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Direction is the horizontal facing of a character
type Direction int

const (
	DirRight Direction = iota
	DirLeft
)

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "Right"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// DirectionOf returns the facing for a signed horizontal value.
// Zero keeps the current facing.
func DirectionOf(x float64, current Direction) Direction {
	switch {
	case x > 0:
		return DirRight
	case x < 0:
		return DirLeft
	default:
		return current
	}
}

// AbilitySlot names one of the three ability buttons
type AbilitySlot int

const (
	SlotPrimary AbilitySlot = iota
	SlotSecondary
	SlotSpecial
	SlotCount // Must be last - used for array sizing
)

// String returns the string representation of the slot
func (s AbilitySlot) String() string {
	switch s {
	case SlotPrimary:
		return "Primary"
	case SlotSecondary:
		return "Secondary"
	case SlotSpecial:
		return "Special"
	default:
		return "Unknown"
	}
}

// Ability is anything that reacts to an ability button
type Ability interface {
	Press()
	Release()
}

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
	TilePlatform // one-way, solid only from above
	TileSpike
	TileZipline
	TileHook
)

// ParseTileType converts a config name into a TileType
func ParseTileType(name string) TileType {
	switch name {
	case "wall":
		return TileWall
	case "platform":
		return TilePlatform
	case "spike":
		return TileSpike
	case "zipline":
		return TileZipline
	case "hook":
		return TileHook
	default:
		return TileEmpty
	}
}

// Tile represents a single tile in the stage
type Tile struct {
	Type   TileType
	Solid  bool
	OneWay bool
	Damage int
}

// Stage represents the current stage's tile data
type Stage struct {
	Width    int
	Height   int
	TileSize int
	Tiles    [][]Tile
	SpawnX   int
	SpawnY   int
}

// GetTile returns the tile at the given tile coordinates
func (s *Stage) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{Type: TileWall, Solid: true}
	}
	return s.Tiles[ty][tx]
}

// GetTileAtPixel returns the tile at the given pixel coordinates
func (s *Stage) GetTileAtPixel(px, py int) Tile {
	tx := FloorDiv(px, s.TileSize)
	ty := FloorDiv(py, s.TileSize)
	return s.GetTile(tx, ty)
}

// IsSolidAt checks if the tile at pixel coordinates is solid
func (s *Stage) IsSolidAt(px, py int) bool {
	return s.GetTileAtPixel(px, py).Solid
}

// IsTypeAt checks the tile type at pixel coordinates
func (s *Stage) IsTypeAt(px, py int, t TileType) bool {
	return s.GetTileAtPixel(px, py).Type == t
}

// IsPlatformAt checks if the tile at pixel coordinates is a one-way platform
func (s *Stage) IsPlatformAt(px, py int) bool {
	return s.GetTileAtPixel(px, py).OneWay
}

// FloorDiv divides rounding toward negative infinity
func FloorDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
