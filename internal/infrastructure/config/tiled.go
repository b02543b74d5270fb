package config

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Tiled map conventions
const (
	TiledCollisionLayer = "collision"
	TiledPropsGroup     = "props"
	TiledSpawnGroup     = "spawn"
)

// tiledSymbols assigns a collision row symbol to each tile type
var tiledSymbols = map[string]string{
	"wall":     "#",
	"platform": "=",
	"spike":    "^",
	"zipline":  "-",
	"hook":     "o",
}

// LoadTiledStage converts a Tiled map into a StageConfig.
//
// Tiles of the "collision" layer take their kind from the tileset tile's
// "type" property and spikes their damage from "damage". Spikes share one
// mapping, so the highest damage wins. Objects of the "props" group become
// props named by the object name with an optional "label" property. The
// first object of the "spawn" group is the player spawn.
func LoadTiledStage(fsys fs.FS, tmxPath string) (*StageConfig, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load tiled map %s: %w", tmxPath, err)
	}

	stem := strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath))
	cfg := &StageConfig{
		ID:   stem,
		Name: stem,
		Size: StageSizeConfig{
			Width:    m.Width * m.TileWidth,
			Height:   m.Height * m.TileHeight,
			TileSize: m.TileWidth,
		},
		TileMapping: make(map[string]TileMappingConfig),
	}
	// Map properties are nil when the map has no <properties> block
	var props tiled.Properties
	if m.Properties != nil {
		props = *m.Properties
	}
	if id := props.GetString("id"); id != "" {
		cfg.ID = id
	}
	if name := props.GetString("name"); name != "" {
		cfg.Name = name
	}

	found := false
	for _, layer := range m.Layers {
		if layer.Name != TiledCollisionLayer {
			continue
		}
		found = true

		rows := make([]string, m.Height)
		for y := 0; y < m.Height; y++ {
			var row strings.Builder
			for x := 0; x < m.Width; x++ {
				row.WriteString(cfg.tiledSymbol(layer.Tiles[y*m.Width+x]))
			}
			rows[y] = row.String()
		}
		cfg.Layers.Collision = rows
		break
	}
	if !found {
		return nil, fmt.Errorf("failed to load tiled map %s: no %q layer", tmxPath, TiledCollisionLayer)
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case TiledPropsGroup:
			for _, o := range og.Objects {
				cfg.Props = append(cfg.Props, PropSpawnConfig{
					Type:  o.Name,
					Label: o.Properties.GetString("label"),
					X:     int(o.X),
					Y:     int(o.Y),
				})
			}
		case TiledSpawnGroup:
			if len(og.Objects) > 0 {
				cfg.PlayerSpawn = PositionConfig{X: int(og.Objects[0].X), Y: int(og.Objects[0].Y)}
			}
		}
	}

	return cfg, nil
}

// tiledSymbol returns the collision row symbol of a tile and records its
// mapping. Unknown and empty tiles are ".".
func (cfg *StageConfig) tiledSymbol(tile *tiled.LayerTile) string {
	if tile == nil || tile.IsNil() || tile.Tileset == nil {
		return "."
	}
	ts, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return "."
	}

	kind := ts.Properties.GetString("type")
	symbol, ok := tiledSymbols[kind]
	if !ok {
		return "."
	}

	mapping := TileMappingConfig{Type: kind, Solid: kind == "wall"}
	if kind == "spike" {
		mapping.Damage = max(ts.Properties.GetInt("damage"), cfg.TileMapping[symbol].Damage)
	}
	cfg.TileMapping[symbol] = mapping
	return symbol
}
