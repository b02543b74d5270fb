package config

// StageConfig is the root config for stage YAML files
type StageConfig struct {
	ID          string                       `yaml:"id"`
	Name        string                       `yaml:"name"`
	Size        StageSizeConfig              `yaml:"size"`
	PlayerSpawn PositionConfig               `yaml:"playerSpawn"`
	Layers      LayersConfig                 `yaml:"layers"`
	TileMapping map[string]TileMappingConfig `yaml:"tileMapping"`
	Props       []PropSpawnConfig            `yaml:"props"`
}

type StageSizeConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TileSize int `yaml:"tileSize"`
}

type PositionConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type LayersConfig struct {
	Collision []string `yaml:"collision"`
}

type TileMappingConfig struct {
	Type   string `yaml:"type"`
	Solid  bool   `yaml:"solid"`
	Damage int    `yaml:"damage,omitempty"`
}

// PropSpawnConfig places an interactable prop
type PropSpawnConfig struct {
	Type  string `yaml:"type"`
	Label string `yaml:"label"`
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
}
