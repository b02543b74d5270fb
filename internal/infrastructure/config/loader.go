package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ControlFile is the name of the control config inside the config directory
const ControlFile = "control.yaml"

// GameConfig holds all loaded configurations
type GameConfig struct {
	Control *ControlConfig
	Stage   *StageConfig
}

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadControl loads control.yaml on top of Default()
func (l *Loader) LoadControl() (*ControlConfig, error) {
	data, err := fs.ReadFile(l.fsys, ControlFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ControlFile, err)
	}

	return ParseControl(data)
}

// ParseControl decodes control YAML on top of Default()
func ParseControl(data []byte) (*ControlConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ControlFile, err)
	}

	return cfg, nil
}

// LoadStage loads stages/<name>.yaml, or stages/<name>.tmx when there is
// no YAML file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		tmx := "stages/" + name + ".tmx"
		if _, serr := fs.Stat(l.fsys, tmx); serr == nil {
			return LoadTiledStage(l.fsys, tmx)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads the control config and the named stage
func (l *Loader) LoadAll(stage string) (*GameConfig, error) {
	control, err := l.LoadControl()
	if err != nil {
		return nil, err
	}

	stageCfg, err := l.LoadStage(stage)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Control: control,
		Stage:   stageCfg,
	}, nil
}
