package main

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/younwookim/charctl/internal/infrastructure/config"
)

// reloadTarget is the part of the playing scene that accepts new configs
type reloadTarget interface {
	ApplyConfig(cfg *config.ControlConfig)
	ReloadStage(stageCfg *config.StageConfig) error
}

// reloader maps changed files to config reloads
type reloader struct {
	loader *config.Loader
	stage  string
	logger *slog.Logger
}

// apply reloads whatever path refers to. Changes to other stages are
// ignored. Failures are logged and leave the running configs untouched.
func (r *reloader) apply(target reloadTarget, path string) {
	name := filepath.Base(path)
	switch {
	case name == config.ControlFile:
		cfg, err := r.loader.LoadControl()
		if err != nil {
			r.logger.Error("control reload failed", "path", path, "err", err)
			return
		}
		target.ApplyConfig(cfg)
		r.logger.Info("control reloaded", "path", path)

	case strings.TrimSuffix(name, filepath.Ext(name)) == r.stage:
		stageCfg, err := r.loader.LoadStage(r.stage)
		if err != nil {
			r.logger.Error("stage reload failed", "path", path, "err", err)
			return
		}
		if err := target.ReloadStage(stageCfg); err != nil {
			r.logger.Error("stage reload failed", "path", path, "err", err)
			return
		}
		r.logger.Info("stage reloaded", "stage", r.stage)
	}
}
