package app

import (
	"errors"
	"fmt"
)

// Mode selects which bones end up on the graph.
type Mode string

const (
	ModeAll      Mode = "all"
	ModeVisible  Mode = "visible"
	ModeSelected Mode = "selected"
	ModeLegend   Mode = "legend"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ScenePaths []string // hcl and yaml files or directories
	Objects    []string // root objects, all objects when empty
	Mode       Mode
	Bones      []string // selected bones for ModeSelected
	Exclude    string   // optional HCL expression

	Title    string
	FontName string
	RankDir  string

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Mode == "" {
		cfg.Mode = ModeAll
	}
	switch cfg.Mode {
	case ModeAll, ModeVisible, ModeSelected, ModeLegend:
	default:
		return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
	}

	if cfg.Mode == ModeLegend {
		return &cfg, nil
	}
	if len(cfg.ScenePaths) == 0 {
		return nil, errors.New("ScenePaths is a required configuration field and cannot be empty")
	}
	if cfg.Mode == ModeSelected {
		if len(cfg.Objects) != 1 {
			return nil, errors.New("selected mode needs exactly one armature object")
		}
		if len(cfg.Bones) == 0 {
			return nil, errors.New("selected mode needs at least one bone")
		}
	}
	switch cfg.RankDir {
	case "", "TB", "BT", "LR", "RL":
	default:
		return nil, fmt.Errorf("invalid rankdir %q", cfg.RankDir)
	}
	return &cfg, nil
}
