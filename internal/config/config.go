// Package config loads the YAML settings file. Every field is optional; a
// missing file or field keeps the default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"interstellar/internal/lasercommand"
	"interstellar/internal/program"
	"interstellar/internal/window"
)

type Screen struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"`
}

type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type ProgramTiming struct {
	LaunchTime     float64 `yaml:"launch_time"`
	LaunchInterval float64 `yaml:"launch_interval"`
	CloseTime      float64 `yaml:"close_time"`
}

type WindowChrome struct {
	TitleBarHeight float64 `yaml:"title_bar_height"`
	TitleFontSize  float64 `yaml:"title_font_size"`
	FuzzyInterval  float64 `yaml:"fuzzy_interval"`
	FuzzyBlock     float64 `yaml:"fuzzy_block"`
}

type LaserCommand struct {
	ParticleInterval float64 `yaml:"particle_interval"`
	LaserInterval    float64 `yaml:"laser_interval"`
	LaserDrawTime    float64 `yaml:"laser_draw_time"`
	ExplosionLength  float64 `yaml:"explosion_length"`
	AsteroidRadius   float64 `yaml:"asteroid_radius"`
	AsteroidSpeed    float64 `yaml:"asteroid_speed"`
	HitRadius        float64 `yaml:"hit_radius"`
	HitParticles     int     `yaml:"hit_particles"`
	BurstParticles   int     `yaml:"burst_particles"`
}

type Config struct {
	Screen       Screen        `yaml:"screen"`
	FrameRate    int           `yaml:"frame_rate"`
	LogLevel     string        `yaml:"log_level"`
	Audio        Audio         `yaml:"audio"`
	Program      ProgramTiming `yaml:"program"`
	Window       WindowChrome  `yaml:"window"`
	LaserCommand LaserCommand  `yaml:"laser_command"`
	// Seed fixes the random sequence; 0 picks a fresh one per run.
	Seed uint64 `yaml:"seed"`
}

// Default returns the stock settings: a 640x480 desktop at 30 frames per
// second.
func Default() *Config {
	p := program.DefaultConfig()
	w := window.DefaultConfig()
	l := lasercommand.DefaultConfig()
	return &Config{
		Screen:    Screen{Width: 640, Height: 480, Scale: 1},
		FrameRate: 30,
		LogLevel:  "info",
		Audio:     Audio{Enabled: true, Volume: 0.5},
		Program: ProgramTiming{
			LaunchTime:     p.LaunchTime,
			LaunchInterval: p.LaunchInterval,
			CloseTime:      p.CloseTime,
		},
		Window: WindowChrome{
			TitleBarHeight: w.TitleBarHeight,
			TitleFontSize:  w.TitleFontSize,
			FuzzyInterval:  w.FuzzyInterval,
			FuzzyBlock:     w.FuzzyBlock,
		},
		LaserCommand: LaserCommand{
			ParticleInterval: l.ParticleInterval,
			LaserInterval:    l.LaserInterval,
			LaserDrawTime:    l.LaserDrawTime,
			ExplosionLength:  l.ExplosionLength,
			AsteroidRadius:   l.AsteroidRadius,
			AsteroidSpeed:    l.AsteroidSpeed,
			HitRadius:        l.HitRadius,
			HitParticles:     l.HitParticles,
			BurstParticles:   l.BurstParticles,
		},
	}
}

func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "interstellar", "config.yaml"), nil
}

// Load reads the config from the standard location.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads path over the defaults. A missing file yields the
// defaults; unknown keys are rejected.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: failed to parse: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ProgramConfig converts the lifecycle timings.
func (c *Config) ProgramConfig() program.Config {
	return program.Config{
		LaunchTime:     c.Program.LaunchTime,
		LaunchInterval: c.Program.LaunchInterval,
		CloseTime:      c.Program.CloseTime,
	}
}

// WindowConfig converts the chrome settings.
func (c *Config) WindowConfig() window.Config {
	return window.Config{
		TitleBarHeight: c.Window.TitleBarHeight,
		TitleFontSize:  c.Window.TitleFontSize,
		FuzzyInterval:  c.Window.FuzzyInterval,
		FuzzyBlock:     c.Window.FuzzyBlock,
	}
}

// LaserCommandConfig converts the game tuning.
func (c *Config) LaserCommandConfig() lasercommand.Config {
	l := c.LaserCommand
	return lasercommand.Config{
		ParticleInterval: l.ParticleInterval,
		LaserInterval:    l.LaserInterval,
		LaserDrawTime:    l.LaserDrawTime,
		ExplosionLength:  l.ExplosionLength,
		AsteroidRadius:   l.AsteroidRadius,
		AsteroidSpeed:    l.AsteroidSpeed,
		HitRadius:        l.HitRadius,
		HitParticles:     l.HitParticles,
		BurstParticles:   l.BurstParticles,
	}
}

// FrameTime is the fixed simulation step in seconds.
func (c *Config) FrameTime() float64 { return 1 / float64(c.FrameRate) }
