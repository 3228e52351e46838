package config

import "fmt"

// ValidationError names the offending field by its YAML path.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func invalid(path, format string, args ...any) error {
	return &ValidationError{Path: path, Err: fmt.Errorf(format, args...)}
}

// Validate returns the first invalid field as a *ValidationError.
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return invalid("screen", "width and height must be > 0")
	}
	if c.Screen.Scale <= 0 {
		return invalid("screen.scale", "scale must be > 0")
	}
	if c.FrameRate < 1 || c.FrameRate > 240 {
		return invalid("frame_rate", "frame_rate must be between 1 and 240")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return invalid("log_level", "log_level must be one of: debug, info, warn, error")
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return invalid("audio.volume", "volume must be between 0 and 1")
	}

	p := c.Program
	if p.LaunchTime <= 0 {
		return invalid("program.launch_time", "launch_time must be > 0")
	}
	if p.CloseTime <= 0 {
		return invalid("program.close_time", "close_time must be > 0")
	}
	if p.LaunchInterval <= 0 || p.LaunchInterval > p.LaunchTime {
		return invalid("program.launch_interval", "launch_interval must be > 0 and <= launch_time")
	}

	w := c.Window
	if w.TitleBarHeight <= 0 || w.TitleBarHeight >= float64(c.Screen.Height) {
		return invalid("window.title_bar_height", "title_bar_height must be > 0 and less than the screen height")
	}
	if w.TitleFontSize <= 0 {
		return invalid("window.title_font_size", "title_font_size must be > 0")
	}
	if w.FuzzyInterval <= 0 {
		return invalid("window.fuzzy_interval", "fuzzy_interval must be > 0")
	}
	if w.FuzzyBlock < 1 {
		return invalid("window.fuzzy_block", "fuzzy_block must be >= 1")
	}

	l := c.LaserCommand
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"particle_interval", l.ParticleInterval},
		{"laser_interval", l.LaserInterval},
		{"laser_draw_time", l.LaserDrawTime},
		{"explosion_length", l.ExplosionLength},
		{"asteroid_radius", l.AsteroidRadius},
		{"hit_radius", l.HitRadius},
	} {
		if f.v <= 0 {
			return invalid("laser_command."+f.name, "%s must be > 0", f.name)
		}
	}
	if l.AsteroidSpeed < 0 {
		return invalid("laser_command.asteroid_speed", "asteroid_speed must be >= 0")
	}
	if l.HitParticles < 0 {
		return invalid("laser_command.hit_particles", "hit_particles must be >= 0")
	}
	if l.BurstParticles < 0 {
		return invalid("laser_command.burst_particles", "burst_particles must be >= 0")
	}
	return nil
}
