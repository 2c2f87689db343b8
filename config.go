package fireworks

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls the frame driver. Zero fields in a YAML file keep their
// DefaultConfig values.
type Config struct {
	// Width and Height are the frame size in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// MaxFireworks caps the population; free slots are offered a launch every
	// frame.
	MaxFireworks int `yaml:"max_fireworks"`
	// SpawnChance is the per-slot, per-frame launch probability.
	SpawnChance float64 `yaml:"spawn_chance"`
	// Palette lists the colors launches are drawn from uniformly.
	Palette []Color `yaml:"-"`
	// Background is the clear color.
	Background Color `yaml:"-"`
	// StarsPerBurst is the number of stars each firework bursts into.
	StarsPerBurst int `yaml:"stars_per_burst"`
	// InheritVelocity is the fraction of the rocket velocity passed to stars.
	InheritVelocity float64 `yaml:"inherit_velocity"`
	// Trails enables fading trails behind rockets and stars.
	Trails bool `yaml:"trails"`
	// TrailLife is the trail lifetime in seconds.
	TrailLife float64 `yaml:"trail_life"`
	// GroundPoints is the number of static markers drawn on the ground ring.
	GroundPoints int `yaml:"ground_points"`
	// HUD draws population counters in the top-left corner.
	HUD bool `yaml:"hud"`
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string `yaml:"screenshot_dir"`
	// Debug logs per-frame timing to stderr.
	Debug bool `yaml:"debug"`
}

// yamlConfig mirrors Config with colors as strings.
type yamlConfig struct {
	Config     `yaml:",inline"`
	Palette    []string `yaml:"palette"`
	Background string   `yaml:"background"`
}

// DefaultConfig returns the configuration of the classic show: a 600x800
// portrait frame with up to 20 fireworks.
func DefaultConfig() Config {
	return Config{
		Width:         600,
		Height:        800,
		MaxFireworks:  20,
		SpawnChance:   0.01,
		Palette:       append([]Color(nil), DefaultPalette...),
		Background:    Black,
		StarsPerBurst: DefaultBurstSize,
		TrailLife:     trailAge,
		ScreenshotDir: "screenshots",
	}
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	yc := yamlConfig{Config: DefaultConfig()}
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg := yc.Config
	if len(yc.Palette) > 0 {
		cfg.Palette = make([]Color, 0, len(yc.Palette))
		for _, s := range yc.Palette {
			c, err := ParseColor(s)
			if err != nil {
				return Config{}, fmt.Errorf("parse config: palette: %w", err)
			}
			cfg.Palette = append(cfg.Palette, c)
		}
	}
	if yc.Background != "" {
		c, err := ParseColor(yc.Background)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: background: %w", err)
		}
		cfg.Background = c
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: frame size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.MaxFireworks < 0:
		return fmt.Errorf("%w: max_fireworks %d", ErrInvalidConfig, c.MaxFireworks)
	case c.SpawnChance < 0 || c.SpawnChance > 1:
		return fmt.Errorf("%w: spawn_chance %v outside [0, 1]", ErrInvalidConfig, c.SpawnChance)
	case c.StarsPerBurst < 0:
		return fmt.Errorf("%w: stars_per_burst %d", ErrInvalidConfig, c.StarsPerBurst)
	case c.TrailLife < 0:
		return fmt.Errorf("%w: trail_life %v", ErrInvalidConfig, c.TrailLife)
	case c.GroundPoints < 0:
		return fmt.Errorf("%w: ground_points %d", ErrInvalidConfig, c.GroundPoints)
	case len(c.Palette) == 0 && c.MaxFireworks > 0 && c.SpawnChance > 0:
		return fmt.Errorf("%w: empty palette", ErrInvalidConfig)
	}
	return nil
}

// fireworkConfig extracts the per-firework settings.
func (c Config) fireworkConfig() FireworkConfig {
	return FireworkConfig{
		Stars:           c.StarsPerBurst,
		InheritVelocity: c.InheritVelocity,
		Trails:          c.Trails,
		TrailLife:       c.TrailLife,
	}
}
