package config

import (
	"errors"

	"github.com/dshills/areaselect/internal/input/key"
	"github.com/dshills/areaselect/internal/logging"
)

// Config holds every areaselect setting.
type Config struct {
	Interaction InteractionConfig `toml:"interaction" yaml:"interaction"`
	Keys        KeysConfig        `toml:"keys" yaml:"keys"`
	Area        AreaConfig        `toml:"area" yaml:"area"`
	Logging     LoggingConfig     `toml:"logging" yaml:"logging"`
}

// InteractionConfig configures gesture classification.
type InteractionConfig struct {
	// StopForMove makes a press on a selected element drag the selection.
	StopForMove bool `toml:"stop_for_move" yaml:"stop_for_move"`
}

// KeysConfig configures modifier keys.
type KeysConfig struct {
	// MultiSelect lists the modifiers that extend the selection:
	// any of "ctrl", "shift", "alt", "meta".
	MultiSelect []string `toml:"multi_select" yaml:"multi_select"`
}

// AreaConfig places the interactive area on screen.
type AreaConfig struct {
	X      int `toml:"x" yaml:"x"`
	Y      int `toml:"y" yaml:"y"`
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`

	// Items is the number of demo elements laid out in the area.
	Items int `toml:"items" yaml:"items"`
}

// LoggingConfig configures the log output.
type LoggingConfig struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

// Minimum area size.
const (
	MinAreaWidth  = 8
	MinAreaHeight = 3
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Interaction: InteractionConfig{StopForMove: true},
		Keys:        KeysConfig{MultiSelect: []string{"ctrl", "shift", "meta"}},
		Area:        AreaConfig{X: 2, Y: 2, Width: 60, Height: 16, Items: 12},
		Logging:     LoggingConfig{Level: "info"},
	}
}

// MultiSelectKeys returns the multi-select modifiers as a mask.
func (c *Config) MultiSelectKeys() (key.Modifier, error) {
	return key.ParseModifierList(c.Keys.MultiSelect)
}

// Validate checks every setting and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.MultiSelectKeys(); err != nil {
		errs = append(errs, &ValidationError{Path: "keys.multi_select", Value: c.Keys.MultiSelect, Message: err.Error()})
	}
	if c.Area.X < 0 || c.Area.Y < 0 {
		errs = append(errs, &ValidationError{Path: "area.x/y", Value: [2]int{c.Area.X, c.Area.Y}, Message: "must not be negative"})
	}
	if c.Area.Width < MinAreaWidth {
		errs = append(errs, &ValidationError{Path: "area.width", Value: c.Area.Width, Message: "too small"})
	}
	if c.Area.Height < MinAreaHeight {
		errs = append(errs, &ValidationError{Path: "area.height", Value: c.Area.Height, Message: "too small"})
	}
	if c.Area.Items < 0 {
		errs = append(errs, &ValidationError{Path: "area.items", Value: c.Area.Items, Message: "must not be negative"})
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, &ValidationError{Path: "logging.level", Value: c.Logging.Level, Message: err.Error()})
	}
	return errors.Join(errs...)
}
