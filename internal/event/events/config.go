package events

import (
	"github.com/dshills/areaselect/internal/event"
	"github.com/dshills/areaselect/internal/input/key"
)

// ConfigReloadedKey is published after the configuration file was reloaded.
var ConfigReloadedKey = event.NewKey[ConfigReloaded]("Config:reloaded")

// ConfigReloaded carries the settings that can change at runtime.
type ConfigReloaded struct {
	Path        string
	StopForMove bool
	MultiSelect key.Modifier
}
