package config

import (
	"fmt"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "AREASELECT_"

// Environment variables read by ApplyEnv.
const (
	EnvStopForMove     = EnvPrefix + "STOP_FOR_MOVE"
	EnvMultiSelectKeys = EnvPrefix + "MULTI_SELECT_KEYS"
	EnvItems           = EnvPrefix + "ITEMS"
	EnvLogLevel        = EnvPrefix + "LOG_LEVEL"
	EnvLogFile         = EnvPrefix + "LOG_FILE"
)

// LookupFunc looks up an environment variable.
type LookupFunc func(name string) (string, bool)

// ApplyEnv overrides cfg with the AREASELECT_* variables found by lookup.
// Empty values are treated as set.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	if v, ok := lookup(EnvStopForMove); ok {
		b, err := parseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvStopForMove, err)
		}
		cfg.Interaction.StopForMove = b
	}
	if v, ok := lookup(EnvMultiSelectKeys); ok {
		cfg.Keys.MultiSelect = splitList(v)
	}
	if v, ok := lookup(EnvItems); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvItems, err)
		}
		cfg.Area.Items = n
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.Logging.File = v
	}
	return nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

// splitList splits "ctrl, shift" or "ctrl+shift" into names.
func splitList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '+' || r == ' '
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
