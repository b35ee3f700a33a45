package store

import "github.com/rs/zerolog"

type storeConfig struct {
	logger zerolog.Logger
}

// Option configures a store.
type Option func(*storeConfig)

// WithLogger sets the store's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *storeConfig) {
		c.logger = l
	}
}

func buildConfig(opts []Option) storeConfig {
	c := storeConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
