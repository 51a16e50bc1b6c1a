// Package config populates the CLI's resource-ceiling defaults from the
// environment, the same way mainer's own flag parser layers env vars
// under explicit flags (it depends on caarlos0/env for exactly this, so
// this package uses it directly rather than leave it dead weight).
package config

import "github.com/caarlos0/env/v6"

// Config holds the resource ceilings the core spec leaves
// implementation-defined: the VM's fixed stack size and an optional
// runaway-recursion step ceiling. Both can be overridden by CLI flags
// once loaded.
type Config struct {
	StackSize int    `env:"CORVID_STACK_SIZE" envDefault:"1024"`
	MaxSteps  uint64 `env:"CORVID_MAX_STEPS" envDefault:"0"`
}

// Load reads Config from the environment, applying the struct defaults
// when a variable is unset.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
