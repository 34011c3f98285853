package main

import (
	"github.com/BurntSushi/toml"
)

// Config is the optional TOML configuration of the interpreter.
type Config struct {
	Limits       Limits            `toml:"limits"`
	Access       Access            `toml:"access"`
	Fingerprints Fingerprints      `toml:"fingerprints"`
	Env          map[string]string `toml:"env"`
}

// Limits bound a run.
type Limits struct {
	// MaxTicks stops the program after this many rounds; zero runs
	// without limit.
	MaxTicks int `toml:"max_ticks"`
}

// Access grants the program host capabilities.
type Access struct {
	Files bool `toml:"files"`
	Exec  bool `toml:"exec"`
}

// Fingerprints extends the built-in fingerprint registry.
type Fingerprints struct {
	// Scripts are Starlark fingerprint definitions to register.
	Scripts []string `toml:"scripts"`
}

// DefaultConfig grants host access and runs without limits.
func DefaultConfig() (conf Config) {
	conf = Config{
		Access: Access{Files: true, Exec: true},
	}

	return
}

// LoadConfig reads a TOML configuration file, layered over the
// defaults.
func LoadConfig(path string) (conf Config, err error) {
	conf = DefaultConfig()
	_, err = toml.DecodeFile(path, &conf)

	return
}
