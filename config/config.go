// Package config holds the server settings read from the process environment.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	// FlagVar is the environment variable exposed by the /flag route.
	FlagVar = "FLAG"

	// FlagFallback is served when FlagVar is unset.
	FlagFallback = "NOFLAG"

	envAddr        = "FLAGSERV_ADDR"
	envRoot        = "FLAGSERV_ROOT"
	envMetricsAddr = "FLAGSERV_METRICS_ADDR"

	defaultAddr        = "0.0.0.0:8000"
	defaultRoot        = "."
	defaultMetricsAddr = "127.0.0.1:8001"
)

var (
	// ErrNilLookup is returned when the lookup func is nil.
	ErrNilLookup = errors.New("lookup cannot be nil")
	// ErrNilValidator is returned when the validator is nil.
	ErrNilValidator = errors.New("validator cannot be nil")
)

// LookupFunc reads one variable from the environment.
// It has the same shape as os.LookupEnv.
type LookupFunc func(name string) (string, bool)

// Config contains all the configuration of the server.
type Config struct {
	Addr        string `validate:"required,hostname_port"`
	Root        string `validate:"required"`
	MetricsAddr string `validate:"required,hostname_port"`
}

// Load builds a Config from the environment through lookup,
// keeping the defaults for anything unset.
func Load(lookup LookupFunc, validate *validator.Validate) (*Config, error) {
	if lookup == nil {
		return nil, ErrNilLookup
	}
	if validate == nil {
		return nil, ErrNilValidator
	}

	config := &Config{
		Addr:        defaultAddr,
		Root:        defaultRoot,
		MetricsAddr: defaultMetricsAddr,
	}

	if addr, ok := lookup(envAddr); ok {
		config.Addr = addr
	}
	if root, ok := lookup(envRoot); ok {
		config.Root = root
	}
	if addr, ok := lookup(envMetricsAddr); ok {
		config.MetricsAddr = addr
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return config, nil
}
