// Package config resolves run configuration from CLI flags, environment
// variables, and an optional config file, in that priority order, using
// viper as the resolution engine.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/woodgern/ricochet/internal/geometry"
)

// EnvPrefix is the prefix viper applies to environment variable lookups,
// e.g. RICOCHET_MAP for the --map flag.
const EnvPrefix = "RICOCHET"

// DefaultProgressInterval is how many sweep boards pass between progress
// log lines when not overridden.
const DefaultProgressInterval = 10000

// Resolver wraps a *viper.Viper bound to one command's flag set.
type Resolver struct {
	v *viper.Viper
}

// New builds a Resolver bound to flags, reading RICOCHET_-prefixed
// environment variables and a config.yaml/config.json in the current working
// directory if present. A missing config file is not an error; a malformed one is.
func New(flags *pflag.FlagSet) (*Resolver, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetConfigName("config")
	v.AddConfigPath(".")

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	return &Resolver{v: v}, nil
}

// MapPath returns the resolved map file path.
func (r *Resolver) MapPath() string { return r.v.GetString("map") }

// Target returns the resolved target colour name (single mode).
func (r *Resolver) Target() string { return r.v.GetString("target") }

// ProgressInterval returns the resolved sweep progress-report interval.
func (r *Resolver) ProgressInterval() int {
	n := r.v.GetInt("progress-interval")
	if n <= 0 {
		return DefaultProgressInterval
	}
	return n
}

// Position returns the resolved "X,Y" flag value under key as a
// geometry.Position.
func (r *Resolver) Position(key string) (geometry.Position, error) {
	return ParsePosition(r.v.GetString(key))
}

// ParsePosition parses a "X,Y" string into a geometry.Position.
func ParsePosition(s string) (geometry.Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geometry.Position{}, fmt.Errorf("config: position %q must be X,Y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return geometry.Position{}, fmt.Errorf("config: invalid X in position %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return geometry.Position{}, fmt.Errorf("config: invalid Y in position %q: %w", s, err)
	}
	return geometry.Position{X: int8(x), Y: int8(y)}, nil
}
