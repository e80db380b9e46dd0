// Package solver - backend construction from external configuration.
package solver

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"

	"github.com/quantour/qtsp/instance"
)

// Backend names accepted by FromConfig.
const (
	BackendExact  = "exact"
	BackendAnneal = "anneal"
)

// knownBackends lists the accepted names, in the order error messages cite them.
var knownBackends = []string{BackendExact, BackendAnneal}

// Config is the decoded shape of a backend configuration map. Zero-valued
// parameters fall back to the backend defaults.
type Config struct {
	Backend  string  `mapstructure:"backend"`
	Seed     int64   `mapstructure:"seed"`
	Sweeps   int     `mapstructure:"sweeps"`
	Restarts int     `mapstructure:"restarts"`
	BetaMin  float64 `mapstructure:"betaMin"`
	BetaMax  float64 `mapstructure:"betaMax"`
}

// FromConfig builds an Adapter from a plain configuration map, e.g.
//
//	{"backend": "anneal", "seed": 7, "sweeps": 2000}
//	{"backend": "exact"}
//
// inst is required because the exact backend runs on the instance itself.
//
// Errors: ErrBadConfig when the map does not decode or carries invalid
// parameter values; ErrUnknownBackend for an unrecognized backend name.
func FromConfig(raw map[string]any, inst *instance.Instance) (Adapter, error) {
	var cfg Config
	if err := mapstructure.Decode(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	if !lo.Contains(knownBackends, cfg.Backend) {
		return nil, fmt.Errorf("%w: %q (known: %s)",
			ErrUnknownBackend, cfg.Backend, strings.Join(knownBackends, ", "))
	}

	switch cfg.Backend {
	case BackendExact:
		return NewExact(inst), nil
	default: // BackendAnneal
		// Validate here so bad external input surfaces as an error, not as the
		// option constructors' programmer-error panic.
		if cfg.Sweeps < 0 || cfg.Restarts < 0 {
			return nil, fmt.Errorf("%w: sweeps and restarts must be >= 0", ErrBadConfig)
		}
		if cfg.BetaMin < 0 || cfg.BetaMax < 0 || (cfg.BetaMax != 0 && cfg.BetaMax < cfg.BetaMin) {
			return nil, fmt.Errorf("%w: require 0 < betaMin <= betaMax", ErrBadConfig)
		}

		opts := []AnnealOption{WithSeed(cfg.Seed)}
		if cfg.Sweeps > 0 {
			opts = append(opts, WithSweeps(cfg.Sweeps))
		}
		if cfg.Restarts > 0 {
			opts = append(opts, WithRestarts(cfg.Restarts))
		}
		if cfg.BetaMin > 0 || cfg.BetaMax > 0 {
			min := cfg.BetaMin
			if min == 0 {
				min = DefaultBetaMin
			}
			max := cfg.BetaMax
			if max == 0 {
				max = DefaultBetaMax
			}
			if max < min {
				return nil, fmt.Errorf("%w: require betaMin <= betaMax", ErrBadConfig)
			}
			opts = append(opts, WithBetaRange(min, max))
		}
		return NewAnneal(opts...), nil
	}
}
