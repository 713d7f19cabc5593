package app

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/philipparndt/dragpie/internal/config"
	"github.com/philipparndt/dragpie/internal/sample"
)

// Random chart defaults, as in the demo page.
const (
	DefaultRandomSegments = 5
	DefaultRandomMinimum  = 0.05
)

// Options selects the chart to show and how.
type Options struct {
	// ConfigPath is a TOML or YAML chart file. Empty means the default chart.
	ConfigPath string

	// Watch reloads ConfigPath when it changes.
	Watch bool

	// Collapsing overrides the policy from the definition when set.
	Collapsing *bool

	// Random replaces the definition with random proportions.
	Random bool

	// Seed seeds Random. Zero picks a random seed.
	Seed uint64

	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// LoadDefinition returns the chart definition selected by opts.
func LoadDefinition(opts Options) (*config.Chart, error) {
	var (
		def *config.Chart
		err error
	)

	if opts.Random {
		seed := opts.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		opts.logger().Debug("generating random chart", "seed", seed)
		def, err = sample.Chart(DefaultRandomSegments, DefaultRandomMinimum, sample.NewRand(seed))
	} else {
		def, err = config.Open(opts.ConfigPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load chart: %w", err)
	}

	opts.apply(def)
	return def, nil
}

func (o Options) apply(def *config.Chart) {
	if o.Collapsing != nil {
		def.Collapsing = *o.Collapsing
	}
}
