package skymatch

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/skymatch/pkg/constants"
	"github.com/agentstation/skymatch/pkg/match"
	"github.com/agentstation/skymatch/pkg/sphere"
)

// config holds the matching configuration assembled from options
type config struct {
	radiusArcsec float64
	mode         match.Mode
	searcher     sphere.Searcher
	logger       *zerolog.Logger
}

// defaultConfig returns the default matching configuration
func defaultConfig() *config {
	return &config{
		radiusArcsec: constants.DefaultRadiusArcsec,
		mode:         match.OneToOneOffset,
		searcher:     sphere.BruteForce{},
	}
}

// Option is a function that configures a Skymatch instance
type Option func(*config) error

// WithRadiusArcsec configures the matching radius in arcseconds.
func WithRadiusArcsec(radius float64) Option {
	return func(c *config) error {
		c.radiusArcsec = radius
		return nil
	}
}

// WithMode configures the matching mode.
func WithMode(mode match.Mode) Option {
	return func(c *config) error {
		c.mode = mode
		return nil
	}
}

// WithSearcher configures the spherical nearest-neighbor implementation.
// Any replacement must produce results identical to a sequential scan.
func WithSearcher(s sphere.Searcher) Option {
	return func(c *config) error {
		c.searcher = s
		return nil
	}
}

// WithLogger configures the logger used for match pass diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = &logger
		return nil
	}
}
