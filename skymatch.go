// Package skymatch cross-matches two astronomical source catalogs by
// angular position: it pairs each source in catalog 1 with its nearest
// neighbor in catalog 2 within a matching radius, optionally forces the
// pairing to be one-to-one, and can estimate and remove a systematic
// coordinate offset between the catalogs before re-matching.
package skymatch

import (
	"fmt"

	"github.com/agentstation/skymatch/pkg/catalogs"
	"github.com/agentstation/skymatch/pkg/constants"
	"github.com/agentstation/skymatch/pkg/errors"
	"github.com/agentstation/skymatch/pkg/match"
)

// Skymatch cross-matches catalogs with a fixed radius and mode.
type Skymatch interface {
	// Match cross-matches catalog 1 against catalog 2 and returns the
	// matched pairs with diagnostics.
	Match(cat1, cat2 catalogs.Catalog) (*match.Result, error)

	// RadiusArcsec returns the configured matching radius in arcseconds.
	RadiusArcsec() float64

	// Mode returns the configured matching mode.
	Mode() match.Mode
}

// skymatch is the internal implementation of the Skymatch interface
type skymatch struct {
	config  *config
	matcher *match.Matcher
}

// New creates a new Skymatch instance with the given options.
// Defaults: a 2 arcsec radius, offset-corrected one-to-one matching, and a
// brute-force spherical searcher.
func New(opts ...Option) (Skymatch, error) {
	sm := &skymatch{config: defaultConfig()}

	if err := sm.options(opts...); err != nil {
		return nil, fmt.Errorf("applying options: %w", err)
	}

	if sm.config.radiusArcsec < 0 {
		return nil, errors.NewValidationError("radius", sm.config.radiusArcsec, "must be non-negative")
	}
	if !sm.config.mode.Valid() {
		return nil, errors.NewModeError(sm.config.mode.String())
	}

	matcherOpts := []match.Option{match.WithSearcher(sm.config.searcher)}
	if sm.config.logger != nil {
		matcherOpts = append(matcherOpts, match.WithLogger(*sm.config.logger))
	}
	sm.matcher = match.NewMatcher(matcherOpts...)

	return sm, nil
}

// options applies the given options to the config
func (s *skymatch) options(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(s.config); err != nil {
			return err
		}
	}
	return nil
}

// Match implements Skymatch.
func (s *skymatch) Match(cat1, cat2 catalogs.Catalog) (*match.Result, error) {
	radiusDeg := s.config.radiusArcsec * constants.DegreesPerArcsec
	return s.matcher.Match(cat1, cat2, radiusDeg, s.config.mode)
}

// RadiusArcsec implements Skymatch.
func (s *skymatch) RadiusArcsec() float64 {
	return s.config.radiusArcsec
}

// Mode implements Skymatch.
func (s *skymatch) Mode() match.Mode {
	return s.config.mode
}

// MatchCoordinates is a convenience wrapper over the classic cross-match
// signature: raw RA/Dec slices in degrees, a radius in arcseconds, and a
// mode. It returns parallel slices of matched catalog 1 indices, catalog 2
// indices, and separations in arcseconds.
//
// Catalog 1 is validated before catalog 2 is touched, so a NaN in the first
// catalog fails without reading the second.
func MatchCoordinates(ra1, dec1, ra2, dec2 []float64, radiusArcsec float64, mode match.Mode) (id1, id2 []int, sepArcsec []float64, err error) {
	cat1, err := catalogs.New(ra1, dec1)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("catalog 1: %w", err)
	}
	cat2, err := catalogs.New(ra2, dec2)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("catalog 2: %w", err)
	}

	sm, err := New(WithRadiusArcsec(radiusArcsec), WithMode(mode))
	if err != nil {
		return nil, nil, nil, err
	}

	result, err := sm.Match(cat1, cat2)
	if err != nil {
		return nil, nil, nil, err
	}
	return result.SourceIndices(), result.TargetIndices(), result.SeparationsArcsec(), nil
}
