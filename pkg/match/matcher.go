// Package match implements nearest-neighbor cross-matching of two sky
// catalogs: a radius-filtered initial match, greedy one-to-one duplicate
// resolution, and an optional two-pass run that removes the median
// coordinate offset between the catalogs before re-matching.
//
// The matcher is stateless across calls: every Match invocation is a pure
// function of its inputs. All angular quantities at this level are degrees;
// arcsecond conversion belongs to the caller-facing boundary.
package match

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/skymatch/pkg/catalogs"
	"github.com/agentstation/skymatch/pkg/errors"
	"github.com/agentstation/skymatch/pkg/logging"
	"github.com/agentstation/skymatch/pkg/sphere"
)

// Matcher cross-matches catalogs using a spherical nearest-neighbor
// searcher. Create one with NewMatcher.
type Matcher struct {
	searcher sphere.Searcher
	logger   zerolog.Logger
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithSearcher replaces the nearest-neighbor implementation. Useful for
// swapping in an indexed searcher for large catalogs; results must be
// identical to a sequential scan.
func WithSearcher(s sphere.Searcher) Option {
	return func(m *Matcher) {
		m.searcher = s
	}
}

// WithLogger sets the logger used for pass diagnostics (debug level).
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Matcher) {
		m.logger = logger
	}
}

// NewMatcher creates a Matcher with a brute-force searcher and the package
// default logger.
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{
		searcher: sphere.BruteForce{},
		logger:   logging.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match cross-matches catalog 1 against catalog 2 within radiusDeg degrees
// using the given mode.
//
// Validation runs once at entry, before any mode branches: both catalogs
// must have equal-length coordinate sequences of finite values, the radius
// must be non-negative, and the mode must be one of the defined values. Any
// violation returns a typed error and no partial result. A zero radius is
// accepted and, with the strict less-than filter, always yields an empty
// result.
func (m *Matcher) Match(cat1, cat2 catalogs.Catalog, radiusDeg float64, mode Mode) (*Result, error) {
	if err := cat1.Validate("catalog 1"); err != nil {
		return nil, err
	}
	if err := cat2.Validate("catalog 2"); err != nil {
		return nil, err
	}
	if radiusDeg < 0 {
		return nil, errors.NewValidationError("radius", radiusDeg, "must be non-negative")
	}
	if !mode.Valid() {
		return nil, errors.NewModeError(mode.String())
	}

	switch mode {
	case ManyToOne:
		pairs, err := m.initialMatch(cat1, cat2, radiusDeg)
		if err != nil {
			return nil, err
		}
		m.logger.Debug().Int("pairs", len(pairs)).Msg("many-to-one match")
		return &Result{
			Pairs:       pairs,
			Diagnostics: Diagnostics{FirstPassCount: len(pairs)},
		}, nil

	case OneToOne:
		pairs, err := m.matchOneToOne(cat1, cat2, radiusDeg)
		if err != nil {
			return nil, err
		}
		m.logger.Debug().Int("pairs", len(pairs)).Msg("forced one-to-one match")
		return &Result{
			Pairs:       pairs,
			Diagnostics: Diagnostics{FirstPassCount: len(pairs)},
		}, nil

	default: // OneToOneOffset
		return m.matchWithOffset(cat1, cat2, radiusDeg)
	}
}

// matchOneToOne is one full pass: initial match plus duplicate resolution.
func (m *Matcher) matchOneToOne(cat1, cat2 catalogs.Catalog, radiusDeg float64) ([]Pair, error) {
	pairs, err := m.initialMatch(cat1, cat2, radiusDeg)
	if err != nil {
		return nil, err
	}
	return resolveOneToOne(pairs), nil
}

// matchWithOffset runs the two-pass refinement: a first one-to-one pass to
// estimate the median coordinate offset, then a second pass against the
// offset-corrected catalog 2 at the original radius.
//
// Separations in the returned result are re-measured against catalog 2 as
// supplied, not the corrected copy, so reported distances are true sky
// separations consistent with the other modes. They can therefore exceed
// the radius, which bounds the corrected geometry only.
func (m *Matcher) matchWithOffset(cat1, cat2 catalogs.Catalog, radiusDeg float64) (*Result, error) {
	first, err := m.matchOneToOne(cat1, cat2, radiusDeg)
	if err != nil {
		return nil, err
	}
	m.logger.Debug().Int("pairs", len(first)).Msg("first match pass")

	off, err := computeOffset(cat1, cat2, first, radiusDeg)
	if err != nil {
		return nil, err
	}

	medianDec := median(cat1.Decs())
	raArcsec, decArcsec := off.OnSkyArcsec(medianDec)
	m.logger.Debug().
		Float64("ra_offset_arcsec", raArcsec).
		Float64("dec_offset_arcsec", decArcsec).
		Msg("median coordinate offset")

	second, err := m.matchOneToOne(cat1, applyOffset(cat2, off), radiusDeg)
	if err != nil {
		return nil, err
	}
	m.logger.Debug().Int("pairs", len(second)).Msg("second match pass")

	for i, p := range second {
		second[i].Separation = sphere.Separation(
			cat1.RA(p.Source), cat1.Dec(p.Source),
			cat2.RA(p.Target), cat2.Dec(p.Target),
		)
	}

	return &Result{
		Pairs: second,
		Diagnostics: Diagnostics{
			FirstPassCount:  len(first),
			SecondPassCount: len(second),
			Offset:          &off,
			MedianDec:       medianDec,
		},
	}, nil
}
