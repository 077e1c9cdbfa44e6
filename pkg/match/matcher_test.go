package match

import (
	"math"
	"testing"

	"github.com/agentstation/skymatch/pkg/catalogs"
	"github.com/agentstation/skymatch/pkg/errors"
	"github.com/agentstation/skymatch/pkg/logging"
	"github.com/agentstation/skymatch/pkg/sphere"
)

const arcsec = 1.0 / 3600.0

// countingSearcher wraps a Searcher and records how often it is queried.
type countingSearcher struct {
	inner sphere.Searcher
	calls int
}

func (c *countingSearcher) Nearest(query, ref catalogs.Catalog) ([]int, []float64, error) {
	c.calls++
	return c.inner.Nearest(query, ref)
}

func newTestMatcher(opts ...Option) *Matcher {
	opts = append([]Option{WithLogger(logging.Nop())}, opts...)
	return NewMatcher(opts...)
}

func TestMatchSelfIsIdentity(t *testing.T) {
	cat := catalogs.MustNew(
		[]float64{10.0, 10.5, 11.0, 200.0},
		[]float64{-5.0, 0.0, 5.0, 60.0},
	)

	result, err := newTestMatcher().Match(cat, cat, 2*arcsec, OneToOne)
	if err != nil {
		t.Fatalf("Match() error: %v", err)
	}
	if result.Len() != cat.Len() {
		t.Fatalf("matched %d pairs, want %d", result.Len(), cat.Len())
	}
	for i, p := range result.Pairs {
		if p.Source != i || p.Target != i {
			t.Errorf("pair %d = (%d, %d), want (%d, %d)", i, p.Source, p.Target, i, i)
		}
		if p.Separation != 0 {
			t.Errorf("pair %d separation = %v, want 0", i, p.Separation)
		}
	}
}

func TestMatchManyToOneRadiusStrict(t *testing.T) {
	cat1 := catalogs.MustNew(
		[]float64{10.0, 10.0 + 1*arcsec, 10.0 + 10*arcsec},
		[]float64{0.0, 0.0, 0.0},
	)
	cat2 := catalogs.MustNew([]float64{10.0}, []float64{0.0})

	radius := 5 * arcsec
	result, err := newTestMatcher().Match(cat1, cat2, radius, ManyToOne)
	if err != nil {
		t.Fatalf("Match() error: %v", err)
	}

	// Sources 0 and 1 are inside the radius, source 2 is not.
	if result.Len() != 2 {
		t.Fatalf("matched %d pairs, want 2", result.Len())
	}
	for _, p := range result.Pairs {
		if p.Separation >= radius {
			t.Errorf("pair %+v separation not strictly below radius %v", p, radius)
		}
	}

	// Many-to-one: both survivors share target 0, sources stay unique and ascending.
	if result.Pairs[0].Source != 0 || result.Pairs[1].Source != 1 {
		t.Errorf("sources = %v, want [0 1]", result.SourceIndices())
	}
	if result.Pairs[0].Target != 0 || result.Pairs[1].Target != 0 {
		t.Errorf("targets = %v, want [0 0]", result.TargetIndices())
	}
}

// Two catalog 1 points near a single catalog 2 point: one-to-one keeps only
// the closer one.
func TestMatchOneToOneDuplicateCollapse(t *testing.T) {
	cat1 := catalogs.MustNew([]float64{10.0, 10.0002}, []float64{20.0, 20.0})
	cat2 := catalogs.MustNew([]float64{10.00005}, []float64{20.0})

	result, err := newTestMatcher().Match(cat1, cat2, 5*arcsec, OneToOne)
	if err != nil {
		t.Fatalf("Match() error: %v", err)
	}
	if result.Len() != 1 {
		t.Fatalf("matched %d pairs, want exactly 1", result.Len())
	}

	p := result.Pairs[0]
	if p.Source != 0 || p.Target != 0 {
		t.Errorf("pair = (%d, %d), want (0, 0): source 0 is the closer point", p.Source, p.Target)
	}
}

func TestMatchZeroRadiusIsEmpty(t *testing.T) {
	cat1 := catalogs.MustNew([]float64{10.0}, []float64{0.0})
	cat2 := catalogs.MustNew([]float64{10.001}, []float64{0.0})

	result, err := newTestMatcher().Match(cat1, cat2, 0, OneToOne)
	if err != nil {
		t.Fatalf("Match() error: %v", err)
	}
	if result.Len() != 0 {
		t.Errorf("matched %d pairs with zero radius, want 0", result.Len())
	}
}

func TestMatchNegativeRadius(t *testing.T) {
	cat := catalogs.MustNew([]float64{10.0}, []float64{0.0})

	_, err := newTestMatcher().Match(cat, cat, -1, OneToOne)
	if !errors.IsValidationError(err) {
		t.Errorf("Match() error = %v, want validation error", err)
	}
}

func TestMatchInvalidMode(t *testing.T) {
	cat := catalogs.MustNew([]float64{10.0}, []float64{0.0})

	_, err := newTestMatcher().Match(cat, cat, arcsec, Mode(42))
	if !errors.IsInvalidMode(err) {
		t.Errorf("Match() error = %v, want ModeError", err)
	}
}

// Validation failures must surface before the searcher ever runs. Invalid
// catalogs cannot be built through catalogs.New, so the cases reachable
// here are the radius and mode checks; the non-finite path is covered at
// the facade boundary in the root package tests.
func TestMatchValidatesBeforeSearch(t *testing.T) {
	counter := &countingSearcher{inner: sphere.BruteForce{}}
	m := newTestMatcher(WithSearcher(counter))
	cat := catalogs.MustNew([]float64{10.0}, []float64{0.0})

	if _, err := m.Match(cat, cat, -1, OneToOne); !errors.IsValidationError(err) {
		t.Errorf("negative radius: error = %v, want validation error", err)
	}
	if _, err := m.Match(cat, cat, arcsec, Mode(-3)); !errors.IsInvalidMode(err) {
		t.Errorf("bad mode: error = %v, want ModeError", err)
	}
	if counter.calls != 0 {
		t.Errorf("searcher queried %d times before validation failed", counter.calls)
	}
}

func TestMatchOffsetRecoversUniformShift(t *testing.T) {
	// Points far apart relative to the radius; shift representable in
	// binary so the recovered offset is exact.
	cat1 := catalogs.MustNew(
		[]float64{10.0, 15.0, 20.0, 25.0, 30.0},
		[]float64{0.0, 1.0, 2.0, 3.0, 4.0},
	)
	const dRA, dDec = 0.125, 0.0625
	cat2 := cat1.Shift(dRA, dDec)

	radius := 0.5 // degrees, comfortably above the shift
	result, err := newTestMatcher().Match(cat1, cat2, radius, OneToOneOffset)
	if err != nil {
		t.Fatalf("Match() error: %v", err)
	}

	off := result.Diagnostics.Offset
	if off == nil {
		t.Fatal("Diagnostics.Offset is nil in offset mode")
	}
	// catalog 2 sits at +shift, so aligning it back needs -shift exactly.
	if off.RA != -dRA || off.Dec != -dDec {
		t.Errorf("offset = %+v, want {RA: %v, Dec: %v}", off, -dRA, -dDec)
	}

	// After correction every point matches its counterpart.
	if result.Len() != cat1.Len() {
		t.Fatalf("second pass matched %d pairs, want %d", result.Len(), cat1.Len())
	}
	for i, p := range result.Pairs {
		if p.Source != i || p.Target != i {
			t.Errorf("pair %d = (%d, %d), want identity", i, p.Source, p.Target)
		}
	}
	if result.Diagnostics.FirstPassCount != cat1.Len() {
		t.Errorf("FirstPassCount = %d, want %d", result.Diagnostics.FirstPassCount, cat1.Len())
	}
	if result.Diagnostics.SecondPassCount != result.Len() {
		t.Errorf("SecondPassCount = %d, want %d", result.Diagnostics.SecondPassCount, result.Len())
	}
}

// Final separations in offset mode are measured against catalog 2 as
// supplied, not the corrected copy.
func TestMatchOffsetSeparationsAgainstOriginal(t *testing.T) {
	cat1 := catalogs.MustNew([]float64{10.0, 15.0, 20.0}, []float64{0.0, 0.0, 0.0})
	const dRA = 0.125
	cat2 := cat1.Shift(dRA, 0)

	result, err := newTestMatcher().Match(cat1, cat2, 0.5, OneToOneOffset)
	if err != nil {
		t.Fatalf("Match() error: %v", err)
	}

	for i, p := range result.Pairs {
		want := sphere.Separation(cat1.RA(p.Source), cat1.Dec(p.Source), cat2.RA(p.Target), cat2.Dec(p.Target))
		if math.Abs(p.Separation-want) > 1e-12 {
			t.Errorf("pair %d separation = %v, want %v (vs original catalog 2)", i, p.Separation, want)
		}
		if p.Separation < dRA/2 {
			t.Errorf("pair %d separation %v suspiciously small; looks measured against the corrected catalog", i, p.Separation)
		}
	}
}

func TestMatchOffsetEmptyFirstPass(t *testing.T) {
	cat1 := catalogs.MustNew([]float64{10.0}, []float64{0.0})
	cat2 := catalogs.MustNew([]float64{50.0}, []float64{30.0})

	_, err := newTestMatcher().Match(cat1, cat2, 2*arcsec, OneToOneOffset)
	if !errors.IsEmptyMatch(err) {
		t.Errorf("Match() error = %v, want EmptyMatchError", err)
	}
}

func TestMatchEmptyQueryCatalog(t *testing.T) {
	cat2 := catalogs.MustNew([]float64{10.0}, []float64{0.0})

	result, err := newTestMatcher().Match(catalogs.Catalog{}, cat2, arcsec, ManyToOne)
	if err != nil {
		t.Fatalf("Match() error: %v", err)
	}
	if result.Len() != 0 {
		t.Errorf("matched %d pairs from an empty catalog, want 0", result.Len())
	}
}

func TestResultAccessors(t *testing.T) {
	r := &Result{Pairs: []Pair{
		{Source: 2, Target: 0, Separation: 1.0 / 3600.0},
		{Source: 5, Target: 3, Separation: 2.0 / 3600.0},
	}}

	if got := r.SourceIndices(); got[0] != 2 || got[1] != 5 {
		t.Errorf("SourceIndices() = %v", got)
	}
	if got := r.TargetIndices(); got[0] != 0 || got[1] != 3 {
		t.Errorf("TargetIndices() = %v", got)
	}
	arcsecs := r.SeparationsArcsec()
	if math.Abs(arcsecs[0]-1.0) > 1e-9 || math.Abs(arcsecs[1]-2.0) > 1e-9 {
		t.Errorf("SeparationsArcsec() = %v, want [1 2]", arcsecs)
	}
}

func TestOffsetOnSkyArcsec(t *testing.T) {
	off := Offset{RA: 1.0 / 3600.0, Dec: -2.0 / 3600.0}

	ra, dec := off.OnSkyArcsec(60.0) // cos(60 deg) = 0.5
	if math.Abs(ra-0.5) > 1e-9 {
		t.Errorf("RA on sky = %v arcsec, want 0.5", ra)
	}
	if math.Abs(dec+2.0) > 1e-9 {
		t.Errorf("Dec on sky = %v arcsec, want -2", dec)
	}
}
