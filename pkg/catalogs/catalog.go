// Package catalogs provides the positional source catalog used by the
// skymatch matcher: an ordered, immutable sequence of sky positions given
// as right ascension and declination in degrees.
package catalogs

import (
	"math"

	"github.com/agentstation/skymatch/pkg/errors"
)

// Catalog is an ordered sequence of angular sky positions. RA and Dec are
// in degrees. A Catalog is immutable once constructed: accessors return
// copies and Shift returns a new value.
//
// The zero value is a valid empty catalog.
type Catalog struct {
	ra  []float64
	dec []float64
}

// New creates a Catalog from parallel RA/Dec slices. The slices are copied,
// so later mutation of the arguments does not affect the catalog.
//
// New returns a ShapeError if the slices differ in length and a
// NonFiniteError if any coordinate is NaN or infinite.
func New(ra, dec []float64) (Catalog, error) {
	c := Catalog{
		ra:  append([]float64(nil), ra...),
		dec: append([]float64(nil), dec...),
	}
	if err := c.Validate("catalog"); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// MustNew creates a Catalog and panics on invalid input. Intended for tests
// and literals known to be valid.
func MustNew(ra, dec []float64) Catalog {
	c, err := New(ra, dec)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks the catalog invariants: equal-length coordinate sequences
// and all values finite. The name is used in error messages to identify
// which catalog failed, e.g. "catalog 1".
func (c Catalog) Validate(name string) error {
	if len(c.ra) != len(c.dec) {
		return errors.NewShapeError(name, len(c.ra), len(c.dec))
	}
	for i, v := range c.ra {
		if !isFinite(v) {
			return errors.NewNonFiniteError(name, "ra", i, v)
		}
	}
	for i, v := range c.dec {
		if !isFinite(v) {
			return errors.NewNonFiniteError(name, "dec", i, v)
		}
	}
	return nil
}

// Len returns the number of positions in the catalog.
func (c Catalog) Len() int {
	return len(c.ra)
}

// RA returns the right ascension in degrees of the position at index i.
func (c Catalog) RA(i int) float64 {
	return c.ra[i]
}

// Dec returns the declination in degrees of the position at index i.
func (c Catalog) Dec(i int) float64 {
	return c.dec[i]
}

// RAs returns a copy of the right ascension sequence.
func (c Catalog) RAs() []float64 {
	return append([]float64(nil), c.ra...)
}

// Decs returns a copy of the declination sequence.
func (c Catalog) Decs() []float64 {
	return append([]float64(nil), c.dec...)
}

// Shift returns a new catalog with every position displaced by (dRA, dDec)
// degrees. The receiver is unchanged. The shift is plain degree arithmetic
// on both axes, matching how a median coordinate offset is removed.
func (c Catalog) Shift(dRA, dDec float64) Catalog {
	shifted := Catalog{
		ra:  make([]float64, len(c.ra)),
		dec: make([]float64, len(c.dec)),
	}
	for i := range c.ra {
		shifted.ra[i] = c.ra[i] + dRA
		shifted.dec[i] = c.dec[i] + dDec
	}
	return shifted
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
