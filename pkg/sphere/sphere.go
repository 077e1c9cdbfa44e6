// Package sphere provides the spherical nearest-neighbor primitive used by
// the matcher. Positions are (RA, Dec) pairs in degrees under a fixed
// celestial frame; all separations are great-circle angles, never planar
// approximations.
package sphere

import (
	"math"

	"github.com/agentstation/skymatch/pkg/catalogs"
)

const degToRad = math.Pi / 180

// Searcher finds, for every query position, the nearest reference position
// by great-circle distance.
//
// Implementations must always return slices of length query.Len(), even when
// the reference catalog holds a single point. There is no scalar special
// case anywhere in this contract.
type Searcher interface {
	// Nearest returns, for each query position, the index of its nearest
	// reference position and the great-circle separation in degrees.
	Nearest(query, ref catalogs.Catalog) (indices []int, separations []float64, err error)
}

// Separation returns the great-circle angular separation in degrees between
// two positions given in degrees. It uses the haversine formula, which stays
// accurate at the small separations typical of catalog matching where the
// arccosine of a dot product loses precision.
func Separation(ra1, dec1, ra2, dec2 float64) float64 {
	return 2 * math.Asin(math.Sqrt(haversine(ra1, dec1, ra2, dec2))) / degToRad
}

// haversine returns the haversine of the angle between two positions in
// degrees. It is monotonic in the separation, so it doubles as a comparison
// key without the final asin.
func haversine(ra1, dec1, ra2, dec2 float64) float64 {
	sd := math.Sin((dec2 - dec1) / 2 * degToRad)
	sr := math.Sin((ra2 - ra1) / 2 * degToRad)
	h := sd*sd + math.Cos(dec1*degToRad)*math.Cos(dec2*degToRad)*sr*sr
	// Guard rounding above 1 before the asin.
	return math.Min(h, 1)
}
