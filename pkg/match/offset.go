package match

import (
	"sort"

	"github.com/agentstation/skymatch/pkg/catalogs"
	"github.com/agentstation/skymatch/pkg/constants"
	"github.com/agentstation/skymatch/pkg/errors"
)

// computeOffset returns the per-axis median displacement (catalog 1 minus
// catalog 2) over the matched pairs, in degrees. The median rather than the
// mean keeps a minority of bad matches from biasing the correction.
//
// pairs must be non-empty: the median of zero values is undefined, and that
// is surfaced as an EmptyMatchError instead of a silent NaN.
func computeOffset(cat1, cat2 catalogs.Catalog, pairs []Pair, radiusDeg float64) (Offset, error) {
	if len(pairs) == 0 {
		return Offset{}, errors.NewEmptyMatchError(radiusDeg * constants.ArcsecPerDegree)
	}

	dRA := make([]float64, len(pairs))
	dDec := make([]float64, len(pairs))
	for i, p := range pairs {
		dRA[i] = cat1.RA(p.Source) - cat2.RA(p.Target)
		dDec[i] = cat1.Dec(p.Source) - cat2.Dec(p.Target)
	}

	return Offset{RA: median(dRA), Dec: median(dDec)}, nil
}

// applyOffset returns a copy of the catalog displaced by the offset. The
// input catalog is untouched.
func applyOffset(cat catalogs.Catalog, off Offset) catalogs.Catalog {
	return cat.Shift(off.RA, off.Dec)
}

// median returns the median of values, averaging the two middle elements
// for even-length input. The input is not modified. values must be
// non-empty.
func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
