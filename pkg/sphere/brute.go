package sphere

import (
	"math"

	"github.com/agentstation/skymatch/pkg/catalogs"
	"github.com/agentstation/skymatch/pkg/errors"
)

// BruteForce is a Searcher that linearly scans the reference catalog for
// each query position. O(len(query) * len(ref)), deterministic, and exact:
// ties on separation resolve to the lowest reference index.
type BruteForce struct{}

// Nearest implements Searcher.
func (BruteForce) Nearest(query, ref catalogs.Catalog) ([]int, []float64, error) {
	if query.Len() == 0 {
		return []int{}, []float64{}, nil
	}
	if ref.Len() == 0 {
		return nil, nil, errors.ErrEmptyCatalog
	}

	// Precompute reference trig once; it is reused for every query point.
	refRA := ref.RAs()
	refDec := ref.Decs()
	cosDec := make([]float64, len(refDec))
	for j := range refDec {
		cosDec[j] = math.Cos(refDec[j] * degToRad)
	}

	indices := make([]int, query.Len())
	separations := make([]float64, query.Len())

	for i := 0; i < query.Len(); i++ {
		qRA := query.RA(i)
		qDec := query.Dec(i)
		cosQ := math.Cos(qDec * degToRad)

		best := 0
		bestH := math.Inf(1)
		for j := range refRA {
			sd := math.Sin((refDec[j] - qDec) / 2 * degToRad)
			sr := math.Sin((refRA[j] - qRA) / 2 * degToRad)
			h := sd*sd + cosQ*cosDec[j]*sr*sr
			if h < bestH {
				best = j
				bestH = h
			}
		}

		indices[i] = best
		separations[i] = 2 * math.Asin(math.Sqrt(math.Min(bestH, 1))) / degToRad
	}

	return indices, separations, nil
}
