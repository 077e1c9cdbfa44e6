package match

import (
	"github.com/agentstation/skymatch/pkg/catalogs"
)

// initialMatch runs the nearest-neighbor query for every catalog 1 point and
// keeps pairs strictly closer than radiusDeg. The result preserves catalog 1
// order, so source indices come out ascending and unique. Target indices may
// repeat; resolving that is resolveOneToOne's job.
func (m *Matcher) initialMatch(cat1, cat2 catalogs.Catalog, radiusDeg float64) ([]Pair, error) {
	indices, separations, err := m.searcher.Nearest(cat1, cat2)
	if err != nil {
		return nil, err
	}

	pairs := make([]Pair, 0, len(indices))
	for i, sep := range separations {
		if sep < radiusDeg {
			pairs = append(pairs, Pair{Source: i, Target: indices[i], Separation: sep})
		}
	}
	return pairs, nil
}
