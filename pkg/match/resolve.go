package match

// resolveOneToOne collapses groups of pairs that share a target index down
// to the single closest pair, enforcing a one-to-one mapping on the
// catalog 2 side. Within a group, the first pair (in input order) holding
// the minimum separation wins; this is the canonical tie break. Surviving
// pairs keep their relative input order: this is removal, not a re-sort.
//
// Applying resolveOneToOne to an already one-to-one set returns an
// identical set.
func resolveOneToOne(pairs []Pair) []Pair {
	// Group pair positions by target index.
	groups := make(map[int][]int, len(pairs))
	for i, p := range pairs {
		groups[p.Target] = append(groups[p.Target], i)
	}

	// Mark everything but the closest member of each duplicate group.
	kill := make(map[int]bool)
	for _, members := range groups {
		if len(members) < 2 {
			continue
		}
		best := members[0]
		for _, i := range members[1:] {
			if pairs[i].Separation < pairs[best].Separation {
				best = i
			}
		}
		for _, i := range members {
			if i != best {
				kill[i] = true
			}
		}
	}

	if len(kill) == 0 {
		return pairs
	}

	out := make([]Pair, 0, len(pairs)-len(kill))
	for i, p := range pairs {
		if !kill[i] {
			out = append(out, p)
		}
	}
	return out
}
