package match

import (
	"github.com/agentstation/skymatch/pkg/errors"
)

// Mode selects how a match run resolves pairs between the two catalogs.
type Mode int

const (
	// ManyToOne keeps every radius-filtered nearest-neighbor pair; a
	// catalog 2 point may be matched by several catalog 1 points.
	ManyToOne Mode = iota

	// OneToOne forces a unique pairing: groups sharing a catalog 2 point
	// are collapsed to the closest pair.
	OneToOne

	// OneToOneOffset is OneToOne run twice: the first pass estimates the
	// median coordinate offset between the catalogs, the offset is removed
	// from catalog 2, and the match is repeated. This is the default mode.
	OneToOneOffset
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ManyToOne:
		return "many-to-one"
	case OneToOne:
		return "one-to-one"
	case OneToOneOffset:
		return "offset"
	default:
		return "unknown"
	}
}

// Valid reports whether the mode is one of the defined values.
func (m Mode) Valid() bool {
	switch m {
	case ManyToOne, OneToOne, OneToOneOffset:
		return true
	default:
		return false
	}
}

// ParseMode converts a mode name to a Mode. Accepted names are
// "many-to-one", "one-to-one", and "offset" (with "one-to-one-offset" as a
// long-form alias).
func ParseMode(s string) (Mode, error) {
	switch s {
	case "many-to-one":
		return ManyToOne, nil
	case "one-to-one":
		return OneToOne, nil
	case "offset", "one-to-one-offset":
		return OneToOneOffset, nil
	default:
		return 0, errors.NewModeError(s)
	}
}
