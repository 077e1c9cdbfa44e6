package match

import (
	"math"

	"github.com/agentstation/skymatch/pkg/constants"
)

// Pair is one matched pair of catalog entries. Source indexes catalog 1,
// Target indexes catalog 2, and Separation is the great-circle angle in
// degrees between the two positions.
type Pair struct {
	Source     int
	Target     int
	Separation float64
}

// Offset is a systematic per-axis coordinate displacement between the two
// catalogs, in degrees. It is the quantity *added* to catalog 2 to align it
// with catalog 1.
type Offset struct {
	RA  float64
	Dec float64
}

// OnSkyArcsec converts the offset to arcseconds for display, scaling the RA
// component by cos(medianDec) so both axes read as true angles on the sky.
// The correction itself is always applied in plain degrees; this scaling is
// cosmetic.
func (o Offset) OnSkyArcsec(medianDec float64) (raArcsec, decArcsec float64) {
	raArcsec = o.RA * constants.ArcsecPerDegree * math.Cos(medianDec*math.Pi/180)
	decArcsec = o.Dec * constants.ArcsecPerDegree
	return raArcsec, decArcsec
}

// Diagnostics carries the intermediate quantities a caller may want to
// report. The matcher never prints; whether any of this reaches a human is
// the caller's concern.
type Diagnostics struct {
	// FirstPassCount is the number of pairs after the first (or only)
	// matching pass.
	FirstPassCount int

	// SecondPassCount is the number of pairs after the post-correction
	// pass. Zero unless the mode is OneToOneOffset.
	SecondPassCount int

	// Offset is the computed systematic offset. Nil unless the mode is
	// OneToOneOffset.
	Offset *Offset

	// MedianDec is the median declination of catalog 1 in degrees, used to
	// scale the RA offset for display. Only set alongside Offset.
	MedianDec float64
}

// Result is the output of one match run.
type Result struct {
	// Pairs is the final match set, ordered by source index.
	Pairs []Pair

	// Diagnostics describes the passes that produced Pairs.
	Diagnostics Diagnostics
}

// SourceIndices returns the matched catalog 1 indices in order.
func (r *Result) SourceIndices() []int {
	out := make([]int, len(r.Pairs))
	for i, p := range r.Pairs {
		out[i] = p.Source
	}
	return out
}

// TargetIndices returns the matched catalog 2 indices in order.
func (r *Result) TargetIndices() []int {
	out := make([]int, len(r.Pairs))
	for i, p := range r.Pairs {
		out[i] = p.Target
	}
	return out
}

// Separations returns the pair separations in degrees.
func (r *Result) Separations() []float64 {
	out := make([]float64, len(r.Pairs))
	for i, p := range r.Pairs {
		out[i] = p.Separation
	}
	return out
}

// SeparationsArcsec returns the pair separations in arcseconds.
func (r *Result) SeparationsArcsec() []float64 {
	out := make([]float64, len(r.Pairs))
	for i, p := range r.Pairs {
		out[i] = p.Separation * constants.ArcsecPerDegree
	}
	return out
}

// Len returns the number of matched pairs.
func (r *Result) Len() int {
	return len(r.Pairs)
}
