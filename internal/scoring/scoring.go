package scoring

import (
	"errors"

	"github.com/abhisek/mathdrill/internal/diagnosis"
)

// ErrNoApplicableDimension is returned by Overall for an empty breakdown.
var ErrNoApplicableDimension = errors.New("no applicable dimension")

// Weights assigns a positive weight to each dimension.
type Weights map[diagnosis.Dimension]float64

// DefaultWeights returns the fixed weights: operand, units and tens count
// double relative to sign and ordering.
func DefaultWeights() Weights {
	return Weights{
		diagnosis.DimensionSign:     1,
		diagnosis.DimensionOrdering: 1,
		diagnosis.DimensionOperand:  2,
		diagnosis.DimensionUnits:    2,
		diagnosis.DimensionTens:     2,
	}
}

// Entry is the contribution of one applicable dimension.
type Entry struct {
	Score  float64 // in [0,1]
	Weight float64
}

// Points returns Score * Weight.
func (e Entry) Points() float64 {
	return e.Score * e.Weight
}

// Breakdown maps each applicable dimension to its entry. Not applicable
// dimensions are absent.
type Breakdown map[diagnosis.Dimension]Entry

// Aggregate builds the breakdown for j using DefaultWeights. The judgment
// already records which dimensions apply, so skills are not consulted.
func Aggregate(j diagnosis.Judgment) Breakdown {
	return DefaultWeights().Aggregate(j)
}

// Aggregate builds the breakdown for j. Dimensions without a positive
// weight are left out.
func (w Weights) Aggregate(j diagnosis.Judgment) Breakdown {
	b := make(Breakdown)
	for _, d := range diagnosis.AllDimensions() {
		v, ok := j.Get(d).Value()
		if !ok {
			continue
		}
		weight := w[d]
		if weight <= 0 {
			continue
		}
		b[d] = Entry{Score: v, Weight: weight}
	}
	return b
}

// Overall returns the weighted mean score.
func (b Breakdown) Overall() (float64, error) {
	var points, weight float64
	for _, e := range b {
		points += e.Points()
		weight += e.Weight
	}
	if weight == 0 {
		return 0, ErrNoApplicableDimension
	}
	return points / weight, nil
}

// Dimensions returns the applicable dimensions in report order.
func (b Breakdown) Dimensions() []diagnosis.Dimension {
	var out []diagnosis.Dimension
	for _, d := range diagnosis.AllDimensions() {
		if _, ok := b[d]; ok {
			out = append(out, d)
		}
	}
	return out
}
