package networkset

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/rfset/network"
)

// The statistical surface.
//
// Reduce is the generic entry point: it stacks a catalog attribute across the
// elements and reduces along the "which element" axis, independently per
// frequency point and port pair. The named accessors below are static sugar
// over the same table; there is no dynamic accessor injection, the whole
// (attribute, reduction) space is addressable by name at the Reduce call
// boundary.
//
// Reduction semantics per cell:
//   - mean of complex values: mean(re) + i·mean(im);
//   - std of complex values: sqrt(mean(|x − mean|²)), a real number stored
//     with zero imaginary part (population form: std([1,2,3]) = sqrt(2/3));
//   - max/min of complex values: lexicographic by (real, imaginary), which
//     degrades to ordinary max/min for component views carrying real data;
//   - *_db attributes reduce in the magnitude domain and re-express the
//     result in dB: Reduce("s_db", ReduceMean) = db(mean(|s|)), deliberately
//     NOT db(mean(s)) and NOT mean(db(|s|)).

// DefaultDeviations is the sigma multiplier assumed by UncertaintyTriplet
// when nDeviations <= 0.
const DefaultDeviations = 3.0

// Reduction selects the statistic applied along the element axis.
type Reduction int

const (
	ReduceMean Reduction = iota
	ReduceStd
	ReduceMax
	ReduceMin
)

// reductionNames is index-aligned with the Reduction constants.
var reductionNames = [...]string{"mean", "std", "max", "min"}

// String returns the conventional short name ("mean", "std", "max", "min").
func (r Reduction) String() string {
	if r < ReduceMean || r > ReduceMin {
		return "invalid"
	}
	return reductionNames[r]
}

// ParseReduction resolves a reduction by its short name.
func ParseReduction(s string) (Reduction, error) {
	for i, name := range reductionNames {
		if s == name {
			return Reduction(i), nil
		}
	}
	return ReduceMean, fmt.Errorf("%w: %q", ErrUnknownReduction, s)
}

// Reduce returns a new network holding the statistic of the named attribute
// across the set: a copy of element 0 whose scattering buffer is replaced by
// the reduced values. The result inherits the set's display name when one is
// set. No element is mutated.
//
// Errors: ErrEmptySet, ErrUnknownReduction, network.ErrUnknownAttribute, and
// any attribute materialization error (e.g. network.ErrSingular for z/y).
func (ns *NetworkSet) Reduce(attribute string, r Reduction) (*network.Network, error) {
	if len(ns.elements) == 0 {
		return nil, ErrEmptySet
	}
	if r < ReduceMean || r > ReduceMin {
		return nil, ErrUnknownReduction
	}

	// dB attributes reduce on their magnitude sibling, then re-express in dB.
	if network.IsDBAttribute(attribute) {
		out, err := ns.Reduce(network.MagAttribute(attribute), r)
		if err != nil {
			return nil, err
		}
		s := out.S()
		for k, v := range s {
			s[k] = complex(network.MagToDB(real(v)), 0)
		}
		if err := out.SetS(s); err != nil {
			return nil, err
		}
		return out, nil
	}

	// Stack the attribute across elements.
	n := len(ns.elements)
	stacked := make([][]complex128, n)
	for i, el := range ns.elements {
		vals, err := el.Attribute(attribute)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		stacked[i] = vals
	}

	// Reduce per cell; the sample buffers are reused across cells.
	cells := len(stacked[0])
	out := make([]complex128, cells)
	re := make([]float64, n)
	im := make([]float64, n)
	for cell := 0; cell < cells; cell++ {
		for i := 0; i < n; i++ {
			v := stacked[i][cell]
			re[i] = real(v)
			im[i] = imag(v)
		}
		v, err := reduceCell(re, im, r)
		if err != nil {
			return nil, err
		}
		out[cell] = v
	}

	result := ns.elements[0].Copy()
	if err := result.SetS(out); err != nil {
		return nil, err
	}
	if ns.name != "" {
		result.SetName(ns.name)
	}
	return result, nil
}

// reduceCell reduces one (frequency, port, port) cell across the element
// axis. re and im hold the per-element real and imaginary samples.
func reduceCell(re, im []float64, r Reduction) (complex128, error) {
	switch r {
	case ReduceMean:
		mr, err := stats.Mean(re)
		if err != nil {
			return 0, err
		}
		mi, err := stats.Mean(im)
		if err != nil {
			return 0, err
		}
		return complex(mr, mi), nil

	case ReduceStd:
		// sqrt(mean(|x − mean|²)); real for complex input, equal to the
		// population standard deviation for real input.
		mr, err := stats.Mean(re)
		if err != nil {
			return 0, err
		}
		mi, err := stats.Mean(im)
		if err != nil {
			return 0, err
		}
		dev := make([]float64, len(re))
		for i := range re {
			dr := re[i] - mr
			di := im[i] - mi
			dev[i] = dr*dr + di*di
		}
		msq, err := stats.Mean(dev)
		if err != nil {
			return 0, err
		}
		return complex(math.Sqrt(msq), 0), nil

	case ReduceMax:
		best := 0
		for i := 1; i < len(re); i++ {
			if re[i] > re[best] || (re[i] == re[best] && im[i] > im[best]) {
				best = i
			}
		}
		return complex(re[best], im[best]), nil

	default: // ReduceMin; range validated by Reduce
		best := 0
		for i := 1; i < len(re); i++ {
			if re[i] < re[best] || (re[i] == re[best] && im[i] < im[best]) {
				best = i
			}
		}
		return complex(re[best], im[best]), nil
	}
}

// Named accessors for the s family. Everything else goes through Reduce
// directly; the sugar exists because these are the overwhelmingly common
// calls in sweep analysis.

// MeanS returns the complex mean of the scattering matrices.
func (ns *NetworkSet) MeanS() (*network.Network, error) { return ns.Reduce("s", ReduceMean) }

// StdS returns the standard deviation of the scattering matrices.
func (ns *NetworkSet) StdS() (*network.Network, error) { return ns.Reduce("s", ReduceStd) }

// MaxS returns the lexicographic elementwise maximum of the scattering matrices.
func (ns *NetworkSet) MaxS() (*network.Network, error) { return ns.Reduce("s", ReduceMax) }

// MinS returns the lexicographic elementwise minimum of the scattering matrices.
func (ns *NetworkSet) MinS() (*network.Network, error) { return ns.Reduce("s", ReduceMin) }

// MeanSMag returns the mean of the scattering magnitudes.
func (ns *NetworkSet) MeanSMag() (*network.Network, error) { return ns.Reduce("s_mag", ReduceMean) }

// StdSMag returns the standard deviation of the scattering magnitudes.
func (ns *NetworkSet) StdSMag() (*network.Network, error) { return ns.Reduce("s_mag", ReduceStd) }

// MaxSMag returns the elementwise maximum scattering magnitude.
func (ns *NetworkSet) MaxSMag() (*network.Network, error) { return ns.Reduce("s_mag", ReduceMax) }

// MinSMag returns the elementwise minimum scattering magnitude.
func (ns *NetworkSet) MinSMag() (*network.Network, error) { return ns.Reduce("s_mag", ReduceMin) }

// MeanSDB returns db(mean(|s|)), the mean magnitude re-expressed in dB.
// This is NOT the dB conversion of MeanS; see the package note on dB
// statistics.
func (ns *NetworkSet) MeanSDB() (*network.Network, error) { return ns.Reduce("s_db", ReduceMean) }

// StdSDB returns db(std(|s|)), the magnitude deviation re-expressed in dB.
func (ns *NetworkSet) StdSDB() (*network.Network, error) { return ns.Reduce("s_db", ReduceStd) }

// UncertaintyTriplet returns (mean, lower, upper) networks for the attribute,
// where lower = mean − n·std and upper = mean + n·std. nDeviations <= 0
// selects DefaultDeviations. Complex attributes get componentwise bounds;
// magnitude-like real attributes get the conventional ordered envelope.
//
// Errors: ErrDBUncertainty for *_db attributes (bound the _mag sibling and
// convert instead), plus any Reduce error.
func (ns *NetworkSet) UncertaintyTriplet(attribute string, nDeviations float64) (mean, lower, upper *network.Network, err error) {
	if network.IsDBAttribute(attribute) {
		return nil, nil, nil, ErrDBUncertainty
	}
	if nDeviations <= 0 {
		nDeviations = DefaultDeviations
	}

	mean, err = ns.Reduce(attribute, ReduceMean)
	if err != nil {
		return nil, nil, nil, err
	}
	std, err := ns.Reduce(attribute, ReduceStd)
	if err != nil {
		return nil, nil, nil, err
	}

	scaled := std.Scale(complex(nDeviations, 0))
	upper, err = mean.Add(scaled)
	if err != nil {
		return nil, nil, nil, err
	}
	lower, err = mean.Sub(scaled)
	if err != nil {
		return nil, nil, nil, err
	}
	return mean, lower, upper, nil
}

// MinMaxTriplet returns (mean, min, max) networks for the attribute: the
// literal observed envelope rather than a sigma bound.
//
// Errors: ErrDBUncertainty for *_db attributes, plus any Reduce error.
func (ns *NetworkSet) MinMaxTriplet(attribute string) (mean, minN, maxN *network.Network, err error) {
	if network.IsDBAttribute(attribute) {
		return nil, nil, nil, ErrDBUncertainty
	}
	if mean, err = ns.Reduce(attribute, ReduceMean); err != nil {
		return nil, nil, nil, err
	}
	if minN, err = ns.Reduce(attribute, ReduceMin); err != nil {
		return nil, nil, nil, err
	}
	if maxN, err = ns.Reduce(attribute, ReduceMax); err != nil {
		return nil, nil, nil, err
	}
	return mean, minN, maxN, nil
}
