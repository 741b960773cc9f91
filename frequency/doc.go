// Package frequency defines the frequency-axis descriptor shared by every
// network in a set.
//
// A Frequency is an immutable, strictly increasing list of points stored in
// Hz, tagged with a display unit. Two networks are frequency-compatible iff
// their descriptors compare Equal: same number of points and pointwise-equal
// values in Hz (the display unit does not participate in equality).
//
// Construction:
//
//	f, err := frequency.NewLinear(1, 10, 101, frequency.GHz) // inclusive linspace
//	f, err := frequency.FromPoints([]float64{1.0, 1.5, 2.3}, frequency.GHz)
//
// The descriptor is the homogeneity anchor for networkset: set construction
// rejects any element whose Frequency is not Equal to the first element's.
package frequency
