// Package networkset provides set-wise statistics, selection and parameter
// interpolation over a homogeneous collection of n-port networks.
//
// A NetworkSet is an order-preserving collection in which every element
// shares one port count and one frequency grid (validated at construction).
// On top of that invariant the package offers:
//
//   - a statistical surface: Reduce(attribute, reduction) stacks any catalog
//     attribute (see network.AttributeNames) across the elements and reduces
//     it elementwise per frequency point and port pair (mean, population
//     standard deviation, max, min), returning the result as a new Network;
//     named accessors (MeanS, StdSMag, ...) cover the common s-family;
//   - uncertainty bounds: mean ± n·σ triplets and literal min/max envelopes;
//   - operator broadcasting: the six elementwise Network operators applied
//     against either a single network (broadcast) or an equal-length set
//     (index-aligned zip), selected through the Operand sum type;
//   - parameter indexing: every element may carry a params tag map; Sel
//     filters by exact or range match with a deliberate soft-failure policy
//     (unknown dimensions and empty matches return an empty set, never an
//     error);
//   - interpolation: a synthetic element evaluated at an unobserved
//     coordinate along a labeled numeric parameter axis.
//
// dB statistics deserve a note: reductions of *_db attributes operate in the
// magnitude domain and re-express the result in dB, so MeanSDB is
// db(mean(|s|)), NOT the dB conversion of the complex mean and NOT the mean
// of the dB values. This mirrors how measurement uncertainty is conventionally
// reported and is pinned by tests.
//
// The package is single-threaded and synchronous. Reductions never mutate an
// element; Sort is the only operation that reorders a set in place.
package networkset
