// Package network implements the n-port frequency-domain network element that
// networkset aggregates: a complex scattering matrix sampled on a frequency
// axis, plus optional metadata (name, parameter tags, reference impedance).
//
// Storage is a single flat row-major buffer of complex128 with shape
// (F, P, P): entry (f, i, j) lives at f*P*P + i*P + j. All kernels iterate in
// fixed f→i→j order for determinism.
//
// The package exposes:
//   - component views of the scattering data (re/im/mag/db/deg/rad) and the
//     derived impedance (z), admittance (y) and passivity matrices, all
//     addressable by attribute name ("s_mag", "z_db", "passivity", ...);
//   - elementwise arithmetic against another network on the same grid
//     (Add, Sub, Mul, Div, Pow, FloorDiv) and a per-frequency matrix
//     inverse (Inv);
//   - resampling onto a new frequency axis (ResampleFrequency);
//   - deep copies and exact equality.
//
// No operation mutates its receiver; every result is a new Network.
package network
