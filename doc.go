// Package rfset is a toolkit for working with collections of RF networks:
// load a sweep of touchstone measurements, reduce it statistically,
// interpolate between sweep points, and export the lot.
//
// 🚀 What is rfset?
//
//	A library (plus a small CLI) that brings together:
//		• Network primitives: frequency axes, S-parameter matrices, Z/Y views
//		• Network sets: homogeneous, order-preserving sweep collections
//		• Statistics: mean/std/max/min over any catalog attribute, sigma bounds
//		• Interpolation: nearest, previous, linear, quadratic and cubic
//		• Formats: Touchstone v1 (read/write/zip) and Generalized MDIF
//
// ✨ Why choose rfset?
//
//   - Predictable numerics – dB statistics run in the magnitude domain,
//     complex extrema are lexicographic, std is the population form
//   - Explicit errors – every failure is a wrapped sentinel you can errors.Is
//   - Parameter-aware – tag elements with sweep variables, select and
//     interpolate along them
//
// Everything is organized under focused subpackages:
//
//	frequency/  — immutable frequency axes with display units
//	network/    — single n-port networks and the attribute catalog
//	networkset/ — sweep collections: statistics, selection, interpolation
//	interp/     — 1-D interpolation kernels shared by the higher layers
//	touchstone/ — .sNp reader/writer plus zip archive loading
//	mdif/       — Generalized MDIF export
//	cmd/rfset/  — the command-line front end
//
// Quick example:
//
//	nets, _ := touchstone.ReadZip("sweep.zip")
//	ns, _ := networkset.New(nets)
//	mean, _ := ns.MeanSDB()
//
//	go get github.com/katalvlaran/rfset
package rfset
