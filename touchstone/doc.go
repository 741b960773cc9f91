// Package touchstone reads and writes Touchstone v1 scattering-parameter
// files (.s1p, .s2p, ... .sNp).
//
// The writer always emits real/imaginary ("RI") records; the reader accepts
// RI, MA (magnitude/angle) and DB (dB-magnitude/angle) files. Two-port files
// follow the historical column order S11 S21 S12 S22; files with three or
// more ports are row-major with at most four parameter pairs per line.
//
// ReadZip loads every touchstone file inside a zip archive, in lexicographic
// entry order, which pairs naturally with networkset.New.
package touchstone
