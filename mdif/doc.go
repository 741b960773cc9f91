// Package mdif reads and writes network sets as Generalized MDIF files, the
// multi-block container understood by ADS and Microwave Office.
//
// Each element becomes one VAR block plus a BEGIN ACDATA section holding the
// element's Touchstone data. By default the single MDIF variable is "name",
// typed string and filled with the element names; WithValues and WithTypes
// replace that with arbitrary per-element sweep variables. Read inverts the
// layout: ACDATA blocks become elements and VAR variables become element
// parameters.
package mdif
