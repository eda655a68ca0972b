// Package ortho builds the ortho-derivative of a vectorial Boolean function
// and, from it, its differential (ODDS) and extended Walsh (ODWS) spectra —
// two invariants commonly used to distinguish linearly inequivalent
// functions.
package ortho
