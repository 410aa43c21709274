// Package field implements the triple-slit wave interference model.
//
// A Model is built once per surface geometry and is immutable afterwards:
// resize handling replaces the whole Model rather than patching it. The
// barrier line, slit gaps, the three point sources and the per-cell
// distance cache are all derived deterministically from the geometry, so
// two Models built from the same geometry are identical.
//
// Sampling is pure: for a fixed geometry and clock value every cell's
// amplitude, glyph and color are reproducible bit for bit. The per-cell
// amplitude is the plain sum of the three source contributions
//
//	sin(k*d - s*t) / max(1, d*attenuation)
//
// and the displayed intensity is its square, clamped into [0, 1] after a
// fixed gain. Cells on the source side of the barrier and the slit gaps
// render blank; barrier cells render a fixed glyph independent of time.
package field
