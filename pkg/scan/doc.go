// Package scan walks a neck's position catalog and reports where scale
// tones or complete chord voicings fall.
//
// # Modes
//
// A scale scan marks every cell of every position's 10x12 neck grid whose
// sounding pitch belongs to the requested scale. A chord scan marks chord
// tones the same way and additionally finds voicings: frets where the
// strings of one position sound every tone of the requested chord at once.
//
// # Ordering
//
// Results follow a fixed order regardless of how the work is scheduled:
// positions in catalog order, then frets 0..11, then strings from the top
// down. Renderers, exporters, and the session log all rely on it. The
// optional parallel mode computes position grids concurrently but
// reassembles them into the same order.
//
// # Voicings
//
// A voicing is recorded per (position, fret) pair. The same chord shape
// reachable through two different positions is reported under both; no
// deduplication is attempted, since the player's hands and knees are in
// different places even when the sounding notes agree.
package scan
