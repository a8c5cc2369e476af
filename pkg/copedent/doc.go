// Package copedent models the pedal and knee-lever setup of a ten-string
// pedal steel guitar.
//
// A copedent (chord-pedal arrangement) maps each control to the strings it
// raises or lowers and by how many semitones. Engaging a control changes
// string pitches before fret arithmetic applies, which is what lets a
// pedal steel reach chord shapes a fixed tuning cannot.
//
// # Controls
//
// The standard E9 setup has four floor pedals (A, B, C, D) and five knee
// levers (LKL, LKV, LKR for the left knee, RKL and RKR for the right).
// Each control moves one or two strings; all other strings are unaffected.
//
// # Positions
//
// A Position is a named set of simultaneously engaged controls. The open
// position engages nothing. The catalog returned by Positions is curated
// to grips a player can physically hold: every single control plus the
// standard two-control combinations (A+B, B+C, A+LKL, B+LKR). It is
// deliberately not the power set of controls.
//
// # Combination
//
// When several controls are engaged, their per-string offsets add. A
// string moved +2 by one control and -1 by another sounds +1. The sum is
// order-independent.
package copedent
