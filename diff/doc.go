// Package diff computes symbol level diffs of rendered terms and
// formulas. Each distinct symbol of the two renderings is mapped to a
// rune so the diff runs over rune slices, and the edits are mapped
// back to symbol runs afterwards.
package diff
