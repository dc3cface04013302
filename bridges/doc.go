// Package bridges inserts tabs into a board-outline cut so the board
// stays attached to the stock until snapped out.
//
// Make picks the n longest unbroken segments of the outline ring and
// splits each at two points symmetric about its midpoint, width apart.
// The cutter lifts to bridge height between each such vertex pair. When
// fewer than n segments can host a bridge of the requested width, the
// ones that fit are used and the shortfall is reported; when none fit,
// ErrNoBridges is returned and the ring is unchanged.
//
// Errors:
//
//	ErrNoBridges - no outline segment is at least width long.
package bridges
