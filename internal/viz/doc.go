// Package viz renders query results in the terminal.
//
//   - [Canvas]: Braille-based pixel canvas with per-cell color, used to
//     draw agents at a query time tinted by the active quantity
//   - [Legend]: colorbar with derived ticks for the selected gradient
//
// The package draws strings only; the playback loop lives in
// internal/replay.
package viz
