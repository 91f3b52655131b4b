// Package viz renders curve evolutions in the terminal.
//
// The animation view is a Bubble Tea program: a braille-pixel canvas
// shows the current curve snapshot while a sidebar reports parameters
// and per-frame spread. Keys:
//
//	Space - play/pause
//	←/→   - step one frame
//	a/A   - decrease/increase parameter a (recomputes the run)
//	b/B   - decrease/increase parameter b
//	r     - rewind to the initial curve
//	q     - quit
package viz
