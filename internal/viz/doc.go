// Package viz provides the terminal visualization for live sampling.
//
// The package implements an interactive TUI using the Bubble Tea
// framework: a character canvas renders the target density as a shaded
// background with the sample trail, pending proposal, and integrator
// trajectory drawn on top, next to a stats panel with live parameter
// tuning.
//
// # Key Bindings
//
//	Space - Pause/Resume stepping
//	S     - Single step while paused
//	R     - Reset chain to the start point
//	Tab   - Cycle tunable parameter
//	Up/Dn - Adjust selected parameter
//	1-5   - Switch sampler
//	T     - Cycle target distribution
//	Q     - Quit
package viz
