// Package viz drives both animations as Bubble Tea programs.
//
// The terminal is the display surface: tea.WindowSizeMsg is the dimension
// tracker, and every resize tears down and rebuilds the derived grid state
// from scratch. Rebuilds are tagged with a generation counter; a tick
// scheduled under an older generation is a no-op and does not reschedule,
// so at most one tick loop is ever live.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reset the animation clock
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Toggle help overlay
//	Q     - Quit
package viz
