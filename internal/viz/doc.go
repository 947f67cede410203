// Package viz provides the interactive terminal front end for the cube
// renderer, built on the Bubble Tea framework.
//
// # Key Bindings
//
//	Space - Pause/Resume rotation
//	R     - Reset rotation angle
//	+/-   - Adjust spin speed
//	?     - Toggle help line
//	Q     - Quit
package viz
