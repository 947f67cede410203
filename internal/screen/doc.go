// Package screen implements the text-mode pixel surface the renderer
// draws into.
//
//   - [FrameBuffer]: fixed-size boolean grid with row-major storage and
//     a reusable serialization buffer
//   - [FrameBuffer.DrawLine]: all-octant integer midpoint rasterizer
//
// Writes outside the grid are silently dropped. The serialized form is
// one line per row over the alphabet {' ', '.'}, stable across runs for
// identical cell contents, so frames can be diffed byte for byte.
package screen
