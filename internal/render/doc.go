// Package render holds the 3D side of the pipeline: vector and matrix
// primitives, Euler rotation with a fixed Rx·Ry·Rz composition, pinhole
// perspective projection with a visibility test, and the per-frame scene
// draw that feeds projected edges to the rasterizer.
package render
