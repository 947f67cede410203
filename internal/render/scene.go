package render

import "github.com/san-kum/wirecube/internal/screen"

// Scene is a wireframe model: a fixed vertex list and edges as index
// pairs into it.
type Scene struct {
	Vertices []Vec3
	Edges    [][2]int
}

// Cube returns the unit-radius cube: 8 vertices at (±1, ±1, ±1) and its
// 12 edges.
func Cube() Scene {
	return Scene{
		Vertices: []Vec3{
			{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
			{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
		},
		Edges: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
		},
	}
}

// Draw rotates the scene by the given per-axis angles, projects every
// vertex through cam, and rasterizes each edge whose endpoints both
// landed on screen. Projection results stay index-aligned with the
// vertex list so edge indices always refer to the right vertex, even
// when some vertices are invisible this frame.
func Draw(fb *screen.FrameBuffer, s Scene, cam Camera, angles Vec3) {
	w, h := fb.Width(), fb.Height()

	type point struct{ x, y int }
	projected := make([]point, len(s.Vertices))
	visible := make([]bool, len(s.Vertices))

	for i, v := range s.Vertices {
		x, y, ok := cam.Project(Rotate(v, angles), w, h)
		projected[i] = point{x, y}
		visible[i] = ok
	}

	for _, e := range s.Edges {
		if !visible[e[0]] || !visible[e[1]] {
			continue
		}
		p0, p1 := projected[e[0]], projected[e[1]]
		fb.DrawLine(p0.x, p0.y, p1.x, p1.y)
	}
}
