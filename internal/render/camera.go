package render

import "math"

// Camera is a pinhole camera: a fixed position and the distance from
// the camera to the projection plane. Both are constant for the life
// of the process.
type Camera struct {
	Position Vec3
	SurfaceZ float64
}

// Project maps a world-space point to integer screen coordinates on a
// w-by-h grid. The third return is false when the point does not land
// on the visible surface: behind (or exactly at) the camera plane, or
// outside the screen bounds after the perspective divide. That is an
// ordinary outcome during rotation, not an error.
func (c Camera) Project(p Vec3, w, h int) (int, int, bool) {
	t := p.Sub(c.Position)
	if t.Z <= 0 {
		return 0, 0, false
	}

	projX := (c.SurfaceZ / t.Z) * t.X
	projY := (c.SurfaceZ / t.Z) * t.Y

	// Device space [-1, 1] maps onto the full grid; y flips because
	// screen row 0 is the top.
	sx := int(math.Floor((projX + 1) * 0.5 * float64(w)))
	sy := int(math.Floor((1 - (projY+1)*0.5) * float64(h)))

	if sx < 0 || sx >= w || sy < 0 || sy >= h {
		return 0, 0, false
	}
	return sx, sy, true
}
