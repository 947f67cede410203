package screen

// DrawLine traces the segment from (x0, y0) to (x1, y1) inclusive using
// the integer midpoint algorithm, valid in all octants. Each iteration
// may step x and y independently, so 45-degree runs advance diagonally
// with no gaps. Points outside the buffer are skipped, not clipped:
// a line may leave the visible area and re-enter.
func (f *FrameBuffer) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := -dy / 2
	if dx > dy {
		err = dx / 2
	}

	x, y := x0, y0
	for {
		f.Set(x, y, true)
		if x == x1 && y == y1 {
			break
		}
		e2 := err
		if e2 > -dx {
			err -= dy
			x += sx
		}
		if e2 < dy {
			err += dx
			y += sy
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
