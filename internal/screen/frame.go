package screen

import (
	"bytes"
	"fmt"
)

const (
	litChar   = '.'
	unlitChar = ' '
)

// FrameBuffer is a fixed-size boolean pixel grid with a reusable
// serialization buffer. Cells are stored row-major (index = x + y*width).
type FrameBuffer struct {
	width, height int
	cells         []bool
	text          bytes.Buffer
}

func New(width, height int) (*FrameBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("frame dimensions must be positive, got %dx%d", width, height)
	}
	fb := &FrameBuffer{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
	fb.text.Grow((width + 1) * height)
	return fb, nil
}

func (f *FrameBuffer) Width() int  { return f.width }
func (f *FrameBuffer) Height() int { return f.height }

// Set lights or clears the cell at (x, y). Out-of-range coordinates are
// ignored: projection and rasterization routinely land on the boundary,
// and clipping must never abort a frame.
func (f *FrameBuffer) Set(x, y int, v bool) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.cells[x+y*f.width] = v
}

// At reports the cell at (x, y); out-of-range reads are false.
func (f *FrameBuffer) At(x, y int) bool {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return false
	}
	return f.cells[x+y*f.width]
}

// Clear unsets every cell.
func (f *FrameBuffer) Clear() {
	for i := range f.cells {
		f.cells[i] = false
	}
}

// String serializes the grid top row first, '.' for lit cells and a
// space for unlit ones, one newline per row. The result is a pure
// function of the cell contents.
func (f *FrameBuffer) String() string {
	f.text.Reset()
	for y := 0; y < f.height; y++ {
		row := f.cells[y*f.width : (y+1)*f.width]
		for _, lit := range row {
			if lit {
				f.text.WriteByte(litChar)
			} else {
				f.text.WriteByte(unlitChar)
			}
		}
		f.text.WriteByte('\n')
	}
	return f.text.String()
}
