package render

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/wirecube/internal/screen"
)

func TestCube_Topology(t *testing.T) {
	c := Cube()

	if len(c.Vertices) != 8 {
		t.Fatalf("expected 8 vertices, got %d", len(c.Vertices))
	}
	if len(c.Edges) != 12 {
		t.Fatalf("expected 12 edges, got %d", len(c.Edges))
	}

	for _, v := range c.Vertices {
		for _, coord := range []float64{v.X, v.Y, v.Z} {
			if coord != 1 && coord != -1 {
				t.Errorf("vertex %v has non-unit coordinate", v)
			}
		}
	}

	// Every edge connects vertices differing in exactly one axis.
	for _, e := range c.Edges {
		a, b := c.Vertices[e[0]], c.Vertices[e[1]]
		diff := 0
		if a.X != b.X {
			diff++
		}
		if a.Y != b.Y {
			diff++
		}
		if a.Z != b.Z {
			diff++
		}
		if diff != 1 {
			t.Errorf("edge %v connects %v and %v (%d axes differ)", e, a, b, diff)
		}
	}
}

func renderFrame(t *testing.T, angles Vec3) string {
	t.Helper()
	fb, err := screen.New(160, 80)
	if err != nil {
		t.Fatal(err)
	}
	Draw(fb, Cube(), testCam, angles)
	return fb.String()
}

func TestDraw_Deterministic(t *testing.T) {
	a := renderFrame(t, Vec3{})
	b := renderFrame(t, Vec3{})
	if a != b {
		t.Error("identical inputs produced different frames")
	}
}

func TestDraw_FrameShape(t *testing.T) {
	frame := renderFrame(t, Vec3{0.3, 0, 0.3})

	lines := strings.Split(strings.TrimSuffix(frame, "\n"), "\n")
	if len(lines) != 80 {
		t.Fatalf("expected 80 rows, got %d", len(lines))
	}
	dots := 0
	for i, line := range lines {
		if len(line) != 160 {
			t.Errorf("row %d: expected 160 chars, got %d", i, len(line))
		}
		for _, ch := range line {
			switch ch {
			case '.':
				dots++
			case ' ':
			default:
				t.Fatalf("unexpected character %q in frame", ch)
			}
		}
	}
	if dots == 0 {
		t.Error("cube rendered no lit cells")
	}
}

func TestDraw_AngleChangesFrame(t *testing.T) {
	if renderFrame(t, Vec3{}) == renderFrame(t, Vec3{0.5, 0, 0.5}) {
		t.Error("rotating the cube did not change the frame")
	}
}

func TestDraw_WrappedAngleEquivalent(t *testing.T) {
	const theta = 1.25
	a := renderFrame(t, Vec3{theta, 0, theta})
	b := renderFrame(t, Vec3{theta + 2*math.Pi, 0, theta + 2*math.Pi})
	if a != b {
		t.Error("angle wrapped by 2π rendered a different frame")
	}
}

func TestDraw_InvisibleVerticesSkipEdges(t *testing.T) {
	// A camera in front of the whole cube sees nothing: every vertex has
	// transformed z <= 0, so no edge may be drawn.
	front := Camera{Position: Vec3{0, 0, 5}, SurfaceZ: 1.0}
	fb, _ := screen.New(40, 20)
	Draw(fb, Cube(), front, Vec3{})
	if fb.String() != strings.Repeat(strings.Repeat(" ", 40)+"\n", 20) {
		t.Error("invisible cube lit cells")
	}
}
