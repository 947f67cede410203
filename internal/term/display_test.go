package term

import (
	"errors"
	"strings"
	"testing"
)

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("stream closed") }

func TestANSI_WriteFrame(t *testing.T) {
	var sb strings.Builder
	d := NewANSI(&sb)

	if err := d.Clear(); err != nil {
		t.Fatal(err)
	}
	if err := d.WriteFrame("..\n  \n"); err != nil {
		t.Fatal(err)
	}

	out := sb.String()
	if !strings.HasPrefix(out, clearSeq) {
		t.Error("output does not start with the clear sequence")
	}
	if !strings.HasSuffix(out, "..\n  \n") {
		t.Errorf("frame text missing from output: %q", out)
	}
}

func TestANSI_PropagatesErrors(t *testing.T) {
	d := NewANSI(failWriter{})

	if err := d.Clear(); err == nil {
		t.Error("Clear swallowed writer error")
	}
	if err := d.WriteFrame("x"); err == nil {
		t.Error("WriteFrame swallowed writer error")
	}
}
