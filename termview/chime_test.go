package termview

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestChimeLengthAndFade(t *testing.T) {
	rate := beep.SampleRate(1000)
	want := rate.N(50 * time.Millisecond)
	s := NewChime(rate, 100, 50*time.Millisecond)

	buf := make([][2]float64, want*2)
	n, ok := s.Stream(buf)
	if n != want || !ok {
		t.Fatalf("Stream = (%d, %v), want (%d, true)", n, ok, want)
	}

	peakEarly, peakLate := 0.0, 0.0
	for i := 0; i < n; i++ {
		if buf[i][0] != buf[i][1] {
			t.Fatalf("sample %d not mono: %v", i, buf[i])
		}
		v := math.Abs(buf[i][0])
		if i < n/4 {
			peakEarly = math.Max(peakEarly, v)
		} else if i >= 3*n/4 {
			peakLate = math.Max(peakLate, v)
		}
	}
	if peakLate >= peakEarly {
		t.Fatalf("expected fade out, early peak %f late peak %f", peakEarly, peakLate)
	}

	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Fatalf("drained Stream = (%d, %v), want (0, false)", n, ok)
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Err = %v", err)
	}
}
