package dsp

import (
	"math"
	"testing"
)

func TestSplitSpeech_Silence(t *testing.T) {
	samples := make([]float64, 22050)
	if segs := SplitSpeech(samples, 2048, 512, 20); len(segs) != 0 {
		t.Errorf("silent signal should yield no segments, got %d", len(segs))
	}
}

func TestSplitSpeech_Empty(t *testing.T) {
	if segs := SplitSpeech(nil, 2048, 512, 20); len(segs) != 0 {
		t.Errorf("empty signal should yield no segments, got %d", len(segs))
	}
}

func TestSplitSpeech_AllSpeech(t *testing.T) {
	samples := sine(220, 22050, 1.0, 0.5)
	segs := SplitSpeech(samples, 2048, 512, 20)

	if len(segs) != 1 {
		t.Fatalf("steady tone should yield one segment, got %d", len(segs))
	}
	if segs[0].Start != 0 {
		t.Errorf("segment should start at 0, got %d", segs[0].Start)
	}
	if segs[0].End != len(samples) {
		t.Errorf("segment should end at %d, got %d", len(samples), segs[0].End)
	}
}

func TestSplitSpeech_BurstInSilence(t *testing.T) {
	const (
		sampleRate  = 22050
		frameLength = 2048
		hopLength   = 512
	)
	third := sampleRate / 3

	samples := make([]float64, sampleRate)
	for i := third; i < 2*third; i++ {
		samples[i] = 0.5 * math.Sin(2*math.Pi*220*float64(i)/float64(sampleRate))
	}

	segs := SplitSpeech(samples, frameLength, hopLength, 20)
	if len(segs) != 1 {
		t.Fatalf("expected one speech segment, got %d", len(segs))
	}

	seg := segs[0]
	// Frame granularity: boundaries land within one window of the burst.
	if seg.Start < third-frameLength || seg.Start > third+hopLength {
		t.Errorf("segment start %d not near burst start %d", seg.Start, third)
	}
	if seg.End < 2*third-hopLength || seg.End > 2*third+frameLength {
		t.Errorf("segment end %d not near burst end %d", seg.End, 2*third)
	}
	if seg.End <= seg.Start {
		t.Errorf("segment must be non-empty: [%d, %d)", seg.Start, seg.End)
	}
}

func TestSegmentDuration(t *testing.T) {
	seg := Segment{Start: 0, End: 22050}
	if d := seg.Duration(22050); math.Abs(d-1.0) > 1e-9 {
		t.Errorf("expected 1s, got %f", d)
	}
	if d := seg.Duration(0); d != 0 {
		t.Errorf("zero sample rate should give 0, got %f", d)
	}
}
