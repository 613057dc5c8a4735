package dsp

import (
	"math"
	"testing"
)

func TestSpectralCentroids_PureTone(t *testing.T) {
	// The centroid of a pure tone sits near its frequency; windowing leakage
	// allows some spread.
	samples := sine(440, 22050, 0.5, 0.5)
	centroids := SpectralCentroids(samples, 22050, 2048, 512)

	if len(centroids) == 0 {
		t.Fatal("expected centroid frames")
	}
	mean := Mean(centroids)
	if math.Abs(mean-440) > 80 {
		t.Errorf("expected mean centroid near 440 Hz, got %f", mean)
	}
}

func TestSpectralCentroids_BrighterToneHigherCentroid(t *testing.T) {
	low := Mean(SpectralCentroids(sine(300, 22050, 0.5, 0.5), 22050, 2048, 512))
	high := Mean(SpectralCentroids(sine(3000, 22050, 0.5, 0.5), 22050, 2048, 512))
	if high <= low {
		t.Errorf("3 kHz tone should have higher centroid than 300 Hz tone: %f <= %f", high, low)
	}
}

func TestSpectralCentroids_Silence(t *testing.T) {
	centroids := SpectralCentroids(make([]float64, 8192), 22050, 2048, 512)
	for i, c := range centroids {
		if c != 0 {
			t.Errorf("frame %d: silence should have centroid 0, got %f", i, c)
		}
	}
}

func TestSpectralCentroids_Empty(t *testing.T) {
	if centroids := SpectralCentroids(nil, 22050, 2048, 512); len(centroids) != 0 {
		t.Errorf("expected no centroids for empty signal, got %d", len(centroids))
	}
}

func TestNextPow2(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 4, 1000: 1024, 2048: 2048}
	for in, want := range cases {
		if got := nextPow2(in); got != want {
			t.Errorf("nextPow2(%d) = %d, want %d", in, got, want)
		}
	}
}
