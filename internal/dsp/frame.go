// Package dsp implements the signal primitives behind audio quality scoring:
// frame-wise RMS energy, zero-crossing rate, spectral centroid, speech/silence
// segmentation and a coarse tempo estimate. All functions are pure and
// fail-safe: an empty signal yields empty or zero results, never an error.
package dsp

import "math"

// FrameRMS partitions samples into overlapping frames of frameLength samples
// advancing by hopLength, and returns the root-mean-square amplitude of each
// frame in time order. The trailing partial frame is included. Returns nil
// for an empty signal.
func FrameRMS(samples []float64, frameLength, hopLength int) []float64 {
	if len(samples) == 0 || frameLength <= 0 || hopLength <= 0 {
		return nil
	}

	var out []float64
	for start := 0; start < len(samples); start += hopLength {
		end := start + frameLength
		if end > len(samples) {
			end = len(samples)
		}
		sum := 0.0
		for _, s := range samples[start:end] {
			sum += s * s
		}
		out = append(out, math.Sqrt(sum/float64(end-start)))
	}
	return out
}

// ZeroCrossingRate returns the fraction of adjacent sample pairs whose signs
// differ, averaged over the whole signal. 0 for signals shorter than two
// samples.
func ZeroCrossingRate(samples []float64) float64 {
	if len(samples) < 2 {
		return 0
	}
	crossings := 0
	for i := 1; i < len(samples); i++ {
		if (samples[i-1] < 0) != (samples[i] < 0) {
			crossings++
		}
	}
	return float64(crossings) / float64(len(samples))
}
