package dsp

import "math"

const minTempoFrames = 8

// EstimateTempo derives a coarse beats-per-minute figure from the
// periodicity of the RMS energy envelope, searching lags between maxBPM and
// minBPM by autocorrelation. Tempo is only a proxy input to pace estimation,
// so detection failure (too little signal, a flat envelope, no positive
// correlation in range) substitutes fallback rather than reporting an error.
func EstimateTempo(samples []float64, sampleRate, frameLength, hopLength int, minBPM, maxBPM, fallback float64) float64 {
	env := FrameRMS(samples, frameLength, hopLength)
	if len(env) < minTempoFrames || sampleRate <= 0 || minBPM <= 0 || maxBPM <= minBPM {
		return fallback
	}

	frameRate := float64(sampleRate) / float64(hopLength)

	// Demean the envelope so silence-dominated signals do not correlate
	// trivially at every lag.
	m := Mean(env)
	d := make([]float64, len(env))
	energy := 0.0
	for i, e := range env {
		d[i] = e - m
		energy += d[i] * d[i]
	}
	if energy <= 1e-12 {
		return fallback
	}

	minLag := int(math.Ceil(frameRate * 60 / maxBPM))
	if minLag < 1 {
		minLag = 1
	}
	maxLag := int(frameRate * 60 / minBPM)
	if maxLag >= len(d) {
		maxLag = len(d) - 1
	}
	if minLag > maxLag {
		return fallback
	}

	bestLag, bestCorr := 0, 0.0
	for lag := minLag; lag <= maxLag; lag++ {
		corr := 0.0
		for i := 0; i+lag < len(d); i++ {
			corr += d[i] * d[i+lag]
		}
		corr /= energy
		if corr > bestCorr {
			bestCorr, bestLag = corr, lag
		}
	}
	if bestLag == 0 || bestCorr <= 0 {
		return fallback
	}

	return 60 * frameRate / float64(bestLag)
}
