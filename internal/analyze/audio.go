package analyze

import (
	"math"

	"speechgrade/internal/config"
	"speechgrade/internal/dsp"
)

// AudioFeatures aggregates the signal primitives into the feature set fed to
// the audio scorer. Degenerate inputs (empty signal, pure silence) produce
// zeroed statistics rather than errors.
func AudioFeatures(sig AudioSignal, s config.AnalysisSettings) AudioFeatureSet {
	rms := dsp.FrameRMS(sig.Samples, s.FrameLength, s.HopLength)

	tempo := dsp.EstimateTempo(sig.Samples, sig.SampleRate, s.FrameLength, s.HopLength,
		s.TempoMinBPM, s.TempoMaxBPM, s.TempoFallbackBPM)

	segments := dsp.SplitSpeech(sig.Samples, s.FrameLength, s.HopLength, s.TopDB)

	return AudioFeatureSet{
		Volume:           volumeStats(rms),
		SpeakingPaceWPM:  speakingPace(segments, sig.SampleRate, tempo, s.PaceAdjustment),
		ClarityScore:     clarityScore(sig, rms, s),
		ZeroCrossingRate: dsp.ZeroCrossingRate(sig.Samples),
		TempoBPM:         tempo,
	}
}

func volumeStats(rms []float64) VolumeStats {
	if len(rms) == 0 {
		return VolumeStats{}
	}
	stats := VolumeStats{
		Mean: dsp.Mean(rms),
		Std:  dsp.Std(rms),
		Max:  rms[0],
		Min:  rms[0],
	}
	for _, r := range rms[1:] {
		stats.Max = math.Max(stats.Max, r)
		stats.Min = math.Min(stats.Min, r)
	}
	return stats
}

// speakingPace approximates words per minute from the tempo estimate and the
// total speech-segment duration. Word rate is inferred from rhythmic
// periodicity, not actual word boundaries; the adjustment factor is an
// uncalibrated proxy and no substitute for an ASR-based rate.
func speakingPace(segments []dsp.Segment, sampleRate int, tempoBPM, adjustment float64) float64 {
	speechSec := 0.0
	for _, seg := range segments {
		speechSec += seg.Duration(sampleRate)
	}
	if speechSec <= 0 {
		return 0
	}
	estimatedWords := tempoBPM / 60 * speechSec * adjustment
	return estimatedWords / (speechSec / 60)
}

// clarityScore blends three proxies, clamped to [0, 1]: mean spectral
// centroid (brightness), a percentile-based signal-to-noise estimate, and
// RMS energy variation.
func clarityScore(sig AudioSignal, rms []float64, s config.AnalysisSettings) float64 {
	centroids := dsp.SpectralCentroids(sig.Samples, sig.SampleRate, s.FrameLength, s.HopLength)
	centroidComponent := dsp.Mean(centroids) / 1000

	abs := make([]float64, len(sig.Samples))
	for i, v := range sig.Samples {
		abs[i] = math.Abs(v)
	}
	noiseFloor := dsp.Percentile(abs, 10)
	signalLevel := dsp.Percentile(abs, 90)
	snrComponent := 0.0
	if signalLevel > 0 {
		snrComponent = dsp.Clamp01((signalLevel - noiseFloor) / signalLevel)
	}

	energyVariation := math.Min(1, dsp.Std(rms)*10)

	return dsp.Clamp01(0.4*centroidComponent + 0.4*snrComponent + 0.2*energyVariation)
}
