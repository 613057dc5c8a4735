package dsp

import "math"

// Segment is a half-open [Start, End) sample interval classified as speech.
type Segment struct {
	Start int
	End   int
}

// Duration returns the segment length in seconds at the given sample rate.
func (s Segment) Duration(sampleRate int) float64 {
	if sampleRate <= 0 {
		return 0
	}
	return float64(s.End-s.Start) / float64(sampleRate)
}

// SplitSpeech segments the signal into speech intervals. A frame counts as
// speech when its RMS energy stays within topDB of the global peak frame;
// contiguous speech frames merge into one segment. Segments are
// non-overlapping and ascending. A signal entirely below the threshold
// (including pure silence) yields no segments.
func SplitSpeech(samples []float64, frameLength, hopLength int, topDB float64) []Segment {
	rms := FrameRMS(samples, frameLength, hopLength)
	if len(rms) == 0 {
		return nil
	}

	peak := 0.0
	for _, r := range rms {
		if r > peak {
			peak = r
		}
	}
	if peak <= 0 {
		return nil
	}
	threshold := peak * math.Pow(10, -topDB/20)

	var segs []Segment
	inSpeech := false
	segStart := 0
	for i, r := range rms {
		speech := r > threshold
		switch {
		case speech && !inSpeech:
			segStart = i * hopLength
			inSpeech = true
		case !speech && inSpeech:
			segs = append(segs, Segment{Start: segStart, End: frameEnd(i-1, frameLength, hopLength, len(samples))})
			inSpeech = false
		}
	}
	if inSpeech {
		segs = append(segs, Segment{Start: segStart, End: frameEnd(len(rms)-1, frameLength, hopLength, len(samples))})
	}
	return segs
}

// frameEnd maps a frame index to the sample just past that frame, capped at
// the signal length.
func frameEnd(frame, frameLength, hopLength, total int) int {
	end := frame*hopLength + frameLength
	if end > total {
		end = total
	}
	return end
}
