package dsp

import (
	"math"
	"math/bits"
	"math/cmplx"
)

// SpectralCentroids returns the energy-weighted mean frequency in Hz of each
// frame's magnitude spectrum, one value per frame. Frames are Hann-windowed
// before the transform. A frame with no spectral energy contributes 0.
// Used as a brightness/clarity proxy, not for pitch tracking.
func SpectralCentroids(samples []float64, sampleRate, frameLength, hopLength int) []float64 {
	if len(samples) == 0 || sampleRate <= 0 || frameLength <= 0 || hopLength <= 0 {
		return nil
	}

	n := nextPow2(frameLength)
	window := hannWindow(frameLength)
	buf := make([]complex128, n)

	var out []float64
	for start := 0; start < len(samples); start += hopLength {
		end := start + frameLength
		if end > len(samples) {
			end = len(samples)
		}

		for i := range buf {
			buf[i] = 0
		}
		for i, s := range samples[start:end] {
			buf[i] = complex(s*window[i], 0)
		}
		fft(buf)

		// Weighted mean over the non-negative frequency bins.
		binHz := float64(sampleRate) / float64(n)
		var num, den float64
		for k := 0; k <= n/2; k++ {
			mag := cmplx.Abs(buf[k])
			num += float64(k) * binHz * mag
			den += mag
		}
		if den > 0 {
			out = append(out, num/den)
		} else {
			out = append(out, 0)
		}
	}
	return out
}

func hannWindow(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return w
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// fft performs an in-place iterative radix-2 transform. len(x) must be a
// power of two.
func fft(x []complex128) {
	n := len(x)
	if n <= 1 {
		return
	}

	// Bit-reversal permutation.
	shift := 64 - uint(bits.Len(uint(n-1)))
	for i := 0; i < n; i++ {
		j := int(bits.Reverse64(uint64(i)) >> shift)
		if j > i {
			x[i], x[j] = x[j], x[i]
		}
	}

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		step := cmplx.Exp(complex(0, -2*math.Pi/float64(size)))
		for start := 0; start < n; start += size {
			w := complex(1, 0)
			for k := 0; k < half; k++ {
				a := x[start+k]
				b := x[start+k+half] * w
				x[start+k] = a + b
				x[start+k+half] = a - b
				w *= step
			}
		}
	}
}
