/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package compare offers post-hoc signal-quality comparison between an
// original and a reconstructed signal. It never participates in
// encode/decode; it exists purely to evaluate the lossy codec's output.
package compare

import (
	"math"

	"github.com/andrealex50/golcc"
)

// SNR computes the signal-to-noise ratio in decibels and the mean
// squared error between an original and a reconstructed signal of
// equal length: 10*log10(signal_power/noise_power).
func SNR(original, reconstructed []int16) (snrDB, mse float64, err error) {
	if len(original) != len(reconstructed) {
		return 0, 0, golcc.NewCodecError(golcc.KindInvalidParameter, "compare: length mismatch %d vs %d", len(original), len(reconstructed))
	}

	if len(original) == 0 {
		return 0, 0, golcc.NewCodecError(golcc.KindInvalidParameter, "compare: empty signal")
	}

	var signalPower, noisePower float64

	for i, x := range original {
		signalPower += float64(x) * float64(x)
		d := float64(x) - float64(reconstructed[i])
		noisePower += d * d
	}

	n := float64(len(original))
	signalPower /= n
	noisePower /= n
	mse = noisePower

	if noisePower == 0 {
		return math.Inf(1), 0, nil
	}

	return 10 * math.Log10(signalPower/noisePower), mse, nil
}
