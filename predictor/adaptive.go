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

// Package predictor implements the predictive front-ends that turn raw
// audio samples or image pixels into near-zero residuals, plus the
// block-adaptive Golomb parameter estimator shared by both codecs.
package predictor

import "math"

// ln2 is the maximum-likelihood optimum divisor scale for a geometric
// distribution, which residual magnitudes are assumed to follow.
const ln2 = 0.693147

// EstimateM returns the block-adaptive Golomb divisor for a slice of
// residuals: max(1, round(mean(|r|) * ln2)), or 1 for an empty block.
func EstimateM(residuals []int) int {
	if len(residuals) == 0 {
		return 1
	}

	sum := 0

	for _, r := range residuals {
		if r < 0 {
			r = -r
		}

		sum += r
	}

	mean := float64(sum) / float64(len(residuals))
	m := int(math.Round(mean * ln2))

	if m < 1 {
		m = 1
	}

	return m
}
