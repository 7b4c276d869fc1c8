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

package predictor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrealex50/golcc/predictor"
)

func TestMonoRoundTrip(t *testing.T) {
	samples := []int{0, 12345, 12300, -500, 32767, -32768}
	enc := predictor.NewAudio(1)
	residuals := make([]int, len(samples))

	for i, s := range samples {
		residuals[i] = enc.PredictMono(s)
	}

	dec := predictor.NewAudio(1)

	for i, e := range residuals {
		require.Equal(t, samples[i], dec.ReconstructMono(e))
	}
}

func TestStereoCrossChannelWorkedExample(t *testing.T) {
	enc := predictor.NewAudio(2)
	eL0, eR0 := enc.PredictStereo(1000, 1005)
	require.Equal(t, 1000, eL0)
	require.Equal(t, 5, eR0)

	eL1, eR1 := enc.PredictStereo(1002, 1007)
	require.Equal(t, 2, eL1)
	require.Equal(t, 5, eR1)

	dec := predictor.NewAudio(2)
	l0, r0 := dec.ReconstructStereo(eL0, eR0)
	require.Equal(t, 1000, l0)
	require.Equal(t, 1005, r0)

	l1, r1 := dec.ReconstructStereo(eL1, eR1)
	require.Equal(t, 1002, l1)
	require.Equal(t, 1007, r1)
}

func TestMEDWorkedExample2x2(t *testing.T) {
	grid := []int{50, 60, 70, 90}
	med := predictor.NewMED(2, 2, grid)

	wantResiduals := [][3]int{
		{0, 0, 50},
		{0, 1, 10},
		{1, 0, 20},
		{1, 1, 20},
	}

	for _, w := range wantResiduals {
		r, c, wantE := w[0], w[1], w[2]
		p := med.Predict(r, c)
		e := med.Get(r, c) - p
		require.Equal(t, wantE, e, "at (%d,%d)", r, c)
	}
}

func TestMEDDecodeReproducesGrid(t *testing.T) {
	original := []int{50, 60, 70, 90}
	encMed := predictor.NewMED(2, 2, original)
	residuals := make([]int, 4)
	idx := 0

	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			residuals[idx] = encMed.Get(r, c) - encMed.Predict(r, c)
			idx++
		}
	}

	decoded := make([]int, 4)
	decMed := predictor.NewMED(2, 2, decoded)
	idx = 0

	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			p := decMed.Predict(r, c)
			decMed.Set(r, c, p+residuals[idx])
			idx++
		}
	}

	require.Equal(t, original, decoded)
}

func TestEstimateM(t *testing.T) {
	require.Equal(t, 1, predictor.EstimateM(nil))
	require.Equal(t, 1, predictor.EstimateM([]int{0, 0, 0}))
	// mean |r| = 10 -> round(10 * ln2) = round(6.93) = 7
	require.Equal(t, 7, predictor.EstimateM([]int{10, -10, 10}))
}
