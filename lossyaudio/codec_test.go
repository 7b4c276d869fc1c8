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

package lossyaudio_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrealex50/golcc/compare"
	"github.com/andrealex50/golcc/internal"
	"github.com/andrealex50/golcc/lossyaudio"
)

func sineWave(n int, freq, sampleRate float64) []int16 {
	out := make([]int16, n)

	for i := 0; i < n; i++ {
		out[i] = int16(10000 * math.Sin(2*math.Pi*freq*float64(i)/sampleRate))
	}

	return out
}

func TestLossyRoundTripIsApproximate(t *testing.T) {
	samples := sineWave(2048, 440, 44100)
	qBase, err := lossyaudio.QualityToBase(0.8)
	require.NoError(t, err)

	ms := internal.NewMemStream()
	require.NoError(t, lossyaudio.Encode(ms, samples, 44100, qBase))

	got, sampleRate, err := lossyaudio.Decode(ms)
	require.NoError(t, err)
	require.EqualValues(t, 44100, sampleRate)
	require.Len(t, got, len(samples))

	snrDB, _, err := compare.SNR(samples, got)
	require.NoError(t, err)
	require.Greater(t, snrDB, 10.0)
}

func TestQualityOutOfRangeRejected(t *testing.T) {
	_, err := lossyaudio.QualityToBase(-0.1)
	require.Error(t, err)
	_, err = lossyaudio.QualityToBase(1.1)
	require.Error(t, err)
}

func TestLossyMagicMismatchRejected(t *testing.T) {
	qBase, err := lossyaudio.QualityToBase(0.5)
	require.NoError(t, err)
	ms := internal.NewMemStream()
	require.NoError(t, lossyaudio.Encode(ms, sineWave(512, 200, 8000), 8000, qBase))

	corrupted := ms.Bytes()
	corrupted[0] = 'X'
	bad := internal.NewMemStream(corrupted)
	_, _, err = lossyaudio.Decode(bad)
	require.Error(t, err)
}

func TestLossyBlockTailPadding(t *testing.T) {
	// A sample count not a multiple of BlockSize exercises the
	// zero-padded tail block.
	samples := sineWave(lossyaudio.BlockSize+37, 300, 16000)
	qBase, err := lossyaudio.QualityToBase(0.9)
	require.NoError(t, err)

	ms := internal.NewMemStream()
	require.NoError(t, lossyaudio.Encode(ms, samples, 16000, qBase))
	got, _, err := lossyaudio.Decode(ms)
	require.NoError(t, err)
	require.Len(t, got, len(samples))
}
