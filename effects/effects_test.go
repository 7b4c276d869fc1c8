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

package effects_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrealex50/golcc/effects"
)

func TestGainScalesAndClips(t *testing.T) {
	out := effects.Gain([]int16{100, -100, 30000}, 2.0)
	require.Equal(t, int16(200), out[0])
	require.Equal(t, int16(-200), out[1])
	require.Equal(t, int16(32767), out[2])
}

func TestEchoAddsDelayedDecayedCopy(t *testing.T) {
	samples := make([]int16, 10)
	samples[0] = 1000
	out := effects.Echo(samples, 4, 0.5, 44100)
	require.Equal(t, int16(1000), out[0])
	require.Equal(t, int16(500), out[4])
}

func TestDistortionHardClipsPastUnity(t *testing.T) {
	out := effects.Distortion([]int16{32767, -32768}, 4.0)
	require.Equal(t, int16(32767), out[0])
	require.Equal(t, int16(-32768), out[1])
}

func TestDistortionPassesSmallSignalThroughSoftClip(t *testing.T) {
	out := effects.Distortion([]int16{0}, 1.0)
	require.Equal(t, int16(0), out[0])
}

func TestHighpassAttenuatesDCOffset(t *testing.T) {
	samples := make([]int16, 2000)

	for i := range samples {
		samples[i] = 5000
	}

	out := effects.Highpass(samples, 1, 44100, 200.0)
	require.Less(t, int(out[len(out)-1]), 100)
}
