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

package wavio_test

import (
	"os"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/require"

	"github.com/andrealex50/golcc/wavio"
)

func writeRawWAV(t *testing.T, path string, sampleRate, channels int, data []int) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	ib := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:   data,
	}
	require.NoError(t, enc.Write(ib))
	require.NoError(t, enc.Close())
}

func TestReaderReportsFormatAndFrames(t *testing.T) {
	path := t.TempDir() + "/in.wav"
	writeRawWAV(t, path, 8000, 1, []int{1, 2, 3, 4, 5})

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	r, err := wavio.NewReader(f)
	require.NoError(t, err)
	require.EqualValues(t, 8000, r.SampleRate())
	require.Equal(t, 1, r.Channels())
	require.EqualValues(t, 5, r.TotalFrames())

	buf := make([]int16, 5)
	n, err := r.ReadFrames(buf)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, []int16{1, 2, 3, 4, 5}, buf)
}

func TestReaderRejectsUnsupportedChannelCount(t *testing.T) {
	path := t.TempDir() + "/multi.wav"
	writeRawWAV(t, path, 44100, 3, []int{1, 2, 3, 4, 5, 6})

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = wavio.NewReader(f)
	require.Error(t, err)
}

func TestWriterRoundTripsStereoFrames(t *testing.T) {
	path := t.TempDir() + "/out.wav"

	out, err := os.Create(path)
	require.NoError(t, err)

	w := wavio.NewWriter(out)
	require.NoError(t, w.Open(44100, 2))
	require.NoError(t, w.WriteFrames([]int16{100, -100, 200, -200}))
	require.NoError(t, w.Close())
	require.NoError(t, out.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	r, err := wavio.NewReader(f)
	require.NoError(t, err)
	require.Equal(t, 2, r.Channels())
	require.EqualValues(t, 44100, r.SampleRate())

	buf := make([]int16, 4)
	n, err := r.ReadFrames(buf)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []int16{100, -100, 200, -200}, buf)
}
