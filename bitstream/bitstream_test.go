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

package bitstream_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrealex50/golcc/bitstream"
	"github.com/andrealex50/golcc/internal"
)

func TestBytePackingScenario(t *testing.T) {
	ms := internal.NewMemStream()
	w := bitstream.NewWriter(ms)

	require.NoError(t, w.WriteBits(0b1, 1))
	require.NoError(t, w.WriteBits(0b10, 2))
	require.NoError(t, w.WriteBits(0b101, 3))
	require.NoError(t, w.WriteBits(0, 2))
	require.NoError(t, w.Close())

	require.Equal(t, 1, ms.Len())
	require.Equal(t, byte(0xD4), ms.Bytes()[0])

	r := bitstream.NewReader(ms)

	v1, ok := r.ReadBits(1)
	require.True(t, ok)
	require.EqualValues(t, 1, v1)

	v2, ok := r.ReadBits(2)
	require.True(t, ok)
	require.EqualValues(t, 2, v2)

	v3, ok := r.ReadBits(3)
	require.True(t, ok)
	require.EqualValues(t, 5, v3)

	v4, ok := r.ReadBits(2)
	require.True(t, ok)
	require.EqualValues(t, 0, v4)
}

func TestRoundTripArbitraryWidths(t *testing.T) {
	type field struct {
		value uint64
		width uint
	}

	fields := []field{
		{1, 1}, {0, 1}, {0xFF, 8}, {0x1234, 16},
		{0x7FFFFFFF, 31}, {0xFFFFFFFFFFFFFFFF, 64}, {0, 64}, {42, 7},
	}

	ms := internal.NewMemStream()
	w := bitstream.NewWriter(ms)

	for _, f := range fields {
		mask := uint64(1)<<f.width - 1

		if f.width == 64 {
			mask = ^uint64(0)
		}

		require.NoError(t, w.WriteBits(f.value&mask, f.width))
	}

	require.NoError(t, w.Close())

	r := bitstream.NewReader(ms)

	for _, f := range fields {
		mask := uint64(1)<<f.width - 1

		if f.width == 64 {
			mask = ^uint64(0)
		}

		got, ok := r.ReadBits(f.width)
		require.True(t, ok)
		require.Equal(t, f.value&mask, got)
	}
}

func TestByteAccounting(t *testing.T) {
	ms := internal.NewMemStream()
	w := bitstream.NewWriter(ms)

	widths := []uint{3, 5, 1, 7, 2}
	total := uint(0)

	for _, width := range widths {
		require.NoError(t, w.WriteBits(0, width))
		total += width
	}

	require.NoError(t, w.Close())

	expectedBytes := (total + 7) / 8
	require.EqualValues(t, expectedBytes, ms.Len())
}

func TestReadPastEOFReturnsSentinel(t *testing.T) {
	ms := internal.NewMemStream()
	r := bitstream.NewReader(ms)
	require.Equal(t, bitstream.EOS, r.ReadBit())

	_, ok := r.ReadBits(4)
	require.False(t, ok)
}
