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

package imageio_test

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/stretchr/testify/require"

	"github.com/andrealex50/golcc/imageio"
	"github.com/andrealex50/golcc/internal"
)

func TestWriteThenReadRoundTripsPNG(t *testing.T) {
	width, height := 4, 3
	pixels := make([]int, width*height)

	for i := range pixels {
		pixels[i] = (i * 17) % 256
	}

	ms := internal.NewMemStream()
	require.NoError(t, imageio.Write(ms, width, height, pixels))

	gotW, gotH, gotPixels, err := imageio.Read(ms)
	require.NoError(t, err)
	require.Equal(t, width, gotW)
	require.Equal(t, height, gotH)
	require.Equal(t, pixels, gotPixels)
}

func TestReadDecodesBMPGreyscale(t *testing.T) {
	width, height := 2, 2
	img := image.NewGray(image.Rect(0, 0, width, height))
	img.SetGray(0, 0, color.Gray{Y: 10})
	img.SetGray(1, 0, color.Gray{Y: 20})
	img.SetGray(0, 1, color.Gray{Y: 30})
	img.SetGray(1, 1, color.Gray{Y: 40})

	ms := internal.NewMemStream()
	require.NoError(t, bmp.Encode(ms, img))

	gotW, gotH, pixels, err := imageio.Read(ms)
	require.NoError(t, err)
	require.Equal(t, width, gotW)
	require.Equal(t, height, gotH)
	require.Equal(t, []int{10, 20, 30, 40}, pixels)
}

func TestReadRejectsNonGreyscaleSource(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 10, G: 200, B: 30, A: 255})

	ms := internal.NewMemStream()
	require.NoError(t, bmp.Encode(ms, img))

	_, _, _, err := imageio.Read(ms)
	require.Error(t, err)
}
