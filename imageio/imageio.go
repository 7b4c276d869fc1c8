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

// Package imageio decodes PNG and BMP sources into an 8-bit greyscale
// raster and re-encodes a reconstructed raster back to PNG, satisfying
// the Image I/O contract of the image codec.
package imageio

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/bmp"

	"github.com/andrealex50/golcc"
)

// Read decodes an image from r (PNG or BMP, sniffed from content) into
// a row-major 8-bit greyscale buffer. Paletted or RGBA sources are
// accepted only if every pixel is already achromatic (R == G == B);
// anything else is rejected with InvalidParameter.
func Read(r io.Reader) (width, height int, pixels []int, err error) {
	img, _, err := image.Decode(r)

	if err != nil {
		return 0, 0, nil, golcc.NewCodecError(golcc.KindIO, "imageio: decode: %v", err)
	}

	bounds := img.Bounds()
	width = bounds.Dx()
	height = bounds.Dy()
	pixels = make([]int, width*height)

	if gray, ok := img.(*image.Gray); ok {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				pixels[y*width+x] = int(gray.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
			}
		}

		return width, height, pixels, nil
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r32, g32, b32, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			r8, g8, b8 := r32>>8, g32>>8, b32>>8

			if r8 != g8 || g8 != b8 {
				return 0, 0, nil, golcc.NewCodecError(golcc.KindInvalidParameter, "imageio: source is not greyscale at (%d,%d)", x, y)
			}

			pixels[y*width+x] = int(r8)
		}
	}

	return width, height, pixels, nil
}

// Write encodes a row-major 8-bit greyscale buffer as PNG to w.
func Write(w io.Writer, width, height int, pixels []int) error {
	img := image.NewGray(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(pixels[y*width+x])})
		}
	}

	if err := png.Encode(w, img); err != nil {
		return golcc.NewCodecError(golcc.KindIO, "imageio: encode: %v", err)
	}

	return nil
}

// init registers the BMP format with the stdlib image package so
// image.Decode recognises BMP sources alongside PNG.
func init() {
	image.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
}
