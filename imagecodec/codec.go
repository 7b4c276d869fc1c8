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

package imagecodec

import (
	"io"

	"github.com/andrealex50/golcc"
	"github.com/andrealex50/golcc/bitstream"
	"github.com/andrealex50/golcc/golomb"
	"github.com/andrealex50/golcc/predictor"
)

const mBits = 16

// Encode writes a complete GICL stream to w from an 8-bit greyscale
// raster of the given width/height, stored row-major in pixels
// (len(pixels) == width*height, values in [0,255]).
func Encode(w io.Writer, width, height int, pixels []int, adaptive bool, fixedM int) error {
	if !adaptive && fixedM <= 0 {
		return golcc.NewCodecError(golcc.KindInvalidParameter, "imagecodec: fixed m must be > 0, got %d", fixedM)
	}

	h := &Header{Width: uint32(width), Height: uint32(height), Adaptive: adaptive}

	if !adaptive {
		h.FixedM = uint16(fixedM)
	}

	if err := writeHeader(w, h); err != nil {
		return err
	}

	bw := bitstream.NewWriter(w)
	initialM := fixedM

	if adaptive {
		initialM = 1
	}

	enc, err := golomb.NewEncoder(bw, initialM, golomb.Interleaving)

	if err != nil {
		return err
	}

	med := predictor.NewMED(width, height, pixels)

	for bandStart := 0; bandStart < height; bandStart += BandRows {
		bandEnd := bandStart + BandRows

		if bandEnd > height {
			bandEnd = height
		}

		residuals := make([]int, 0, (bandEnd-bandStart)*width)

		for r := bandStart; r < bandEnd; r++ {
			for c := 0; c < width; c++ {
				p := med.Predict(r, c)
				e := med.Get(r, c) - p
				residuals = append(residuals, e)
			}
		}

		if adaptive {
			m := predictor.EstimateM(residuals)

			if err := bw.WriteBits(uint64(m), mBits); err != nil {
				return err
			}

			if err := enc.SetM(m); err != nil {
				return err
			}
		}

		for _, e := range residuals {
			if err := enc.Encode(e); err != nil {
				return err
			}
		}
	}

	return bw.Close()
}

// Decode reads a complete GICL stream from r and returns the
// reconstructed width, height and row-major 8-bit greyscale buffer.
func Decode(r io.Reader) (width, height int, pixels []int, err error) {
	h, err := readHeader(r)

	if err != nil {
		return 0, 0, nil, err
	}

	width = int(h.Width)
	height = int(h.Height)
	pixels = make([]int, width*height)

	br := bitstream.NewReader(r)
	initialM := int(h.FixedM)

	if h.Adaptive {
		initialM = 1
	}

	dec, err := golomb.NewDecoder(br, initialM, golomb.Interleaving)

	if err != nil {
		return 0, 0, nil, err
	}

	med := predictor.NewMED(width, height, pixels)

	for r := 0; r < height; r++ {
		if h.Adaptive && r%BandRows == 0 {
			mVal, ok := br.ReadBits(mBits)

			if !ok {
				return 0, 0, nil, golcc.NewCodecError(golcc.KindUnexpectedEndOfStream, "imagecodec: EOS reading band m")
			}

			m := int(mVal)

			if m < 1 {
				m = 1
			}

			if err := dec.SetM(m); err != nil {
				return 0, 0, nil, err
			}
		}

		for c := 0; c < width; c++ {
			p := med.Predict(r, c)
			e, err := dec.Decode()

			if err != nil {
				return 0, 0, nil, err
			}

			v := p + e

			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}

			med.Set(r, c, v)
		}
	}

	if err := br.Close(); err != nil {
		return 0, 0, nil, err
	}

	return width, height, pixels, nil
}
