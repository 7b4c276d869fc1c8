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

package lossyaudio

import (
	"io"
	"math"
	"math/bits"

	"github.com/andrealex50/golcc"
	"github.com/andrealex50/golcc/bitstream"
	"github.com/andrealex50/golcc/dct"
)

const kBits = 4
const maxK = 15
const maxMagnitude = (1 << maxK) - 1

// sampleScale normalises 16-bit PCM samples to the [-1, 1] domain the
// source's sf_read_double/sf_write_double pairing operates in, so that
// qBase (calibrated for that domain) yields a quantisation step of the
// right order of magnitude relative to the signal.
const sampleScale = 32768.0

// QualityToBase maps a quality parameter in [0, 1] (0 = coarsest, 1 =
// finest) to the base quantisation step, per the source's
// q_base = 1.0 * 10^(-quality*2.0).
func QualityToBase(quality float64) (float64, error) {
	if quality < 0 || quality > 1 {
		return 0, golcc.NewCodecError(golcc.KindInvalidParameter, "lossyaudio: quality %v outside [0,1]", quality)
	}

	return math.Pow(10, -quality*2.0), nil
}

// Encode mono 16-bit samples through the lossy DCT pipeline to w.
func Encode(w io.Writer, samples []int16, sampleRate uint32, qBase float64) error {
	h := &Header{
		SampleRate: sampleRate,
		NumSamples: uint32(len(samples)),
		BlockSize:  BlockSize,
		QBaseFixed: uint32(math.Round(qBase * 1000)),
	}

	if err := writeHeader(w, h); err != nil {
		return err
	}

	bw := bitstream.NewWriter(w)
	block := make([]float64, BlockSize)
	coeffs := make([]float64, BlockSize)

	for start := 0; start < len(samples); start += BlockSize {
		end := start + BlockSize

		if end > len(samples) {
			end = len(samples)
		}

		for i := range block {
			block[i] = 0
		}

		for i := start; i < end; i++ {
			block[i-start] = float64(samples[i]) / sampleScale
		}

		dct.Forward(block, coeffs)

		for i, c := range coeffs {
			step := dct.Step(qBase, i, BlockSize)
			q := dct.Quantize(c, step)

			if err := writeCoeff(bw, q); err != nil {
				return err
			}
		}
	}

	return bw.Close()
}

func writeCoeff(bw *bitstream.Writer, q int) error {
	sign := 0
	mag := q

	if mag < 0 {
		sign = 1
		mag = -mag
	}

	k := bits.Len(uint(mag))

	// The 4-bit width field caps k at 15, so a magnitude above 2^15-1 is
	// clipped to 2^15-1 here; this truncation adds error beyond the
	// quantisation step for such coefficients.
	if k > maxK {
		k = maxK
		mag = maxMagnitude
	}

	if err := bw.WriteBits(uint64(k), kBits); err != nil {
		return err
	}

	if k == 0 {
		return nil
	}

	if err := bw.WriteBit(sign); err != nil {
		return err
	}

	return bw.WriteBits(uint64(mag), uint(k))
}

func readCoeff(br *bitstream.Reader) (int, error) {
	kVal, ok := br.ReadBits(kBits)

	if !ok {
		return 0, golcc.NewCodecError(golcc.KindUnexpectedEndOfStream, "lossyaudio: EOS reading coefficient width")
	}

	k := int(kVal)

	if k == 0 {
		return 0, nil
	}

	sign := br.ReadBit()

	if sign == bitstream.EOS {
		return 0, golcc.NewCodecError(golcc.KindUnexpectedEndOfStream, "lossyaudio: EOS reading coefficient sign")
	}

	magVal, ok := br.ReadBits(uint(k))

	if !ok {
		return 0, golcc.NewCodecError(golcc.KindUnexpectedEndOfStream, "lossyaudio: EOS reading coefficient magnitude")
	}

	mag := int(magVal)

	if sign == 1 {
		return -mag, nil
	}

	return mag, nil
}

// Decode reconstructs mono 16-bit samples from a GDCT stream in r.
func Decode(r io.Reader) (samples []int16, sampleRate uint32, err error) {
	h, err := readHeader(r)

	if err != nil {
		return nil, 0, err
	}

	blockSize := int(h.BlockSize)
	qBase := float64(h.QBaseFixed) / 1000.0
	total := int(h.NumSamples)
	samples = make([]int16, total)

	br := bitstream.NewReader(r)
	coeffs := make([]float64, blockSize)
	out := make([]float64, blockSize)

	for start := 0; start < total; start += blockSize {
		end := start + blockSize

		if end > total {
			end = total
		}

		for i := 0; i < blockSize; i++ {
			q, err := readCoeff(br)

			if err != nil {
				return nil, 0, err
			}

			step := dct.Step(qBase, i, blockSize)
			coeffs[i] = dct.Dequantize(q, step)
		}

		dct.Inverse(coeffs, out)

		for i := start; i < end; i++ {
			v := int(math.Round(out[i-start] * sampleScale))

			if v > 32767 {
				v = 32767
			} else if v < -32768 {
				v = -32768
			}

			samples[i] = int16(v)
		}
	}

	if err := br.Close(); err != nil {
		return nil, 0, err
	}

	return samples, h.SampleRate, nil
}
