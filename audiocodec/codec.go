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

package audiocodec

import (
	"io"

	"github.com/andrealex50/golcc"
	"github.com/andrealex50/golcc/bitstream"
	"github.com/andrealex50/golcc/golomb"
	"github.com/andrealex50/golcc/predictor"
)

// Source is the WAV input contract this codec's encoder consumes.
type Source interface {
	SampleRate() uint32
	Channels() int
	TotalFrames() uint64
	// ReadFrames fills buf (interleaved per channel, len a multiple of
	// Channels()) and returns the number of frames read.
	ReadFrames(buf []int16) (int, error)
}

// Sink is the WAV output contract this codec's decoder drives.
type Sink interface {
	Open(sampleRate uint32, channels int) error
	WriteFrames(buf []int16) error
}

const mBits = 16

// Encode reads frames from src and writes a complete GACL stream to w.
// If adaptive is true, fixedM is ignored and a per-block m is estimated
// and transmitted instead.
func Encode(w io.Writer, src Source, adaptive bool, fixedM int) error {
	channels := src.Channels()

	if channels != 1 && channels != 2 {
		return golcc.NewCodecError(golcc.KindInvalidParameter, "audiocodec: unsupported channel count %d", channels)
	}

	if !adaptive && fixedM <= 0 {
		return golcc.NewCodecError(golcc.KindInvalidParameter, "audiocodec: fixed m must be > 0, got %d", fixedM)
	}

	h := &Header{
		Channels:      uint16(channels),
		SampleRate:    src.SampleRate(),
		BitsPerSample: 16,
		TotalFrames:   src.TotalFrames(),
		Adaptive:      adaptive,
	}

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

	pred := predictor.NewAudio(channels)
	buf := make([]int16, BlockSize*channels)

	for {
		n, err := src.ReadFrames(buf)

		if err != nil && err != io.EOF {
			return golcc.NewCodecError(golcc.KindIO, "audiocodec: read frames: %v", err)
		}

		if n == 0 {
			break
		}

		residuals := make([]int, n*channels)

		if channels == 1 {
			for i := 0; i < n; i++ {
				residuals[i] = pred.PredictMono(int(buf[i]))
			}
		} else {
			for i := 0; i < n; i++ {
				eL, eR := pred.PredictStereo(int(buf[2*i]), int(buf[2*i+1]))
				residuals[2*i] = eL
				residuals[2*i+1] = eR
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

		if n < BlockSize {
			break
		}
	}

	return bw.Close()
}

// Decode reads a complete GACL stream from r, validates its header,
// opens dst with the recovered sample rate and channel count, and
// writes every reconstructed frame to it.
func Decode(r io.Reader, dst Sink) error {
	h, err := readHeader(r)

	if err != nil {
		return err
	}

	channels := int(h.Channels)

	if err := dst.Open(h.SampleRate, channels); err != nil {
		return golcc.NewCodecError(golcc.KindIO, "audiocodec: open sink: %v", err)
	}

	br := bitstream.NewReader(r)
	initialM := int(h.FixedM)

	if h.Adaptive {
		initialM = 1
	}

	dec, err := golomb.NewDecoder(br, initialM, golomb.Interleaving)

	if err != nil {
		return err
	}

	pred := predictor.NewAudio(channels)
	remaining := h.TotalFrames

	for remaining > 0 {
		blockFrames := uint64(BlockSize)

		if remaining < blockFrames {
			blockFrames = remaining
		}

		if h.Adaptive {
			mVal, ok := br.ReadBits(mBits)

			if !ok {
				return golcc.NewCodecError(golcc.KindUnexpectedEndOfStream, "audiocodec: EOS reading block m")
			}

			m := int(mVal)

			if m < 1 {
				m = 1
			}

			if err := dec.SetM(m); err != nil {
				return err
			}
		}

		buf := make([]int16, blockFrames*uint64(channels))

		for i := uint64(0); i < blockFrames; i++ {
			if channels == 1 {
				e, err := dec.Decode()

				if err != nil {
					return err
				}

				buf[i] = int16(pred.ReconstructMono(e))
			} else {
				eL, err := dec.Decode()

				if err != nil {
					return err
				}

				eR, err := dec.Decode()

				if err != nil {
					return err
				}

				l, r := pred.ReconstructStereo(eL, eR)
				buf[2*i] = int16(l)
				buf[2*i+1] = int16(r)
			}
		}

		if err := dst.WriteFrames(buf); err != nil {
			return golcc.NewCodecError(golcc.KindIO, "audiocodec: write frames: %v", err)
		}

		remaining -= blockFrames
	}

	return br.Close()
}
