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

package main

import (
	"io"
	"os"

	"github.com/andrealex50/golcc"
	"github.com/andrealex50/golcc/audiocodec"
	"github.com/andrealex50/golcc/imagecodec"
	"github.com/andrealex50/golcc/imageio"
	"github.com/andrealex50/golcc/lossyaudio"
	"github.com/andrealex50/golcc/wavio"
)

func encodeOne(m mode, in *os.File, out *os.File, adaptive bool, fixedM int, quality float64, verbose bool) error {
	switch m {
	case modeAudio:
		src, err := wavio.NewReader(in)

		if err != nil {
			return err
		}

		log.Println("encoding audio "+in.Name(), verbose)
		return audiocodec.Encode(out, src, adaptive, fixedM)

	case modeImage:
		width, height, pixels, err := imageio.Read(in)

		if err != nil {
			return err
		}

		log.Println("encoding image "+in.Name(), verbose)
		return imagecodec.Encode(out, width, height, pixels, adaptive, fixedM)

	case modeLossyAudio:
		src, err := wavio.NewReader(in)

		if err != nil {
			return err
		}

		samples, err := readMonoSamples(src)

		if err != nil {
			return err
		}

		qBase, err := lossyaudio.QualityToBase(quality)

		if err != nil {
			return err
		}

		log.Println("encoding lossy audio "+in.Name(), verbose)
		return lossyaudio.Encode(out, samples, src.SampleRate(), qBase)

	default:
		return golcc.NewCodecError(golcc.KindInvalidParameter, "unknown mode")
	}
}

// readMonoSamples drains a WAV source into a flat mono sample slice,
// downmixing stereo input by averaging channels (the lossy DCT path is
// single-channel per the source it was ported from).
func readMonoSamples(src *wavio.Reader) ([]int16, error) {
	channels := src.Channels()
	var out []int16
	buf := make([]int16, 4096*channels)

	for {
		n, err := src.ReadFrames(buf)

		if err != nil && err != io.EOF {
			return nil, golcc.NewCodecError(golcc.KindIO, "read frames: %v", err)
		}

		for i := 0; i < n; i++ {
			if channels == 1 {
				out = append(out, buf[i])
			} else {
				mix := (int(buf[2*i]) + int(buf[2*i+1])) / 2
				out = append(out, int16(mix))
			}
		}

		if n == 0 {
			break
		}
	}

	return out, nil
}
