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
	"os"

	"github.com/andrealex50/golcc"
	"github.com/andrealex50/golcc/audiocodec"
	"github.com/andrealex50/golcc/imagecodec"
	"github.com/andrealex50/golcc/imageio"
	"github.com/andrealex50/golcc/lossyaudio"
	"github.com/andrealex50/golcc/wavio"
)

func decodeOne(m mode, in *os.File, outPath string, verbose bool) error {
	switch m {
	case modeAudio:
		out, err := os.Create(outPath)

		if err != nil {
			return golcc.NewCodecError(golcc.KindIO, "create output: %v", err)
		}

		defer out.Close()

		sink := wavio.NewWriter(out)
		log.Println("decoding audio "+in.Name(), verbose)

		if err := audiocodec.Decode(in, sink); err != nil {
			return err
		}

		return sink.Close()

	case modeImage:
		out, err := os.Create(outPath)

		if err != nil {
			return golcc.NewCodecError(golcc.KindIO, "create output: %v", err)
		}

		defer out.Close()

		width, height, pixels, err := imagecodec.Decode(in)

		if err != nil {
			return err
		}

		log.Println("decoding image "+in.Name(), verbose)
		return imageio.Write(out, width, height, pixels)

	case modeLossyAudio:
		out, err := os.Create(outPath)

		if err != nil {
			return golcc.NewCodecError(golcc.KindIO, "create output: %v", err)
		}

		defer out.Close()

		samples, sampleRate, err := lossyaudio.Decode(in)

		if err != nil {
			return err
		}

		sink := wavio.NewWriter(out)

		if err := sink.Open(sampleRate, 1); err != nil {
			return golcc.NewCodecError(golcc.KindIO, "open wav sink: %v", err)
		}

		log.Println("decoding lossy audio "+in.Name(), verbose)

		if err := sink.WriteFrames(samples); err != nil {
			return golcc.NewCodecError(golcc.KindIO, "write frames: %v", err)
		}

		return sink.Close()

	default:
		return golcc.NewCodecError(golcc.KindInvalidParameter, "unknown mode")
	}
}
