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

// wavfx applies a gain, echo, distortion or highpass demo effect to a
// WAV file, the way the original project's wav_effects demo does.
// Never used by the codecs themselves.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/andrealex50/golcc"
	"github.com/andrealex50/golcc/effects"
	"github.com/andrealex50/golcc/wavio"
)

func main() {
	effect := flag.String("effect", "gain", "effect to apply: gain, echo, distortion or highpass")
	gain := flag.Float64("gain", 1.5, "gain factor (gain, distortion)")
	delayMs := flag.Int("delay-ms", 200, "echo delay in milliseconds")
	decay := flag.Float64("decay", 0.5, "echo decay factor")
	cutoffHz := flag.Float64("cutoff-hz", 200.0, "highpass cutoff frequency in Hz")
	in := flag.String("in", "", "input WAV path")
	out := flag.String("out", "", "output WAV path")
	flag.Parse()

	if err := run(*effect, *gain, *delayMs, *decay, *cutoffHz, *in, *out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(golcc.ExitCode(err))
	}
}

func run(effect string, gain float64, delayMs int, decay, cutoffHz float64, inPath, outPath string) error {
	if inPath == "" || outPath == "" {
		return golcc.NewCodecError(golcc.KindInvalidParameter, "wavfx: --in and --out are required")
	}

	inFile, err := os.Open(inPath)

	if err != nil {
		return golcc.NewCodecError(golcc.KindIO, "open input: %v", err)
	}

	defer inFile.Close()

	src, err := wavio.NewReader(inFile)

	if err != nil {
		return err
	}

	channels := src.Channels()
	sampleRate := src.SampleRate()
	var samples []int16
	buf := make([]int16, 4096*channels)

	for {
		n, err := src.ReadFrames(buf)

		if err != nil && err != io.EOF {
			return golcc.NewCodecError(golcc.KindIO, "read frames: %v", err)
		}

		samples = append(samples, buf[:n*channels]...)

		if n == 0 {
			break
		}
	}

	var processed []int16

	switch effect {
	case "gain":
		processed = effects.Gain(samples, gain)
	case "echo":
		delayFrames := int(sampleRate) * delayMs / 1000
		processed = effects.Echo(samples, delayFrames*channels, decay, int(sampleRate))
	case "distortion":
		processed = effects.Distortion(samples, gain)
	case "highpass":
		processed = effects.Highpass(samples, channels, int(sampleRate), cutoffHz)
	default:
		return golcc.NewCodecError(golcc.KindInvalidParameter, "wavfx: unknown effect %q", effect)
	}

	outFile, err := os.Create(outPath)

	if err != nil {
		return golcc.NewCodecError(golcc.KindIO, "create output: %v", err)
	}

	defer outFile.Close()

	sink := wavio.NewWriter(outFile)

	if err := sink.Open(sampleRate, channels); err != nil {
		return golcc.NewCodecError(golcc.KindIO, "open wav sink: %v", err)
	}

	if err := sink.WriteFrames(processed); err != nil {
		return golcc.NewCodecError(golcc.KindIO, "write frames: %v", err)
	}

	return sink.Close()
}
