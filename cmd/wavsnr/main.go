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

// wavsnr compares an original WAV file against a reconstructed one and
// reports the signal-to-noise ratio and mean squared error, the way
// the original project's wav_snr tool does.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/andrealex50/golcc"
	"github.com/andrealex50/golcc/compare"
	"github.com/andrealex50/golcc/wavio"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: wavsnr original.wav reconstructed.wav")
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(golcc.ExitCode(err))
	}
}

func run(origPath, reconPath string) error {
	orig, err := readAll(origPath)

	if err != nil {
		return err
	}

	recon, err := readAll(reconPath)

	if err != nil {
		return err
	}

	snrDB, mse, err := compare.SNR(orig, recon)

	if err != nil {
		return err
	}

	fmt.Printf("SNR: %.3f dB, MSE: %.3f\n", snrDB, mse)
	return nil
}

func readAll(path string) ([]int16, error) {
	f, err := os.Open(path)

	if err != nil {
		return nil, golcc.NewCodecError(golcc.KindIO, "open %s: %v", path, err)
	}

	defer f.Close()

	r, err := wavio.NewReader(f)

	if err != nil {
		return nil, err
	}

	channels := r.Channels()
	var out []int16
	buf := make([]int16, 4096*channels)

	for {
		n, err := r.ReadFrames(buf)

		if err != nil && err != io.EOF {
			return nil, golcc.NewCodecError(golcc.KindIO, "read %s: %v", path, err)
		}

		out = append(out, buf[:n*channels]...)

		if n == 0 {
			break
		}
	}

	return out, nil
}
