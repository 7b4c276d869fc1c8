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

// golcc is the command-line front end for the bit-level/Golomb media
// codec family: lossless audio (WAV), lossless image (PNG/BMP
// greyscale) and lossy DCT audio.
package main

import (
	"strconv"
	"strings"

	"github.com/andrealex50/golcc"
)

// mode selects which of the three on-disk formats a command operates
// on.
type mode int

const (
	modeAudio mode = iota
	modeImage
	modeLossyAudio
)

// config holds the parsed command-line flags for a single encode or
// decode invocation, mirroring the teacher CLI's flat flag-parsing loop
// rather than a sub-command framework.
type config struct {
	command  string // "encode", "decode", "batch"
	mode     mode
	in       string
	out      string
	m        int
	adaptive bool
	quality  float64
	verbose  bool
	batch    []string
}

// parseArgs walks args (excluding argv[0]) the way Kanzi.go's
// processCommandLine does: a linear scan recognising --flag=value forms
// and the bare --verbose/-v and --adaptive switches.
func parseArgs(args []string) (*config, error) {
	if len(args) == 0 {
		return nil, golcc.NewCodecError(golcc.KindInvalidParameter, "missing command: expected encode, decode or batch")
	}

	cfg := &config{command: args[0], mode: modeAudio, m: -1}
	ctx := 1

	for ctx < len(args) {
		arg := args[ctx]
		ctx++

		switch {
		case arg == "--verbose" || arg == "-v":
			cfg.verbose = true

		case arg == "--adaptive":
			cfg.adaptive = true

		case strings.HasPrefix(arg, "--mode="):
			switch strings.TrimPrefix(arg, "--mode=") {
			case "audio":
				cfg.mode = modeAudio
			case "image":
				cfg.mode = modeImage
			case "lossy-audio":
				cfg.mode = modeLossyAudio
			default:
				return nil, golcc.NewCodecError(golcc.KindInvalidParameter, "unknown mode %q", arg)
			}

		case strings.HasPrefix(arg, "--in="):
			cfg.in = strings.TrimPrefix(arg, "--in=")

		case strings.HasPrefix(arg, "--out="):
			cfg.out = strings.TrimPrefix(arg, "--out=")

		case strings.HasPrefix(arg, "--m="):
			v, err := strconv.Atoi(strings.TrimPrefix(arg, "--m="))

			if err != nil {
				return nil, golcc.NewCodecError(golcc.KindInvalidParameter, "invalid --m value: %v", err)
			}

			cfg.m = v

		case strings.HasPrefix(arg, "--quality="):
			v, err := strconv.ParseFloat(strings.TrimPrefix(arg, "--quality="), 64)

			if err != nil {
				return nil, golcc.NewCodecError(golcc.KindInvalidParameter, "invalid --quality value: %v", err)
			}

			cfg.quality = v

		default:
			// Any remaining bare tokens are batch arguments: the
			// sub-command followed by in:out file pairs.
			cfg.batch = append(cfg.batch, arg)
		}
	}

	if cfg.adaptive && cfg.m > 0 {
		return nil, golcc.NewCodecError(golcc.KindInvalidParameter, "--m and --adaptive are mutually exclusive")
	}

	return cfg, nil
}
