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
	"fmt"
	"os"

	"github.com/andrealex50/golcc"
	"github.com/andrealex50/golcc/internal"
)

var log = internal.NewPrinter(os.Stdout)

func main() {
	cfg, err := parseArgs(os.Args[1:])

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(golcc.ExitCode(err))
	}

	switch cfg.command {
	case "encode":
		err = runEncode(cfg)
	case "decode":
		err = runDecode(cfg)
	case "batch":
		err = runBatch(cfg)
	default:
		err = golcc.NewCodecError(golcc.KindInvalidParameter, "unknown command %q", cfg.command)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(golcc.ExitCode(err))
	}

	log.Println("done", cfg.verbose)
}

func runEncode(cfg *config) error {
	in, err := os.Open(cfg.in)

	if err != nil {
		return golcc.NewCodecError(golcc.KindIO, "open input: %v", err)
	}

	defer in.Close()

	out, err := os.Create(cfg.out)

	if err != nil {
		return golcc.NewCodecError(golcc.KindIO, "create output: %v", err)
	}

	defer out.Close()

	adaptive := cfg.adaptive || cfg.m <= 0

	return encodeOne(cfg.mode, in, out, adaptive, cfg.m, cfg.quality, cfg.verbose)
}

func runDecode(cfg *config) error {
	in, err := os.Open(cfg.in)

	if err != nil {
		return golcc.NewCodecError(golcc.KindIO, "open input: %v", err)
	}

	defer in.Close()

	return decodeOne(cfg.mode, in, cfg.out, cfg.verbose)
}
