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
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/andrealex50/golcc"
	"github.com/andrealex50/golcc/internal"
)

// runBatch processes several independent in:out file pairs
// concurrently, one goroutine per file, mirroring the teacher's
// multi-file worker pool but expressed with errgroup instead of raw
// channels. Each individual encode/decode stays single-threaded; only
// the files are parallel to each other.
func runBatch(cfg *config) error {
	if len(cfg.batch) < 2 {
		return golcc.NewCodecError(golcc.KindInvalidParameter, "batch: expected a sub-command and at least one file pair")
	}

	sub := cfg.batch[0]
	pairs := cfg.batch[1:]

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for _, pair := range pairs {
		pair := pair

		g.Go(func() error {
			fd, err := parsePair(pair)

			if err != nil {
				return err
			}

			if internal.IsReservedName(fd.OutPath) {
				return golcc.NewCodecError(golcc.KindInvalidParameter, "batch: reserved output name %q", fd.OutPath)
			}

			switch sub {
			case "encode":
				return batchEncode(cfg, fd)
			case "decode":
				return batchDecode(cfg, fd)
			default:
				return golcc.NewCodecError(golcc.KindInvalidParameter, "batch: unknown sub-command %q", sub)
			}
		})
	}

	return g.Wait()
}

func parsePair(pair string) (internal.FileData, error) {
	parts := strings.SplitN(pair, ":", 2)

	if len(parts) != 2 {
		return internal.FileData{}, golcc.NewCodecError(golcc.KindInvalidParameter, "batch: expected in:out, got %q", pair)
	}

	return internal.FileData{InPath: parts[0], OutPath: parts[1]}, nil
}

func batchEncode(cfg *config, fd internal.FileData) error {
	in, err := os.Open(fd.InPath)

	if err != nil {
		return golcc.NewCodecError(golcc.KindIO, "batch: open input: %v", err)
	}

	defer in.Close()

	out, err := os.Create(fd.OutPath)

	if err != nil {
		return golcc.NewCodecError(golcc.KindIO, "batch: create output: %v", err)
	}

	defer out.Close()

	adaptive := cfg.adaptive || cfg.m <= 0
	return encodeOne(cfg.mode, in, out, adaptive, cfg.m, cfg.quality, cfg.verbose)
}

func batchDecode(cfg *config, fd internal.FileData) error {
	in, err := os.Open(fd.InPath)

	if err != nil {
		return golcc.NewCodecError(golcc.KindIO, "batch: open input: %v", err)
	}

	defer in.Close()

	return decodeOne(cfg.mode, in, fd.OutPath, cfg.verbose)
}
