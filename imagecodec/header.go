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

// Package imagecodec implements the lossless 8-bit greyscale image
// codec: a fixed header followed by a per-row-band stream of (optional
// m, residuals), driven by the predictor.MED and golomb packages.
package imagecodec

import (
	"encoding/binary"
	"io"

	"github.com/andrealex50/golcc"
)

const magic = "GICL"
const version = uint16(1)

// BandRows is the number of raster rows per adaptive-m band.
const BandRows = 64

// Header is the fixed, little-endian, packed ImageCodecHeader.
type Header struct {
	Width    uint32
	Height   uint32
	Adaptive bool
	FixedM   uint16
}

func writeHeader(w io.Writer, h *Header) error {
	buf := make([]byte, 0, 17)
	buf = append(buf, magic...)
	buf = binary.LittleEndian.AppendUint16(buf, version)
	buf = binary.LittleEndian.AppendUint32(buf, h.Width)
	buf = binary.LittleEndian.AppendUint32(buf, h.Height)

	if h.Adaptive {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}

	buf = binary.LittleEndian.AppendUint16(buf, h.FixedM)

	if _, err := w.Write(buf); err != nil {
		return golcc.NewCodecError(golcc.KindIO, "imagecodec: write header: %v", err)
	}

	return nil
}

func readHeader(r io.Reader) (*Header, error) {
	buf := make([]byte, 17)

	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, golcc.NewCodecError(golcc.KindIO, "imagecodec: read header: %v", err)
	}

	if string(buf[0:4]) != magic {
		return nil, golcc.NewCodecError(golcc.KindInvalidFormat, "imagecodec: bad magic %q", buf[0:4])
	}

	v := binary.LittleEndian.Uint16(buf[4:6])

	if v != version {
		return nil, golcc.NewCodecError(golcc.KindInvalidFormat, "imagecodec: unsupported version %d", v)
	}

	h := &Header{}
	h.Width = binary.LittleEndian.Uint32(buf[6:10])
	h.Height = binary.LittleEndian.Uint32(buf[10:14])
	h.Adaptive = buf[14] != 0
	h.FixedM = binary.LittleEndian.Uint16(buf[15:17])
	return h, nil
}
