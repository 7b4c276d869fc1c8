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

// Package audiocodec implements the lossless 16-bit PCM mono/stereo
// audio codec: a fixed header followed by a per-block stream of
// (optional m, residuals), driven by the predictor and golomb packages.
package audiocodec

import (
	"encoding/binary"
	"io"

	"github.com/andrealex50/golcc"
)

const magic = "GACL"
const version = uint16(1)

// BlockSize is the number of frames per adaptive-m block.
const BlockSize = 4096

// Header is the fixed, little-endian, packed AudioCodecHeader.
type Header struct {
	Channels      uint16
	SampleRate    uint32
	BitsPerSample uint16
	TotalFrames   uint64
	Adaptive      bool
	FixedM        uint16
}

// writeHeader emits the fixed header layout: magic, version, channels,
// sample rate, bits per sample, total frame count, adaptive flag,
// fixed m.
func writeHeader(w io.Writer, h *Header) error {
	buf := make([]byte, 0, 25)
	buf = append(buf, magic...)
	buf = binary.LittleEndian.AppendUint16(buf, version)
	buf = binary.LittleEndian.AppendUint16(buf, h.Channels)
	buf = binary.LittleEndian.AppendUint32(buf, h.SampleRate)
	buf = binary.LittleEndian.AppendUint16(buf, h.BitsPerSample)
	buf = binary.LittleEndian.AppendUint64(buf, h.TotalFrames)

	if h.Adaptive {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}

	buf = binary.LittleEndian.AppendUint16(buf, h.FixedM)

	if _, err := w.Write(buf); err != nil {
		return golcc.NewCodecError(golcc.KindIO, "audiocodec: write header: %v", err)
	}

	return nil
}

// readHeader reads and validates the fixed header, rejecting a magic
// or version mismatch with InvalidFormat.
func readHeader(r io.Reader) (*Header, error) {
	buf := make([]byte, 25)

	if _, err := io.ReadFull(r, buf[0:4]); err != nil {
		return nil, golcc.NewCodecError(golcc.KindIO, "audiocodec: read header: %v", err)
	}

	if string(buf[0:4]) != magic {
		return nil, golcc.NewCodecError(golcc.KindInvalidFormat, "audiocodec: bad magic %q", buf[0:4])
	}

	if _, err := io.ReadFull(r, buf[4:]); err != nil {
		return nil, golcc.NewCodecError(golcc.KindIO, "audiocodec: read header: %v", err)
	}

	v := binary.LittleEndian.Uint16(buf[4:6])

	if v != version {
		return nil, golcc.NewCodecError(golcc.KindInvalidFormat, "audiocodec: unsupported version %d", v)
	}

	h := &Header{}
	h.Channels = binary.LittleEndian.Uint16(buf[6:8])
	h.SampleRate = binary.LittleEndian.Uint32(buf[8:12])
	h.BitsPerSample = binary.LittleEndian.Uint16(buf[12:14])
	h.TotalFrames = binary.LittleEndian.Uint64(buf[14:22])
	h.Adaptive = buf[22] != 0
	h.FixedM = binary.LittleEndian.Uint16(buf[23:25])

	if h.Channels != 1 && h.Channels != 2 {
		return nil, golcc.NewCodecError(golcc.KindInvalidParameter, "audiocodec: unsupported channel count %d", h.Channels)
	}

	if h.BitsPerSample != 16 {
		return nil, golcc.NewCodecError(golcc.KindInvalidParameter, "audiocodec: unsupported bits per sample %d", h.BitsPerSample)
	}

	return h, nil
}
