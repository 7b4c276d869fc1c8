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

// Package lossyaudio implements the lossy DCT variant of the audio
// pipeline: a blocked orthonormal DCT-II/III pair with frequency
// weighted uniform quantisation, replacing predictor.Audio from the
// lossless codec.
package lossyaudio

import (
	"encoding/binary"
	"io"

	"github.com/andrealex50/golcc"
)

const magic = "GDCT"
const version = uint16(1)

// BlockSize is the number of samples per DCT block; the tail block is
// zero-padded.
const BlockSize = 1024

// Header is the fixed, little-endian, packed LossyAudioHeader. Unlike
// its direct C++ ancestor, this format's on-disk header carries a
// magic and version for the same InvalidFormat detection the other two
// on-disk formats get.
type Header struct {
	SampleRate  uint32
	NumSamples  uint32
	BlockSize   uint16
	QBaseFixed  uint32 // round(qBase * 1000)
}

func writeHeader(w io.Writer, h *Header) error {
	buf := make([]byte, 0, 20)
	buf = append(buf, magic...)
	buf = binary.LittleEndian.AppendUint16(buf, version)
	buf = binary.LittleEndian.AppendUint32(buf, h.SampleRate)
	buf = binary.LittleEndian.AppendUint32(buf, h.NumSamples)
	buf = binary.LittleEndian.AppendUint16(buf, h.BlockSize)
	buf = binary.LittleEndian.AppendUint32(buf, h.QBaseFixed)

	if _, err := w.Write(buf); err != nil {
		return golcc.NewCodecError(golcc.KindIO, "lossyaudio: write header: %v", err)
	}

	return nil
}

func readHeader(r io.Reader) (*Header, error) {
	buf := make([]byte, 20)

	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, golcc.NewCodecError(golcc.KindIO, "lossyaudio: read header: %v", err)
	}

	if string(buf[0:4]) != magic {
		return nil, golcc.NewCodecError(golcc.KindInvalidFormat, "lossyaudio: bad magic %q", buf[0:4])
	}

	v := binary.LittleEndian.Uint16(buf[4:6])

	if v != version {
		return nil, golcc.NewCodecError(golcc.KindInvalidFormat, "lossyaudio: unsupported version %d", v)
	}

	h := &Header{}
	h.SampleRate = binary.LittleEndian.Uint32(buf[6:10])
	h.NumSamples = binary.LittleEndian.Uint32(buf[10:14])
	h.BlockSize = binary.LittleEndian.Uint16(buf[14:16])
	h.QBaseFixed = binary.LittleEndian.Uint32(buf[16:20])
	return h, nil
}
