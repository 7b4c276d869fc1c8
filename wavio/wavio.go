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

// Package wavio adapts github.com/go-audio/wav to the WAV input/output
// contract of audiocodec.Source / audiocodec.Sink: sample rate, channel
// count, PCM-16 format validation, and blocking frame-at-a-time I/O.
package wavio

import (
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/andrealex50/golcc"
)

// Reader wraps a wav.Decoder, exposing interleaved 16-bit frames.
type Reader struct {
	dec      *wav.Decoder
	channels int
	buf      *audio.IntBuffer
}

// NewReader opens a WAV stream for reading, rejecting anything that
// isn't 16-bit PCM mono or stereo.
func NewReader(r io.ReadSeeker) (*Reader, error) {
	dec := wav.NewDecoder(r)

	if !dec.IsValidFile() {
		return nil, golcc.NewCodecError(golcc.KindInvalidFormat, "wavio: not a valid WAV file")
	}

	if dec.BitDepth != 16 {
		return nil, golcc.NewCodecError(golcc.KindInvalidParameter, "wavio: unsupported bit depth %d", dec.BitDepth)
	}

	channels := int(dec.NumChans)

	if channels != 1 && channels != 2 {
		return nil, golcc.NewCodecError(golcc.KindInvalidParameter, "wavio: unsupported channel count %d", channels)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, golcc.NewCodecError(golcc.KindInvalidFormat, "wavio: %v", err)
	}

	this := &Reader{dec: dec, channels: channels}
	this.buf = &audio.IntBuffer{
		Format: &audio.Format{NumChannels: channels, SampleRate: int(dec.SampleRate)},
	}

	return this, nil
}

// SampleRate returns the stream's sample rate in Hz.
func (this *Reader) SampleRate() uint32 {
	return this.dec.SampleRate
}

// Channels returns 1 (mono) or 2 (stereo).
func (this *Reader) Channels() int {
	return this.channels
}

// TotalFrames returns the total frame count, derived from the PCM
// chunk's byte length and the frame size in bytes.
func (this *Reader) TotalFrames() uint64 {
	bytesPerFrame := int64(this.channels) * int64(this.dec.BitDepth) / 8

	if bytesPerFrame == 0 {
		return 0
	}

	return uint64(this.dec.PCMLen() / bytesPerFrame)
}

// ReadFrames fills buf (len a multiple of Channels()) with interleaved
// 16-bit samples, returning the number of frames read and io.EOF once
// exhausted.
func (this *Reader) ReadFrames(buf []int16) (int, error) {
	frames := len(buf) / this.channels
	this.buf.Data = make([]int, frames*this.channels)

	n, err := this.dec.PCMBuffer(this.buf)

	if err != nil {
		return 0, err
	}

	if n == 0 {
		return 0, io.EOF
	}

	samples := n

	for i := 0; i < samples; i++ {
		buf[i] = int16(this.buf.Data[i])
	}

	return samples / this.channels, nil
}

// Writer wraps a wav.Encoder, accepting interleaved 16-bit frames. The
// encoder itself is created lazily in Open, once the codec header has
// told us the stream's sample rate and channel count.
type Writer struct {
	sink     io.WriteSeeker
	enc      *wav.Encoder
	channels int
}

// NewWriter creates a Writer that will write WAV data to sink once
// Open is called.
func NewWriter(sink io.WriteSeeker) *Writer {
	return &Writer{sink: sink}
}

// Open initialises the underlying wav.Encoder with the given sample
// rate and channel count. Must be called exactly once, before any
// WriteFrames call; satisfies audiocodec.Sink.
func (this *Writer) Open(sampleRate uint32, channels int) error {
	this.channels = channels
	this.enc = wav.NewEncoder(this.sink, int(sampleRate), 16, channels, 1)
	return nil
}

// WriteFrames appends interleaved 16-bit frames to the stream.
func (this *Writer) WriteFrames(buf []int16) error {
	data := make([]int, len(buf))

	for i, s := range buf {
		data[i] = int(s)
	}

	ib := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: this.channels, SampleRate: int(this.enc.SampleRate)},
		Data:   data,
	}

	return this.enc.Write(ib)
}

// Close flushes the WAV header and trailing chunks.
func (this *Writer) Close() error {
	return this.enc.Close()
}
