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

// Package golcc defines the top level error model shared by every codec
// in the module: the bit-level I/O stream, the Golomb entropy coder, the
// predictive front-ends and the audio/image/lossy-audio file formats
// built on top of them.
//
// Concrete implementations live in sub-packages: bitstream, golomb,
// predictor, dct, audiocodec, imagecodec and lossyaudio.
package golcc

import "fmt"

// Process exit codes, mirrored from the four fatal error kinds a codec
// can produce. Kept as small positive integers so a CLI can use them
// directly as os.Exit statuses.
const (
	ErrNone = iota
	ErrIO
	ErrInvalidFormat
	ErrInvalidParameter
	ErrUnexpectedEndOfStream
	ErrUnknown = 127
)

// Kind classifies a CodecError into one of the four fatal error
// categories from the failure semantics of the format.
type Kind int

const (
	// KindIO covers underlying file open/read/write failures.
	KindIO Kind = iota
	// KindInvalidFormat covers magic mismatches, unknown versions and
	// impossible header fields.
	KindInvalidFormat
	// KindInvalidParameter covers unsupported channel counts, non-PCM16
	// audio, non-8-bit images, m <= 0, and out-of-range lossy quality.
	KindInvalidParameter
	// KindUnexpectedEndOfStream covers a bitstream exhausted mid-codeword.
	KindUnexpectedEndOfStream
)

// CodecError is the single error type every codec surfaces to its
// caller. It carries enough context to print a diagnostic and to map to
// a process exit code, following the (message, code) shape of a
// traditional compression library's IOError.
type CodecError struct {
	kind Kind
	msg  string
}

// NewCodecError creates a CodecError of the given kind with a formatted
// message.
func NewCodecError(kind Kind, format string, args ...any) *CodecError {
	return &CodecError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Error returns the underlying error message.
func (e *CodecError) Error() string {
	return e.msg
}

// Kind returns the error category.
func (e *CodecError) Kind() Kind {
	return e.kind
}

// ExitCode maps the error kind to a process exit status.
func (e *CodecError) ExitCode() int {
	switch e.kind {
	case KindIO:
		return ErrIO
	case KindInvalidFormat:
		return ErrInvalidFormat
	case KindInvalidParameter:
		return ErrInvalidParameter
	case KindUnexpectedEndOfStream:
		return ErrUnexpectedEndOfStream
	default:
		return ErrUnknown
	}
}

// ExitCode maps an arbitrary error to a process exit status: a
// *CodecError maps to its own kind, anything else is treated as an
// unknown fatal condition.
func ExitCode(err error) int {
	if err == nil {
		return ErrNone
	}

	if ce, ok := err.(*CodecError); ok {
		return ce.ExitCode()
	}

	return ErrUnknown
}
