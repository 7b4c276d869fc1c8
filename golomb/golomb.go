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

// Package golomb implements a Golomb-Rice entropy coder over a general
// divisor m, with truncated-binary remainder coding and two signed
// mappings (interleaving and sign-and-magnitude), delegating bit I/O
// to the bitstream package.
package golomb

import (
	"math/bits"

	"github.com/andrealex50/golcc"
	"github.com/andrealex50/golcc/bitstream"
)

// SignMode selects how a signed residual is mapped onto the unsigned
// domain the Golomb core operates on.
type SignMode int

const (
	// Interleaving maps n>=0 to 2n and n<0 to -2n-1 (a bijection onto
	// the naturals, no sign bit). The default: shorter codes when the
	// residual distribution is symmetric about zero.
	Interleaving SignMode = iota
	// SignAndMagnitude emits an explicit sign bit followed by the
	// unsigned encoding of the magnitude.
	SignAndMagnitude
)

// Encoder Golomb-encodes signed integers onto a bitstream.Writer.
type Encoder struct {
	out    *bitstream.Writer
	mode   SignMode
	m      int
	b      uint // ceil(log2(m))
	cutoff int  // 2^b - m
}

// NewEncoder creates an Encoder with divisor m (m >= 1) and sign mode,
// writing to out.
func NewEncoder(out *bitstream.Writer, m int, mode SignMode) (*Encoder, error) {
	this := &Encoder{out: out, mode: mode}

	if err := this.SetM(m); err != nil {
		return nil, err
	}

	return this, nil
}

// SetM re-parameterises the coder with a new divisor, recomputing the
// derived constants b and cutoff. Used between blocks in the adaptive
// codecs.
func (this *Encoder) SetM(m int) error {
	if m <= 0 {
		return golcc.NewCodecError(golcc.KindInvalidParameter, "golomb: m must be > 0, got %d", m)
	}

	this.m = m
	this.b, this.cutoff = derive(m)
	return nil
}

// M returns the current divisor.
func (this *Encoder) M() int {
	return this.m
}

// derive computes b = ceil(log2(m)) and cutoff = 2^b - m for m >= 1.
func derive(m int) (b uint, cutoff int) {
	if m == 1 {
		return 0, 0
	}

	b = uint(bits.Len(uint(m - 1)))
	cutoff = (1 << b) - m
	return b, cutoff
}

// encodeUnsigned emits the Golomb code for n >= 0.
func (this *Encoder) encodeUnsigned(n int) error {
	q := n / this.m
	r := n % this.m

	// Unary code for q: q zero bits then a one bit.
	for i := 0; i < q; i++ {
		if err := this.out.WriteBit(0); err != nil {
			return err
		}
	}

	if err := this.out.WriteBit(1); err != nil {
		return err
	}

	if this.m == 1 {
		return nil
	}

	if r < this.cutoff {
		return this.out.WriteBits(uint64(r), this.b-1)
	}

	return this.out.WriteBits(uint64(r+this.cutoff), this.b)
}

// Encode Golomb-encodes a signed residual n according to the current
// sign mode.
func (this *Encoder) Encode(n int) error {
	switch this.mode {
	case Interleaving:
		var u int

		if n >= 0 {
			u = 2 * n
		} else {
			u = -2*n - 1
		}

		return this.encodeUnsigned(u)

	case SignAndMagnitude:
		sign := 0

		if n < 0 {
			sign = 1
			n = -n
		}

		if err := this.out.WriteBit(sign); err != nil {
			return err
		}

		return this.encodeUnsigned(n)

	default:
		return golcc.NewCodecError(golcc.KindInvalidParameter, "golomb: unknown sign mode %d", this.mode)
	}
}

// Decoder Golomb-decodes signed integers from a bitstream.Reader.
type Decoder struct {
	in     *bitstream.Reader
	mode   SignMode
	m      int
	b      uint
	cutoff int
}

// NewDecoder creates a Decoder with divisor m (m >= 1) and sign mode,
// reading from in.
func NewDecoder(in *bitstream.Reader, m int, mode SignMode) (*Decoder, error) {
	this := &Decoder{in: in, mode: mode}

	if err := this.SetM(m); err != nil {
		return nil, err
	}

	return this, nil
}

// SetM re-parameterises the coder with a new divisor. A decoded m of 0
// is clamped up to 1 by the caller before this is invoked (see the
// audiocodec and imagecodec decoders), per spec's block-adaptive
// estimator safety clamp.
func (this *Decoder) SetM(m int) error {
	if m <= 0 {
		return golcc.NewCodecError(golcc.KindInvalidParameter, "golomb: m must be > 0, got %d", m)
	}

	this.m = m
	this.b, this.cutoff = derive(m)
	return nil
}

// M returns the current divisor.
func (this *Decoder) M() int {
	return this.m
}

func (this *Decoder) decodeUnsigned() (int, error) {
	q := 0

	for {
		bit := this.in.ReadBit()

		if bit == bitstream.EOS {
			return 0, golcc.NewCodecError(golcc.KindUnexpectedEndOfStream, "golomb: EOS inside unary prefix")
		}

		if bit == 1 {
			break
		}

		q++
	}

	if this.m == 1 {
		return q, nil
	}

	rHead, ok := this.in.ReadBits(this.b - 1)

	if !ok {
		return 0, golcc.NewCodecError(golcc.KindUnexpectedEndOfStream, "golomb: EOS reading remainder")
	}

	r := int(rHead)

	if r >= this.cutoff {
		tail, ok := this.in.ReadBits(1)

		if !ok {
			return 0, golcc.NewCodecError(golcc.KindUnexpectedEndOfStream, "golomb: EOS reading remainder tail")
		}

		full := (r << 1) | int(tail)
		r = full - this.cutoff
	}

	return q*this.m + r, nil
}

// Decode Golomb-decodes the next signed residual.
func (this *Decoder) Decode() (int, error) {
	switch this.mode {
	case Interleaving:
		u, err := this.decodeUnsigned()

		if err != nil {
			return 0, err
		}

		if u%2 == 0 {
			return u / 2, nil
		}

		return -(u + 1) / 2, nil

	case SignAndMagnitude:
		signBit := this.in.ReadBit()

		if signBit == bitstream.EOS {
			return 0, golcc.NewCodecError(golcc.KindUnexpectedEndOfStream, "golomb: EOS reading sign bit")
		}

		n, err := this.decodeUnsigned()

		if err != nil {
			return 0, err
		}

		if signBit == 1 {
			return -n, nil
		}

		return n, nil

	default:
		return 0, golcc.NewCodecError(golcc.KindInvalidParameter, "golomb: unknown sign mode %d", this.mode)
	}
}
