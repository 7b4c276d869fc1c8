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

package bitstream

import (
	"bufio"
	"io"
)

// EOS is the sentinel value returned by ReadBit once the underlying
// source is exhausted. The Golomb layer above treats EOS appearing
// inside a unary run as golcc.KindUnexpectedEndOfStream.
const EOS = -1

// Reader unpacks unsigned integers from an underlying byte source,
// most-significant-bit first, refilling a one-byte buffer on demand.
type Reader struct {
	src    *bufio.Reader
	buf    byte
	count  uint // number of unread bits remaining in buf, 0..7
	eof    bool
	nbBits uint64
}

// NewReader creates a Reader bound to the given source. The source is
// never closed by this Reader.
func NewReader(src io.Reader) *Reader {
	this := &Reader{}
	this.src = bufio.NewReader(src)
	return this
}

// ReadBit returns the next bit, or EOS once the source is exhausted.
func (this *Reader) ReadBit() int {
	if this.count == 0 {
		if this.eof {
			return EOS
		}

		b, err := this.src.ReadByte()

		if err != nil {
			this.eof = true
			return EOS
		}

		this.buf = b
		this.count = 8
	}

	this.count--
	this.nbBits++
	return int((this.buf >> this.count) & 1)
}

// ReadBits reads n bits (n in [1, 64]) most-significant-bit first and
// assembles them into an unsigned integer. If the source is exhausted
// before n bits are read, the missing low bits are zero and ok is
// false.
func (this *Reader) ReadBits(n uint) (value uint64, ok bool) {
	ok = true

	for i := uint(0); i < n; i++ {
		bit := this.ReadBit()

		if bit == EOS {
			ok = false
			value <<= n - i
			return value, ok
		}

		value = (value << 1) | uint64(bit)
	}

	return value, ok
}

// BitsRead returns the total number of bits consumed via
// ReadBit/ReadBits so far.
func (this *Reader) BitsRead() uint64 {
	return this.nbBits
}

// Close drops the internal buffer. A courtesy call; readers carry no
// side effects that require flushing.
func (this *Reader) Close() error {
	this.count = 0
	this.eof = true
	return nil
}
