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

package predictor

// MED predicts an 8-bit greyscale pixel from its already-decoded
// causal neighbours using the JPEG-LS median edge detector.
type MED struct {
	width, height int
	pixels        []int // raster-order reconstructed/source buffer, H*W
}

// NewMED creates a MED predictor over a width x height raster. pixels
// is the caller-owned backing buffer: the encoder pre-fills it with
// source samples, the decoder fills it in as it reconstructs.
func NewMED(width, height int, pixels []int) *MED {
	return &MED{width: width, height: height, pixels: pixels}
}

// at returns the pixel at (r, c), or 0 if out of bounds.
func (this *MED) at(r, c int) int {
	if r < 0 || c < 0 || r >= this.height || c >= this.width {
		return 0
	}

	return this.pixels[r*this.width+c]
}

// Predict returns the MED prediction for the pixel at (r, c) from its
// left (A), above (B) and above-left (C) neighbours.
func (this *MED) Predict(r, c int) int {
	a := this.at(r, c-1)
	b := this.at(r-1, c)
	cc := this.at(r-1, c-1)

	hi := a
	lo := a

	if b > hi {
		hi = b
	}

	if b < lo {
		lo = b
	}

	switch {
	case cc >= hi:
		return lo
	case cc <= lo:
		return hi
	default:
		return a + b - cc
	}
}

// Set stores the reconstructed or source pixel value at (r, c).
func (this *MED) Set(r, c, value int) {
	this.pixels[r*this.width+c] = value
}

// Get returns the value stored at (r, c).
func (this *MED) Get(r, c int) int {
	return this.pixels[r*this.width+c]
}
