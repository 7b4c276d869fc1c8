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

// Audio is a per-channel two-tap linear predictor: mono uses a
// first-order same-channel predictor, stereo additionally predicts the
// right channel from the current left sample (cross-channel). State
// (the previous left sample) persists across blocks within one codec
// session.
type Audio struct {
	channels int
	prevL    int
}

// NewAudio creates an Audio predictor for the given channel count (1 or
// 2). Channel validation is the caller's responsibility (the audio
// codec FSM rejects unsupported counts before constructing this).
func NewAudio(channels int) *Audio {
	return &Audio{channels: channels}
}

// PredictMono returns the residual for a mono sample and advances the
// predictor state.
func (this *Audio) PredictMono(x int) int {
	e := x - this.prevL
	this.prevL = x
	return e
}

// PredictStereo returns the (left, right) residuals for one stereo
// frame and advances the predictor state. The right residual is
// computed against the current left sample, not the previous right
// sample.
func (this *Audio) PredictStereo(l, r int) (eL, eR int) {
	eL = l - this.prevL
	eR = r - l
	this.prevL = l
	return eL, eR
}

// ReconstructMono inverts PredictMono given a decoded residual.
func (this *Audio) ReconstructMono(e int) int {
	x := e + this.prevL
	this.prevL = x
	return x
}

// ReconstructStereo inverts PredictStereo given decoded (left, right)
// residuals.
func (this *Audio) ReconstructStereo(eL, eR int) (l, r int) {
	l = eL + this.prevL
	r = eR + l
	this.prevL = l
	return l, r
}
