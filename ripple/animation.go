// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ripple

import (
	"log/slog"
	"math"

	"github.com/gogpu/pixwave"
)

// Step is the increment applied by the speed and rate controls.
const Step = 0.001

// Defaults of the demo.
const (
	DefaultAmplitudeX  = 50
	DefaultPhaseFactor = -0.05
	DefaultRippleRate  = 0.01
)

// Params describes a ripple.
type Params struct {
	// AmplitudeX is the ripple distance in pixels.
	AmplitudeX int

	// PhaseFactor is the phase advance per tick. Negative values move the
	// wave downwards.
	PhaseFactor float64

	// RippleRate is the spatial frequency along y, in radians per row.
	RippleRate float64
}

// DefaultParams returns the parameters of the demo.
func DefaultParams() Params {
	return Params{
		AmplitudeX:  DefaultAmplitudeX,
		PhaseFactor: DefaultPhaseFactor,
		RippleRate:  DefaultRippleRate,
	}
}

// ParamsFromArgs converts the integer speed and rate controls of the
// command line (thousandths) to parameters:
// PhaseFactor = -speed*0.001, RippleRate = rate*0.001.
func ParamsFromArgs(amplitudeX, speed, rate int) Params {
	return Params{
		AmplitudeX:  amplitudeX,
		PhaseFactor: -float64(speed) * Step,
		RippleRate:  float64(rate) * Step,
	}
}

// Phase returns the phase at the given tick.
func (p Params) Phase(tick int) float64 {
	return float64(tick) * p.PhaseFactor
}

// Animation advances a ripple one tick per frame.
//
// Animation is NOT safe for concurrent use.
type Animation struct {
	params Params
	tick   int
}

// NewAnimation starts an animation at tick 0.
func NewAnimation(p Params) *Animation {
	return &Animation{params: p}
}

// Params returns the current parameters.
func (a *Animation) Params() Params {
	return a.params
}

// Tick returns the number of frames rendered so far.
func (a *Animation) Tick() int {
	return a.tick
}

// Render blits src onto dst at (x1, y1) with the phase of the current
// tick, then advances the tick.
func (a *Animation) Render(src, dst *pixwave.Pixmap, x1, y1 int) {
	Blit(src, dst, x1, y1, a.params.AmplitudeX, a.params.Phase(a.tick), a.params.RippleRate)
	a.tick++
}

// SpeedUp makes the wave move faster.
func (a *Animation) SpeedUp() {
	a.params.PhaseFactor -= Step
	a.logChange()
}

// SlowDown makes the wave move slower, eventually reversing it.
func (a *Animation) SlowDown() {
	a.params.PhaseFactor += Step
	a.logChange()
}

// DecreaseRate lowers the number of ripples along the image.
func (a *Animation) DecreaseRate() {
	a.params.RippleRate -= Step
	a.logChange()
}

// IncreaseRate raises the number of ripples along the image.
func (a *Animation) IncreaseRate() {
	a.params.RippleRate += Step
	a.logChange()
}

// Speed returns the displayed speed value, -PhaseFactor in thousandths.
// The value is rounded to the nearest integer, not truncated toward zero,
// so the readout returns to its start after opposite key presses despite
// the float error accumulated from Step.
func (a *Animation) Speed() int {
	return thousandths(-a.params.PhaseFactor)
}

// Rate returns the displayed ripple rate, RippleRate in thousandths,
// rounded like Speed.
func (a *Animation) Rate() int {
	return thousandths(a.params.RippleRate)
}

func (a *Animation) logChange() {
	pixwave.Logger().Debug("ripple: params changed",
		slog.Float64("phase_factor", a.params.PhaseFactor),
		slog.Float64("ripple_rate", a.params.RippleRate))
}

// thousandths returns v*1000 rounded to the nearest integer.
func thousandths(v float64) int {
	return int(math.Round(v * 1000))
}
