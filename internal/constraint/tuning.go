// Package constraint computes the closest legal transform that keeps an
// element inside the printable region.
//
// Every search is a bisection between a known-legal and a requested value with
// a fixed iteration ceiling, so each call has a constant worst-case cost and
// can run on every pointer move. The safety margins shrink a converged result
// toward the known-legal side so that floating-point or sampling error cannot
// push a committed state across the boundary.
package constraint

import (
	"errors"
	"fmt"
)

// MaxCurve is the largest curvature magnitude a text element accepts.
const MaxCurve = 355

// Tuning holds the numeric knobs of the engine.
type Tuning struct {
	// Safety margins applied to converged bisection results.
	TranslateMargin float64 `yaml:"translate_margin"`
	RotateMargin    float64 `yaml:"rotate_margin"`
	CurveMargin     float64 `yaml:"curve_margin"`

	// Iteration ceilings.
	TranslateIterations int `yaml:"translate_iterations"`
	RotateIterations    int `yaml:"rotate_iterations"`
	CurveIterations     int `yaml:"curve_iterations"`

	// Convergence thresholds, in ratio, degrees and curve units.
	TranslateEpsilon float64 `yaml:"translate_epsilon"`
	RotateEpsilonDeg float64 `yaml:"rotate_epsilon_deg"`
	CurveEpsilon     float64 `yaml:"curve_epsilon"`

	// MinDisplacementPx is the smallest drag treated as a move.
	MinDisplacementPx float64 `yaml:"min_displacement_px"`
	// AxisAlignedDeg is the rotation below which the exact per-axis clamp is used.
	AxisAlignedDeg float64 `yaml:"axis_aligned_deg"`
	// MinSize is the floor for width and height in reference units, shared by
	// live resize and the boundary clamp.
	MinSize float64 `yaml:"min_size"`

	// CurveSampleStep is the Bézier parameter step used to sample curved text.
	CurveSampleStep float64 `yaml:"curve_sample_step"`
	// TextMarginFactor scales the responsive font size into the vertical glyph margin.
	TextMarginFactor float64 `yaml:"text_margin_factor"`
}

// DefaultTuning returns the stock engine settings.
func DefaultTuning() Tuning {
	return Tuning{
		TranslateMargin:     0.99,
		RotateMargin:        0.98,
		CurveMargin:         0.90,
		TranslateIterations: 25,
		RotateIterations:    25,
		CurveIterations:     20,
		TranslateEpsilon:    1e-4,
		RotateEpsilonDeg:    1,
		CurveEpsilon:        0.5,
		MinDisplacementPx:   0.1,
		AxisAlignedDeg:      0.5,
		MinSize:             10,
		CurveSampleStep:     0.05,
		TextMarginFactor:    0.6,
	}
}

// Validate reports the first out-of-range setting.
func (t Tuning) Validate() error {
	margins := []struct {
		name  string
		value float64
	}{
		{"translate_margin", t.TranslateMargin},
		{"rotate_margin", t.RotateMargin},
		{"curve_margin", t.CurveMargin},
	}
	for _, m := range margins {
		if m.value <= 0 || m.value > 1 {
			return fmt.Errorf("%s must be in (0,1]", m.name)
		}
	}
	if t.TranslateIterations <= 0 || t.RotateIterations <= 0 || t.CurveIterations <= 0 {
		return errors.New("iteration ceilings must be > 0")
	}
	if t.TranslateEpsilon <= 0 || t.RotateEpsilonDeg <= 0 || t.CurveEpsilon <= 0 {
		return errors.New("convergence thresholds must be > 0")
	}
	if t.MinDisplacementPx < 0 || t.AxisAlignedDeg < 0 {
		return errors.New("min_displacement_px and axis_aligned_deg must be >= 0")
	}
	if t.MinSize <= 0 {
		return errors.New("min_size must be > 0")
	}
	if t.CurveSampleStep <= 0 || t.CurveSampleStep > 1 {
		return errors.New("curve_sample_step must be in (0,1]")
	}
	if t.TextMarginFactor < 0 {
		return errors.New("text_margin_factor must be >= 0")
	}
	return nil
}
