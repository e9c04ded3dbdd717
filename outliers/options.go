// SPDX-License-Identifier: MIT

// Package outliers: functional configuration for Classify and Filter.
//
// Defaults reproduce the classic Tukey fences (1.5 and 3 times the IQR) with
// no input validation, so a zero-option call is the reference behavior.
// WithX setters panic on nonsensical values; data problems are reported as
// errors, never panics.
package outliers

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultInnerK is the IQR multiplier of the inner (minor) fences.
	DefaultInnerK = 1.5

	// DefaultOuterK is the IQR multiplier of the outer (major) fences.
	DefaultOuterK = 3.0

	// DefaultValidateNaNInf toggles rejection of NaN/±Inf input values.
	// false ⇒ NaN never satisfies a strict fence test and is dropped from both
	// views; ±Inf is dropped unless a fence itself is infinite.
	DefaultValidateNaNInf = false
)

// Option configures Classify and Filter.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; resolve with gatherOptions.
type Options struct {
	innerK         float64 // >= 0; DefaultInnerK
	outerK         float64 // >= 0; DefaultOuterK
	validateNaNInf bool    // DefaultValidateNaNInf
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		innerK:         DefaultInnerK,
		outerK:         DefaultOuterK,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies opts over the defaults, in order; later setters win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithInnerK sets the inner-fence multiplier.
// Panics if k is NaN, ±Inf or negative.
func WithInnerK(k float64) Option {
	if !validK(k) {
		panic(panicInnerKInvalid)
	}

	return func(o *Options) { o.innerK = k }
}

// WithOuterK sets the outer-fence multiplier.
// Panics if k is NaN, ±Inf or negative.
func WithOuterK(k float64) Option {
	if !validK(k) {
		panic(panicOuterKInvalid)
	}

	return func(o *Options) { o.outerK = k }
}

// WithValidateNaNInf makes Classify return ErrNaNInf on NaN/±Inf input.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf restores the default lenient handling.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// InnerK reports the configured inner multiplier.
func (o Options) InnerK() float64 { return o.innerK }

// OuterK reports the configured outer multiplier.
func (o Options) OuterK() float64 { return o.outerK }

// ValidateNaNInf reports whether non-finite input is rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

func validK(k float64) bool {
	return !math.IsNaN(k) && !math.IsInf(k, 0) && k >= 0
}
