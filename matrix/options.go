// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal) that applies them in order.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Derived matrices inherit the options of the matrix they came from.
//
// Notes:
//   - Layout selects the backend at construction (facade → Storage).
//   - validateNaNInf governs caller writes only: New/FromJSON/Set/Fill.
//     Results produced by operations are not re-validated.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLayout is the backend chosen when WithLayout is not given.
	DefaultLayout = LayoutFlat

	// DefaultValidateNaNInf toggles strict finite-value validation on caller writes.
	// Off by default: an in-bounds Set never fails unless the caller opts in.
	DefaultValidateNaNInf = false
)

const panicLayoutInvalid = "matrix: WithLayout: unknown layout"

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	layout         Layout // DefaultLayout
	validateNaNInf bool   // DefaultValidateNaNInf
}

// Layout reports the configured backend.
func (o Options) Layout() Layout { return o.layout }

// ValidateNaNInf reports whether caller writes reject NaN/±Inf.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithLayout selects the storage backend.
// Panics with a stable message for values outside Layouts (programmer error).
func WithLayout(l Layout) Option {
	if l > LayoutOptimized {
		panic(panicLayoutInvalid)
	}

	return func(o *Options) { o.layout = l }
}

// WithValidateNaNInf makes New/FromJSON/Set/Fill reject NaN and ±Inf with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation (default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves opts against the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters over defaults in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		layout:         DefaultLayout,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
