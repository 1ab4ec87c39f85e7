// SPDX-License-Identifier: MIT

// Package matrix - storage capability interface and layout registry.
//
// Purpose:
//   - Define Storage: the contract every layout satisfies (shape, checked
//     At/Set, Fill, Clone, Layout).
//   - Keep the private unchecked accessors (get/put) used by operation kernels
//     after shape validation, so kernels are written once for all layouts.
//   - Provide allocation primitives: zero-filled (newStorage) and scratch
//     (newScratch), the latter never observable before it is fully written.
//
// AI-Hints:
//   - Custom Storage implementations work everywhere: they are adapted through
//     checkedRaw, which routes get/put to At/Set.
//   - Use ToLayout/convertStorage to move between layouts; logical (i, j)
//     positions are preserved, physical slot order is not.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Layout names a concrete in-memory representation.
type Layout uint8

const (
	// LayoutNested stores one []float64 per row.
	LayoutNested Layout = iota
	// LayoutFlat stores a single row-major []float64 of rows*cols elements.
	LayoutFlat
	// LayoutOptimized is LayoutFlat plus linear-pass kernels for bulk operations.
	LayoutOptimized
)

// Layout names as accepted by ParseLayout and printed by String.
const (
	layoutNameNested    = "nested"
	layoutNameFlat      = "flat"
	layoutNameOptimized = "optimized"
)

// Layouts lists every built-in layout in declaration order.
var Layouts = []Layout{LayoutNested, LayoutFlat, LayoutOptimized}

// String returns the canonical layout name.
func (l Layout) String() string {
	switch l {
	case LayoutNested:
		return layoutNameNested
	case LayoutFlat:
		return layoutNameFlat
	case LayoutOptimized:
		return layoutNameOptimized
	default:
		return fmt.Sprintf("layout(%d)", uint8(l))
	}
}

// ParseLayout maps a case-insensitive name to a Layout.
func ParseLayout(name string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case layoutNameNested:
		return LayoutNested, nil
	case layoutNameFlat:
		return LayoutFlat, nil
	case layoutNameOptimized:
		return LayoutOptimized, nil
	default:
		return 0, fmt.Errorf("ParseLayout(%q): %w", name, ErrUnknownLayout)
	}
}

// Storage is the capability every layout implements.
// At/Set bound-check via the indexing policy and return ErrOutOfRange instead
// of panicking. Set never writes when it returns an error.
type Storage interface {
	// Rows returns the number of rows. O(1).
	Rows() int
	// Cols returns the number of columns. O(1).
	Cols() int
	// At reads (i, j) or returns ErrOutOfRange. O(1).
	At(i, j int) (float64, error)
	// Set writes (i, j) or returns ErrOutOfRange. O(1).
	Set(i, j int, v float64) error
	// Fill overwrites every element with v. O(rows*cols).
	Fill(v float64)
	// Layout reports which representation backs this storage.
	Layout() Layout
	// Clone returns an independent deep copy of the same layout.
	Clone() Storage
}

// raw is the unchecked access used by kernels once shapes are validated.
type raw interface {
	Storage
	get(i, j int) float64
	put(i, j int, v float64)
}

// checkedRaw adapts a foreign Storage to raw by delegating to At/Set.
// Kernels only call it with validated coordinates, so errors cannot occur.
type checkedRaw struct{ Storage }

func (c checkedRaw) get(i, j int) float64 {
	v, _ := c.At(i, j)
	return v
}

func (c checkedRaw) put(i, j int, v float64) {
	_ = c.Set(i, j, v)
}

// rawOf returns unchecked accessors for s.
func rawOf(s Storage) raw {
	if r, ok := s.(raw); ok {
		return r
	}

	return checkedRaw{s}
}

// backendName is the tag used in indexer error messages.
func backendName(s Storage) string {
	switch s.(type) {
	case *NestedRows:
		return backendNested
	case *FlatBuffer:
		return backendFlat
	case *OptimizedFlatBuffer:
		return backendOptimized
	default:
		return "Storage"
	}
}

// scratchPoison, when true, makes newScratch pre-fill buffers with NaN so tests
// can prove that producing operations overwrite every cell. Toggled only from
// export_test.go.
var scratchPoison = false

// newStorage allocates a zero-filled rows×cols storage of the given layout.
// Unknown layouts fall back to LayoutFlat.
// Complexity: O(rows*cols).
func newStorage(layout Layout, rows, cols int) raw {
	switch layout {
	case LayoutNested:
		return newNestedRows(rows, cols)
	case LayoutOptimized:
		return newOptimizedFlatBuffer(rows, cols)
	default:
		return newFlatBuffer(rows, cols)
	}
}

// newScratch allocates a rows×cols storage whose contents are unspecified.
// It is only ever handed to a producing kernel that writes every cell before
// the result escapes. Shapes are trusted (callers computed them).
func newScratch(layout Layout, rows, cols int) raw {
	s := newStorage(layout, rows, cols)
	if scratchPoison {
		s.Fill(math.NaN())
	}

	return s
}

// convertStorage copies src into a fresh storage of the target layout,
// preserving logical (i, j) positions.
// Complexity: O(rows*cols).
func convertStorage(src Storage, layout Layout) raw {
	r, c := src.Rows(), src.Cols()
	dst := newScratch(layout, r, c)
	in := rawOf(src)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			dst.put(i, j, in.get(i, j))
		}
	}

	return dst
}
