// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pattern paints flat test patterns used to seed the demo image.
package pattern

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/pixwave"
)

// ErrUnknownKind is returned by ParseKind for unrecognized names.
var ErrUnknownKind = errors.New("pattern: unknown kind")

// Kind selects a pattern.
type Kind int

const (
	// KindFlag is a tricolor flag of three vertical bands.
	KindFlag Kind = iota
	// KindCheckerboard alternates two colors in square cells.
	KindCheckerboard
)

// String returns the name accepted by ParseKind.
func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindCheckerboard:
		return "checkerboard"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses a pattern name, ignoring case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flag":
		return KindFlag, nil
	case "checkerboard", "checker":
		return KindCheckerboard, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Paint draws the pattern of the given kind into pm. cellSize is used by
// the checkerboard only.
func Paint(kind Kind, pm *pixwave.Pixmap, cellSize int) {
	switch kind {
	case KindCheckerboard:
		PaintCheckerboard(pm, cellSize)
	default:
		PaintFlag(pm)
	}
}
