// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/alecthomas/kong"

	"github.com/gogpu/pixwave"
	"github.com/gogpu/pixwave/pattern"
	"github.com/gogpu/pixwave/ripple"
)

// ErrInvalidConfig is wrapped by every configuration error.
var ErrInvalidConfig = errors.New("app: invalid configuration")

// Config holds the command line of the demo.
type Config struct {
	Speed int `arg:"" optional:"" default:"50" help:"Ripple speed in thousandths of a radian per frame (phase factor = -speed*0.001)."`
	Rate  int `arg:"" optional:"" default:"10" help:"Ripple rate in thousandths of a radian per row (ripple rate = rate*0.001)."`

	Pattern   string  `help:"Pattern painted into the image (${enum})." enum:"flag,checkerboard" default:"flag"`
	Cell      int     `help:"Checkerboard cell size in pixels." default:"40"`
	Blur      float64 `help:"Average filter radius applied to the image (0 disables)." default:"6"`
	Grayscale bool    `help:"Convert the image to gray."`
	Amplitude int     `help:"Ripple distance in pixels." default:"50"`

	Width       int `help:"Render surface width." default:"864"`
	Height      int `help:"Render surface height." default:"486"`
	ImageWidth  int `help:"Animated image width." default:"320"`
	ImageHeight int `help:"Animated image height." default:"240"`

	Delay  time.Duration `help:"Fixed delay between frames." default:"16ms"`
	Frames int           `help:"Stop after this many frames (0 runs until quit)." default:"0"`

	Labels   bool    `help:"Draw the speed and ripple rate labels." default:"true" negatable:""`
	FontSize float64 `help:"Label size in points." default:"32"`

	LogLevel string `help:"Log level (${enum})." enum:"debug,info,warn,error" default:"info"`
	LogFile  string `help:"Write logs to this file instead of discarding them." type:"path"`

	PatternKind pattern.Kind `kong:"-"`
}

// DefaultConfig returns the configuration used without arguments.
func DefaultConfig() Config {
	return Config{
		Speed:       50,
		Rate:        10,
		Pattern:     "flag",
		Cell:        pattern.DefaultCellSize,
		Blur:        6,
		Amplitude:   ripple.DefaultAmplitudeX,
		Width:       864,
		Height:      486,
		ImageWidth:  320,
		ImageHeight: 240,
		Delay:       16 * time.Millisecond,
		Labels:      true,
		FontSize:    32,
		LogLevel:    "info",
		PatternKind: pattern.KindFlag,
	}
}

// Validate is called by kong after parsing.
func (c *Config) Validate(*kong.Context) error {
	return c.Check()
}

// Check verifies that the configuration describes a drawable scene and
// resolves the pattern kind.
func (c *Config) Check() error {
	kind, err := pattern.ParseKind(c.Pattern)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	c.PatternKind = kind

	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: render size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.ImageWidth <= 0 || c.ImageHeight <= 0:
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, c.ImageWidth, c.ImageHeight)
	case kind == pattern.KindCheckerboard && c.Cell <= 0:
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.Cell)
	case c.Blur < 0:
		return fmt.Errorf("%w: blur radius %v", ErrInvalidConfig, c.Blur)
	case c.Delay < 0:
		return fmt.Errorf("%w: delay %v", ErrInvalidConfig, c.Delay)
	case c.Frames < 0:
		return fmt.Errorf("%w: frames %d", ErrInvalidConfig, c.Frames)
	case c.Labels && c.FontSize <= 0:
		return fmt.Errorf("%w: font size %v", ErrInvalidConfig, c.FontSize)
	}

	x1, y1 := c.imageOrigin()
	if !ripple.Fits(c.ImageWidth, c.ImageHeight, c.Width, c.Height, x1, y1, c.Amplitude) {
		return fmt.Errorf("%w: %dx%d image with a %dpx ripple does not fit a %dx%d surface",
			ErrInvalidConfig, c.ImageWidth, c.ImageHeight, c.Amplitude, c.Width, c.Height)
	}
	return nil
}

// Params returns the ripple parameters selected by the configuration.
func (c *Config) Params() ripple.Params {
	return ripple.ParamsFromArgs(c.Amplitude, c.Speed, c.Rate)
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// imageOrigin returns where the animated image sits in the render surface.
func (c *Config) imageOrigin() (x, y int) {
	return pixwave.CenterOffset(c.ImageWidth, c.ImageHeight, c.Width, c.Height)
}

// PositionalArgs prepares command line arguments for kong. Leading numeric
// arguments are the speed and rate positionals; when one of them is
// negative it would be read as a short flag, so the numbers are moved
// behind a "--" terminator.
func PositionalArgs(args []string) []string {
	n := 0
	negative := false
	for n < len(args) && n < 2 {
		v, err := strconv.Atoi(args[n])
		if err != nil {
			break
		}
		negative = negative || v < 0
		n++
	}
	if !negative {
		return args
	}

	nums, rest := args[:n], args[n:]
	out := make([]string, 0, len(args)+1)
	if i := slices.Index(rest, "--"); i >= 0 {
		out = append(out, rest[:i+1]...)
		out = append(out, nums...)
		return append(out, rest[i+1:]...)
	}
	out = append(out, rest...)
	out = append(out, "--")
	return append(out, nums...)
}
