package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Version of imgnorm, overridden by -ldflags at release time.
var Version = "0.1.0"

const (
	envPrefix = "IMGNORM"

	DefaultTargetHeight    = 400
	DefaultCanonicalFormat = "jpg"
	DefaultJPEGQuality     = 90
	DefaultInterpolation   = "lanczos3"
	DefaultBackground      = "#ffffff"
)

// errors
var (
	ErrTargetHeight    = errors.New("target_height must be a positive integer")
	ErrCanonicalFormat = errors.New("canonical_format must be jpg")
	ErrJPEGQuality     = errors.New("jpeg_quality must be between 1 and 100")
	ErrBackground      = errors.New("background must be a #rrggbb colour")
)

// Settings is the policy and codec options of a single run, it must not
// change once a run started.
type Settings struct {
	TargetHeight    int    `yaml:"target_height" envconfig:"TARGET_HEIGHT"`
	CanonicalFormat string `yaml:"canonical_format" envconfig:"CANONICAL_FORMAT"`

	JPEGQuality   int    `yaml:"jpeg_quality" envconfig:"JPEG_QUALITY"`
	Interpolation string `yaml:"interpolation" envconfig:"INTERPOLATION"`
	KeepOriginal  bool   `yaml:"keep_original" envconfig:"KEEP_ORIGINAL"`
	Background    string `yaml:"background" envconfig:"BACKGROUND"`
}

// Default returns settings with all defaults applied
func Default() Settings {
	return Settings{
		TargetHeight:    DefaultTargetHeight,
		CanonicalFormat: DefaultCanonicalFormat,
		JPEGQuality:     DefaultJPEGQuality,
		Interpolation:   DefaultInterpolation,
		KeepOriginal:    true,
		Background:      DefaultBackground,
	}
}

// Load builds settings from defaults, then the yaml file (if any), then
// IMGNORM_* environment variables. An empty filename falls back to
// IMGNORM_CONFIG.
func Load(filename string) (Settings, error) {
	s := Default()
	if filename == "" {
		filename = os.Getenv(envPrefix + "_CONFIG")
	}
	if filename != "" {
		if err := s.loadFile(filename); err != nil {
			return s, err
		}
	}
	if err := envconfig.Process(envPrefix, &s); err != nil {
		return s, fmt.Errorf("read env: %w", err)
	}
	s.CanonicalFormat = strings.ToLower(strings.TrimSpace(s.CanonicalFormat))
	return s, nil
}

func (s *Settings) loadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read config %s: %w", filename, err)
	}
	if err = yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parse config %s: %w", filename, err)
	}
	return nil
}

// Validate checks every option, interps are the known interpolation names.
func (s Settings) Validate(interps []string) error {
	if s.TargetHeight < 1 {
		return ErrTargetHeight
	}
	switch s.CanonicalFormat {
	case "jpg", "jpeg":
	default:
		return ErrCanonicalFormat
	}
	if s.JPEGQuality < 1 || s.JPEGQuality > 100 {
		return ErrJPEGQuality
	}
	if interps != nil && !slices.Contains(interps, s.Interpolation) {
		return fmt.Errorf("unknown interpolation %q, want one of: %s",
			s.Interpolation, strings.Join(interps, ", "))
	}
	if _, err := ParseColor(s.Background); err != nil {
		return err
	}
	return nil
}

// BackgroundColor returns the parsed flatten colour, white when malformed.
func (s Settings) BackgroundColor() color.Color {
	c, err := ParseColor(s.Background)
	if err != nil {
		return color.White
	}
	return c
}

// ParseColor parses "#rrggbb" or "rrggbb" into an opaque colour.
func ParseColor(v string) (color.NRGBA, error) {
	v = strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(v) != 6 {
		return color.NRGBA{}, ErrBackground
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return color.NRGBA{}, ErrBackground
	}
	return color.NRGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, nil
}

// InDevelop reports whether IMGNORM_ENV selects the development mode.
func InDevelop() bool {
	switch strings.ToLower(os.Getenv(envPrefix + "_ENV")) {
	case "dev", "devel", "develop", "development":
		return true
	}
	return false
}
