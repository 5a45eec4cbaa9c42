package config

import (
	"fmt"
)

// Format describes varieties of diagnostic rendering.
type Format int

const (
	FormatInvalid Format = iota

	// FormatPretty renders human-oriented colored output.
	FormatPretty

	// FormatJSON renders a machine-readable issue report.
	FormatJSON

	// FormatShort renders one stable line per finding.
	FormatShort
)

var formatValueMap = map[Format]string{
	FormatPretty: "pretty",
	FormatJSON:   "json",
	FormatShort:  "short",
}

func (f Format) String() string {
	v, ok := formatValueMap[f]
	if !ok {
		return fmt.Sprintf("invalid(%d)", f)
	}

	return v
}

// UnmarshalText for setting values with configs, CLI, etc.
func (f *Format) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range formatValueMap {
		if v == text {
			*f = k
			return nil
		}
	}

	return fmt.Errorf("unknown output format %q", text)
}

func (f Format) MarshalText() ([]byte, error) {
	v, ok := formatValueMap[f]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid output format %d", f)
	}

	return []byte(v), nil
}

// PathMode describes how file paths are shown in findings.
type PathMode int

const (
	PathModeInvalid PathMode = iota

	// PathModeAuto shows paths relative to the working directory when
	// possible, absolute otherwise.
	PathModeAuto

	PathModeRelative
	PathModeAbsolute
)

var pathModeValueMap = map[PathMode]string{
	PathModeAuto:     "auto",
	PathModeRelative: "relative",
	PathModeAbsolute: "absolute",
}

func (p PathMode) String() string {
	v, ok := pathModeValueMap[p]
	if !ok {
		return fmt.Sprintf("invalid(%d)", p)
	}

	return v
}

func (p *PathMode) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range pathModeValueMap {
		if v == text {
			*p = k
			return nil
		}
	}

	return fmt.Errorf("unknown path mode %q", text)
}

func (p PathMode) MarshalText() ([]byte, error) {
	v, ok := pathModeValueMap[p]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid path mode %d", p)
	}

	return []byte(v), nil
}
