// Package types defines the data structures shared across init-sources.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSkip is wrapped by every skip parsing error.
var ErrInvalidSkip = errors.New("invalid skip value")

// SourceKind identifies one of the two source root lists of a project.
type SourceKind int

const (
	// Compile selects the compile source roots.
	Compile SourceKind = iota
	// TestCompile selects the test compile source roots.
	TestCompile
)

// SourceKinds lists every kind in processing order.
var SourceKinds = []SourceKind{Compile, TestCompile}

func (k SourceKind) String() string {
	switch k {
	case Compile:
		return "COMPILE"
	case TestCompile:
		return "TEST_COMPILE"
	default:
		return fmt.Sprintf("SourceKind(%d)", int(k))
	}
}

// SkipFilter selects which source kinds a run leaves untouched.
// The zero value skips nothing.
type SkipFilter string

const (
	SkipNone        SkipFilter = ""
	SkipCompile     SkipFilter = "COMPILE"
	SkipTestCompile SkipFilter = "TEST_COMPILE"
	SkipBoth        SkipFilter = "BOTH"
)

// ParseSkipFilter parses a skip value. Matching ignores case and accepts
// '-' in place of '_'. An empty string yields SkipNone.
func ParseSkipFilter(s string) (SkipFilter, error) {
	switch f := SkipFilter(normalizeTag(s)); f {
	case SkipNone, SkipCompile, SkipTestCompile, SkipBoth:
		return f, nil
	default:
		return SkipNone, fmt.Errorf("%w %q (want COMPILE, TEST_COMPILE or BOTH)", ErrInvalidSkip, s)
	}
}

// Skips reports whether the filter excludes kind.
func (f SkipFilter) Skips(kind SourceKind) bool {
	switch f {
	case SkipBoth:
		return true
	case SkipCompile:
		return kind == Compile
	case SkipTestCompile:
		return kind == TestCompile
	default:
		return false
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *SkipFilter) UnmarshalText(text []byte) error {
	parsed, err := ParseSkipFilter(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

func normalizeTag(s string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_")
}
