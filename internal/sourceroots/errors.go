package sourceroots

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lengors/init-sources/internal/types"
)

// ErrMissingProject is wrapped by the ConfigurationError returned when no
// host project was supplied.
var ErrMissingProject = errors.New("missing required host project reference")

// ConfigurationError reports a missing or invalid configuration input.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	var msg strings.Builder
	fmt.Fprint(&msg, "invalid configuration")
	if e.Field != "" {
		fmt.Fprintf(&msg, " of %s", e.Field)
	}
	if e.Err != nil {
		fmt.Fprint(&msg, ": ", e.Err)
	}
	return msg.String()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// PathResolutionError reports a configured source root that could not be
// canonicalized.
type PathResolutionError struct {
	Kind types.SourceKind
	Path string
	Err  error
}

func (e *PathResolutionError) Error() string {
	return fmt.Sprintf("couldn't obtain canonical path of %s source root %q: %v", e.Kind, e.Path, e.Err)
}

func (e *PathResolutionError) Unwrap() error {
	return e.Err
}
