// Package sourceroots replaces a project's compile and test compile source
// roots with canonical forms of configured directories.
package sourceroots

import (
	"github.com/lengors/init-sources/internal/log"
	"github.com/lengors/init-sources/internal/types"
)

// Roots is a mutable, ordered list of source root paths owned by a project.
type Roots interface {
	Clear()
	Add(roots ...string)
}

// Project is the host project whose source roots are replaced.
type Project interface {
	CompileSourceRoots() Roots
	TestCompileSourceRoots() Roots
}

// Initializer replaces the source roots of Project with the canonical
// forms of the configured roots. Initializers share no state, so distinct
// values may run concurrently on distinct projects.
type Initializer struct {
	// Skip excludes one or both kinds from the run.
	Skip types.SkipFilter
	// CompileSourceRoots are the configured compile roots. Nil clears the
	// project's list.
	CompileSourceRoots []string
	// TestCompileSourceRoots are the configured test compile roots.
	TestCompileSourceRoots []string
	// BaseDir anchors relative roots. Empty means the working directory.
	BaseDir string
	// Project is the host project. It is only required when a kind is
	// processed.
	Project Project
	// Debugf receives one trace line per processed kind. Defaults to
	// log.Debugf.
	Debugf func(format string, args ...any)
}

// New returns an Initializer for cfg. A nil cfg configures nothing.
func New(cfg *types.InitSourcesConfig, project Project) *Initializer {
	in := &Initializer{Project: project}
	if cfg != nil {
		in.Skip = cfg.Skip
		in.CompileSourceRoots = cfg.CompileSourceRoots
		in.TestCompileSourceRoots = cfg.TestCompileSourceRoots
	}
	return in
}

// Run replaces the source roots of every kind not excluded by Skip.
// Compile roots are processed before test compile roots; an error stops
// the run without undoing a kind already replaced.
func (i *Initializer) Run() error {
	if i.Skip == types.SkipBoth {
		return nil
	}

	project, err := i.HostProject()
	if err != nil {
		return err
	}

	for _, kind := range types.SourceKinds {
		if i.Skip.Skips(kind) {
			continue
		}
		if err := i.replace(kind, project); err != nil {
			return err
		}
	}
	return nil
}

func (i *Initializer) replace(kind types.SourceKind, project Project) error {
	canonical, err := i.CanonicalSourceRoots(kind)
	if err != nil {
		return err
	}

	var roots Roots
	switch kind {
	case types.Compile:
		roots = project.CompileSourceRoots()
	case types.TestCompile:
		roots = project.TestCompileSourceRoots()
	}

	i.debugf("Setting source paths of {type=%s} to: %v", kind, canonical)

	roots.Clear()
	roots.Add(canonical...)
	return nil
}

// CanonicalSourceRoots returns the canonical forms of the roots configured
// for kind, in configured order. The result is never nil. The first path
// that fails to resolve aborts with a *PathResolutionError.
func (i *Initializer) CanonicalSourceRoots(kind types.SourceKind) ([]string, error) {
	configured := i.SourceRoots(kind)
	canonical := make([]string, 0, len(configured))
	for _, root := range configured {
		resolved, err := Canonicalize(root, i.BaseDir)
		if err != nil {
			return nil, &PathResolutionError{Kind: kind, Path: root, Err: err}
		}
		canonical = append(canonical, resolved)
	}
	return canonical, nil
}

// SourceRoots returns the roots configured for kind, or an empty slice.
func (i *Initializer) SourceRoots(kind types.SourceKind) []string {
	var roots []string
	switch kind {
	case types.Compile:
		roots = i.CompileSourceRoots
	case types.TestCompile:
		roots = i.TestCompileSourceRoots
	}
	if roots == nil {
		return []string{}
	}
	return roots
}

// HostProject returns the configured project or a *ConfigurationError.
func (i *Initializer) HostProject() (Project, error) {
	if i.Project == nil {
		return nil, &ConfigurationError{Field: "project", Err: ErrMissingProject}
	}
	return i.Project, nil
}

func (i *Initializer) debugf(format string, args ...any) {
	if i.Debugf != nil {
		i.Debugf(format, args...)
		return
	}
	log.Debugf(format, args...)
}
