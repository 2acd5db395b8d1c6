// Package project implements the host project model: a build description
// loaded from YAML whose source root lists can be replaced in place.
package project

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/lengors/init-sources/internal/sourceroots"
	"github.com/lengors/init-sources/internal/types"
	"gopkg.in/yaml.v3"
)

// DefaultBuildFile is the build description looked up when none is given.
const DefaultBuildFile = "init-sources.yaml"

// Roots is an ordered list of source root paths.
type Roots struct {
	values []string
}

// Clear removes every root.
func (r *Roots) Clear() {
	r.values = r.values[:0]
}

// Add appends roots in order.
func (r *Roots) Add(roots ...string) {
	r.values = append(r.values, roots...)
}

// Values returns a copy of the roots.
func (r *Roots) Values() []string {
	return slices.Clone(r.values)
}

// Model is a loaded build description.
type Model struct {
	Name    string
	BaseDir string
	// Config is the plugin block of the description, nil when absent.
	Config *types.InitSourcesConfig

	compile Roots
	test    Roots
}

var _ sourceroots.Project = (*Model)(nil)

// New returns an empty model rooted at baseDir.
func New(name, baseDir string) *Model {
	return &Model{Name: name, BaseDir: baseDir}
}

// Load reads the build description at path.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("build file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to open build file: %s - %w", path, err)
	}
	defer f.Close()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(f, filepath.Dir(absPath))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a build description. Relative paths in its plugin block
// resolve against baseDir.
func Parse(r io.Reader, baseDir string) (*Model, error) {
	var desc types.BuildDescription
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&desc); err != nil && !errors.Is(err, io.EOF) {
		if errors.Is(err, types.ErrInvalidSkip) {
			return nil, &sourceroots.ConfigurationError{Field: "initSources.skip", Err: err}
		}
		return nil, fmt.Errorf("failed to parse build description: %w", err)
	}

	m := New(desc.Name, baseDir)
	m.Config = desc.InitSources
	m.compile.Add(desc.CompileSourceRoots...)
	m.test.Add(desc.TestCompileSourceRoots...)
	return m, nil
}

// CompileSourceRoots implements sourceroots.Project.
func (m *Model) CompileSourceRoots() sourceroots.Roots {
	return &m.compile
}

// TestCompileSourceRoots implements sourceroots.Project.
func (m *Model) TestCompileSourceRoots() sourceroots.Roots {
	return &m.test
}

// Roots returns the current roots of kind.
func (m *Model) Roots(kind types.SourceKind) []string {
	if kind == types.TestCompile {
		return m.test.Values()
	}
	return m.compile.Values()
}

// Description returns the model as a build description. The plugin block
// is omitted since the effective roots already reflect it.
func (m *Model) Description() types.BuildDescription {
	return types.BuildDescription{
		Name:                   m.Name,
		CompileSourceRoots:     nonNil(m.compile.Values()),
		TestCompileSourceRoots: nonNil(m.test.Values()),
	}
}

// Effective renders the model's current state as YAML.
func (m *Model) Effective() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m.Description()); err != nil {
		return nil, fmt.Errorf("failed to encode effective build description: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
