package project

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/lengors/init-sources/internal/sourceroots"
	"github.com/lengors/init-sources/internal/types"
)

const sampleBuild = `name: demo
compileSourceRoots:
  - src/main/go
testCompileSourceRoots:
  - src/test/go
initSources:
  skip: test-compile
  compileSourceRoots:
    - target/generated
`

func TestParse(t *testing.T) {
	m, err := Parse(strings.NewReader(sampleBuild), "/work/demo")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if m.Name != "demo" {
		t.Errorf("Name = %q, want %q", m.Name, "demo")
	}
	if m.BaseDir != "/work/demo" {
		t.Errorf("BaseDir = %q, want %q", m.BaseDir, "/work/demo")
	}
	if got := m.Roots(types.Compile); !reflect.DeepEqual(got, []string{"src/main/go"}) {
		t.Errorf("compile roots = %v", got)
	}
	if got := m.Roots(types.TestCompile); !reflect.DeepEqual(got, []string{"src/test/go"}) {
		t.Errorf("test roots = %v", got)
	}
	if m.Config == nil {
		t.Fatal("Config = nil, want plugin block")
	}
	if m.Config.Skip != types.SkipTestCompile {
		t.Errorf("Config.Skip = %q, want %q", m.Config.Skip, types.SkipTestCompile)
	}
	if !reflect.DeepEqual(m.Config.CompileSourceRoots, []string{"target/generated"}) {
		t.Errorf("Config.CompileSourceRoots = %v", m.Config.CompileSourceRoots)
	}
	if m.Config.TestCompileSourceRoots != nil {
		t.Errorf("Config.TestCompileSourceRoots = %v, want nil", m.Config.TestCompileSourceRoots)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		configError bool
	}{
		{"invalid skip", "initSources:\n  skip: everything\n", true},
		{"unknown field", "sourceRoots: [a]\n", false},
		{"malformed yaml", "compileSourceRoots: [a\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), ".")
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			var cfgErr *sourceroots.ConfigurationError
			if got := errors.As(err, &cfgErr); got != tt.configError {
				t.Fatalf("Parse() error = %v, ConfigurationError = %v, want %v", err, got, tt.configError)
			}
			if tt.configError {
				if cfgErr.Field != "initSources.skip" {
					t.Errorf("Field = %q, want initSources.skip", cfgErr.Field)
				}
				if !errors.Is(err, types.ErrInvalidSkip) {
					t.Errorf("error should wrap ErrInvalidSkip: %v", err)
				}
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	m, err := Parse(strings.NewReader(""), ".")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if m.Config != nil {
		t.Errorf("Config = %+v, want nil", m.Config)
	}
	if len(m.Roots(types.Compile)) != 0 {
		t.Errorf("compile roots = %v, want empty", m.Roots(types.Compile))
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, DefaultBuildFile)
	if err := os.WriteFile(path, []byte(sampleBuild), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	wantBase, _ := filepath.Abs(tmpDir)
	if m.BaseDir != wantBase {
		t.Errorf("BaseDir = %q, want %q", m.BaseDir, wantBase)
	}

	if _, err := Load(filepath.Join(tmpDir, "missing.yaml")); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Load(missing) error = %v, want not found", err)
	}
}

func TestModel_ReplacedByInitializer(t *testing.T) {
	tmpDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	m, err := Parse(strings.NewReader(sampleBuild), tmpDir)
	if err != nil {
		t.Fatal(err)
	}

	in := sourceroots.New(m.Config, m)
	in.BaseDir = m.BaseDir
	in.Debugf = func(string, ...any) {}
	if err := in.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := []string{filepath.Join(tmpDir, "target", "generated")}
	if got := m.Roots(types.Compile); !reflect.DeepEqual(got, want) {
		t.Errorf("compile roots = %v, want %v", got, want)
	}
	if got := m.Roots(types.TestCompile); !reflect.DeepEqual(got, []string{"src/test/go"}) {
		t.Errorf("test roots = %v, want untouched", got)
	}
}

func TestModel_Effective(t *testing.T) {
	m := New("demo", ".")
	m.CompileSourceRoots().Add("/abs/gen")

	out, err := m.Effective()
	if err != nil {
		t.Fatalf("Effective() error: %v", err)
	}

	want := "name: demo\ncompileSourceRoots:\n  - /abs/gen\ntestCompileSourceRoots: []\n"
	if string(out) != want {
		t.Errorf("Effective() = %q, want %q", out, want)
	}
}

func TestRoots_ClearAndAdd(t *testing.T) {
	var r Roots
	r.Add("a", "b")
	values := r.Values()
	r.Clear()
	r.Add("c")

	if !reflect.DeepEqual(values, []string{"a", "b"}) {
		t.Errorf("earlier Values() changed to %v", values)
	}
	if got := r.Values(); !reflect.DeepEqual(got, []string{"c"}) {
		t.Errorf("Values() = %v, want [c]", got)
	}
}
