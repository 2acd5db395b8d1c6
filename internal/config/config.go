// Package config resolves the init-sources plugin configuration from the
// build description, the environment and command line properties.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lengors/init-sources/internal/sourceroots"
	"github.com/lengors/init-sources/internal/types"
)

// Property names accepted by -D.
const (
	PropertySkip                   = "init-sources.skip"
	PropertyCompileSourceRoots     = "init-sources.compileSourceRoots"
	PropertyTestCompileSourceRoots = "init-sources.testCompileSourceRoots"
)

// Environment variables consulted after the build description.
const (
	EnvSkip                   = "INIT_SOURCES_SKIP"
	EnvCompileSourceRoots     = "INIT_SOURCES_COMPILE_SOURCE_ROOTS"
	EnvTestCompileSourceRoots = "INIT_SOURCES_TEST_COMPILE_SOURCE_ROOTS"
)

// DefaultEnvFile is read when present and no other file is named.
const DefaultEnvFile = ".env"

// Options controls how Resolve layers its sources.
type Options struct {
	// EnvFile is a dotenv file to read. A missing DefaultEnvFile is ignored;
	// any other missing file is an error.
	EnvFile string
	// EnvDir holds the DefaultEnvFile read when EnvFile is empty. It
	// defaults to the working directory.
	EnvDir string
	// Properties are "key=value" overrides, applied last.
	Properties []string
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Resolve layers base (the build description block, may be nil), the
// environment and opts.Properties into a new configuration. Later layers
// replace earlier ones key by key. base is not modified.
func Resolve(base *types.InitSourcesConfig, opts Options) (*types.InitSourcesConfig, error) {
	cfg := &types.InitSourcesConfig{}
	if base != nil {
		cfg.Skip = base.Skip
		cfg.CompileSourceRoots = slices.Clone(base.CompileSourceRoots)
		cfg.TestCompileSourceRoots = slices.Clone(base.TestCompileSourceRoots)
	}

	lookup, err := envLookup(opts)
	if err != nil {
		return nil, err
	}
	if err := applyEnv(cfg, lookup); err != nil {
		return nil, err
	}
	if err := applyProperties(cfg, opts.Properties); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envLookup(opts Options) (func(string) (string, bool), error) {
	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	file := strings.TrimSpace(opts.EnvFile)
	optional := file == ""
	if optional {
		file = filepath.Join(opts.EnvDir, DefaultEnvFile)
	}

	dotenv, err := godotenv.Read(file)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return lookup, nil
		}
		return nil, &sourceroots.ConfigurationError{Field: "env file " + file, Err: err}
	}

	// Process environment wins over the file, as with godotenv.Load.
	return func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}, nil
}

func applyEnv(cfg *types.InitSourcesConfig, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSkip); ok {
		skip, err := types.ParseSkipFilter(v)
		if err != nil {
			return &sourceroots.ConfigurationError{Field: EnvSkip, Err: err}
		}
		cfg.Skip = skip
	}
	if v, ok := lookup(EnvCompileSourceRoots); ok {
		cfg.CompileSourceRoots = splitList(v, filepath.SplitList)
	}
	if v, ok := lookup(EnvTestCompileSourceRoots); ok {
		cfg.TestCompileSourceRoots = splitList(v, filepath.SplitList)
	}
	return nil
}

func applyProperties(cfg *types.InitSourcesConfig, properties []string) error {
	for _, prop := range properties {
		key, value, found := strings.Cut(prop, "=")
		key = strings.TrimSpace(key)
		if !found {
			return &sourceroots.ConfigurationError{Field: key, Err: errors.New("property must have the form key=value")}
		}

		switch key {
		case PropertySkip:
			skip, err := types.ParseSkipFilter(value)
			if err != nil {
				return &sourceroots.ConfigurationError{Field: key, Err: err}
			}
			cfg.Skip = skip
		case PropertyCompileSourceRoots:
			cfg.CompileSourceRoots = splitList(value, splitComma)
		case PropertyTestCompileSourceRoots:
			cfg.TestCompileSourceRoots = splitList(value, splitComma)
		default:
			return &sourceroots.ConfigurationError{Field: key, Err: fmt.Errorf("unknown property %q", key)}
		}
	}
	return nil
}

func splitComma(s string) []string {
	return strings.Split(s, ",")
}

// splitList returns a non-nil list: an empty value configures no roots,
// which is different from leaving the option unset.
func splitList(value string, split func(string) []string) []string {
	roots := []string{}
	if strings.TrimSpace(value) == "" {
		return roots
	}
	for _, root := range split(value) {
		if root = strings.TrimSpace(root); root != "" {
			roots = append(roots, root)
		}
	}
	return roots
}
