// Package main implements the init-sources command.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/lengors/init-sources/internal/config"
	"github.com/lengors/init-sources/internal/log"
	"github.com/lengors/init-sources/internal/project"
	"github.com/lengors/init-sources/internal/sourceroots"
	"github.com/lengors/init-sources/internal/types"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	defines []string
	envFile string
	output  string
	verbose bool
	quiet   bool
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "init-sources [build-file]",
		Short: "Redirect a project's source roots",
		Long: `init-sources replaces the compile and test compile source roots of a
build description with the canonical form of configured directories,
for example to compile generated code, without editing the build
description itself. The effective description is written to stdout.`,
		Example: `init-sources
init-sources api/init-sources.yaml -D init-sources.compileSourceRoots=target/generated
init-sources -D init-sources.skip=TEST_COMPILE -o effective.yaml`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Verbose = opts.verbose
			log.Quiet = opts.quiet
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, args, opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.defines, "define", "D", nil,
		"set a property, e.g. init-sources.skip=COMPILE (repeatable)")
	cmd.Flags().StringVar(&opts.envFile, "env-file", "",
		"read INIT_SOURCES_* variables from this file (default .env if present)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "",
		"write the effective build description to a file instead of stdout")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "print debug output")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "print errors only")

	cmd.AddCommand(newCanonicalizeCmd(), newServeCmd())
	return cmd
}

func runInit(cmd *cobra.Command, args []string, opts *rootOptions) error {
	buildFile := project.DefaultBuildFile
	if len(args) > 0 {
		buildFile = args[0]
	}

	model, err := project.Load(buildFile)
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(model.Config, config.Options{
		EnvFile:    opts.envFile,
		Properties: opts.defines,
	})
	if err != nil {
		return err
	}

	if err := initialize(model, cfg); err != nil {
		return err
	}

	out, err := model.Effective()
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(opts.output, out, 0o644); err != nil {
		return fmt.Errorf("failed to write effective build description: %w", err)
	}
	log.Infof("Wrote effective build description of %s to %s", buildFile, opts.output)
	return nil
}

// initialize runs the source root initializer against model, resolving
// relative roots against the build file's directory.
func initialize(model *project.Model, cfg *types.InitSourcesConfig) error {
	in := sourceroots.New(cfg, model)
	in.BaseDir = model.BaseDir
	return in.Run()
}

func newCanonicalizeCmd() *cobra.Command {
	var baseDir string
	cmd := &cobra.Command{
		Use:   "canonicalize PATH...",
		Short: "Print the canonical form of each path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range args {
				canonical, err := sourceroots.Canonicalize(p, baseDir)
				if err != nil {
					return fmt.Errorf("couldn't obtain canonical path of %q: %w", p, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), canonical)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&baseDir, "base-dir", "", "resolve relative paths against this directory")
	return cmd
}
