package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/lengors/init-sources/internal/config"
	"github.com/lengors/init-sources/internal/log"
	"github.com/lengors/init-sources/internal/sourceroots"
	"github.com/lengors/init-sources/internal/types"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// toolError logs a failed tool call on stderr, which stays free of the
// stdio transport, and returns the error result.
func toolError(tool string, err error) (*mcp.CallToolResult, error) {
	log.Errorf("%s: %v", tool, err)
	return &mcp.CallToolResult{IsError: true}, err
}

func handleInitSources(ctx context.Context, req *mcp.CallToolRequest, input InitSourcesInput) (*mcp.CallToolResult, InitSourcesOutput, error) {
	buildFile := strings.TrimSpace(input.BuildFile)
	failed := InitSourcesOutput{BuildFile: buildFile}

	model, err := workspaceService.LoadProject(buildFile)
	if err != nil {
		res, err := toolError("init_sources", err)
		return res, failed, err
	}

	cfg, err := config.Resolve(model.Config, config.Options{EnvDir: workspaceService.Root()})
	if err != nil {
		res, err := toolError("init_sources", err)
		return res, failed, err
	}

	// Tool arguments override the build description and environment.
	if skip := strings.TrimSpace(input.Skip); skip != "" {
		cfg.Skip, err = types.ParseSkipFilter(skip)
		if err != nil {
			res, err := toolError("init_sources", &sourceroots.ConfigurationError{Field: "skip", Err: err})
			return res, failed, err
		}
	}
	if input.CompileSourceRoots != nil {
		cfg.CompileSourceRoots = input.CompileSourceRoots
	}
	if input.TestCompileSourceRoots != nil {
		cfg.TestCompileSourceRoots = input.TestCompileSourceRoots
	}

	if err := initialize(model, cfg); err != nil {
		res, err := toolError("init_sources", err)
		return res, failed, err
	}

	return nil, InitSourcesOutput{
		BuildFile:              buildFile,
		Skip:                   string(cfg.Skip),
		CompileSourceRoots:     nonNil(model.Roots(types.Compile)),
		TestCompileSourceRoots: nonNil(model.Roots(types.TestCompile)),
	}, nil
}

func handleCanonicalize(ctx context.Context, req *mcp.CallToolRequest, input CanonicalizeInput) (*mcp.CallToolResult, CanonicalizeOutput, error) {
	baseDir, err := workspaceService.ResolvePath(input.BaseDir)
	if err != nil {
		res, err := toolError("canonicalize", err)
		return res, CanonicalizeOutput{}, err
	}

	paths := make([]string, 0, len(input.Paths))
	for _, p := range input.Paths {
		canonical, err := sourceroots.Canonicalize(strings.TrimSpace(p), baseDir)
		if err != nil {
			res, err := toolError("canonicalize", fmt.Errorf("couldn't obtain canonical path of %q: %w", p, err))
			return res, CanonicalizeOutput{}, err
		}
		paths = append(paths, canonical)
	}

	return nil, CanonicalizeOutput{Paths: paths}, nil
}

func handleListProjects(ctx context.Context, req *mcp.CallToolRequest, input ListProjectsInput) (*mcp.CallToolResult, ListProjectsOutput, error) {
	projects, err := workspaceService.ListProjects()
	if err != nil {
		res, err := toolError("list_projects", err)
		return res, ListProjectsOutput{}, err
	}
	return nil, ListProjectsOutput{Projects: nonNil(projects)}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
