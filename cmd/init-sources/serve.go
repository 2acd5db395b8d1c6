package main

import (
	"fmt"
	"os"

	"github.com/lengors/init-sources/internal/pathfilter"
	"github.com/lengors/init-sources/internal/types"
	"github.com/lengors/init-sources/internal/workspace"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var workspaceService *workspace.Service

type serveOptions struct {
	ignored    []string
	buildFiles []string
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve [workspace]",
		Short: "Serve init-sources as MCP tools over stdio",
		Long: `serve runs a Model Context Protocol (MCP) server exposing the source
root initializer to MCP clients. Build descriptions are only read from
inside the workspace directory, which defaults to the current directory.
A .env file at the workspace root supplies INIT_SOURCES_* defaults.`,
		Example: `init-sources serve ~/projects/app
init-sources serve --ignore 'vendor/**' --build-file-name 'sources.yaml'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, args, opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.ignored, "ignore", nil,
		"skip workspace paths matching this glob (repeatable)")
	cmd.Flags().StringArrayVar(&opts.buildFiles, "build-file-name", nil,
		"also treat files with this name or glob as build descriptions (repeatable)")
	return cmd
}

// newWorkspace creates the workspace service for root with the filter
// additions of opts.
func newWorkspace(root string, opts *serveOptions) *workspace.Service {
	return workspace.New(root, pathfilter.New(&types.PathFilterConfig{
		IgnoredPatterns: opts.ignored,
		AllowedNames:    opts.buildFiles,
	}))
}

func runServer(cmd *cobra.Command, args []string, opts *serveOptions) error {
	var root string
	if len(args) > 0 {
		root = args[0]
	} else {
		var err error
		root, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	workspaceService = newWorkspace(root, opts)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "init-sources",
		Version: version,
	}, nil)

	registerTools(server)

	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
