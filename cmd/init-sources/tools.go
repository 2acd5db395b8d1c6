package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// InitSourcesInput contains parameters for initializing a project's source roots.
	InitSourcesInput struct {
		BuildFile              string   `json:"buildFile,omitempty" jsonschema:"Build description relative to the workspace root (default: init-sources.yaml)"`
		Skip                   string   `json:"skip,omitempty" jsonschema:"Source kinds to leave untouched: COMPILE, TEST_COMPILE or BOTH (default: configured value)"`
		CompileSourceRoots     []string `json:"compileSourceRoots,omitempty" jsonschema:"Replacement compile source roots (default: configured value)"`
		TestCompileSourceRoots []string `json:"testCompileSourceRoots,omitempty" jsonschema:"Replacement test compile source roots (default: configured value)"`
	}

	// InitSourcesOutput contains the effective source roots after initialization.
	InitSourcesOutput struct {
		BuildFile              string   `json:"buildFile"`
		Skip                   string   `json:"skip,omitempty"`
		CompileSourceRoots     []string `json:"compileSourceRoots"`
		TestCompileSourceRoots []string `json:"testCompileSourceRoots"`
	}

	// CanonicalizeInput contains paths to canonicalize.
	CanonicalizeInput struct {
		Paths   []string `json:"paths" jsonschema:"Paths to canonicalize"`
		BaseDir string   `json:"baseDir,omitempty" jsonschema:"Directory relative paths resolve against, relative to the workspace root (default: workspace root)"`
	}

	// CanonicalizeOutput contains canonical paths in input order.
	CanonicalizeOutput struct {
		Paths []string `json:"paths"`
	}

	// ListProjectsInput contains parameters for listing build descriptions.
	ListProjectsInput struct{}

	// ListProjectsOutput contains the build descriptions found in the workspace.
	ListProjectsOutput struct {
		Projects []string `json:"projects"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "init_sources",
		Description: "Replace the compile and test compile source roots of a build description with canonical paths of the configured directories. Returns the effective roots; the build file is not modified.",
	}, handleInitSources)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "canonicalize",
		Description: "Resolve paths to their absolute, symlink-resolved form.",
	}, handleCanonicalize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_projects",
		Description: "List the build descriptions in the workspace, skipping .git, node_modules and target directories.",
	}, handleListProjects)
}
