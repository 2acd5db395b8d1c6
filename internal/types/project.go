package types

type (
	// BuildDescription is the on-disk form of a project build file.
	BuildDescription struct {
		Name                   string             `yaml:"name,omitempty" json:"name,omitempty"`
		CompileSourceRoots     []string           `yaml:"compileSourceRoots" json:"compileSourceRoots"`
		TestCompileSourceRoots []string           `yaml:"testCompileSourceRoots" json:"testCompileSourceRoots"`
		InitSources            *InitSourcesConfig `yaml:"initSources,omitempty" json:"initSources,omitempty"`
	}

	// InitSourcesConfig is the plugin configuration block.
	// A nil list means the option was not configured.
	InitSourcesConfig struct {
		Skip                   SkipFilter `yaml:"skip,omitempty" json:"skip,omitempty"`
		CompileSourceRoots     []string   `yaml:"compileSourceRoots,omitempty" json:"compileSourceRoots,omitempty"`
		TestCompileSourceRoots []string   `yaml:"testCompileSourceRoots,omitempty" json:"testCompileSourceRoots,omitempty"`
	}

	// PathFilterConfig contains configuration for the path filter.
	PathFilterConfig struct {
		IgnoredPatterns []string `json:"ignoredPatterns"`
		AllowedNames    []string `json:"allowedNames"`
	}
)
