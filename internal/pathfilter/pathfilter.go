// Package pathfilter decides which workspace files are build descriptions.
package pathfilter

import (
	"path"
	"regexp"
	"strings"

	"github.com/lengors/init-sources/internal/types"
)

// PathFilter matches build description files while skipping tool and
// output directories.
type PathFilter struct {
	ignoredPatterns []string
	allowedNames    []string
}

// New creates a new PathFilter with the given configuration.
func New(config *types.PathFilterConfig) *PathFilter {
	pf := &PathFilter{
		ignoredPatterns: []string{
			".git/**",
			"**/.git/**",
			"node_modules/**",
			"**/node_modules/**",
			"target/**",
			"**/target/**",
			".idea/**",
		},
		allowedNames: []string{
			"init-sources.yaml",
			"init-sources.yml",
		},
	}

	if config != nil {
		pf.ignoredPatterns = append(pf.ignoredPatterns, config.IgnoredPatterns...)
		pf.allowedNames = append(pf.allowedNames, config.AllowedNames...)
	}

	return pf
}

// globMatch converts a glob pattern to regex and tests against the path.
func globMatch(pattern, p string) bool {
	normalizedPattern := strings.ReplaceAll(pattern, "\\", "/")

	regexPattern := regexp.QuoteMeta(normalizedPattern)
	regexPattern = strings.ReplaceAll(regexPattern, `\*\*/`, "(?:.*/)?") // **/ matches zero or more dirs
	regexPattern = strings.ReplaceAll(regexPattern, `\*\*`, ".*")
	regexPattern = strings.ReplaceAll(regexPattern, `\*`, "[^/]*")
	regexPattern = strings.ReplaceAll(regexPattern, `\?`, "[^/]")

	re, err := regexp.Compile("^" + regexPattern + "$")
	if err != nil {
		return false
	}
	return re.MatchString(p)
}

// IsIgnored reports whether a slash-separated relative path lies in an
// ignored location.
func (pf *PathFilter) IsIgnored(p string) bool {
	normalizedPath := strings.ReplaceAll(p, "\\", "/")
	for _, pattern := range pf.ignoredPatterns {
		if globMatch(pattern, normalizedPath) {
			return true
		}
	}
	return false
}

// IsAllowed reports whether p names a build description outside ignored
// locations.
func (pf *PathFilter) IsAllowed(p string) bool {
	normalizedPath := strings.ReplaceAll(p, "\\", "/")
	if pf.IsIgnored(normalizedPath) {
		return false
	}

	name := path.Base(normalizedPath)
	for _, allowed := range pf.allowedNames {
		if globMatch(allowed, name) {
			return true
		}
	}
	return false
}

// FilterPaths filters a slice of paths to only include allowed ones.
func (pf *PathFilter) FilterPaths(paths []string) []string {
	var allowed []string
	for _, p := range paths {
		if pf.IsAllowed(p) {
			allowed = append(allowed, p)
		}
	}
	return allowed
}
