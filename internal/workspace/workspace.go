// Package workspace confines build description access to a root directory.
package workspace

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lengors/init-sources/internal/pathfilter"
	"github.com/lengors/init-sources/internal/project"
)

// Service provides access to the build descriptions below a workspace root.
type Service struct {
	root       string
	pathFilter *pathfilter.PathFilter
}

// New creates a new Service rooted at root.
func New(root string, pf *pathfilter.PathFilter) *Service {
	absPath, _ := filepath.Abs(root)
	if pf == nil {
		pf = pathfilter.New(nil)
	}
	return &Service{
		root:       absPath,
		pathFilter: pf,
	}
}

// Root returns the absolute workspace root.
func (s *Service) Root() string {
	return s.root
}

// ResolvePath resolves a workspace-relative path and refuses to leave the
// workspace.
func (s *Service) ResolvePath(relativePath string) (string, error) {
	relativePath = strings.TrimSpace(relativePath)
	normalizedPath := strings.TrimPrefix(relativePath, "/")

	fullPath := filepath.Join(s.root, normalizedPath)
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return "", err
	}

	relPath, err := filepath.Rel(s.root, absPath)
	if err != nil {
		return "", err
	}
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal not allowed: %s", relativePath)
	}

	return absPath, nil
}

// LoadProject loads the build description at a workspace-relative path.
// An empty path selects project.DefaultBuildFile.
func (s *Service) LoadProject(relativePath string) (*project.Model, error) {
	if strings.TrimSpace(relativePath) == "" {
		relativePath = project.DefaultBuildFile
	}
	fullPath, err := s.ResolvePath(relativePath)
	if err != nil {
		return nil, err
	}
	if !s.pathFilter.IsAllowed(filepath.ToSlash(relativePath)) {
		return nil, fmt.Errorf("access denied: %s is not a build description", relativePath)
	}
	return project.Load(fullPath)
}

// ListProjects returns the workspace-relative, slash-separated paths of
// every build description, sorted.
func (s *Service) ListProjects() ([]string, error) {
	var files []string
	err := filepath.WalkDir(s.root, func(fullPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		relPath, err := filepath.Rel(s.root, fullPath)
		if err != nil {
			return nil
		}
		relPath = filepath.ToSlash(relPath)
		if d.IsDir() {
			if relPath != "." && s.pathFilter.IsIgnored(relPath+"/") {
				return filepath.SkipDir
			}
			return nil
		}
		files = append(files, relPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk workspace: %w", err)
	}

	found := s.pathFilter.FilterPaths(files)
	sort.Strings(found)
	return found, nil
}
