package sourceroots

import (
	"errors"
	"io/fs"
	"path/filepath"
	"syscall"
)

// Canonicalize returns the absolute, cleaned, symlink-resolved form of path.
// Relative paths are taken against baseDir, or the working directory when
// baseDir is empty.
//
// Components that do not exist yet are kept as written below the deepest
// existing ancestor, so a build output directory canonicalizes before it
// is created. A component below a regular file counts as not existing.
// Any other failure is returned.
func Canonicalize(path, baseDir string) (string, error) {
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	existing, rest := absPath, ""
	for {
		resolved, err := filepath.EvalSymlinks(existing)
		if err == nil {
			return filepath.Join(resolved, rest), nil
		}
		if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, syscall.ENOTDIR) {
			return "", err
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			return "", err
		}
		rest = filepath.Join(filepath.Base(existing), rest)
		existing = parent
	}
}
