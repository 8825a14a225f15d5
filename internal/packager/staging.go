package packager

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NewStagingRoot returns dir when it is set, otherwise a fresh temporary
// directory. The root is left on disk after generation; the archive inside
// it is the generation's output.
func NewStagingRoot(dir string) (string, error) {
	if dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", fmt.Errorf("resolving staging root %s: %w", dir, err)
		}
		return abs, nil
	}
	tmp, err := os.MkdirTemp("", "skeleton-*")
	if err != nil {
		return "", &FilesystemError{Op: "mkdir", Path: os.TempDir(), Err: err}
	}
	return tmp, nil
}

// checkRoot refuses roots whose recursive removal would destroy unrelated
// data: the filesystem root, the home directory, and the working directory
// or any of its ancestors.
func checkRoot(root string) error {
	if root == "" {
		return fmt.Errorf("%w: empty path", ErrUnsafeRoot)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving staging root %s: %w", root, err)
	}
	if abs == filepath.VolumeName(abs)+string(filepath.Separator) {
		return fmt.Errorf("%w: %s is a filesystem root", ErrUnsafeRoot, abs)
	}
	if home, err := os.UserHomeDir(); err == nil && filepath.Clean(home) == abs {
		return fmt.Errorf("%w: %s is the home directory", ErrUnsafeRoot, abs)
	}
	if wd, err := os.Getwd(); err == nil && within(wd, abs) {
		return fmt.Errorf("%w: %s contains the working directory", ErrUnsafeRoot, abs)
	}
	return nil
}

// within reports whether path is dir or lies below it.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// resetRoot removes the staging root and recreates it empty.
func (p *Packager) resetRoot() error {
	if err := checkRoot(p.root); err != nil {
		return err
	}
	if err := os.RemoveAll(p.root); err != nil {
		return &FilesystemError{Op: "remove", Path: p.root, Err: err}
	}
	if err := os.MkdirAll(p.root, 0o755); err != nil {
		return &FilesystemError{Op: "mkdir", Path: p.root, Err: err}
	}
	return nil
}
