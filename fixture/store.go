package fixture

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/txtar"
)

// NewDirStore returns a store reading fixtures from a directory.
func NewDirStore(dir string) fs.FS {
	return os.DirFS(dir)
}

// NewTxtarStore returns a store reading fixtures from the files of a txtar archive, for
// keeping the fixtures of a few days in a single file:
//
//	-- y2015/d01/input.txt --
//	(()(()(
//	-- y2015/d01/solution_part1.txt --
//	3
func NewTxtarStore(archivePath string) (fs.FS, error) {
	archive, err := txtar.ParseFile(archivePath)
	if err != nil {
		return nil, fmt.Errorf("could not read fixture archive: %w", err)
	}
	return archiveFS(archive)
}

func archiveFS(archive *txtar.Archive) (fs.FS, error) {
	fsys, err := txtar.FS(archive)
	if err != nil {
		return nil, fmt.Errorf("invalid fixture archive: %w", err)
	}
	return fsys, nil
}

// OpenStore opens a directory store, or a txtar store if location names a .txtar file.
func OpenStore(location string) (fs.FS, error) {
	if strings.HasSuffix(location, ".txtar") {
		return NewTxtarStore(location)
	}
	info, err := os.Stat(location)
	if err != nil {
		return nil, fmt.Errorf("fixture directory not found: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("fixture location %s is not a directory", location)
	}
	return NewDirStore(location), nil
}

// FindResourceDir looks for the directory rel in start and then in each of its parents, the
// way the go command looks for go.mod. This lets the tests of a solution package, which run in
// that package's directory, find the fixtures kept at the root of the repository.
func FindResourceDir(start, rel string) (string, error) {
	if filepath.IsAbs(rel) {
		if isDir(rel) {
			return rel, nil
		}
		return "", fmt.Errorf("resource directory %s: %w", rel, fs.ErrNotExist)
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, rel)
		if isDir(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s directory in %s or any parent: %w", rel, start, fs.ErrNotExist)
		}
		dir = parent
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
