package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrFolderNotFound is returned when the source folder does not exist
var ErrFolderNotFound = errors.New("folder not found")

// Source defines the interface for document discovery
type Source interface {
	// List returns the paths of the documents to process
	List() ([]string, error)
}

// LocalFolder implements the Source interface over a local directory
type LocalFolder struct {
	basePath string
}

// NewLocalFolder creates a new LocalFolder instance
func NewLocalFolder(basePath string) (*LocalFolder, error) {
	info, err := os.Stat(basePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, basePath)
		}
		return nil, fmt.Errorf("reading folder: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrFolderNotFound, basePath)
	}

	return &LocalFolder{
		basePath: basePath,
	}, nil
}

// List returns the PDF files directly inside the folder, sorted by name
func (l *LocalFolder) List() ([]string, error) {
	entries, err := os.ReadDir(l.basePath)
	if err != nil {
		return nil, fmt.Errorf("listing folder: %w", err)
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		paths = append(paths, filepath.Join(l.basePath, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
