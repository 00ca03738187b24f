package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/yanqian/forest-watch/internal/domain/forest"
)

// FileSource reads the hotspot table from a YAML file on disk.
type FileSource struct {
	path string
}

// NewFileSource constructs a source for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load implements forest.CatalogSource.
func (s *FileSource) Load(ctx context.Context) ([]forest.Hotspot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return decode(data)
}

var _ forest.CatalogSource = (*FileSource)(nil)
