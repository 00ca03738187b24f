package catalog

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/yanqian/forest-watch/internal/domain/forest"
)

//go:embed hotspots.yaml
var embeddedHotspots []byte

type document struct {
	Hotspots []forest.Hotspot `yaml:"hotspots"`
}

// EmbeddedSource serves the hotspot table compiled into the binary.
type EmbeddedSource struct{}

// NewEmbeddedSource constructs the default catalog source.
func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{}
}

// Load implements forest.CatalogSource.
func (s *EmbeddedSource) Load(_ context.Context) ([]forest.Hotspot, error) {
	return decode(embeddedHotspots)
}

func decode(data []byte) ([]forest.Hotspot, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return doc.Hotspots, nil
}

var _ forest.CatalogSource = (*EmbeddedSource)(nil)
