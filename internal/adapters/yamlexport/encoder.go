package yamlexport

import (
	"bytes"
	"fmt"

	"github.com/AntonioJCosta/dirmarks/internal/core/domain/bookmark"
	"github.com/AntonioJCosta/dirmarks/internal/core/ports"
	"gopkg.in/yaml.v3"
)

const indent = 2

// YAMLEncoder implements the BookmarkEncoder interface by writing a YAML
// sequence of shortcut/path mappings.
type YAMLEncoder struct{}

// NewYAMLEncoder creates a new YAMLEncoder.
func NewYAMLEncoder() ports.BookmarkEncoder {
	return &YAMLEncoder{}
}

// Encode renders list as a YAML document. An empty list encodes as "[]".
func (e *YAMLEncoder) Encode(list bookmark.List) ([]byte, error) {
	if list == nil {
		list = bookmark.List{}
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(indent)

	if err := encoder.Encode(list); err != nil {
		return nil, fmt.Errorf("failed to encode bookmarks as YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush YAML encoder: %w", err)
	}
	return buf.Bytes(), nil
}
