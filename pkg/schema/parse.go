package schema

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseDocument turns raw bytes into a structured record.
// Sources ending in .yaml or .yml are read as YAML, anything else as JSON.
func ParseDocument(source string, data []byte) (map[string]any, error) {
	var doc map[string]any
	var err error
	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, &DocumentError{Source: source, Path: "$", Cause: err}
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}
