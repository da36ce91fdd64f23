// Package payload reads message payload files written as JSON or YAML and
// normalises them to wire JSON.
package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Stdin is the file name that reads from the provided reader instead of disk.
const Stdin = "-"

// ReadFile reads path (or stdin when path is "-") and returns wire JSON.
func ReadFile(path string, stdin io.Reader) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == Stdin {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}

	return ToJSON(data, path)
}

// ToJSON converts data to JSON. Files named *.yml or *.yaml are always parsed as
// YAML; anything else is passed through when it already looks like JSON.
func ToJSON(data []byte, name string) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("payload is empty")
	}

	if !isYAMLName(name) && (trimmed[0] == '{' || trimmed[0] == '[') {
		return trimmed, nil
	}

	var doc any
	if err := yaml.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	normalised, err := normalise(doc)
	if err != nil {
		return nil, err
	}

	out, err := json.Marshal(normalised)
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML to JSON: %w", err)
	}
	return out, nil
}

func isYAMLName(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yml", ".yaml":
		return true
	}
	return false
}

// normalise rewrites YAML-decoded values into types encoding/json accepts.
func normalise(v any) (any, error) {
	switch v := v.(type) {
	case map[string]any:
		for k, item := range v {
			n, err := normalise(item)
			if err != nil {
				return nil, err
			}
			v[k] = n
		}
		return v, nil
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("unsupported non-string YAML key %v", k)
			}
			n, err := normalise(item)
			if err != nil {
				return nil, err
			}
			out[key] = n
		}
		return out, nil
	case []any:
		for i, item := range v {
			n, err := normalise(item)
			if err != nil {
				return nil, err
			}
			v[i] = n
		}
		return v, nil
	default:
		return v, nil
	}
}
