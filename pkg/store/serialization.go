package store

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dyluth/blockkit/pkg/blockkit"
)

// TemplateToHash converts a Template to a Redis hash.
// The payload is stored as its canonical wire JSON.
func TemplateToHash(t *Template) (map[string]interface{}, error) {
	payload, err := json.Marshal(t.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	return map[string]interface{}{
		"id":            t.ID,
		"name":          t.Name,
		"version":       t.Version,
		"payload":       string(payload),
		"created_at_ms": t.CreatedAtMs,
	}, nil
}

// HashToTemplate converts a Redis hash back to a Template, revalidating the payload.
func HashToTemplate(hash map[string]string) (*Template, error) {
	version, err := strconv.Atoi(hash["version"])
	if err != nil {
		return nil, fmt.Errorf("invalid version field: %w", err)
	}

	var createdAtMs int64
	if raw, ok := hash["created_at_ms"]; ok && raw != "" {
		createdAtMs, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid created_at_ms field: %w", err)
		}
	}

	msg, err := blockkit.DecodeMessage([]byte(hash["payload"]))
	if err != nil {
		return nil, fmt.Errorf("invalid payload field: %w", err)
	}

	return &Template{
		ID:          hash["id"],
		Name:        hash["name"],
		Version:     version,
		Payload:     *msg,
		CreatedAtMs: createdAtMs,
	}, nil
}
