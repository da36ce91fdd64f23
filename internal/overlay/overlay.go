// Package overlay applies JSON patches to message payloads and re-validates the result.
package overlay

import (
	"encoding/json"
	"fmt"

	"github.com/dyluth/blockkit/pkg/blockkit"
	jsonpatch "github.com/evanphx/json-patch/v5"
)

// PatchType selects the patch document format.
type PatchType string

const (
	// PatchMerge is an RFC 7386 JSON merge patch.
	PatchMerge PatchType = "merge"
	// PatchJSON is an RFC 6902 JSON patch (list of operations).
	PatchJSON PatchType = "json"
)

// ParsePatchType validates a --patch-type flag value. Empty means merge.
func ParsePatchType(s string) (PatchType, error) {
	switch t := PatchType(s); t {
	case "", PatchMerge:
		return PatchMerge, nil
	case PatchJSON:
		return PatchJSON, nil
	default:
		return "", fmt.Errorf("unknown patch type: %s (must be 'merge' or 'json')", s)
	}
}

// Apply patches the wire JSON doc and returns the patched JSON.
func Apply(doc, patch []byte, patchType PatchType) ([]byte, error) {
	switch patchType {
	case PatchMerge, "":
		patched, err := jsonpatch.MergePatch(doc, patch)
		if err != nil {
			return nil, fmt.Errorf("failed to apply merge patch: %w", err)
		}
		return patched, nil
	case PatchJSON:
		ops, err := jsonpatch.DecodePatch(patch)
		if err != nil {
			return nil, fmt.Errorf("failed to decode JSON patch: %w", err)
		}
		patched, err := ops.Apply(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to apply JSON patch: %w", err)
		}
		return patched, nil
	default:
		return nil, fmt.Errorf("unknown patch type: %s", patchType)
	}
}

// ApplyMessage patches a message and decodes the result, so the returned message
// satisfies every structural invariant.
func ApplyMessage(msg *blockkit.Message, patch []byte, patchType PatchType) (*blockkit.Message, error) {
	doc, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	patched, err := Apply(doc, patch, patchType)
	if err != nil {
		return nil, err
	}

	out, err := blockkit.DecodeMessage(patched)
	if err != nil {
		return nil, fmt.Errorf("patched payload is invalid: %w", err)
	}
	return out, nil
}
