package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/dyluth/blockkit/pkg/store"
	"github.com/google/uuid"
)

// MinShortIDLength is the minimum required length for short ID prefixes.
const MinShortIDLength = 6

// maxListedMatches caps how many candidates FormatAmbiguousError prints.
const maxListedMatches = 10

// TemplateScanner is the subset of store.Client the resolver needs.
type TemplateScanner interface {
	TemplateExists(ctx context.Context, templateID string) (bool, error)
	ScanTemplateIDs(ctx context.Context, prefix string) ([]string, error)
}

var _ TemplateScanner = (*store.Client)(nil)

// ResolveTemplateID resolves a full template ID or a unique prefix of one.
//
// A full UUID is checked for existence. Anything else must be at least
// MinShortIDLength hex digits or hyphens and match exactly one stored version.
func ResolveTemplateID(ctx context.Context, s TemplateScanner, shortID string) (string, error) {
	if _, err := uuid.Parse(shortID); err == nil && len(shortID) == 36 {
		ok, err := s.TemplateExists(ctx, shortID)
		if err != nil {
			return "", fmt.Errorf("failed to verify template existence: %w", err)
		}
		if !ok {
			return "", &NotFoundError{ShortID: shortID}
		}
		return shortID, nil
	}

	if len(shortID) < MinShortIDLength {
		return "", fmt.Errorf("short ID must be at least %d characters (got %d)", MinShortIDLength, len(shortID))
	}
	if strings.Trim(strings.ToLower(shortID), "0123456789abcdef-") != "" {
		return "", fmt.Errorf("short ID %q may only contain hex digits and hyphens", shortID)
	}

	matches, err := s.ScanTemplateIDs(ctx, strings.ToLower(shortID))
	if err != nil {
		return "", fmt.Errorf("failed to search for template: %w", err)
	}

	switch len(matches) {
	case 0:
		return "", &NotFoundError{ShortID: shortID}
	case 1:
		return matches[0], nil
	default:
		return "", &AmbiguousError{ShortID: shortID, Matches: matches}
	}
}

// NotFoundError indicates no template version matched the short ID.
type NotFoundError struct {
	ShortID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no templates found matching '%s'", e.ShortID)
}

// AmbiguousError indicates several template versions matched the short ID.
type AmbiguousError struct {
	ShortID string
	Matches []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous short ID '%s' matches %d templates", e.ShortID, len(e.Matches))
}

// FormatAmbiguousError lists the candidate IDs, at most ten of them.
func FormatAmbiguousError(err *AmbiguousError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ambiguous short ID '%s' matches %d templates:\n", err.ShortID, len(err.Matches))

	shown := err.Matches
	if len(shown) > maxListedMatches {
		shown = shown[:maxListedMatches]
	}
	for _, id := range shown {
		fmt.Fprintf(&b, "  %s\n", id)
	}
	if extra := len(err.Matches) - len(shown); extra > 0 {
		fmt.Fprintf(&b, "  ...and %d more\n", extra)
	}

	b.WriteString("\nUse a longer prefix to uniquely identify the template.")
	return b.String()
}

// IsNotFoundError checks if an error is a NotFoundError.
func IsNotFoundError(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// IsAmbiguousError checks if an error is an AmbiguousError.
func IsAmbiguousError(err error) bool {
	_, ok := err.(*AmbiguousError)
	return ok
}
