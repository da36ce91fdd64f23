package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dyluth/blockkit/pkg/blockkit"
	"github.com/dyluth/blockkit/pkg/store"
)

// OutputFormat specifies how to format the template list output.
type OutputFormat string

const (
	// OutputFormatDefault uses a table format with a short text preview
	OutputFormatDefault OutputFormat = "default"

	// OutputFormatJSONL outputs complete templates as line-delimited JSON
	OutputFormatJSONL OutputFormat = "jsonl"
)

// ParseOutputFormat validates an --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case OutputFormatDefault, OutputFormatJSONL:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format: %s (must be 'default' or 'jsonl')", s)
	}
}

var now = time.Now

// Templates writes templates in the requested format.
func Templates(w io.Writer, templates []*store.Template, namespace string, format OutputFormat) error {
	switch format {
	case OutputFormatDefault:
		FormatTable(w, templates, namespace)
		return nil
	case OutputFormatJSONL:
		return FormatJSONL(w, templates)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// FormatTable writes templates as a table and returns how many rows were written.
// Columns: NAME, VER, ID (truncated), BLOCKS, AGE and PREVIEW.
func FormatTable(w io.Writer, templates []*store.Template, namespace string) int {
	if len(templates) == 0 {
		fmt.Fprintf(w, "No templates found in namespace '%s'\n", namespace)
		return 0
	}

	fmt.Fprintf(w, "Templates in namespace '%s':\n\n", namespace)

	fmt.Fprintf(w, "%-20s %-5s %-10s %-6s %-8s %s\n",
		"NAME", "VER", "ID", "BLOCKS", "AGE", "PREVIEW")
	fmt.Fprintf(w, "%-20s %-5s %-10s %-6s %-8s %s\n",
		"--------------------", "-----", "----------", "------", "--------", "----------------------------------------")

	for _, t := range templates {
		fmt.Fprintf(w, "%-20s %-5s %-10s %-6d %-8s %s\n",
			truncate(t.Name, 20),
			fmt.Sprintf("v%d", t.Version),
			formatID(t.ID),
			len(t.Payload.Blocks),
			formatTimestamp(t.CreatedAtMs),
			formatPreview(t.Payload),
		)
	}

	countMsg := "template"
	if len(templates) != 1 {
		countMsg = "templates"
	}
	fmt.Fprintf(w, "\n%d %s found\n", len(templates), countMsg)

	return len(templates)
}

// FormatJSONL writes each template as a single compact JSON object per line.
func FormatJSONL(w io.Writer, templates []*store.Template) error {
	for _, t := range templates {
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("failed to marshal template to JSON: %w", err)
		}

		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("failed to write JSONL output: %w", err)
		}
	}

	return nil
}

// FormatSingleJSON writes v as pretty-printed JSON followed by a newline.
func FormatSingleJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}

	return nil
}

// FormatMessage writes a message's canonical wire JSON, indented unless compact.
func FormatMessage(w io.Writer, msg *blockkit.Message, compact bool) error {
	if !compact {
		return FormatSingleJSON(w, msg)
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// FormatWarnings writes one advisory limit warning per line.
func FormatWarnings(w io.Writer, warnings []blockkit.LimitWarning) {
	for _, warning := range warnings {
		fmt.Fprintf(w, "  %s\n", warning)
	}
}

// formatID truncates template ID to first 8 characters for compact display.
func formatID(id string) string {
	return truncateRaw(id, 8)
}

// formatPreview picks the first readable line of a message: its fallback text,
// else its first header or section text. Returns "-" if there is none.
func formatPreview(msg blockkit.Message) string {
	candidates := []string{msg.Text}
	for _, b := range msg.Blocks {
		switch b := b.(type) {
		case blockkit.HeaderBlock:
			candidates = append(candidates, b.Text.Text)
		case blockkit.SectionBlock:
			if b.Text != nil {
				candidates = append(candidates, b.Text.Content())
			}
		}
	}

	for _, c := range candidates {
		for _, line := range strings.Split(c, "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				return truncate(trimmed, 40)
			}
		}
	}
	return "-"
}

// truncate shortens s to max runes, ending in "..." when cut.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

func truncateRaw(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// formatTimestamp formats Unix milliseconds as a relative age like "2m ago".
func formatTimestamp(timestampMs int64) string {
	if timestampMs == 0 {
		return "-"
	}

	diff := now().Sub(time.UnixMilli(timestampMs))

	switch {
	case diff < time.Minute:
		return fmt.Sprintf("%ds ago", int(diff.Seconds()))
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}
}
