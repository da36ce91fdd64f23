package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/dyluth/blockkit/pkg/blockkit"
	"github.com/dyluth/blockkit/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 10, 29, 14, 0, 0, 0, time.UTC)

func freezeTime(t *testing.T) {
	prev := now
	now = func() time.Time { return fixedNow }
	t.Cleanup(func() { now = prev })
}

func sampleTemplate(name string, version int) *store.Template {
	return &store.Template{
		ID:      "0f8fad5b-d9cb-469f-a165-70867728950e",
		Name:    name,
		Version: version,
		Payload: blockkit.Message{
			Blocks: blockkit.Blocks{
				blockkit.HeaderBlock{Text: blockkit.NewPlainText("Deploy finished")},
				blockkit.DividerBlock{},
			},
		},
		CreatedAtMs: fixedNow.Add(-2 * time.Hour).UnixMilli(),
	}
}

func TestFormatPreview(t *testing.T) {
	tests := []struct {
		name     string
		msg      blockkit.Message
		expected string
	}{
		{name: "empty message", msg: blockkit.Message{}, expected: "-"},
		{name: "fallback text wins", msg: blockkit.Message{Text: "hello"}, expected: "hello"},
		{
			name:     "first non-empty line",
			msg:      blockkit.Message{Text: "  \n  hello world  \n  next"},
			expected: "hello world",
		},
		{
			name:     "long text is truncated",
			msg:      blockkit.Message{Text: strings.Repeat("x", 70)},
			expected: strings.Repeat("x", 37) + "...",
		},
		{
			name:     "truncates by rune",
			msg:      blockkit.Message{Text: strings.Repeat("é", 41)},
			expected: strings.Repeat("é", 37) + "...",
		},
		{
			name: "falls back to section text",
			msg: blockkit.Message{Blocks: blockkit.Blocks{
				blockkit.DividerBlock{},
				blockkit.SectionBlock{Text: blockkit.NewMarkdown("*Build* green")},
			}},
			expected: "*Build* green",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatPreview(tt.msg))
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	freezeTime(t)

	tests := []struct {
		ago      time.Duration
		expected string
	}{
		{30 * time.Second, "30s ago"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{49 * time.Hour, "2d ago"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatTimestamp(fixedNow.Add(-tt.ago).UnixMilli()))
		})
	}

	assert.Equal(t, "-", formatTimestamp(0))
}

func TestFormatTable(t *testing.T) {
	freezeTime(t)

	t.Run("empty list", func(t *testing.T) {
		var buf bytes.Buffer
		n := FormatTable(&buf, nil, "team-a")
		assert.Equal(t, 0, n)
		assert.Equal(t, "No templates found in namespace 'team-a'\n", buf.String())
	})

	t.Run("rows and count", func(t *testing.T) {
		var buf bytes.Buffer
		n := FormatTable(&buf, []*store.Template{sampleTemplate("deploy", 3)}, "team-a")
		assert.Equal(t, 1, n)

		out := buf.String()
		assert.Contains(t, out, "Templates in namespace 'team-a':")
		assert.Contains(t, out, "deploy")
		assert.Contains(t, out, "v3")
		assert.Contains(t, out, "0f8fad5b ")
		assert.Contains(t, out, "2h ago")
		assert.Contains(t, out, "Deploy finished")
		assert.Contains(t, out, "1 template found")
	})

	t.Run("pluralises count", func(t *testing.T) {
		var buf bytes.Buffer
		FormatTable(&buf, []*store.Template{sampleTemplate("a", 1), sampleTemplate("b", 1)}, "ns")
		assert.Contains(t, buf.String(), "2 templates found")
	})
}

func TestFormatJSONL(t *testing.T) {
	var buf bytes.Buffer
	templates := []*store.Template{sampleTemplate("a", 1), sampleTemplate("b", 2)}
	require.NoError(t, FormatJSONL(&buf, templates))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "a", first["name"])
	assert.Contains(t, lines[1], `"blocks":[{"type":"header"`)
}

func TestFormatMessage(t *testing.T) {
	msg := &blockkit.Message{Blocks: blockkit.Blocks{blockkit.DividerBlock{}}}

	t.Run("compact", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, FormatMessage(&buf, msg, true))
		assert.Equal(t, "{\"blocks\":[{\"type\":\"divider\"}]}\n", buf.String())
	})

	t.Run("indented", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, FormatMessage(&buf, msg, false))
		assert.Equal(t, "{\n  \"blocks\": [\n    {\n      \"type\": \"divider\"\n    }\n  ]\n}\n", buf.String())
	})
}

func TestTemplatesDispatch(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorContains(t, Templates(&buf, nil, "ns", OutputFormat("xml")), "unknown output format")

	_, err := ParseOutputFormat("yaml")
	assert.Error(t, err)
	f, err := ParseOutputFormat("jsonl")
	require.NoError(t, err)
	assert.Equal(t, OutputFormatJSONL, f)
}
