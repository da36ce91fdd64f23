package filter

import (
	"testing"
	"time"

	"github.com/dyluth/blockkit/pkg/blockkit"
	"github.com/dyluth/blockkit/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func template(name string, createdAtMs int64, blocks ...blockkit.Block) *store.Template {
	return &store.Template{
		Name:        name,
		Version:     1,
		Payload:     blockkit.Message{Blocks: blocks},
		CreatedAtMs: createdAtMs,
	}
}

func TestCriteriaMatches(t *testing.T) {
	header := blockkit.HeaderBlock{Text: blockkit.NewPlainText("Hi")}
	tmpl := template("deploy-approval", 2000, header, blockkit.DividerBlock{})

	tests := []struct {
		name     string
		criteria Criteria
		want     bool
	}{
		{name: "no filters", criteria: Criteria{}, want: true},
		{name: "since before", criteria: Criteria{SinceTimestampMs: 1000}, want: true},
		{name: "since after", criteria: Criteria{SinceTimestampMs: 3000}, want: false},
		{name: "until after", criteria: Criteria{UntilTimestampMs: 3000}, want: true},
		{name: "until before", criteria: Criteria{UntilTimestampMs: 1000}, want: false},
		{name: "glob match", criteria: Criteria{NameGlob: "deploy-*"}, want: true},
		{name: "glob miss", criteria: Criteria{NameGlob: "digest*"}, want: false},
		{name: "malformed glob", criteria: Criteria{NameGlob: "[deploy"}, want: false},
		{name: "has block type", criteria: Criteria{BlockType: blockkit.BlockTypeDivider}, want: true},
		{name: "lacks block type", criteria: Criteria{BlockType: blockkit.BlockTypeActions}, want: false},
		{
			name:     "all filters together",
			criteria: Criteria{SinceTimestampMs: 1000, NameGlob: "deploy*", BlockType: blockkit.BlockTypeHeader},
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.criteria.Matches(tmpl))
			assert.Equal(t, tt.criteria != Criteria{}, tt.criteria.HasFilters())
		})
	}
}

func TestCriteriaApply(t *testing.T) {
	templates := []*store.Template{
		template("alpha", 1000),
		template("beta", 2000),
		template("alpine", 3000),
	}

	c := Criteria{NameGlob: "al*"}
	got := c.Apply(templates)
	require.Len(t, got, 2)
	assert.Equal(t, "alpha", got[0].Name)
	assert.Equal(t, "alpine", got[1].Name)

	assert.Empty(t, (&Criteria{NameGlob: "zzz"}).Apply(templates))
}

func TestParseTime(t *testing.T) {
	now := time.Date(2025, 10, 29, 14, 0, 0, 0, time.UTC)

	t.Run("duration is relative to now", func(t *testing.T) {
		ms, err := ParseTime("1h30m", now)
		require.NoError(t, err)
		assert.Equal(t, now.Add(-90*time.Minute).UnixMilli(), ms)
	})

	t.Run("RFC3339 is absolute", func(t *testing.T) {
		ms, err := ParseTime("2025-10-29T13:00:00Z", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 10, 29, 13, 0, 0, 0, time.UTC).UnixMilli(), ms)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := ParseTime("yesterday", now)
		assert.ErrorContains(t, err, "invalid time specification")
	})

	t.Run("bare date is UTC midnight", func(t *testing.T) {
		ms, err := ParseTime("2025-10-28", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 10, 28, 0, 0, 0, 0, time.UTC).UnixMilli(), ms)
	})

	t.Run("rejects negative duration", func(t *testing.T) {
		_, err := ParseTime("-1h", now)
		assert.ErrorContains(t, err, "invalid time specification")
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := ParseTime("", now)
		assert.ErrorContains(t, err, "empty time specification")
	})
}

func TestParseRange(t *testing.T) {
	now := time.Date(2025, 10, 29, 14, 0, 0, 0, time.UTC)

	t.Run("sets both bounds", func(t *testing.T) {
		var c Criteria
		require.NoError(t, c.ParseRange("2h", "1h", now))
		assert.Equal(t, now.Add(-2*time.Hour).UnixMilli(), c.SinceTimestampMs)
		assert.Equal(t, now.Add(-time.Hour).UnixMilli(), c.UntilTimestampMs)
	})

	t.Run("open bounds stay zero", func(t *testing.T) {
		var c Criteria
		require.NoError(t, c.ParseRange("", "", now))
		assert.False(t, c.HasFilters())
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		var c Criteria
		err := c.ParseRange("1h", "2h", now)
		assert.ErrorContains(t, err, "--since must be before --until")
	})

	t.Run("names the bad flag", func(t *testing.T) {
		var c Criteria
		assert.ErrorContains(t, c.ParseRange("soon", "", now), "invalid --since")
		assert.ErrorContains(t, c.ParseRange("", "later", now), "invalid --until")
	})
}
