package blockkit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    Text
		wantErr func(error) bool
	}{
		{
			name: "plain with emoji",
			data: `{"type":"plain_text","text":"hi :wave:","emoji":true}`,
			want: PlainText{Text: "hi :wave:", Emoji: Bool(true)},
		},
		{
			name: "mrkdwn with verbatim",
			data: `{"type":"mrkdwn","text":"<https://x|x>","verbatim":false}`,
			want: Markdown{Text: "<https://x|x>", Verbatim: Bool(false)},
		},
		{
			name: "explicit null flag is absent",
			data: `{"type":"plain_text","text":"x","verbatim":null}`,
			want: PlainText{Text: "x"},
		},
		{
			name:    "verbatim on plain text",
			data:    `{"type":"plain_text","text":"x","verbatim":true}`,
			wantErr: IsInvariantViolation,
		},
		{
			name:    "emoji on mrkdwn",
			data:    `{"type":"mrkdwn","text":"x","emoji":true}`,
			wantErr: IsInvariantViolation,
		},
		{
			name:    "unknown variant",
			data:    `{"type":"rich","text":"x"}`,
			wantErr: IsUnknownType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeText([]byte(tt.data))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error kind: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTextValidate(t *testing.T) {
	assert.NoError(t, NewPlainText("x").Validate())
	assert.NoError(t, NewMarkdown("x").Validate())

	err := NewPlainText("").Validate()
	require.Error(t, err)
	assert.True(t, IsIncomplete(err))
	assert.Equal(t, "plain_text: incomplete configuration: missing text", err.Error())

	assert.True(t, IsIncomplete(Markdown{}.Validate()))
}

func TestPlainTextRejectsMarkdownTag(t *testing.T) {
	var pt PlainText
	err := json.Unmarshal([]byte(`{"type":"mrkdwn","text":"x"}`), &pt)
	require.Error(t, err)
	assert.True(t, IsInvariantViolation(err))
}

func TestTextTypeValidate(t *testing.T) {
	assert.NoError(t, TextTypePlain.Validate())
	assert.NoError(t, TextTypeMarkdown.Validate())
	assert.True(t, IsUnknownType(TextType("html").Validate()))
}

func TestFieldErrorFormatting(t *testing.T) {
	assert.Nil(t, Missing("button"))

	err := Missing("confirm", "title", "deny")
	assert.Equal(t, "confirm: incomplete configuration: missing title, deny", err.Error())

	err = Conflict("image", "pick one", "image_url", "slack_file")
	assert.Equal(t, "image: invariant violation: image_url, slack_file (pick one)", err.Error())

	var fe *FieldError
	require.ErrorAs(t, at("accessory", err), &fe)
	assert.Equal(t, []string{"image_url", "slack_file"}, fe.Fields)
}
