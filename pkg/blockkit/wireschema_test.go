package blockkit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const actionsPayload = `{
	"text": "Approval needed",
	"blocks": [
		{
			"type": "actions",
			"block_id": "actions1",
			"elements": [
				{
					"type": "button",
					"text": {"type": "plain_text", "text": "Click Me"},
					"accessibility_label": "button",
					"value": "click_me_123",
					"url": "https://slack.com",
					"confirm": {
						"title": {"type": "plain_text", "text": "Are you sure?"},
						"text": {"type": "plain_text", "text": "Wouldn't you prefer a good game of chess?"},
						"confirm": {"type": "plain_text", "text": "Do it"},
						"deny": {"type": "plain_text", "text": "Stop, I've changed my mind!", "emoji": true},
						"style": "danger"
					}
				}
			]
		}
	]
}`

func TestMessageSchemaCompiles(t *testing.T) {
	schema, err := MessageSchema()
	require.NoError(t, err)
	assert.NotNil(t, schema)
}

func TestParseMessage(t *testing.T) {
	msg, err := ParseMessage([]byte(actionsPayload))
	require.NoError(t, err)
	assert.Equal(t, "Approval needed", msg.Text)
	require.Len(t, msg.Blocks, 1)

	actions, ok := msg.Blocks[0].(ActionsBlock)
	require.True(t, ok)
	assert.Equal(t, "actions1", actions.BlockID)
	require.Len(t, actions.Elements, 1)

	button, ok := actions.Elements[0].(Button)
	require.True(t, ok)
	assert.Equal(t, "click_me_123", button.Value)
	require.NotNil(t, button.Confirm)
	assert.Equal(t, StyleDanger, button.Confirm.Style)
	assert.Equal(t, Bool(true), button.Confirm.Deny.Emoji)

	// Re-encoding yields the same document.
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, actionsPayload, string(data))
}

func TestValidateWire(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"bare block list", `[{"type":"divider"}]`, false},
		{"sample message", actionsPayload, false},
		{"not json", `{"blocks":`, true},
		{"unknown block type", `[{"type":"carousel"}]`, true},
		{"header without text", `[{"type":"header"}]`, true},
		{"header with mrkdwn", `[{"type":"header","text":{"type":"mrkdwn","text":"x"}}]`, true},
		{"object without blocks", `{"text":"x"}`, true},
		{"unknown element in actions", `[{"type":"actions","elements":[{"type":"slider"}]}]`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWire([]byte(tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSampleBlocksMatchSchema(t *testing.T) {
	data, err := EncodeBlocks(sampleBlocks()...)
	require.NoError(t, err)
	assert.NoError(t, ValidateWire(data))
}
