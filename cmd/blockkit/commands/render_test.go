package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const headerPayload = `{
	"text": "Deploy",
	"blocks": [{"type": "header", "text": {"type": "plain_text", "text": "Deploy started"}}]
}`

func TestRenderCommand(t *testing.T) {
	cfg := isolateConfig(t)
	path := writeFile(t, "msg.json", headerPayload)

	t.Run("canonical compact JSON", func(t *testing.T) {
		res := runCLI(t, "", "render", path, "--config", cfg, "--compact")
		require.NoError(t, res.err)
		assert.Equal(t,
			`{"text":"Deploy","blocks":[{"type":"header","text":{"type":"plain_text","text":"Deploy started"}}]}`+"\n",
			res.stdout)
	})

	t.Run("YAML renders to the same JSON", func(t *testing.T) {
		yamlPath := writeFile(t, "msg.yaml", "text: Deploy\nblocks:\n  - type: header\n    text:\n      type: plain_text\n      text: Deploy started\n")
		res := runCLI(t, "", "render", yamlPath, "--config", cfg)
		require.NoError(t, res.err)
		assert.JSONEq(t, headerPayload, res.stdout)
	})

	t.Run("merge patch", func(t *testing.T) {
		patch := writeFile(t, "patch.json", `{"text": "Deploy finished"}`)
		res := runCLI(t, "", "render", path, "--config", cfg, "--patch", patch, "--compact")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, `"text":"Deploy finished"`)
	})

	t.Run("json patch", func(t *testing.T) {
		patch := writeFile(t, "ops.json", `[{"op": "add", "path": "/blocks/-", "value": {"type": "divider"}}]`)
		res := runCLI(t, "", "render", path, "--config", cfg, "--patch", patch, "--patch-type", "json")
		require.NoError(t, res.err)
		assert.JSONEq(t, `{
			"text": "Deploy",
			"blocks": [
				{"type": "header", "text": {"type": "plain_text", "text": "Deploy started"}},
				{"type": "divider"}
			]
		}`, res.stdout)
	})

	t.Run("patch that breaks the payload", func(t *testing.T) {
		patch := writeFile(t, "ops.json", `[{"op": "add", "path": "/blocks/-", "value": {"type": "carousel"}}]`)
		res := runCLI(t, "", "render", path, "--config", cfg, "--patch", patch, "--patch-type", "json")
		require.Error(t, res.err)
		assert.Equal(t, "patch failed", res.err.Error())
		assert.Empty(t, res.stdout)
	})

	t.Run("unknown patch type", func(t *testing.T) {
		res := runCLI(t, "", "render", path, "--config", cfg, "--patch-type", "strategic")
		require.Error(t, res.err)
		assert.Equal(t, "invalid patch type", res.err.Error())
	})
}

func TestExampleCommand(t *testing.T) {
	res := runCLI(t, "", "example")
	require.NoError(t, res.err)

	assert.JSONEq(t, `{
		"blocks": [{
			"type": "actions",
			"block_id": "actions1",
			"elements": [{
				"type": "button",
				"action_id": "button",
				"text": {"type": "plain_text", "text": "Click Me"},
				"url": "https://slack.com",
				"value": "click_me_123",
				"style": "primary",
				"confirm": {
					"title": {"type": "plain_text", "text": "Are you sure?"},
					"text": {"type": "plain_text", "text": "Wouldn't you prefer a good game of chess?"},
					"confirm": {"type": "plain_text", "text": "Do it"},
					"deny": {"type": "plain_text", "text": "Stop, I've changed my mind! :grinning:", "emoji": true},
					"style": "danger"
				},
				"focus_on_load": true,
				"accessibility_label": "button"
			}]
		}]
	}`, res.stdout)
}

func TestInitCommand(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()

	res := runCLI(t, "", "init", "--dir", dir)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Created .blockkit.yml")
	assert.Contains(t, res.stdout, "Created payloads/example.yaml")

	res = runCLI(t, "", "init", "--dir", dir)
	require.Error(t, res.err)
	assert.Equal(t, "project already initialized", res.err.Error())

	res = runCLI(t, "", "validate", filepath.Join(dir, "payloads", "example.yaml"), "--config", filepath.Join(dir, ".blockkit.yml"), "--strict")
	require.NoError(t, res.err)
}
