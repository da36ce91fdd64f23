package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dyluth/blockkit/internal/config"
	"github.com/dyluth/blockkit/internal/payload"
	"github.com/dyluth/blockkit/pkg/blockkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	t.Setenv(config.EnvNamespace, "")
	t.Setenv(config.EnvRedisURL, "")

	t.Run("creates config and example payload", func(t *testing.T) {
		dir := t.TempDir()
		created, err := Initialize(dir, false)
		require.NoError(t, err)
		assert.Equal(t, []string{config.DefaultPath, ExamplePayload}, created)

		cfg, err := config.Load(filepath.Join(dir, config.DefaultPath))
		require.NoError(t, err)
		assert.Equal(t, "default", cfg.Namespace)

		data, err := payload.ReadFile(filepath.Join(dir, ExamplePayload), nil)
		require.NoError(t, err)
		msg, err := blockkit.ParseMessage(data)
		require.NoError(t, err)
		assert.Len(t, msg.Blocks, 5)
		assert.Empty(t, blockkit.CheckLimits(msg.Blocks))
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		dir := t.TempDir()
		_, err := Initialize(dir, false)
		require.NoError(t, err)

		_, err = Initialize(dir, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "project already initialized")
		assert.Contains(t, err.Error(), "  - "+config.DefaultPath)
		assert.Contains(t, err.Error(), "  - "+ExamplePayload)
	})

	t.Run("force overwrites", func(t *testing.T) {
		dir := t.TempDir()
		cfgPath := filepath.Join(dir, config.DefaultPath)
		require.NoError(t, os.WriteFile(cfgPath, []byte("broken: ["), 0644))

		_, err := Initialize(dir, true)
		require.NoError(t, err)

		_, err = config.Load(cfgPath)
		assert.NoError(t, err)
	})
}

func TestCheckExisting(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, CheckExisting(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultPath), []byte("version: \"1.0\"\n"), 0644))
	err := CheckExisting(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Found existing: "+config.DefaultPath)
}
