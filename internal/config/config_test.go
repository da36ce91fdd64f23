package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `version: "1.0"
namespace: team-a
redis:
  url: redis://cache:6380/2
validation:
  strict: true
`)

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "team-a", config.Namespace)
	assert.Equal(t, "redis://cache:6380/2", config.Redis.URL)
	assert.True(t, config.Validation.Strict)
	assert.False(t, config.Validation.SkipSchema)

	opts, err := config.RedisOptions()
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	config, err := Load(writeConfig(t, `version: "1.0"`))
	require.NoError(t, err)
	assert.Equal(t, "default", config.Namespace)
	assert.Equal(t, "redis://localhost:6379/0", config.Redis.URL)
	assert.NotNil(t, config.Validation)
}

func TestLoad_FileNotFound(t *testing.T) {
	config, err := Load("/nonexistent/.blockkit.yml")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_InvalidYAML(t *testing.T) {
	config, err := Load(writeConfig(t, "version: [unterminated"))
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{name: "valid", config: Config{Version: "1.0"}},
		{name: "wrong version", config: Config{Version: "2.0"}, wantErr: "unsupported version"},
		{name: "colon in namespace", config: Config{Version: "1.0", Namespace: "a:b"}, wantErr: "invalid namespace"},
		{
			name:    "bad redis url",
			config:  Config{Version: "1.0", Redis: &RedisConfig{URL: "http://nope"}},
			wantErr: "invalid redis.url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvRedisURL, "redis://override:6379/5")
	t.Setenv(EnvNamespace, "from-env")

	config, err := Load(writeConfig(t, `version: "1.0"
namespace: from-file
`))
	require.NoError(t, err)
	assert.Equal(t, "from-env", config.Namespace)
	assert.Equal(t, "redis://override:6379/5", config.Redis.URL)
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("falls back when missing", func(t *testing.T) {
		t.Setenv(EnvNamespace, "")
		t.Setenv(EnvRedisURL, "")
		config, err := LoadOrDefault(filepath.Join(t.TempDir(), DefaultPath))
		require.NoError(t, err)
		assert.Equal(t, Default(), config)
	})

	t.Run("still reports broken files", func(t *testing.T) {
		_, err := LoadOrDefault(writeConfig(t, `version: "0.9"`))
		assert.ErrorContains(t, err, "unsupported version")
	})
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("BLOCKKIT_TEST_DOTENV=loaded\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("BLOCKKIT_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), envFile))
	assert.Equal(t, "loaded", os.Getenv("BLOCKKIT_TEST_DOTENV"))
}
