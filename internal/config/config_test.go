package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearCredentialEnv(t *testing.T) {
	t.Helper()
	for _, name := range credentialEnvVars {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearCredentialEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultFastModel, cfg.Model.FastModel)
	assert.Equal(t, DefaultDeepModel, cfg.Model.DeepModel)
	assert.Equal(t, DefaultTimeouts(), cfg.Timeouts)
	assert.True(t, cfg.Offline())
}

func TestLoadFromFile(t *testing.T) {
	clearCredentialEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
model:
  api_key: file-key
  fast_model: custom-fast
timeouts:
  chat_reply: 30s
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.Model.APIKey)
	assert.Equal(t, "custom-fast", cfg.Model.FastModel)
	assert.Equal(t, DefaultDeepModel, cfg.Model.DeepModel, "unset fields keep defaults")
	assert.Equal(t, 30*time.Second, cfg.Timeouts.ChatReply)
	assert.Equal(t, DefaultTimeouts().RiskAnalysis, cfg.Timeouts.RiskAnalysis)
}

func TestCredentialResolution(t *testing.T) {
	t.Run("ranked env order", func(t *testing.T) {
		clearCredentialEnv(t)
		t.Setenv("GEMINI_API_KEY", "gemini-key")
		t.Setenv("API_KEY", "generic-key")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "gemini-key", cfg.Model.APIKey)

		t.Setenv("MINDWELL_API_KEY", "mindwell-key")
		cfg, err = Load("")
		require.NoError(t, err)
		assert.Equal(t, "mindwell-key", cfg.Model.APIKey)
	})

	t.Run("placeholder values are skipped", func(t *testing.T) {
		clearCredentialEnv(t)
		t.Setenv("MINDWELL_API_KEY", "undefined")
		t.Setenv("GEMINI_API_KEY", "real-key")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "real-key", cfg.Model.APIKey)
	})

	t.Run("no usable source means offline", func(t *testing.T) {
		clearCredentialEnv(t)
		t.Setenv("API_KEY", "your_api_key_here")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.True(t, cfg.Offline())
		assert.True(t, cfg.ModelConfig().Offline())
	})

	t.Run("file key beats environment", func(t *testing.T) {
		clearCredentialEnv(t)
		t.Setenv("MINDWELL_API_KEY", "env-key")

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("model:\n  api_key: file-key\n"), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "file-key", cfg.Model.APIKey)
	})
}

func TestModelAndDebugOverrides(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv("MINDWELL_FAST_MODEL", "env-fast")
	t.Setenv("MINDWELL_DEEP_MODEL", "env-deep")
	t.Setenv("MINDWELL_DEBUG", "1")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-fast", cfg.Model.FastModel)
	assert.Equal(t, "env-deep", cfg.Model.DeepModel)
	assert.True(t, cfg.Logging.Debug)
}

func TestIsPlaceholder(t *testing.T) {
	assert.True(t, isPlaceholder(""))
	assert.True(t, isPlaceholder("  "))
	assert.True(t, isPlaceholder("undefined"))
	assert.True(t, isPlaceholder("NULL"))
	assert.True(t, isPlaceholder("changeme"))
	assert.False(t, isPlaceholder("AIza-real-looking-key"))
}

func TestDefaultTimeouts(t *testing.T) {
	tt := DefaultTimeouts()

	assert.Equal(t, 4*time.Second, tt.SecurityCheck)
	assert.Equal(t, 5*time.Second, tt.EmotionAnalysis)
	assert.Equal(t, 10*time.Second, tt.ChatReply)
	assert.Equal(t, 8*time.Second, tt.RiskAnalysis)
	assert.Equal(t, 6*time.Second, tt.WellnessActions)
	assert.Equal(t, 3*time.Second, tt.GiftVisibility)
	assert.Equal(t, 6*time.Second, tt.GiftContent)
}
