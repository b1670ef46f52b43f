package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HartBrook/promptarchitect/internal/config"
	"github.com/HartBrook/promptarchitect/internal/improve"
)

func TestInit_CreatesConfig(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.run("init"))

	cfg, err := config.LoadFrom(env.configPath)
	require.NoError(t, err)
	assert.Equal(t, config.NewDefaultConfig(), cfg)
	assert.Contains(t, env.out.String(), "Created "+env.configPath)
	assert.Contains(t, env.out.String(), "GROQ_API_KEY")
}

func TestInit_ExistingConfig(t *testing.T) {
	custom := "defaults:\n  tone: formal\n"

	t.Run("declined", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeConfig(t, custom)
		env.input("n\n")

		require.NoError(t, env.run("init"))

		data, err := os.ReadFile(env.configPath)
		require.NoError(t, err)
		assert.Equal(t, custom, string(data))
		assert.Contains(t, env.out.String(), "already configured")
	})

	t.Run("confirmed", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeConfig(t, custom)
		env.input("y\n")

		require.NoError(t, env.run("init"))

		cfg, err := config.LoadFrom(env.configPath)
		require.NoError(t, err)
		assert.Equal(t, "profesional", cfg.Defaults.Tone)
	})

	t.Run("forced", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeConfig(t, custom)

		require.NoError(t, env.run("init", "--force"))

		cfg, err := config.LoadFrom(env.configPath)
		require.NoError(t, err)
		assert.Equal(t, "profesional", cfg.Defaults.Tone)
	})
}

func TestInfo(t *testing.T) {
	env := newTestEnv(t)
	t.Setenv(improve.APIKeyEnv, "")
	t.Setenv(improve.FallbackAPIKeyEnv, "")

	require.NoError(t, env.run("info"))

	out := env.out.String()
	assert.Contains(t, out, "(not found, using defaults)")
	assert.Contains(t, out, "Model: "+improve.DefaultModel)
	assert.Contains(t, out, "API key: not set")
	assert.Contains(t, out, "Directory: .")
}

func TestInfo_WithKey(t *testing.T) {
	env := newTestEnv(t)
	t.Setenv(improve.APIKeyEnv, "gsk_secret1234")

	require.NoError(t, env.run("info"))

	assert.Contains(t, env.out.String(), "API key: set (****1234)")
	assert.NotContains(t, env.out.String(), "gsk_secret")
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "****", maskKey("abc"))
	assert.Equal(t, "****wxyz", maskKey("abcdwxyz"))
}
