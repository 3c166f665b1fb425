package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier source is
// not overwritten by a later one, while zero fields are filled in.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Token: "from-env"}},
		&StructuredConfig{App: App{Token: "from-json"}, Storage: Storage{AccountsFile: "out.txt"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.Token)
	assert.Equal(t, "out.txt", cfg.Storage.AccountsFile)
}

// TestBuild_RejectsNegativeTimeout verifies structured validation.
func TestBuild_RejectsNegativeTimeout(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Adapter: Adapter{RequestTimeout: -time.Second}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_TOKEN", "env-token")
	t.Setenv("STORAGE_ACCOUNTS_FILE", "env-accounts.txt")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-token", b.configs[0].App.Token)
	assert.Equal(t, "env-accounts.txt", b.configs[0].Storage.AccountsFile)
}

// TestWithEnv_SetsErrorOnBadDuration verifies that a malformed env duration
// is recorded on the builder.
func TestWithEnv_SetsErrorOnBadDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "soon")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_SkipsMissingDefaultFile verifies that without CONFIG and
// without ./config.json nothing is appended.
func TestWithJSON_SkipsMissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_ReadsDefaultFile verifies that ./config.json is read when no
// path was configured.
func TestWithJSON_ReadsDefaultFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(DefaultJSONFilePath, []byte(`{"token":"cwd-token"}`), 0o600))

	b := newConfigBuilder()
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "cwd-token", b.configs[0].App.Token)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a configured JSON
// file is parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, StructuredJSONConfig{Token: "json-token", AccountsFile: "json.txt"})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-token", b.configs[1].App.Token)
	assert.Equal(t, "json.txt", b.configs[1].Storage.AccountsFile)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that an explicitly
// configured but missing file sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

// TestWithDefaults_FillsUnsetFields verifies that defaults only fill gaps.
func TestWithDefaults_FillsUnsetFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{AccountsFile: "mine.txt"}})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "mine.txt", cfg.Storage.AccountsFile)
	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultIdleTimeout, cfg.Runtime.IdleTimeout)
}

// TestGetStructuredConfig_EnvOverridesJSON verifies the full source order.
func TestGetStructuredConfig_EnvOverridesJSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"token":        "json-token",
		"api_address":  "http://json.example",
		"idle_timeout": "5m",
	})
	t.Setenv("CONFIG", path)
	t.Setenv("ADAPTER_ADDRESS", "http://env.example")

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)
	assert.Equal(t, "json-token", cfg.App.Token)
	assert.Equal(t, "http://env.example", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Minute, cfg.Runtime.IdleTimeout)
	assert.Equal(t, DefaultAccountsFile, cfg.Storage.AccountsFile)
}
