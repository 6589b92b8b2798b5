package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/aka-chestnut/sql-formatter/pkg/format"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil, discard())
	require.NoError(t, err)

	assert.Equal(t, "sql", cfg.Language)
	assert.Equal(t, 2, cfg.TabWidth)
	assert.Equal(t, "upper", cfg.KeywordCase)
	assert.Equal(t, "always", cfg.MultilineLists)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, "language: postgresql\ntab_width: 4\n")

	cfg, err := Load(path, nil, discard())
	require.NoError(t, err)
	assert.Equal(t, "postgresql", cfg.Language)
	assert.Equal(t, 4, cfg.TabWidth)
	assert.Equal(t, "upper", cfg.KeywordCase) // untouched default
}

func TestLoad_UnknownKeyFails(t *testing.T) {
	path := writeConfig(t, "language: sql\ncolour_scheme: dark\n")

	_, err := Load(path, nil, discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour_scheme")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "language: postgresql\n")
	t.Setenv("SQLFMT_LANGUAGE", "mysql")

	cfg, err := Load(path, nil, discard())
	require.NoError(t, err)
	assert.Equal(t, "mysql", cfg.Language)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("SQLFMT_LANGUAGE", "mysql")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("language", "sql", "")
	flags.String("keyword-case", "upper", "")
	require.NoError(t, flags.Set("language", "sqlite"))

	cfg, err := Load("", flags, discard())
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Language)
	// Unchanged flags do not override lower layers.
	assert.Equal(t, "upper", cfg.KeywordCase)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil, discard())
	assert.Error(t, err)
}

func TestConfig_Options(t *testing.T) {
	cfg, err := Load("", nil, discard())
	require.NoError(t, err)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, format.DefaultOptions(), opts)
}

func TestConfig_OptionsValidates(t *testing.T) {
	cfg, err := Load("", nil, discard())
	require.NoError(t, err)
	cfg.Language = "imaginary"

	_, err = cfg.Options()
	var cerr *format.ConfigError
	require.ErrorAs(t, err, &cerr)
}

func TestBuildParams(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, buildParams(nil))
	})
	t.Run("positional", func(t *testing.T) {
		p := buildParams([]string{"1", "2"})
		require.NotNil(t, p)
	})
	t.Run("named", func(t *testing.T) {
		p := buildParams([]string{"id=42"})
		require.NotNil(t, p)
	})
}
