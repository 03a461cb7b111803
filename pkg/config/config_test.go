package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/Manu343726/sizeof/pkg/logging"
	"github.com/Manu343726/sizeof/pkg/memory"
	"github.com/Manu343726/sizeof/pkg/report"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, memory.MethodSizeof, cfg.SizeMethod())
	assert.Equal(t, report.FormatText, cfg.ReportFormat())
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel())
	assert.Empty(t, cfg.Log.File)
}

func TestReadFile_ExplicitFile(t *testing.T) {
	path := writeConfig(t, `
method: stride
format: yaml
log:
  level: debug
  file: sizeof.log
`)

	v := viper.New()
	SetDefaults(v)

	used, err := ReadFile(v, path)
	require.NoError(t, err)
	assert.Equal(t, path, used)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, memory.MethodStride, cfg.SizeMethod())
	assert.Equal(t, report.FormatYAML, cfg.ReportFormat())
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
	assert.Equal(t, "sizeof.log", cfg.Log.File)
}

func TestReadFile_MissingExplicitFile(t *testing.T) {
	v := viper.New()

	_, err := ReadFile(v, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestReadFile_NoFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".sizeof.yaml"), []byte("format: yaml\n"), 0o644))

	v := viper.New()
	SetDefaults(v)

	used, err := ReadFile(v, "")
	require.NoError(t, err)
	assert.Empty(t, used)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, report.FormatText, cfg.ReportFormat())
}

func TestLoad_IgnoresEnvironment(t *testing.T) {
	t.Setenv("SIZEOF_METHOD", "guess")
	t.Setenv("SIZEOF_FORMAT", "yaml")
	t.Setenv("METHOD", "stride")
	t.Setenv("FORMAT", "yaml")

	v := viper.New()
	SetDefaults(v)

	_, err := ReadFile(v, "")
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, memory.MethodSizeof, cfg.SizeMethod())
	assert.Equal(t, report.FormatText, cfg.ReportFormat())
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]struct {
		key   string
		value string
		err   error
	}{
		"method": {key: KeyMethod, value: "guess", err: memory.ErrUnknownMethod},
		"format": {key: KeyFormat, value: "xml", err: report.ErrUnknownFormat},
		"level":  {key: KeyLogLevel, value: "loud", err: logging.ErrUnknownLevel},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(c.key, c.value)

			_, err := Load(v)
			assert.ErrorIs(t, err, c.err)
		})
	}
}
