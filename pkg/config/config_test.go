package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/typkat/pkg/config"
	"github.com/Sumatoshi-tech/typkat/pkg/content"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "typkat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "paren", cfg.Styles.VecDelim)
	assert.Equal(t, "brace", cfg.Styles.CasesDelim)
	assert.InDelta(t, 11.0, cfg.Styles.FontSizePt, 0)
	assert.Equal(t, config.FormatJSON, cfg.Output.Format)
	assert.Equal(t, 2, cfg.Output.Indent)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "typkat", cfg.Telemetry.ServiceName)
	assert.Zero(t, cfg.Batch.Workers)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
styles:
  vec_delim: bracket
  cases_delim: paren
  font_size_pt: 12
output:
  format: tree
  validate: true
logging:
  level: debug
  json: true
batch:
  workers: 3
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "bracket", cfg.Styles.VecDelim)
	assert.Equal(t, "paren", cfg.Styles.MatDelim)
	assert.InDelta(t, 12.0, cfg.Styles.FontSizePt, 0)
	assert.Equal(t, config.FormatTree, cfg.Output.Format)
	assert.True(t, cfg.Output.Validate)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.JSON)
	assert.Equal(t, 3, cfg.Batch.Workers)

	styles, err := cfg.Styles.Styles()
	require.NoError(t, err)
	assert.Equal(t, content.DelimBracket, styles.VecDelim(nil))
	assert.Equal(t, content.DelimParen, styles.MatDelim(nil))
	assert.Equal(t, content.DelimParen, styles.CasesDelim(nil))
	assert.InDelta(t, 12.0, styles.FontSize(), 0)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("TYPKAT_STYLES_MAT_DELIM", "double-bar")
	t.Setenv("TYPKAT_OUTPUT_FORMAT", "compact")
	t.Setenv("TYPKAT_TELEMETRY_OTLP_ENDPOINT", "localhost:4317")

	cfg, err := config.LoadConfig(writeConfig(t, "output:\n  format: tree\n"))
	require.NoError(t, err)

	assert.Equal(t, "double-bar", cfg.Styles.MatDelim)
	assert.Equal(t, config.FormatCompact, cfg.Output.Format)
	assert.Equal(t, "localhost:4317", cfg.Telemetry.OTLPEndpoint)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"unknown delimiter", "styles:\n  vec_delim: angle\n"},
		{"zero font size", "styles:\n  font_size_pt: 0\n"},
		{"unknown format", "output:\n  format: xml\n"},
		{"unknown level", "logging:\n  level: loud\n"},
		{"negative workers", "batch:\n  workers: -1\n"},
		{"empty service", "telemetry:\n  service_name: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.LoadConfig(writeConfig(t, tt.body))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig(writeConfig(t, "styles: [unterminated"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalidConfig)
}

func TestStylesRejectsUnknownDelimiter(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Styles.CasesDelim = "angle"

	_, err := cfg.Styles.Styles()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	require.ErrorIs(t, err, content.ErrUnknownValue)
}
