package cmd

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "nosey-pytest", configBaseName)
	assert.Equal(t, "nosey-pytest.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "test-dir", testDirFlagName)
	assert.Equal(t, "exclude", excludeFlagName)
	assert.Equal(t, "rules-file", rulesFileFlagName)
	assert.Equal(t, "parallel", parallelFlagName)
	assert.Equal(t, "paths.tests", testDirsConfigKey)
	assert.Equal(t, "paths.exclude", excludeConfigKey)
	assert.Equal(t, "migrate.parallel", parallelConfigKey)
	assert.Equal(t, ".migration_backups", defaultBackupDir)
	assert.Equal(t, ".pytest_migration.json", defaultTrackingPath)
	assert.Equal(t, 1, defaultParallel)
	assert.Equal(t, "keep", defaultReviewMode)
	assert.Equal(t, "nose2pytest", defaultConverter)
	assert.Equal(t, "NOSEY_PYTEST", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty falls back", "", slog.LevelWarn},
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning alias", "warning", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"numeric", "-4", slog.LevelDebug},
		{"mixed case", "Debug", slog.LevelDebug},
		{"garbage falls back", "loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestTimeoutDefaults(t *testing.T) {
	assert.Equal(t, time.Minute, converterTimeout())
	assert.Equal(t, 2*time.Minute, verifyTimeout())
}
