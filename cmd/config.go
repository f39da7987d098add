package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "nosey-pytest"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	testDirFlagName   = "test-dir"
	excludeFlagName   = "exclude"
	rulesFileFlagName = "rules-file"
	verboseFlagName   = "verbose"

	dryRunFlagName     = "dry-run"
	parallelFlagName   = "parallel"
	noConvertFlagName  = "no-convert"
	skipVerifyFlagName = "skip-verify"
	reviewFlagName     = "review"
	backupDirFlagName  = "backup-dir"
	rescanFlagName     = "rescan"

	testDirsConfigKey     = "paths.tests"
	patternsConfigKey     = "paths.patterns"
	excludeConfigKey      = "paths.exclude"
	parallelConfigKey     = "migrate.parallel"
	backupDirConfigKey    = "migrate.backup_dir"
	converterConfigKey    = "migrate.converter"
	converterTimeoutKey   = "migrate.converter_timeout"
	testCommandConfigKey  = "migrate.test_command"
	verifyTimeoutKey      = "migrate.verify_timeout"
	reviewConfigKey       = "migrate.review"
	trackingPathConfigKey = "tracking.path"
	rulesFileConfigKey    = "rules.file"

	defaultConverterTimeout = time.Minute
	defaultVerifyTimeout    = time.Minute * 2

	defaultBackupDir    = ".migration_backups"
	defaultTrackingPath = ".pytest_migration.json"
	defaultParallel     = 1
	defaultReviewMode   = "keep"
	defaultConverter    = "nose2pytest"

	envPrefix = "NOSEY_PYTEST"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".nosey-pytest.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(testDirsConfigKey, []string{"tests"})
	viper.SetDefault(patternsConfigKey, []string{"test_*.py"})
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(backupDirConfigKey, defaultBackupDir)
	viper.SetDefault(converterConfigKey, []string{defaultConverter})
	viper.SetDefault(converterTimeoutKey, int64(defaultConverterTimeout.Seconds()))
	viper.SetDefault(testCommandConfigKey, []string{"pytest", "-xvs"})
	viper.SetDefault(verifyTimeoutKey, int64(defaultVerifyTimeout.Seconds()))
	viper.SetDefault(reviewConfigKey, defaultReviewMode)
	viper.SetDefault(trackingPathConfigKey, defaultTrackingPath)
	viper.SetDefault(rulesFileConfigKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

// converterTimeout reads the converter timeout from config, in seconds.
func converterTimeout() time.Duration {
	seconds := viper.GetInt64(converterTimeoutKey)
	if seconds <= 0 {
		return defaultConverterTimeout
	}

	return time.Duration(seconds) * time.Second
}

// verifyTimeout reads the verification timeout from config, in seconds.
func verifyTimeout() time.Duration {
	seconds := viper.GetInt64(verifyTimeoutKey)
	if seconds <= 0 {
		return defaultVerifyTimeout
	}

	return time.Duration(seconds) * time.Second
}
