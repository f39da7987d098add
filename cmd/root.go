// Package cmd provides the root command and CLI setup for nosey-pytest.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/eric-downes/nosey-pytest/internal/adapter"
	"github.com/eric-downes/nosey-pytest/internal/controller"
	"github.com/eric-downes/nosey-pytest/internal/domain"
	"github.com/eric-downes/nosey-pytest/internal/domain/rules"
	m "github.com/eric-downes/nosey-pytest/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var pyAdapter adapter.PyFileAdapter
var trackingStore adapter.TrackingStore
var converterAdapter adapter.ConverterAdapter
var testAdapter adapter.TestRunnerAdapter
var registry *domain.Registry
var scanner domain.Scanner
var migrator domain.Migrator
var workflow domain.Workflow
var ui controller.UI

// testDirsFlag is a root-level flag narrowing commands to specific test directories.
var testDirsFlag []string

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

// rulesFileFlag points at a YAML file with additional textual rules.
var rulesFileFlag string

// verboseFlag switches logging to debug level.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	pyAdapter = adapter.NewLocalPyFileAdapter()
	trackingStore = adapter.NewJSONTrackingStore(
		projectRoot(),
		m.Path(viper.GetString(trackingPathConfigKey)),
		fsAdapter,
	)
	converterAdapter = adapter.NewNose2PytestAdapter(viper.GetStringSlice(converterConfigKey), converterTimeout())
	testAdapter = adapter.NewLocalTestRunnerAdapter(viper.GetStringSlice(testCommandConfigKey), verifyTimeout())
	buildRuleServices()
}

// buildRuleServices wires every service that depends on the rule registry.
// It runs again when a rules file arrives on the command line, because flags
// are parsed after the initial wiring.
func buildRuleServices() {
	registry = buildRegistry()
	scanner = domain.NewScanner(fsAdapter, pyAdapter, registry)
	migrator = domain.NewMigrator(fsAdapter, converterAdapter, testAdapter, trackingStore, registry)
	workflow = domain.NewWorkflow(
		fsAdapter,
		pyAdapter,
		trackingStore,
		testAdapter,
		ui,
		scanner,
		migrator,
		registry,
	)
}

// buildRegistry assembles the built-in rule catalogue plus any user rules.
// A broken rules file downgrades to the built-in catalogue with a warning
// instead of making every command unusable.
func buildRegistry() *domain.Registry {
	reg, err := domain.DefaultRegistry(loadUserRules(viper.GetString(rulesFileConfigKey))...)
	if err != nil {
		slog.Warn("Falling back to built-in rules", "error", err)
		reg, err = domain.DefaultRegistry()
		cobra.CheckErr(err)
	}

	return reg
}

func loadUserRules(path string) []m.Rule {
	if strings.TrimSpace(path) == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("Could not read rules file", "path", path, "error", err)
		return nil
	}

	userRules, err := rules.ParseUserRules(data)
	if err != nil {
		slog.Warn("Could not parse rules file", "path", path, "error", err)
		return nil
	}

	return userRules
}

func projectRoot() m.Path {
	root, err := fsAdapter.FindProjectRoot(".")
	if err != nil {
		return "."
	}

	return root
}

// scanArgs collects the effective file-discovery settings for the current invocation.
func scanArgs() domain.ScanArgs {
	return domain.ScanArgs{
		Root:     projectRoot(),
		Paths:    viper.GetStringSlice(testDirsConfigKey),
		Patterns: viper.GetStringSlice(patternsConfigKey),
		Exclude:  viper.GetStringSlice(excludeConfigKey),
	}
}

const testLayoutHelp = `File discovery honors the configured test directories (default: tests)
and file name patterns (default: test_*.py).`

const rootLongDescription = `Nosey Pytest migrates Python test suites from the abandoned nose framework
to pytest. It rewrites imports, assertion helpers, decorators and test
classes through an ordered rule catalogue, backs up every file it touches,
and can run the migrated tests to confirm the suite still passes.

` + testLayoutHelp

const scanLongDescription = `Scan the test directories for files that still use nose and report which
rules apply to each file, how often they match, and a complexity estimate.

` + testLayoutHelp

const migrateLongDescription = `Migrate nose test files to pytest in place. Files may be given explicitly;
without arguments every nose file found in the test directories is migrated.

Each file is backed up before it is rewritten. When verification is enabled
the migrated file is run under pytest and restored from backup on failure.

` + testLayoutHelp

const statusLongDescription = `Show migration progress per test directory from the tracking file,
optionally rescanning the test directories first.`

const verifyLongDescription = `Run migrated test files under pytest and report which ones pass. Files may
be given explicitly; without arguments the files recorded as migrated are
verified.`

const rulesLongDescription = `List the registered transformation rules in priority order, including any
rules loaded from a user rules file.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nosey-pytest",
		Short: "Nose to pytest test suite migration tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			// A rules file passed as a flag is only visible after parsing,
			// so the rule-dependent services are wired again.
			if cmd.Flags().Changed(rulesFileFlagName) {
				buildRuleServices()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringArrayVarP(
			&testDirsFlag, testDirFlagName, "t",
			viper.GetStringSlice(testDirsConfigKey),
			"test directory to scan (can be repeated)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(testDirFlagName), testDirsConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files whose path contains this fragment (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().StringVar(&rulesFileFlag, rulesFileFlagName, viper.GetString(rulesFileConfigKey), "YAML file with additional transformation rules")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(rulesFileFlagName), rulesFileConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
