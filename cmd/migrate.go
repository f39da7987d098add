package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eric-downes/nosey-pytest/internal/controller"
	"github.com/eric-downes/nosey-pytest/internal/domain"
	m "github.com/eric-downes/nosey-pytest/internal/model"
)

var migrateDryRunFlag bool
var migrateParallelFlag int
var migrateNoConvertFlag bool
var migrateSkipVerifyFlag bool
var migrateReviewFlag string
var migrateBackupDirFlag string

// migrateCmd represents the migrate command.
var migrateCmd = newMigrateCmd()

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate [files...]",
		Short: "Migrate nose test files to pytest",
		Long:  migrateLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			review, parallel := reviewPolicy(cmd, viper.GetString(reviewConfigKey), viper.GetInt(parallelConfigKey))

			return workflow.Migrate(context.Background(), domain.MigrateArgs{
				Scan:         scanArgs(),
				Files:        parsePaths(args),
				BackupDir:    m.Path(viper.GetString(backupDirConfigKey)),
				DryRun:       migrateDryRunFlag,
				UseConverter: !migrateNoConvertFlag,
				Verify:       !migrateSkipVerifyFlag,
				Review:       review,
				Parallel:     parallel,
			})
		},
	}

	configureMigrateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func configureMigrateFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&migrateDryRunFlag, dryRunFlagName, false, "report changes without writing any files")
	cmd.Flags().IntVarP(&migrateParallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of parallel workers")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)
	cmd.Flags().BoolVar(&migrateNoConvertFlag, noConvertFlagName, false, "skip the external nose2pytest assertion converter")
	cmd.Flags().BoolVar(&migrateSkipVerifyFlag, skipVerifyFlagName, false, "skip running tests after migrating each file")
	cmd.Flags().StringVar(&migrateReviewFlag, reviewFlagName, viper.GetString(reviewConfigKey), "review mode for changed files: keep, prompt or discard")
	bindFlagToConfig(cmd.Flags().Lookup(reviewFlagName), reviewConfigKey)
	cmd.Flags().StringVar(&migrateBackupDirFlag, backupDirFlagName, viper.GetString(backupDirConfigKey), "directory for pre-migration backups")
	bindFlagToConfig(cmd.Flags().Lookup(backupDirFlagName), backupDirConfigKey)
}

// reviewPolicy maps the configured review mode to a policy. The interactive
// prompt cannot share the terminal between workers, so it forces a single one.
func reviewPolicy(cmd *cobra.Command, mode string, parallel int) (domain.ReviewPolicy, int) {
	switch mode {
	case "prompt":
		return controller.PromptPolicy{Output: cmd.OutOrStdout()}, 1
	case "discard":
		return controller.DiscardPolicy{}, parallel
	default:
		return controller.KeepPolicy{}, parallel
	}
}
