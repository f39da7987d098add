package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default nosey-pytest.yaml and seed migration tracking",
		Long: `Create a nosey-pytest.yaml in the current working directory populated with
the current CLI defaults, then scan the test directories and write an initial
migration tracking file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			err := viper.SafeWriteConfigAs(targetPath)
			if err != nil {
				var exists viper.ConfigFileAlreadyExistsError
				if !errors.As(err, &exists) {
					return fmt.Errorf("failed to write config file: %w", err)
				}

				cmd.Println("Config file already exists, keeping it")
			}

			return workflow.InitTracking(context.Background(), scanArgs())
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
