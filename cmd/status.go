package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/eric-downes/nosey-pytest/internal/domain"
)

var statusRescanFlag bool

// statusCmd represents the status command.
var statusCmd = newStatusCmd()

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration progress",
		Long:  statusLongDescription,
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Status(context.Background(), domain.StatusArgs{
				Scan:   scanArgs(),
				Rescan: statusRescanFlag,
			})
		},
	}

	cmd.Flags().BoolVar(&statusRescanFlag, rescanFlagName, false, "rescan the test directories before reporting")

	return cmd
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
