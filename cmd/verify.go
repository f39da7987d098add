package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/eric-downes/nosey-pytest/internal/domain"
)

// verifyCmd represents the verify command.
var verifyCmd = newVerifyCmd()

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [files...]",
		Short: "Run migrated test files under pytest",
		Long:  verifyLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Verify(context.Background(), domain.VerifyArgs{
				Scan:  scanArgs(),
				Files: parsePaths(args),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
