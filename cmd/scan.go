package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Find nose test files and applicable rules",
		Long:  scanLongDescription,
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Scan(context.Background(), scanArgs())
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
