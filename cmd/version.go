package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tdeslauriers/noncryptor/internal/build"
)

// NewVersionCommand returns the command to get noncryptor version
func NewVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Return the noncryptor version",
		Long:  "Return the noncryptor version.",
		RunE:  version,
		Args:  cobra.NoArgs,
	}

	return cmd
}

// print out the built version
func version(cmd *cobra.Command, _ []string) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "noncryptor Version %s Date %s commit id %s\n", build.Version, build.Date, build.Commit)
	return err
}
