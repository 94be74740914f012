package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewDecodeCommand returns the command that decodes base64 text.
func NewDecodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [text]",
		Short: "Decode base64 text",
		Long: `Decode the given text, or the contents of the input file, and write the decoded bytes.

Characters outside of the base64 alphabet are skipped. The decoded bytes are
written unmodified, so binary payloads are safe to redirect to a file.`,
		RunE: runDecode,
		Args: cobra.MaximumNArgs(1),
	}

	addInputFlag(cmd)

	return cmd
}

func runDecode(cmd *cobra.Command, args []string) error {
	log, enc, err := setup()
	if err != nil {
		return err
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	decoded, err := enc.Decode(string(input))
	if err != nil {
		return fmt.Errorf("failed to decode input: %w", err)
	}

	log.Debug("decoded input", zap.Int("input.bytes", len(input)), zap.Int("output.bytes", len(decoded)))

	if _, err := cmd.OutOrStdout().Write(decoded); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
