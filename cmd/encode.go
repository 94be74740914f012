package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewEncodeCommand returns the command that encodes its input.
func NewEncodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode input as base64 text",
		Long:  "Encode the given text, or the contents of the input file, and print the encoded text.",
		RunE:  runEncode,
		Args:  cobra.MaximumNArgs(1),
	}

	addInputFlag(cmd)
	cmd.Flags().BoolP(noNewlineFlag, "n", false, "do not print a trailing newline")

	return cmd
}

func runEncode(cmd *cobra.Command, args []string) error {
	log, enc, err := setup()
	if err != nil {
		return err
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	encoded, err := enc.Encode(input)
	if err != nil {
		return fmt.Errorf("failed to encode input: %w", err)
	}

	log.Debug("encoded input", zap.Int("input.bytes", len(input)), zap.Int("output.bytes", len(encoded)))

	noNewline, err := cmd.Flags().GetBool(noNewlineFlag)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if noNewline {
		_, err = fmt.Fprint(out, encoded)
	} else {
		_, err = fmt.Fprintln(out, encoded)
	}
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
