package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tdeslauriers/noncryptor/pkg/encoder"
	"github.com/tdeslauriers/noncryptor/pkg/logger"
)

// setup builds the logger and encoder configured through flags, environment or config file.
func setup() (logger.Logger, encoder.Encoder, error) {
	log, err := logger.NewLogger(viper.GetString(logFormatFlag), viper.GetString(logLevelFlag))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	enc, err := encoder.New(viper.GetString(encodingFlag))
	if err != nil {
		return nil, nil, err
	}

	return log, enc, nil
}

// readInput returns the positional argument if one was given, otherwise the
// contents of the file named by the input flag, where "-" is stdin.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(args[0]), nil
	}

	path, err := cmd.Flags().GetString(inputFlag)
	if err != nil {
		return nil, err
	}

	if path == stdinInput {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return data, nil
}

func addInputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(inputFlag, "i", stdinInput, "the file to read input from, - for stdin (ignored when text is given as an argument)")
}
