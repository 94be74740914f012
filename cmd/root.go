// Package cmd contains all the commands included in the binary file.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tdeslauriers/noncryptor/cmd/util"
	"github.com/tdeslauriers/noncryptor/pkg/encoder"
)

// NewRootCommand enables all children commands to read flags from CLI flags, environment variables prefixed with NONCRYPTOR, or config.yaml (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("NONCRYPTOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/noncryptor", "$HOME/.noncryptor", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	viper.SetDefault(logFormatFlag, "text")
	viper.SetDefault(logLevelFlag, "none")
	viper.SetDefault(encodingFlag, encoder.Base64)
	err := viper.ReadInConfig()
	if err == nil {
		if viper.IsSet(logFormatConf) {
			viper.SetDefault(logFormatFlag, viper.Get(logFormatConf))
		}
		if viper.IsSet(logLevelConf) {
			viper.SetDefault(logLevelFlag, viper.Get(logLevelConf))
		}
	}

	cmd := &cobra.Command{
		Use:   "noncryptor",
		Short: "Encode and decode base64 text",
		Long: `Encode and decode base64 text using the standard RFC 4648 alphabet.

Decoding is lenient: whitespace, line breaks and any other characters outside
of the alphabet are skipped, and decoded bytes are written as-is.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			flags := cmd.Root().PersistentFlags()

			util.MustBindPFlag(logFormatFlag, flags.Lookup(logFormatFlag))
			util.MustBindPFlag(logLevelFlag, flags.Lookup(logLevelFlag))
			util.MustBindPFlag(encodingFlag, flags.Lookup(encodingFlag))
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(logFormatFlag, "text", "the log format to output logs in (text or json)")
	flags.String(logLevelFlag, "none", "the log level to use (none, debug, info, warn or error)")
	flags.String(encodingFlag, encoder.Base64, "the encoding to apply (base64 or noop)")

	// NOTE: if you add a new flag here, add the binding in PersistentPreRun

	return cmd
}
