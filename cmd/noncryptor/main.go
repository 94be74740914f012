package main

import (
	"os"

	"github.com/tdeslauriers/noncryptor/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	rootCmd.AddCommand(cmd.NewEncodeCommand())
	rootCmd.AddCommand(cmd.NewDecodeCommand())
	rootCmd.AddCommand(cmd.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
