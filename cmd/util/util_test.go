package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestMustBindPFlag(t *testing.T) {
	t.Cleanup(viper.Reset)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("encoding", "base64", "")
	require.NoError(t, flags.Parse([]string{"--encoding", "noop"}))

	MustBindPFlag("encoding", flags.Lookup("encoding"))
	require.Equal(t, "noop", viper.GetString("encoding"))

	require.Panics(t, func() { MustBindPFlag("missing", nil) })
}

func TestMustBindEnv(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("NONCRYPTOR_TEST_ENCODING", "noop")

	MustBindEnv("encoding", "NONCRYPTOR_TEST_ENCODING")
	require.Equal(t, "noop", viper.GetString("encoding"))

	require.Panics(t, func() { MustBindEnv() })
}

func TestPrepareTempConfigFile(t *testing.T) {
	PrepareTempConfigFile(t, "encoding: noop\n")

	contents, err := os.ReadFile(filepath.Join(os.Getenv("HOME"), ".noncryptor", "config.yaml"))
	require.NoError(t, err)
	require.Equal(t, "encoding: noop\n", string(contents))
}
