package cmd

const (
	logFormatFlag = "log-format"
	logFormatConf = "log.format"
	logLevelFlag  = "log-level"
	logLevelConf  = "log.level"
	encodingFlag  = "encoding"

	inputFlag     = "input"
	noNewlineFlag = "no-newline"

	stdinInput = "-"
)
