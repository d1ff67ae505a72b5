package cli

import "github.com/yaklabco/gowikitext/pkg/runner"

// Exit codes for gowikitext.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitConversionFailed indicates one or more files failed to convert.
	ExitConversionFailed = 1

	// ExitWarnings indicates conversion produced warnings (strict mode only).
	ExitWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.Stats.FilesErrored > 0 {
		return ExitConversionFailed
	}

	if strict && result.Stats.WarningsTotal > 0 {
		return ExitWarnings
	}

	return ExitSuccess
}
