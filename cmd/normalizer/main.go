// Package main provides the normalizer command-line tool. It reads CSV from
// stdin, writes normalized CSV to stdout, and reports row failures on
// stderr. No flags; an optional config file path comes from the
// NORMALIZER_CONFIG environment variable.
package main

import (
	"fmt"
	"io"
	"os"

	"csvnorm/internal/config"
	"csvnorm/internal/logger"
	"csvnorm/internal/normalizer"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

// run wires the three streams into the processor. A stream-level failure
// produces a single fatal diagnostic block after whatever full rows were
// already flushed; per the tool's contract the exit status is success
// either way, since partial output is deliberate rather than rolled back.
func run(stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(stderr, "Unhandled error! Could not continue.\nDebug information: %v.\n", err)

		return 0
	}

	log := logger.NewLogger(stderr, cfg.Logging.Level)

	proc := normalizer.NewProcessor(log, stderr, cfg)

	stats, err := proc.Run(stdin, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Unhandled error! Could not continue.\nDebug information: %v.\n", err)

		return 0
	}

	log.Info("normalization complete",
		"rows", stats.Rows,
		"written", stats.Written,
		"skipped", stats.Skipped)

	return 0
}
