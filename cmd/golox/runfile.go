package main

import (
	"fmt"
	"os"

	"github.com/gosuda/golox"
	"github.com/gosuda/golox/loxerr"
)

// runFile executes a single script non-interactively: `print` output goes
// to stdout, diagnostics go to stderr, and the process exit code follows
// spec.md §6 — 0 clean, 65 static error, 70 runtime error.
func runFile(path string) golox.Status {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "golox: %v\n", err)
		return golox.StatusStaticErr
	}

	reporter := loxerr.NewCollectingReporter()
	status := golox.Run(string(src), func(line string) {
		fmt.Println(line)
	}, reporter)

	for _, e := range reporter.ParseErrors {
		fmt.Fprintln(os.Stderr, e.Error())
	}
	for _, e := range reporter.RuntimeErrors {
		fmt.Fprintln(os.Stderr, e.Error())
	}
	return status
}
