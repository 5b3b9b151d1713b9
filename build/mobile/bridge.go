// Package mobile exposes a single gomobile-compatible entry point for
// running a Lox script from Swift/Kotlin host code.
package mobile

import (
	"encoding/json"
	"strings"

	"github.com/gosuda/golox"
	"github.com/gosuda/golox/loxerr"
)

type runResult struct {
	Output []string `json:"output"`
	Error  string   `json:"error,omitempty"`
}

// Run executes a single Lox source string and returns a JSON-encoded
// runResult: printed lines under "output", and any collected diagnostics
// joined under "error".
func Run(source string) string {
	result := runResult{}

	reporter := loxerr.NewCollectingReporter()
	golox.Run(source, func(line string) {
		result.Output = append(result.Output, line)
	}, reporter)

	var errs []string
	for _, e := range reporter.ParseErrors {
		errs = append(errs, e.Error())
	}
	for _, e := range reporter.RuntimeErrors {
		errs = append(errs, e.Error())
	}
	result.Error = strings.Join(errs, "\n")

	b, _ := json.Marshal(result)
	return string(b)
}
