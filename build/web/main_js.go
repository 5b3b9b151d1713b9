//go:build js && wasm

package main

import (
	"encoding/json"
	"strings"
	"syscall/js"

	"github.com/gosuda/golox"
	"github.com/gosuda/golox/loxerr"
)

type runResult struct {
	Output []string `json:"output"`
	Error  string   `json:"error,omitempty"`
}

func runSource(this js.Value, args []js.Value) any {
	result := runResult{}
	if len(args) < 1 {
		result.Error = "loxRun requires a source string argument"
		b, _ := json.Marshal(result)
		return string(b)
	}

	source := args[0].String()
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

func main() {
	js.Global().Set("loxRun", js.FuncOf(runSource))
	select {}
}
