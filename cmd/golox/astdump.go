package main

import (
	"fmt"
	"os"

	"github.com/gosuda/golox"
	"github.com/gosuda/golox/ast"
	"github.com/gosuda/golox/loxerr"
)

// dumpAST prints the parenthesized-prefix form of a script's statements
// without resolving or interpreting it — a debugging aid for the grammar,
// grounded on the Java original's standalone AstPrinter tool.
func dumpAST(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "golox: %v\n", err)
		os.Exit(65)
	}

	reporter := loxerr.NewCollectingReporter()
	stmts, ok := golox.Parse(string(src), reporter)
	for _, e := range reporter.ParseErrors {
		fmt.Fprintln(os.Stderr, e.Error())
	}
	if !ok {
		os.Exit(65)
	}

	fmt.Println(ast.PrintStmts(stmts))
}
