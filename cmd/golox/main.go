package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	astPath := flag.String("ast", "", "print the parsed AST for <script> instead of running it")
	flag.Parse()

	if *astPath != "" {
		dumpAST(*astPath)
		return
	}

	args := flag.Args()
	switch len(args) {
	case 0:
		runREPL()
	case 1:
		os.Exit(int(runFile(args[0])))
	default:
		fmt.Println("usage: golox [-ast <script>] [script]")
		os.Exit(64)
	}
}
