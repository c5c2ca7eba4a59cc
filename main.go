package main

import (
	"codemart/cmd"
	"fmt"
	"os"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "codemart: %s\n", err)
		os.Exit(1)
	}
}
