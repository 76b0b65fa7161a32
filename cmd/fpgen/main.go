package main

import (
	"fmt"
	"os"

	"github.com/shabbyrobe/go-fp/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fpgen:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
