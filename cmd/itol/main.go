package main

import (
	"fmt"
	"os"

	"github.com/ibiology/itol/internal/cli"
	"github.com/ibiology/itol/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.Error(err.Error()))
		os.Exit(1)
	}
}
