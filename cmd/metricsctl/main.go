package main

import (
	"fmt"
	"os"

	"github.com/vfg2006/bizmetrics-api/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
