package main

import (
	"fmt"
	"os"

	"github.com/yokitheyo/vowelswap/config"
)

func main() {
	rootCmd := newRootCmd(config.Load())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "vowelswap: %v\n", err)
		os.Exit(1)
	}
}
