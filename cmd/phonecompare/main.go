package main

import (
	"fmt"
	"os"

	"github.com/denisok6893-rgb/ai-phone-comparison/internal/comparison"
)

// Exit codes for different failure modes
const (
	ExitSuccess = 0
	ExitError   = 1 // Catalog, storage or runtime error
	ExitUsage   = 2 // Invalid comparison input
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case comparison.IsContractError(err):
		return ExitUsage
	default:
		return ExitError
	}
}
