package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/forgo/volunteer/internal/model"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to a process exit status. Domain errors use their
// code family (1xxx -> 2, 2xxx -> 3, ...); anything else exits 1.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var domainErr *model.Error
	if errors.As(err, &domainErr) {
		return int(domainErr.Code)/1000 + 1
	}
	return 1
}
