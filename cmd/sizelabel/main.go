package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	sizelabelcmd "sizelabel/internal/cli/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(exitCode(sizelabelcmd.Execute(ctx)))
}

// exitCode reports err on stderr and maps it to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return sizelabelcmd.ExitOK
	}
	code := sizelabelcmd.ExitCLIError
	var ee *sizelabelcmd.ExitError
	if errors.As(err, &ee) {
		code = ee.Code
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintf(os.Stderr, "sizelabel: %s\n", msg)
	}
	return code
}
