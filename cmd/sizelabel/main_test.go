package main

import (
	"errors"
	"fmt"
	"testing"

	sizelabelcmd "sizelabel/internal/cli/cmd"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "ok", err: nil, want: sizelabelcmd.ExitOK},
		{name: "plain error", err: errors.New("boom"), want: sizelabelcmd.ExitCLIError},
		{name: "parse error", err: &sizelabelcmd.ExitError{Code: sizelabelcmd.ExitParseError, Err: errors.New("bad size")}, want: sizelabelcmd.ExitParseError},
		{name: "wrapped ui error", err: fmt.Errorf("run: %w", &sizelabelcmd.ExitError{Code: sizelabelcmd.ExitUIError}), want: sizelabelcmd.ExitUIError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
