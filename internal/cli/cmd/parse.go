package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sizelabel/internal/util/format"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "parse [sizes...]",
		Short:         "Convert human sizes (1.5k, 2GB, unlimited) to byte counts",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := inputValues(cmd, args)
			if err != nil {
				return err
			}
			for _, raw := range values {
				n, err := format.ParseHuman(raw)
				if err != nil {
					return &ExitError{Code: ExitParseError, Err: err}
				}
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}
