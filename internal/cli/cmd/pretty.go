package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sizelabel/internal/util/format"
)

func newPrettyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pretty [bytes...]",
		Short: "Print plain sizes such as \"1.50 KB\" (no unlimited sentinel)",
		Long: "pretty prints each value without parentheses. Values under 512 bytes are " +
			"shown as whole bytes; larger ones as a fraction of the next unit. " +
			"Values may be plain numbers or human sizes like 2GB.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := runStateFrom(cmd)
			defer func() { _ = rt.Log.Sync() }()

			values, err := inputValues(cmd, args)
			if err != nil {
				return err
			}
			for _, raw := range values {
				n, ok := format.Normalize(raw)
				if !ok {
					h, herr := format.ParseHuman(raw)
					if herr != nil {
						return &ExitError{Code: ExitParseError, Err: herr}
					}
					rt.Log.Debug("parsed human size", zap.String("input", raw), zap.Int64("bytes", h))
					n = float64(h)
				}
				fmt.Fprintln(cmd.OutOrStdout(), format.PrettySize(n))
			}
			return nil
		},
	}
}
