package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"sizelabel/internal/model"
	"sizelabel/internal/sink"
	"sizelabel/internal/ui"
	"sizelabel/internal/util/format"
)

func newTuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tui",
		Short:         "Edit a repository's quotas interactively",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt := runStateFrom(cmd)
			defer func() { _ = rt.Log.Sync() }()

			form, err := formFromFlags(cmd)
			if err != nil {
				return err
			}
			in, out := cmd.InOrStdin(), cmd.OutOrStdout()
			if !isTerminal(in) || !isTerminal(out) {
				return &ExitError{Code: ExitCLIError, Err: errors.New("tui requires an interactive terminal")}
			}

			res, err := ui.Run(cmd.Context(), form, in, out)
			if errors.Is(err, ui.ErrCanceled) {
				rt.Log.Info("quota form canceled")
				return &ExitError{Code: ExitUIError, Err: err}
			}
			if err != nil {
				return &ExitError{Code: ExitUIError, Err: err}
			}
			printForm(out, res)
			return nil
		},
	}
	cmd.Flags().String("repo", "", "Repository name shown in the form")
	cmd.Flags().String("quota", "0", "Initial quota (e.g. 2GB; 0 = unlimited)")
	cmd.Flags().String("incoming", "0", "Initial incoming quota")
	cmd.Flags().String("outgoing", "0", "Initial outgoing quota")
	return cmd
}

func formFromFlags(cmd *cobra.Command) (model.QuotaForm, error) {
	repo, _ := cmd.Flags().GetString("repo")
	form := model.QuotaForm{Repository: repo}
	for flag, field := range map[string]model.QuotaField{
		"quota":    model.FieldQuota,
		"incoming": model.FieldIncoming,
		"outgoing": model.FieldOutgoing,
	} {
		raw, _ := cmd.Flags().GetString(flag)
		n, err := format.ParseHuman(raw)
		if err != nil {
			return model.QuotaForm{}, &ExitError{Code: ExitParseError, Err: fmt.Errorf("--%s: %w", flag, err)}
		}
		if err := form.Set(field, n); err != nil {
			return model.QuotaForm{}, &ExitError{Code: ExitCLIError, Err: err}
		}
	}
	return form, nil
}

func printForm(w io.Writer, form model.QuotaForm) {
	fmt.Fprintf(w, "%-16s %s\n", "Repository:", form.Repository)
	for _, f := range model.QuotaFields {
		var field sink.Field
		label := format.ReadableSize(&field, form.Get(f))
		fmt.Fprintf(w, "%-16s %s %s\n", f.Title()+":", field.Value(), label)
	}
}

