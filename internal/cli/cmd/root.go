package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"

	"sizelabel/internal/config"
	"sizelabel/internal/logging"
	"sizelabel/internal/model"
	"sizelabel/internal/sink"
	"sizelabel/internal/util/format"
)

const (
	ExitOK         = 0
	ExitCLIError   = 1
	ExitParseError = 2
	ExitUIError    = 3
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

type ctxKey string

const runStateKey ctxKey = "runState"

type runState struct {
	Options model.CLIOptions
	Log     *zap.Logger
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:   "sizelabel [bytes...]",
		Short: "Label byte counts as human-readable quota sizes",
		Long: "sizelabel turns byte counts into labels such as \"( 1.50 MB )\". " +
			"A count of 0 means no limit and is shown as \"( unlimited size )\". " +
			"With no arguments, values are read one per line from stdin.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupRuntime(cmd, v)
		},
		RunE: runLabels,
	}

	bindPersistentFlags(root.PersistentFlags())
	root.Flags().Bool("human", false, "Parse values strictly as human sizes (1536, 1.5k, 2GB)")

	root.AddCommand(newPrettyCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newTuiCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

// bindPersistentFlags registers flags available to all subcommands. Their
// keys are bound to viper in config.Init.
func bindPersistentFlags(fs *pflag.FlagSet) {
	fs.BoolP("verbose", "v", false, "Log diagnostics at debug level")
	fs.Bool("show-value", false, "Print the normalized byte count before each label")
	fs.String("log-level", "warn", "Log level: debug, info, warn, error")
}

// Execute runs the CLI with the provided context.
func Execute(ctx context.Context) error {
	root := newRootCmd(viper.New())
	return root.ExecuteContext(ctx)
}

func setupRuntime(cmd *cobra.Command, v *viper.Viper) error {
	if err := config.Init(v, cmd.Root()); err != nil {
		return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("load config: %w", err)}
	}
	opts := model.CLIOptions{
		ShowValue: v.GetBool(config.KeyShowValue),
		Verbose:   v.GetBool(config.KeyVerbose),
		LogLevel:  v.GetString(config.KeyLogLevel),
	}
	if cmd.Flags().Lookup("human") != nil {
		human, err := cmd.Flags().GetBool("human")
		if err != nil {
			return &ExitError{Code: ExitCLIError, Err: err}
		}
		opts.Human = human
	}
	level := opts.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	rt := runState{Options: opts, Log: logging.New(level, cmd.ErrOrStderr())}
	cmd.SetContext(context.WithValue(cmd.Context(), runStateKey, rt))
	return nil
}

func runStateFrom(cmd *cobra.Command) runState {
	if rt, ok := cmd.Context().Value(runStateKey).(runState); ok {
		return rt
	}
	return runState{Log: zap.NewNop()}
}

func runLabels(cmd *cobra.Command, args []string) error {
	rt := runStateFrom(cmd)
	defer func() { _ = rt.Log.Sync() }()

	values, err := inputValues(cmd, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, raw := range values {
		if err := writeLabel(out, rt, raw); err != nil {
			return err
		}
	}
	return nil
}

// writeLabel prints the label for raw. With --show-value the normalized
// count is written first, tab-separated, by the formatter itself.
func writeLabel(w io.Writer, rt runState, raw string) error {
	var value any = raw
	if rt.Options.Human {
		n, err := format.ParseHuman(raw)
		if err != nil {
			return &ExitError{Code: ExitParseError, Err: err}
		}
		value = n
	} else if _, ok := format.Normalize(raw); !ok {
		rt.Log.Debug("value is not a number, treating as unlimited", zap.String("input", raw))
	}

	var target format.Sink
	var ws *sink.Writer
	if rt.Options.ShowValue {
		ws = sink.NewWriter(w, "\t")
		target = ws
	}
	label := format.ReadableSize(target, value)
	if ws != nil && ws.Err() != nil {
		return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("write output: %w", ws.Err())}
	}
	if _, err := fmt.Fprintln(w, label); err != nil {
		return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("write output: %w", err)}
	}
	return nil
}

// inputValues returns args, or the non-blank lines of stdin when no args
// were given and stdin is not a terminal.
func inputValues(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	in := cmd.InOrStdin()
	if isTerminal(in) {
		return nil, &ExitError{Code: ExitCLIError, Err: errors.New("usage: sizelabel <bytes> [<bytes> ...] or pipe values on stdin")}
	}
	var values []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			values = append(values, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &ExitError{Code: ExitCLIError, Err: fmt.Errorf("read stdin: %w", err)}
	}
	return values, nil
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
