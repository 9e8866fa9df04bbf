package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := newRootCmd(viper.New())
	var out, errOut bytes.Buffer
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.ExecuteContext(context.Background())
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return -1
}

func TestRootLabels(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "zero", args: []string{"0"}, want: "( unlimited size )\n"},
		{name: "bytes", args: []string{"500"}, want: "( 500.00 bytes )\n"},
		{name: "kilobytes", args: []string{"1536"}, want: "( 1.50 KB )\n"},
		{name: "gigabytes", args: []string{"1073741824"}, want: "( 1.00 GB )\n"},
		{name: "garbage", args: []string{"abc"}, want: "( unlimited size )\n"},
		{name: "negative after dashdash", args: []string{"--", "-500"}, want: "( -500.00 bytes )\n"},
		{name: "several", args: []string{"1", "2048"}, want: "( 1.00 bytes )\n( 2.00 KB )\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := execute(t, "", tt.args...)
			if r.err != nil {
				t.Fatalf("unexpected error: %v", r.err)
			}
			if r.stdout != tt.want {
				t.Errorf("stdout = %q, want %q", r.stdout, tt.want)
			}
		})
	}
}

func TestRootShowValue(t *testing.T) {
	r := execute(t, "", "--show-value", "1536.6", "junk")
	if r.err != nil {
		t.Fatal(r.err)
	}
	want := "1537\t( 1.50 KB )\n0\t( unlimited size )\n"
	if r.stdout != want {
		t.Errorf("stdout = %q, want %q", r.stdout, want)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRootShowValueWriteError(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := newRootCmd(viper.New())
	root.SetArgs([]string{"--show-value", "2048"})
	root.SetIn(strings.NewReader(""))
	root.SetOut(failWriter{})
	root.SetErr(&bytes.Buffer{})
	err := root.ExecuteContext(context.Background())
	if code := exitCode(err); code != ExitCLIError {
		t.Errorf("exit code = %d, want %d (err %v)", code, ExitCLIError, err)
	}
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("err = %v, want write failure", err)
	}
}

func TestRootShowValueFromEnv(t *testing.T) {
	t.Setenv("SIZELABEL_SHOW_VALUE", "true")
	r := execute(t, "", "2048")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if r.stdout != "2048\t( 2.00 KB )\n" {
		t.Errorf("stdout = %q", r.stdout)
	}
}

func TestRootReadsStdin(t *testing.T) {
	r := execute(t, "1024\n\n  1048576  \nnope\n")
	if r.err != nil {
		t.Fatal(r.err)
	}
	want := "( 1.00 KB )\n( 1.00 MB )\n( unlimited size )\n"
	if r.stdout != want {
		t.Errorf("stdout = %q, want %q", r.stdout, want)
	}
}

func TestRootHuman(t *testing.T) {
	r := execute(t, "", "--human", "--show-value", "2GB", "unlimited")
	if r.err != nil {
		t.Fatal(r.err)
	}
	want := "2147483648\t( 2.00 GB )\n0\t( unlimited size )\n"
	if r.stdout != want {
		t.Errorf("stdout = %q, want %q", r.stdout, want)
	}

	r = execute(t, "", "--human", "lots")
	if code := exitCode(r.err); code != ExitParseError {
		t.Errorf("exit code = %d, want %d (err %v)", code, ExitParseError, r.err)
	}
}

func TestRootVerboseLogsFallback(t *testing.T) {
	r := execute(t, "", "-v", "abc")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if !strings.Contains(r.stderr, "treating as unlimited") || !strings.Contains(r.stderr, "abc") {
		t.Errorf("stderr = %q, want fallback diagnostic", r.stderr)
	}

	r = execute(t, "", "abc")
	if r.stderr != "" {
		t.Errorf("stderr = %q, want no diagnostics at default level", r.stderr)
	}
}

func TestPretty(t *testing.T) {
	r := execute(t, "", "pretty", "0", "100", "512", "1536", "1.5GB")
	if r.err != nil {
		t.Fatal(r.err)
	}
	want := "0 bytes\n100 bytes\n0.50 KB\n1.50 KB\n1.50 GB\n"
	if r.stdout != want {
		t.Errorf("stdout = %q, want %q", r.stdout, want)
	}

	r = execute(t, "", "pretty", "lots")
	if code := exitCode(r.err); code != ExitParseError {
		t.Errorf("exit code = %d, want %d", code, ExitParseError)
	}
}

func TestParse(t *testing.T) {
	r := execute(t, "1.5k\nunlimited\n", "parse")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if r.stdout != "1536\n0\n" {
		t.Errorf("stdout = %q", r.stdout)
	}

	r = execute(t, "", "parse", "twelve")
	if code := exitCode(r.err); code != ExitParseError {
		t.Errorf("exit code = %d, want %d", code, ExitParseError)
	}
}

func TestTuiRequiresTerminal(t *testing.T) {
	r := execute(t, "", "tui", "--repo", "demo")
	if code := exitCode(r.err); code != ExitCLIError {
		t.Errorf("exit code = %d, want %d (err %v)", code, ExitCLIError, r.err)
	}
}

func TestTuiRejectsBadInitialQuota(t *testing.T) {
	r := execute(t, "", "tui", "--quota", "lots")
	if code := exitCode(r.err); code != ExitParseError {
		t.Errorf("exit code = %d, want %d (err %v)", code, ExitParseError, r.err)
	}
}

func TestCompletion(t *testing.T) {
	r := execute(t, "", "completion", "bash")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if !strings.Contains(r.stdout, "sizelabel") {
		t.Error("bash completion does not mention the command")
	}

	r = execute(t, "", "completion", "tcsh")
	if r.err == nil {
		t.Error("expected error for unsupported shell")
	}
}

func TestMalformedConfig(t *testing.T) {
	root := newRootCmd(viper.New())
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	writeConfig(t, dir, "show_value: [\n")
	root.SetArgs([]string{"1"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	err := root.ExecuteContext(context.Background())
	if code := exitCode(err); code != ExitCLIError {
		t.Errorf("exit code = %d, want %d (err %v)", code, ExitCLIError, err)
	}
}
