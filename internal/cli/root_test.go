package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/textframe/pkg/command"
	"github.com/matzehuels/textframe/pkg/errors"
	"github.com/matzehuels/textframe/pkg/frame"
	"github.com/matzehuels/textframe/pkg/observability"
	"github.com/matzehuels/textframe/pkg/server"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(observability.Reset)

	var stdout, stderr bytes.Buffer
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	want := []string{"commands", "completion", "invoke", "render", "serve", "tui"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRenderCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"argument", "", []string{"render", "abc"}, frame.Render("abc")},
		{"wide argument", "", []string{"render", "あaいbうcえeおo"}, frame.Render("あaいbうcえeおo")},
		{"stdin", "abc\nabcd\n", []string{"render"}, frame.Render("abc\nabcd")},
		{"empty stdin", "", []string{"render"}, frame.EmptyFrame()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("execute() error = %v", err)
			}
			if stdout != tt.want+"\n" {
				t.Errorf("stdout = %q, want %q", stdout, tt.want+"\n")
			}
		})
	}
}

func TestRenderCommandStats(t *testing.T) {
	_, stderr, err := execute(t, "", "render", "--stats", "あいう\nabcd")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	for _, want := range []string{"border glyphs", "widest row", "border is 4 columns, widest row is 6"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
}

func TestRenderCommandErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := execute(t, "", "render", "-f", path, "text")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("file and argument: error = %v, want INVALID_INPUT", err)
	}

	_, _, err = execute(t, "a\xffb", "render")
	if !errors.Is(err, errors.ErrCodeInvalidEncoding) {
		t.Errorf("invalid utf8: error = %v, want INVALID_ENCODING", err)
	}
}

func TestInvokeCommand(t *testing.T) {
	stdout, _, err := execute(t, "", "invoke", "render_frame", `{"text":"abc\nabcd"}`)
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if stdout != frame.Render("abc\nabcd")+"\n" {
		t.Errorf("stdout = %q", stdout)
	}

	stdout, _, err = execute(t, `{"name":"Ada"}`, "invoke", "greet", "-", "--json")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	var got string
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("--json output is not JSON: %q", stdout)
	}
	if got != "Hello, Ada! You've been greeted from Go!" {
		t.Errorf("greet = %q", got)
	}

	_, _, err = execute(t, "", "invoke", "nope")
	if !errors.Is(err, errors.ErrCodeCommandNotFound) {
		t.Errorf("unknown command: error = %v, want COMMAND_NOT_FOUND", err)
	}
}

func TestInvokeCommandRemote(t *testing.T) {
	ts := httptest.NewServer(server.New(command.Default(), nil, server.Options{}).Handler())
	defer ts.Close()

	stdout, _, err := execute(t, "", "invoke", "render_frame", `{"text":"あいうえお"}`, "--remote", ts.URL)
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if stdout != frame.Render("あいうえお")+"\n" {
		t.Errorf("stdout = %q", stdout)
	}

	stdout, _, err = execute(t, "", "commands", "--remote", ts.URL)
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if stdout != "greet\nrender_frame\n" {
		t.Errorf("commands stdout = %q", stdout)
	}
}

func TestCommandsCommand(t *testing.T) {
	stdout, _, err := execute(t, "", "commands")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if stdout != "greet\nrender_frame\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[log]\nlevel = \"shout\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := execute(t, "", "--config", path, "render", "x")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}

func TestCompletionCommand(t *testing.T) {
	stdout, _, err := execute(t, "", "completion", "bash")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.Contains(stdout, "textframe") {
		t.Error("bash completion should mention textframe")
	}
}
