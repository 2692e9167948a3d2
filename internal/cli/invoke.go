package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/matzehuels/textframe/pkg/client"
	"github.com/matzehuels/textframe/pkg/errors"
)

// invokeOpts holds the command-line flags for the invoke command.
type invokeOpts struct {
	remote  string // base URL of a textframe server; empty runs locally
	rawJSON bool   // print the JSON result instead of unquoting strings
}

// invokeCommand creates the invoke command, which runs a registered command
// by name the way a frontend would call it.
func (c *CLI) invokeCommand() *cobra.Command {
	var opts invokeOpts

	cmd := &cobra.Command{
		Use:   "invoke <command> [json-args|-]",
		Short: "Run a registered command with JSON arguments",
		Example: `  textframe invoke render_frame '{"text":"abc\nabcd"}'
  textframe invoke greet '{"name":"世界"}'
  echo '{"text":"hi"}' | textframe invoke render_frame - --remote http://127.0.0.1:7878`,
		Args: cobra.RangeArgs(1, 2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return c.Registry.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw []byte
			if len(args) == 2 {
				raw = []byte(args[1])
				if args[1] == "-" {
					data, err := io.ReadAll(cmd.InOrStdin())
					if err != nil {
						return errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
					}
					raw = data
				}
			}
			return c.runInvoke(cmd, args[0], raw, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.remote, "remote", "", "invoke on a textframe server at this URL")
	cmd.Flags().BoolVar(&opts.rawJSON, "json", false, "print the raw JSON result")

	return cmd
}

func (c *CLI) runInvoke(cmd *cobra.Command, name string, args []byte, opts *invokeOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	var (
		out json.RawMessage
		err error
	)
	if opts.remote == "" {
		out, err = c.Registry.Invoke(ctx, name, args)
	} else {
		out, err = c.invokeRemote(ctx, cmd.ErrOrStderr(), name, args, opts.remote)
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Invoked %s", name))

	return writeResult(cmd.OutOrStdout(), out, opts.rawJSON)
}

func (c *CLI) invokeRemote(ctx context.Context, stderr io.Writer, name string, args []byte, remote string) (json.RawMessage, error) {
	cl := client.New(remote, nil)
	loggerFromContext(ctx).Debug("remote invoke", "server", remote, "command", name)

	if f, ok := stderr.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		s := newSpinner(ctx, stderr, fmt.Sprintf("Invoking %s on %s", name, remote))
		s.Start()
		defer s.Stop()
	}
	return cl.Invoke(ctx, name, args)
}

// writeResult prints a command result. String results are printed
// unquoted so embedded line breaks reach the terminal verbatim.
func writeResult(w io.Writer, out json.RawMessage, rawJSON bool) error {
	if !rawJSON {
		var s string
		if err := json.Unmarshal(out, &s); err == nil {
			_, err := fmt.Fprintln(w, s)
			return err
		}
	}
	_, err := fmt.Fprintln(w, string(out))
	return err
}
