package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/textframe/pkg/errors"
	"github.com/matzehuels/textframe/pkg/frame"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	file        string // read text from this file instead of the argument
	stats       bool   // print frame geometry to stderr
	keepNewline bool   // keep the final newline of file or stdin input
}

// renderCommand creates the render command.
//
// Text comes from the single argument, --file, or stdin when neither is
// given. A file or stdin normally ends with a newline that is not meant as
// an empty last row, so one trailing "\n" is dropped unless --keep-newline
// is set. Argument text is used as is.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [text]",
		Short: "Draw text inside a frame",
		Example: `  textframe render "あaいbうcえeおo"
  printf 'abc\nabcd\n' | textframe render
  textframe render -f notes.txt --stats`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.file != "" && len(args) > 0 {
				return errors.New(errors.ErrCodeInvalidInput, "pass text as an argument or with --file, not both")
			}
			text, err := readInput(cmd.InOrStdin(), args, &opts)
			if err != nil {
				return err
			}
			return c.runRender(cmd, text, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read text from file")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "print frame geometry to stderr")
	cmd.Flags().BoolVar(&opts.keepNewline, "keep-newline", false, "keep the trailing newline of file or stdin input")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, text string, opts *renderOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	if err := errors.ValidateText(text); err != nil {
		return err
	}

	out := frame.Render(text)
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), out); err != nil {
		return err
	}

	stats := frame.Measure(text)
	prog.done(fmt.Sprintf("Rendered %d lines", stats.Lines))
	if opts.stats {
		printStats(cmd.ErrOrStderr(), stats)
	}
	return nil
}

// readInput returns the text to frame.
func readInput(stdin io.Reader, args []string, opts *renderOpts) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	var data []byte
	var err error
	if opts.file != "" {
		data, err = os.ReadFile(opts.file)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", opts.file)
			}
			return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", opts.file)
		}
	} else {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
		}
	}

	text := string(data)
	if !opts.keepNewline {
		text = strings.TrimSuffix(text, "\n")
	}
	return text, nil
}
