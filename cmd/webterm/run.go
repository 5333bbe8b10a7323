package main

import (
	"bufio"
	"fmt"
	"io"

	"webterm/internal/errors"
	"webterm/internal/render"

	"github.com/spf13/cobra"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var (
		strict     bool
		transcript bool
	)

	cmd := &cobra.Command{
		Use:   "run [LINE...]",
		Short: "Run command lines without a UI",
		Long: `Run submits each argument as one input line to a fresh session and prints
the result, numbered by history id. Without arguments lines are read from
stdin. "clear" prints nothing and restarts the numbering. With --transcript
each entry is printed after its prompt, as it would appear in a terminal.`,
		Example: `  webterm run "cd about" "cat bio.txt"
  printf 'ls\ncd work\nls\n' | webterm run
  webterm run --transcript "cd projects" ls`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(opts.cfg)
			if err != nil {
				return err
			}

			var failed int
			submit := func(line string) {
				prompt := sess.Prompt()
				entry, cleared := sess.Submit(line)
				if cleared {
					return
				}
				if !entry.Result.OK() {
					failed++
				}
				if transcript {
					fmt.Fprintln(cmd.OutOrStdout(), render.Entry(prompt, entry))
					return
				}
				fmt.Fprintln(cmd.OutOrStdout(), render.Numbered(entry))
			}

			if len(args) > 0 {
				for _, line := range args {
					submit(line)
				}
			} else if err := scanLines(cmd.InOrStdin(), submit); err != nil {
				return err
			}

			if strict && failed > 0 {
				return errors.Newf("%d command(s) failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero if any command failed")
	cmd.Flags().BoolVarP(&transcript, "transcript", "t", false, "print prompt-prefixed entries instead of numbered ones")
	return cmd
}

func scanLines(r io.Reader, fn func(string)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "error reading input")
	}
	return nil
}
