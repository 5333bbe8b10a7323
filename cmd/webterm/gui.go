package main

import (
	"webterm/internal/gui"

	"github.com/spf13/cobra"
)

func newGUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(opts.cfg)
			if err != nil {
				return err
			}
			return gui.Run(sess)
		},
	}
}
