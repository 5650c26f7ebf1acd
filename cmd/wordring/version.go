package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// GitVersion is set at build time with -ldflags "-X main.GitVersion=...".
var GitVersion = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the wordring version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "wordring", GitVersion)
			return err
		},
	}
}
