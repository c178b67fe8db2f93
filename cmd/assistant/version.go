package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/assistant"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of assistant",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "assistant version %s\n", strings.TrimSpace(assistant.Version))
		},
	}
}
