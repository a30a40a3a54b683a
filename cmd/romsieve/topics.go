package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"romsieve/pkg/topics"
)

var topicsCmd = &cobra.Command{
	Use:   "topics [topic]",
	Short: MsgTopicsShort,
	Long:  MsgTopicsLong,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Available topics:")
			for _, name := range topics.List() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
			}
			return nil
		}

		content, err := topics.Show(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	},
}
