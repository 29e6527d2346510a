// Package cmd implements the rabbit command line interface.
package cmd

import (
	"github.com/spf13/cobra"
)

// New creates the root command with all subcommands registered.
func New() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "rabbit [events.json ...]",
		Short: "Classify GitHub contributors as bots or humans",
		Long: `rabbit classifies GitHub contributors as bots or humans from their
raw event history. Each input file holds one contributor's events in the
GitHub Events API JSON shape; rabbit normalizes them into semantic
activities, derives behavioral features, and runs a pretrained model.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(args, opts)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	addClassifyFlags(rootCmd, opts)

	rootCmd.AddCommand(NewCmdConfig())
	rootCmd.AddCommand(NewCmdFeatures())
	rootCmd.AddCommand(NewCmdVersion())

	return rootCmd
}
