package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sgl-umons/rabbit/internal/features"
)

// NewCmdFeatures creates the features command, which prints the feature
// schema a model must be trained against.
func NewCmdFeatures() *cobra.Command {
	return &cobra.Command{
		Use:   "features",
		Short: "Print the feature schema",
		Long: `Print the names of the behavioral features computed per contributor,
in schema order. A custom model supplied with --model must be trained
against exactly this schema.`,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range features.Names() {
				fmt.Println(name)
			}
		},
	}
}
