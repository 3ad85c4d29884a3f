package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dataviews/pkg/analysis"
	"github.com/matzehuels/dataviews/pkg/export"
	"github.com/matzehuels/dataviews/pkg/manifest"
)

// describeCommand creates the describe command for summary statistics.
func (c *CLI) describeCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "describe [manifest.toml]",
		Short: "Reduce every dataset entry to summary statistics",
		Long: `Reduce every dataset entry to summary statistics.

The describe command builds the stack declared by a TOML manifest and
reduces each entry to a table of descriptive statistics (mean, median,
min, max, stddev) over its values, keyed like the input. The result is
written as JSON to --output or stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output JSON file (default stdout)")
	return cmd
}

func runDescribe(path, output string) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	s, err := m.Build()
	if err != nil {
		return err
	}
	described, err := analysis.Describe(s)
	if err != nil {
		return err
	}

	if output == "" {
		return export.WriteStack(&described.Stack, os.Stdout)
	}
	if err := export.WriteStackFile(&described.Stack, output); err != nil {
		return err
	}
	printSuccess("Described %s", path)
	printFile(output)
	return nil
}
