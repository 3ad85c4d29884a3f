package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dataviews/pkg/pipeline"
)

// sampleCommand creates the sample command for running the pipeline.
func (c *CLI) sampleCommand() *cobra.Command {
	opts := pipeline.Options{}
	var output string

	cmd := &cobra.Command{
		Use:   "sample [manifest.toml]",
		Short: "Sample a dataset into curves along one dimension",
		Long: `Sample a dataset into curves along one dimension.

The sample command builds the stack declared by a TOML manifest, pivots
it on the sampling axis, and extracts one curve per remaining key and
sample point. Grouped dimensions compose into overlaid curves sharing a
plot. Results are written as JSON: one stack per sample point, arranged
on a grid.

Point specs take two forms: "lo:hi:n" expands to n evenly spaced
points, and "a,b,c" lists explicit points. Table datasets are probed by
heading with --heading instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Manifest = args[0]
			opts.Output = output
			opts.Logger = loggerFromContext(cmd.Context())

			prog := newProgress(opts.Logger)
			result, err := c.newRunner().Execute(cmd.Context(), opts)
			if err != nil {
				printError("Sampling failed")
				return err
			}
			prog.done(fmt.Sprintf("Sampled %d keys at %d points",
				result.Stats.KeyCount, result.Stats.PointCount))

			printSuccess("Sampled %s", opts.Manifest)
			if output != "" {
				printFile(output)
			}
			printStats(result.Stats.KeyCount, result.Stats.PointCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Axis, "axis", "", "dimension the sampled curves run along")
	cmd.Flags().StringSliceVar(&opts.GroupBy, "group-by", nil, "dimensions composed into overlays instead of keys")
	cmd.Flags().StringVar(&opts.Points, "points", "", `sample points: "lo:hi:n" range or comma-separated scalars`)
	cmd.Flags().StringSliceVar(&opts.Heading, "heading", nil, "table headings to probe (table datasets)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output JSON file")

	return cmd
}
