package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dataviews/pkg/dims"
	"github.com/matzehuels/dataviews/pkg/manifest"
	"github.com/matzehuels/dataviews/pkg/view"
)

// infoCommand creates the info command for inspecting manifests.
func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info [manifest.toml]",
		Short: "Show a dataset's dimensions, keys, and bounds",
		Long: `Show a dataset's dimensions, keys, and bounds.

The info command loads a TOML manifest, builds the stack, and prints
its dimension list, key count, content type, and coordinate bounds.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
}

func runInfo(path string) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	s, err := m.Build()
	if err != nil {
		return err
	}

	if m.Title != "" {
		fmt.Println(StyleTitle.Render(m.Title))
	}
	printKeyValue("dimensions", strings.Join(describeDimensions(m.Dimensions), ", "))
	printKeyValue("keys", fmt.Sprintf("%d", s.Len()))
	printKeyValue("type", s.Type().String())
	if m.Style != "" {
		printKeyValue("style", m.Style)
	}

	if s.Type() == view.KindTable {
		printWarning("tabular entries have no axis extent")
		return nil
	}

	x, y := s.XLim(), s.YLim()
	printKeyValue("xlim", fmt.Sprintf("[%g, %g]", x.Min, x.Max))
	printKeyValue("ylim", fmt.Sprintf("[%g, %g]", y.Min, y.Max))
	return nil
}

func describeDimensions(dimensions []dims.Dimension) []string {
	out := make([]string, len(dimensions))
	for i, d := range dimensions {
		name := d.Name
		if d.Cyclic {
			name += " (cyclic)"
		}
		if d.Range != nil {
			name += fmt.Sprintf(" [%g..%g]", d.Range[0], d.Range[1])
		}
		out[i] = name
	}
	return out
}
