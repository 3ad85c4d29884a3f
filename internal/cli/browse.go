package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dataviews/pkg/manifest"
	"github.com/matzehuels/dataviews/pkg/stack"
)

// browseCommand creates the browse command for interactive inspection.
func (c *CLI) browseCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "browse [manifest.toml]",
		Short: "Interactively browse a dataset's entries",
		Long: `Interactively browse a dataset's entries.

The browse command builds the stack declared by a TOML manifest and
opens a list of its entries: key, content kind, title, and coordinate
bounds per entry. Use --plain for a non-interactive listing suitable
for pipes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(args[0])
			if err != nil {
				return err
			}
			s, err := m.Build()
			if err != nil {
				return err
			}
			if plain {
				printEntries(s)
				return nil
			}
			model := NewStackListModel(m.Title, s)
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "plain listing instead of the interactive browser")
	return cmd
}

// printEntries lists stack entries without the interactive browser.
func printEntries(s *stack.Stack) {
	for _, it := range s.Items() {
		x, y := it.View.XLim(), it.View.YLim()
		fmt.Printf("%v\t%s\tx=[%g, %g]\ty=[%g, %g]\n",
			it.Key, it.View.Kind(), x.Min, x.Max, y.Min, y.Max)
	}
}
