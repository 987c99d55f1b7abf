package cli

import (
	"github.com/spf13/cobra"
)

func newDictionariesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "dictionaries",
		Aliases: []string{"dicts"},
		Short:   "List the built-in dictionaries",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []DictionaryInfo
			for _, d := range app.Catalog.All() {
				result = append(result, DictionaryInfo{
					Name:     d.Name(),
					Category: d.Category(),
					Words:    d.Len(),
				})
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}
