package main

import (
	"github.com/spf13/cobra"

	"github.com/okian/hardcard/internal/domain/types"
)

const defaultSearchLimit = 10

func newVarsCmd(c *cli) *cobra.Command {
	var (
		category, dataType, search string
		limit                      int
	)
	cmd := &cobra.Command{
		Use:   "vars",
		Short: "List or search the variable catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var vars []types.VariableDefinition
			if search != "" {
				vars = c.svc.SearchVariables(search, limit)
			} else {
				vars = c.svc.Variables(types.Category(category), types.DataType(dataType))
			}
			if vars == nil {
				vars = []types.VariableDefinition{}
			}
			return c.print(cmd.OutOrStdout(), vars)
		},
	}
	f := cmd.Flags()
	f.StringVar(&category, "category", "", "only this category (team, score, event, player, templateControl, media)")
	f.StringVar(&dataType, "type", "", "only this data type (text, number, color, image, logo)")
	f.StringVar(&search, "search", "", "rank variables by similarity to this term")
	f.IntVar(&limit, "limit", defaultSearchLimit, "maximum search results")
	return cmd
}
