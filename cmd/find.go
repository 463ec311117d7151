package main

import (
	"github.com/spf13/cobra"
)

func newFindCmd(c *cli) *cobra.Command {
	var comp, export string
	cmd := &cobra.Command{
		Use:   "find <file>",
		Short: "List the expressions already present in a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := c.svc.OpenDocument(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if export != "" {
				d, err := w.ExportJSON(export, comp)
				if err != nil {
					return err
				}
				return c.print(cmd.OutOrStdout(), map[string]any{"exported": export, "count": d.Count})
			}
			return c.print(cmd.OutOrStdout(), w.FindWithExpressions(comp))
		},
	}
	cmd.Flags().StringVar(&comp, "comp", "", "only this composition")
	cmd.Flags().StringVar(&export, "export", "", "write the result as JSON to this path")
	return cmd
}
