package main

import (
	"github.com/spf13/cobra"

	"github.com/okian/hardcard/internal/domain/types"
	"github.com/okian/hardcard/pkg/logger"
)

func newRemoveCmd(c *cli) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "remove <file> <comp> <layer> <target>",
		Short: "Remove the expression bound to one layer property",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := c.svc.OpenDocument(ctx, args[0])
			if err != nil {
				return err
			}
			loc, err := w.RemoveExpression(ctx, args[1], args[2], types.ExpressionTarget(args[3]))
			if err != nil {
				return err
			}
			saved, err := w.Save(out)
			if err != nil {
				return err
			}
			c.log.Info(ctx, "document saved", logger.String("path", saved))
			return c.print(cmd.OutOrStdout(), map[string]any{"removed": loc, "saved": saved})
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output path (default overwrites the input)")
	return cmd
}
