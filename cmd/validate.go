package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type validateReport struct {
	Valid  bool     `json:"valid" yaml:"valid"`
	Errors []string `json:"errors" yaml:"errors"`
}

func newValidateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <expression>",
		Short: "Check expression syntax",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			violations := c.svc.Validate(args[0])
			if violations == nil {
				violations = []string{}
			}
			if err := c.print(cmd.OutOrStdout(), validateReport{Valid: len(violations) == 0, Errors: violations}); err != nil {
				return err
			}
			if len(violations) > 0 {
				return fmt.Errorf("expression has %d syntax errors", len(violations))
			}
			return nil
		},
	}
}
