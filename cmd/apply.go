package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okian/hardcard/internal/adapters/document"
	"github.com/okian/hardcard/internal/domain/types"
	"github.com/okian/hardcard/pkg/logger"
)

type applyReport struct {
	Result          document.BatchResult `json:"result" yaml:"result"`
	Saved           string               `json:"saved,omitempty" yaml:"saved,omitempty"`
	Recommendations int                  `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
}

func newApplyCmd(c *cli) *cobra.Command {
	var (
		planPath      string
		auto          bool
		noValidate    bool
		stopOnError   bool
		out           string
		minConfidence float64
	)
	cmd := &cobra.Command{
		Use:   "apply <file>",
		Short: "Write a plan of expressions, or the analyzer's recommendations, into a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (planPath == "") == !auto {
				return errors.New("exactly one of --plan or --auto is required")
			}
			ctx := cmd.Context()
			w, err := c.svc.OpenDocument(ctx, args[0])
			if err != nil {
				return err
			}

			var rep applyReport
			if auto {
				res, recs, err := c.svc.AutoApply(ctx, w, c.minConfidence(minConfidence), !noValidate, stopOnError)
				if err != nil {
					return err
				}
				rep.Result, rep.Recommendations = res, len(recs)
			} else {
				items, err := readPlan(planPath)
				if err != nil {
					return err
				}
				if rep.Result, err = c.svc.Apply(ctx, w, items, !noValidate, stopOnError); err != nil {
					return err
				}
			}

			if rep.Result.Success {
				if rep.Saved, err = w.Save(out); err != nil {
					return err
				}
				c.log.Info(ctx, "document saved", logger.String("path", rep.Saved))
			}
			if err := c.print(cmd.OutOrStdout(), rep); err != nil {
				return err
			}
			if !rep.Result.Success {
				return fmt.Errorf("apply stopped, document not saved: %s", rep.Result.Message)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&planPath, "plan", "", "JSON file holding an array of layer expressions")
	f.BoolVar(&auto, "auto", false, "apply every recommendation of the analyzer")
	f.BoolVar(&noValidate, "no-validate", false, "skip expression syntax validation")
	f.BoolVar(&stopOnError, "stop-on-error", false, "stop at the first failing item and do not save")
	f.StringVar(&out, "out", "", "output path (default overwrites the input)")
	f.Float64Var(&minConfidence, "min-confidence", -1, "minimum confidence for --auto (default from config)")
	return cmd
}

func readPlan(path string) ([]types.LayerExpression, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	var items []types.LayerExpression
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("decode plan %s: %w", path, err)
	}
	return items, nil
}
