package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/hardcard/internal/domain/analysis"
	"github.com/okian/hardcard/internal/domain/types"
)

type fileReport struct {
	Path            string                             `json:"path" yaml:"path"`
	Count           int                                `json:"count" yaml:"count"`
	Error           string                             `json:"error,omitempty" yaml:"error,omitempty"`
	Recommendations []analysis.Record                  `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
	Groups          map[types.Bucket][]analysis.Record `json:"groups,omitempty" yaml:"groups,omitempty"`
}

func newAnalyzeCmd(c *cli) *cobra.Command {
	var (
		minConfidence float64
		group         bool
		kinds         []string
		comps         []string
	)
	cmd := &cobra.Command{
		Use:   "analyze <file>...",
		Short: "Recommend expressions for every layer of one or more documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if minConfidence > 1 {
				return fmt.Errorf("--min-confidence must be at most 1, got %v", minConfidence)
			}
			results, err := c.svc.AnalyzeFiles(cmd.Context(), args, c.minConfidence(minConfidence))
			if err != nil {
				return err
			}

			var opts analysis.FilterOptions
			for _, k := range kinds {
				opts.LayerKinds = append(opts.LayerKinds, types.ParseLayerKind(k))
			}
			opts.Compositions = comps

			failed := 0
			reports := make([]fileReport, 0, len(results))
			for _, r := range results {
				rep := fileReport{Path: r.Path, Error: r.Error}
				if r.Error != "" {
					failed++
					reports = append(reports, rep)
					continue
				}
				recs := analysis.Filter(r.Recommendations, opts)
				rep.Count = len(recs)
				if group {
					rep.Groups = make(map[types.Bucket][]analysis.Record)
					for b, g := range analysis.GroupByBucket(recs) {
						rep.Groups[b] = analysis.Exportable(g)
					}
				} else {
					rep.Recommendations = analysis.Exportable(recs)
				}
				reports = append(reports, rep)
			}

			if err := c.print(cmd.OutOrStdout(), reports); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d documents failed", failed, len(results))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&minConfidence, "min-confidence", -1, "minimum confidence (default from config)")
	f.BoolVar(&group, "group", false, "group recommendations by confidence bucket")
	f.StringSliceVar(&kinds, "kind", nil, "only these layer kinds (text, shape, image, ...)")
	f.StringSliceVar(&comps, "comp", nil, "only these compositions")
	return cmd
}
