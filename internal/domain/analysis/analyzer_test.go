package analysis_test

import (
	"context"
	"strings"
	"testing"

	"github.com/okian/hardcard/internal/domain/analysis"
	"github.com/okian/hardcard/internal/domain/matching"
	"github.com/okian/hardcard/internal/domain/registry"
	"github.com/okian/hardcard/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

type staticSource []types.Composition

func (s staticSource) Compositions() []types.Composition { return s }

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	Convey("Given a composition with one exact text layer", t, func() {
		src := staticSource{{Name: "Main", Layers: []types.Layer{{Name: "homeTeamName", Kind: types.LayerText}}}}
		a := analysis.New(registry.Default())

		Convey("When analyzing at the default threshold", func() {
			recs, err := a.Analyze(ctx, src, analysis.DefaultMinConfidence)

			Convey("Then one exact text link is recommended", func() {
				So(err, ShouldBeNil)
				So(recs, ShouldHaveLength, 1)
				r := recs[0]
				So(r.Variable.Name, ShouldEqual, "homeTeamName")
				So(r.Target, ShouldEqual, types.TargetTextSource)
				So(r.Confidence, ShouldEqual, 1.0)
				So(r.Expression, ShouldEqual, `comp("Hard_Card").layer("zhomeTeamName").text.sourceText`)
				So(r.Reason, ShouldEqual, "exact match: homeTeamName")
			})
		})
	})

	Convey("Given a document with a store composition and mixed layers", t, func() {
		src := staticSource{
			{Name: "Hard_Card", Layers: []types.Layer{{Name: "zhomeTeamName", Kind: types.LayerText}}},
			{Name: "Scorebug", Layers: []types.Layer{
				{Name: "homeTeamLogo", Kind: types.LayerImage},
				{Name: "homeTeamPrimaryColor", Kind: types.LayerShape},
				{Name: "showScorebug", Kind: types.LayerNull},
				{Name: "homeTeamNme", Kind: types.LayerText},
				{Name: "Background", Kind: types.LayerSolid},
				{Name: "gameClock", Kind: types.LayerVideo},
			}},
		}
		a := analysis.New(registry.Default(), analysis.WithLogoBounds(300, 120))

		Convey("When analyzing with no threshold", func() {
			recs, err := a.Analyze(ctx, src, 0)
			So(err, ShouldBeNil)

			byLayer := map[string]types.ExpressionRecommendation{}
			for _, r := range recs {
				So(r.Composition, ShouldEqual, "Scorebug")
				byLayer[r.Layer] = r
			}

			Convey("Then the store composition is skipped", func() {
				_, ok := byLayer["zhomeTeamName"]
				So(ok, ShouldBeFalse)
			})

			Convey("Then each layer kind gets its target", func() {
				So(byLayer["homeTeamLogo"].Target, ShouldEqual, types.TargetScale)
				So(byLayer["homeTeamLogo"].Expression, ShouldContainSubstring, "(300 / r.width)")
				So(byLayer["homeTeamPrimaryColor"].Target, ShouldEqual, types.TargetColor)
				So(byLayer["showScorebug"].Target, ShouldEqual, types.TargetOpacity)
				So(byLayer["showScorebug"].Expression, ShouldContainSubstring, `"true"`)
				So(byLayer["gameClock"].Target, ShouldEqual, types.TargetOpacity)
			})

			Convey("Then fuzzy matches carry their similarity", func() {
				r := byLayer["homeTeamNme"]
				So(r.Variable.Name, ShouldEqual, "homeTeamName")
				So(r.Confidence, ShouldEqual, types.ConfidenceGood)
			})

			Convey("Then unmatched layers are absent", func() {
				_, ok := byLayer["Background"]
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When analyzing at the exact threshold", func() {
			recs, err := a.Analyze(ctx, src, 1.0)
			So(err, ShouldBeNil)
			for _, r := range recs {
				So(r.Confidence, ShouldEqual, 1.0)
			}
			So(len(recs), ShouldEqual, 4)
		})

		Convey("When the context is cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := a.Analyze(cctx, src, 0)
			So(err, ShouldEqual, context.Canceled)
		})
	})

	Convey("Given a custom store composition", t, func() {
		src := staticSource{
			{Name: "Data", Layers: []types.Layer{{Name: "gameClock", Kind: types.LayerText}}},
			{Name: "Hard_Card", Layers: []types.Layer{{Name: "gameClock", Kind: types.LayerText}}},
		}
		a := analysis.New(registry.Default(),
			analysis.WithStoreComposition("Data"),
			analysis.WithPatternMode(matching.PatternNormalized),
		)

		Convey("Then only the configured store is skipped and referenced", func() {
			recs, err := a.Analyze(ctx, src, 0.6)
			So(err, ShouldBeNil)
			So(recs, ShouldHaveLength, 1)
			So(recs[0].Composition, ShouldEqual, "Hard_Card")
			So(recs[0].Expression, ShouldStartWith, `comp("Data")`)
			So(a.Engine().Mode(), ShouldEqual, matching.PatternNormalized)
		})
	})
}

func TestFilterAndGroup(t *testing.T) {
	recs := []types.ExpressionRecommendation{
		{Composition: "Main", Layer: "a", LayerKind: types.LayerText, Confidence: 1.0},
		{Composition: "Main", Layer: "b", LayerKind: types.LayerShape, Confidence: 0.9},
		{Composition: "Lower", Layer: "c", LayerKind: types.LayerText, Confidence: 0.6},
		{Composition: "Lower", Layer: "d", LayerKind: types.LayerImage, Confidence: 0.4},
	}

	Convey("Given recommendations", t, func() {
		Convey("When no filter is set", func() {
			So(analysis.Filter(recs, analysis.FilterOptions{}), ShouldHaveLength, 4)
		})

		Convey("When filtering by confidence", func() {
			min := 0.75
			got := analysis.Filter(recs, analysis.FilterOptions{MinConfidence: &min})
			So(got, ShouldHaveLength, 2)
			So(got[1].Layer, ShouldEqual, "b")
		})

		Convey("When filtering by kind and composition", func() {
			got := analysis.Filter(recs, analysis.FilterOptions{
				LayerKinds:   []types.LayerKind{types.LayerText},
				Compositions: []string{"Lower"},
			})
			So(got, ShouldHaveLength, 1)
			So(got[0].Layer, ShouldEqual, "c")
		})

		Convey("When grouping by bucket", func() {
			g := analysis.GroupByBucket(recs)
			So(g[types.BucketExact], ShouldHaveLength, 1)
			So(g[types.BucketHigh], ShouldHaveLength, 1)
			So(g[types.BucketMedium], ShouldHaveLength, 1)
			So(g[types.BucketLow], ShouldHaveLength, 1)
			So(g[types.BucketGood], ShouldBeEmpty)
		})
	})
}

func TestExportable(t *testing.T) {
	Convey("Given a recommendation with a long expression", t, func() {
		long := strings.Repeat("é", 120)
		recs := []types.ExpressionRecommendation{{
			Composition: "Main",
			Layer:       "homeTeamName",
			LayerKind:   types.LayerText,
			Variable:    types.VariableDefinition{Name: "homeTeamName", Category: types.CategoryTeam},
			Target:      types.TargetTextSource,
			Expression:  long,
			Confidence:  0.9,
			Reason:      "r",
		}, {
			Layer:      "short",
			Expression: "x",
			Confidence: 0.5,
		}}

		Convey("Then the expression is cut at 100 characters", func() {
			out := analysis.Exportable(recs)
			So(out, ShouldHaveLength, 2)
			So(out[0].Expression, ShouldEqual, strings.Repeat("é", 100)+"...")
			So(out[0].Variable, ShouldEqual, "homeTeamName")
			So(out[0].Category, ShouldEqual, "team")
			So(out[0].Bucket, ShouldEqual, "high")
			So(out[1].Expression, ShouldEqual, "x")
			So(out[1].Bucket, ShouldEqual, "low")
		})
	})
}
