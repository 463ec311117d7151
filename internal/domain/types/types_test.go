package types_test

import (
	"encoding/json"
	"testing"

	types "github.com/okian/hardcard/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestVariableDefinition(t *testing.T) {
	Convey("Given a VariableDefinition", t, func() {
		v := types.VariableDefinition{Name: "homeTeamName", Category: types.CategoryTeam, DataType: types.DataText}

		Convey("Then its store name carries a single marker", func() {
			So(v.StoreName(), ShouldEqual, "zhomeTeamName")
		})

		Convey("And stripping the marker resolves back to the name", func() {
			So(types.StripStoreMarker(v.StoreName()), ShouldEqual, v.Name)
			So(types.StripStoreMarker(v.Name), ShouldEqual, v.Name)
		})

		Convey("And only one marker is stripped", func() {
			So(types.StripStoreMarker("zzTop"), ShouldEqual, "zTop")
		})
	})
}

func TestBucketFor(t *testing.T) {
	Convey("Given confidence scores at bucket boundaries", t, func() {
		Convey("Then thresholds are inclusive upward", func() {
			So(types.BucketFor(1.0), ShouldEqual, types.BucketExact)
			So(types.BucketFor(0.9), ShouldEqual, types.BucketHigh)
			So(types.BucketFor(0.89999), ShouldEqual, types.BucketGood)
			So(types.BucketFor(0.75), ShouldEqual, types.BucketGood)
			So(types.BucketFor(0.6), ShouldEqual, types.BucketMedium)
			So(types.BucketFor(0.59999), ShouldEqual, types.BucketLow)
			So(types.BucketFor(0.1), ShouldEqual, types.BucketLow)
		})

		Convey("And every bucket maps back to its own score", func() {
			for _, b := range types.Buckets() {
				So(types.BucketFor(b.Score()), ShouldEqual, b)
			}
		})
	})
}

func TestExpressionTarget(t *testing.T) {
	Convey("Given the expression targets", t, func() {
		Convey("Then each maps to a distinct host property", func() {
			seen := map[string]bool{}
			for _, tg := range types.Targets() {
				p := tg.Property()
				So(p, ShouldNotBeEmpty)
				So(seen[p], ShouldBeFalse)
				seen[p] = true
			}
			So(len(seen), ShouldEqual, 7)
		})

		Convey("When parsing a known target name", func() {
			tg, err := types.ParseTarget("opacity")

			Convey("Then it resolves", func() {
				So(err, ShouldBeNil)
				So(tg, ShouldEqual, types.TargetOpacity)
			})
		})

		Convey("When parsing an unknown target name", func() {
			_, err := types.ParseTarget("skew")

			Convey("Then it fails", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When decoding JSON with an unknown target", func() {
			var le types.LayerExpression
			err := json.Unmarshal([]byte(`{"target":"skew"}`), &le)

			Convey("Then decoding fails", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestParseLayerKind(t *testing.T) {
	Convey("Given layer type attributes", t, func() {
		So(types.ParseLayerKind("text"), ShouldEqual, types.LayerText)
		So(types.ParseLayerKind(" Shape "), ShouldEqual, types.LayerShape)
		So(types.ParseLayerKind("VIDEO"), ShouldEqual, types.LayerVideo)
		So(types.ParseLayerKind("camera"), ShouldEqual, types.LayerUnknown)
		So(types.ParseLayerKind(""), ShouldEqual, types.LayerUnknown)
	})
}

func TestAsLayerExpression(t *testing.T) {
	Convey("Given a recommendation", t, func() {
		rec := types.ExpressionRecommendation{
			Composition: "Main",
			Layer:       "homeTeamName",
			Target:      types.TargetTextSource,
			Expression:  "x",
		}

		Convey("Then it converts to an enabled layer expression", func() {
			le := rec.AsLayerExpression()
			So(le.Composition, ShouldEqual, "Main")
			So(le.Layer, ShouldEqual, "homeTeamName")
			So(le.Target, ShouldEqual, types.TargetTextSource)
			So(le.Expression, ShouldEqual, "x")
			So(le.Enabled, ShouldBeTrue)
		})
	})
}

func TestLayerExpressionJSON(t *testing.T) {
	Convey("Given plan entries in JSON", t, func() {
		Convey("When enabled is omitted", func() {
			var le types.LayerExpression
			err := json.Unmarshal([]byte(`{"composition":"Main","layer":"clock","target":"textSource","expression":"x"}`), &le)
			So(err, ShouldBeNil)
			So(le.Enabled, ShouldBeTrue)
			So(le.Target, ShouldEqual, types.TargetTextSource)
		})

		Convey("When enabled is false", func() {
			var le types.LayerExpression
			So(json.Unmarshal([]byte(`{"layer":"clock","target":"opacity","enabled":false}`), &le), ShouldBeNil)
			So(le.Enabled, ShouldBeFalse)
		})

		Convey("When the target is unknown", func() {
			var le types.LayerExpression
			So(json.Unmarshal([]byte(`{"layer":"clock","target":"skew"}`), &le), ShouldNotBeNil)
		})
	})
}
