package registry_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/okian/hardcard/internal/domain/registry"
	"github.com/okian/hardcard/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRegistryCatalog(t *testing.T) {
	Convey("Given the default registry", t, func() {
		reg := registry.Default()

		Convey("Then it holds the full catalog", func() {
			So(reg.Len(), ShouldEqual, 185)
			So(len(reg.All()), ShouldEqual, 185)
		})

		Convey("And names are unique and never start with the store marker", func() {
			seen := map[string]bool{}
			for _, v := range reg.All() {
				So(seen[v.Name], ShouldBeFalse)
				seen[v.Name] = true
				So(strings.HasPrefix(v.Name, types.StoreMarker), ShouldBeFalse)
			}
		})

		Convey("And every variable resolves by both name and store name", func() {
			for _, v := range reg.All() {
				byName, ok := reg.ByName(v.Name)
				So(ok, ShouldBeTrue)
				byStore, ok := reg.ByName(v.StoreName())
				So(ok, ShouldBeTrue)
				So(byName, ShouldResemble, v)
				So(byStore, ShouldResemble, v)
			}
		})

		Convey("And every category is populated", func() {
			total := 0
			for _, c := range registry.Categories() {
				vars := reg.ByCategory(c)
				So(len(vars), ShouldBeGreaterThan, 0)
				total += len(vars)
			}
			So(total, ShouldEqual, reg.Len())
		})

		Convey("And All hands out a copy", func() {
			all := reg.All()
			all[0].Name = "mutated"
			So(reg.All()[0].Name, ShouldNotEqual, "mutated")
		})
	})
}

func TestRegistryLookup(t *testing.T) {
	Convey("Given the default registry", t, func() {
		reg := registry.Default()

		Convey("When looking up with different casing", func() {
			_, ok := reg.ByName("HomeTeamName")

			Convey("Then lookup is case-sensitive", func() {
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When looking up an unknown name", func() {
			v, ok := reg.ByName("nope")

			Convey("Then it reports not found with a zero value", func() {
				So(ok, ShouldBeFalse)
				So(v, ShouldResemble, types.VariableDefinition{})
				So(reg.Exists("nope"), ShouldBeFalse)
			})
		})

		Convey("When filtering by data type", func() {
			colors := reg.ByDataType(types.DataColor)

			Convey("Then only colors are returned", func() {
				So(len(colors), ShouldBeGreaterThan, 0)
				for _, v := range colors {
					So(v.DataType, ShouldEqual, types.DataColor)
				}
			})
		})

		Convey("When checking known names", func() {
			So(reg.MustExist("homeTeamScore1", "zawayTeamScore1"), ShouldBeNil)
		})

		Convey("When checking an unknown name", func() {
			err := reg.MustExist("homeTeamName", "homeTeamNam")

			Convey("Then it fails with the unknown variable kind and a hint", func() {
				So(errors.Is(err, registry.ErrUnknownVariable), ShouldBeTrue)
				var uv *registry.UnknownVariableError
				So(errors.As(err, &uv), ShouldBeTrue)
				So(uv.Name, ShouldEqual, "homeTeamNam")
				So(uv.Suggestions, ShouldContain, "homeTeamName")
				So(err.Error(), ShouldContainSubstring, "did you mean")
			})
		})
	})
}

func TestRegistrySuggest(t *testing.T) {
	Convey("Given the default registry", t, func() {
		reg := registry.Default()

		Convey("When searching a fragment", func() {
			got := reg.Suggest("mvp", 5)

			Convey("Then matching names are returned up to the limit", func() {
				So(len(got), ShouldBeBetweenOrEqual, 1, 5)
				So(got[0], ShouldEqual, "mvpName")
			})
		})

		Convey("When the term is empty", func() {
			So(reg.Suggest("", 5), ShouldBeEmpty)
		})
	})
}
