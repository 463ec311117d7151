// Package registry holds the static catalog of template variables and
// lookups over it.
//
// The catalog is process-wide data: it is indexed once on first use and
// never mutated afterwards, so a *Registry is safe for concurrent readers.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/okian/hardcard/internal/domain/types"
)

// defaultSuggestions bounds the "did you mean" hint attached to unknown-variable errors.
const defaultSuggestions = 3

// Registry answers lookups against the variable catalog.
type Registry struct {
	all    []types.VariableDefinition
	byName map[string]int
	names  []string
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry built from the static catalog.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = newRegistry(catalog)
	})
	return defaultRegistry
}

func newRegistry(defs []types.VariableDefinition) *Registry {
	r := &Registry{
		all:    defs,
		byName: make(map[string]int, len(defs)),
		names:  make([]string, 0, len(defs)),
	}
	for i, d := range defs {
		if _, dup := r.byName[d.Name]; dup {
			panic(fmt.Sprintf("registry: duplicate variable %q", d.Name))
		}
		r.byName[d.Name] = i
		r.names = append(r.names, d.Name)
	}
	return r
}

// Len returns the number of catalog entries.
func (r *Registry) Len() int { return len(r.all) }

// All returns a copy of every definition in catalog order.
func (r *Registry) All() []types.VariableDefinition {
	out := make([]types.VariableDefinition, len(r.all))
	copy(out, r.all)
	return out
}

// ByName looks up a variable by its bare or store-prefixed name. A single
// leading store marker is stripped; comparison is case-sensitive.
func (r *Registry) ByName(name string) (types.VariableDefinition, bool) {
	if i, ok := r.byName[types.StripStoreMarker(name)]; ok {
		return r.all[i], true
	}
	return types.VariableDefinition{}, false
}

// ByCategory returns the variables of one category in catalog order.
func (r *Registry) ByCategory(c types.Category) []types.VariableDefinition {
	var out []types.VariableDefinition
	for _, d := range r.all {
		if d.Category == c {
			out = append(out, d)
		}
	}
	return out
}

// ByDataType returns the variables carrying one data type in catalog order.
func (r *Registry) ByDataType(t types.DataType) []types.VariableDefinition {
	var out []types.VariableDefinition
	for _, d := range r.all {
		if d.DataType == t {
			out = append(out, d)
		}
	}
	return out
}

// Exists reports whether name (bare or store-prefixed) is in the catalog.
func (r *Registry) Exists(name string) bool {
	_, ok := r.ByName(name)
	return ok
}

// MustExist checks every name and returns an *UnknownVariableError for the
// first one that is missing.
func (r *Registry) MustExist(names ...string) error {
	for _, n := range names {
		if !r.Exists(n) {
			return &UnknownVariableError{Name: n, Suggestions: r.Suggest(n, defaultSuggestions)}
		}
	}
	return nil
}

// Suggest ranks catalog names that fuzzily contain term, closest first.
func (r *Registry) Suggest(term string, limit int) []string {
	if term == "" || limit <= 0 {
		return nil
	}
	ranks := fuzzy.RankFindFold(types.StripStoreMarker(term), r.names)
	sort.Stable(ranks)
	out := make([]string, 0, limit)
	for _, rk := range ranks {
		if len(out) == limit {
			break
		}
		out = append(out, rk.Target)
	}
	return out
}

// Categories lists the catalog categories in their canonical order.
func Categories() []types.Category {
	return []types.Category{
		types.CategoryTeam,
		types.CategoryScore,
		types.CategoryEvent,
		types.CategoryPlayer,
		types.CategoryTemplateControl,
		types.CategoryMedia,
	}
}
