// Package types contains common types used across the application
package types

import (
	"encoding/json"
	"strings"
)

// StoreMarker prefixes a variable name to form its layer name inside the
// variable store composition.
const StoreMarker = "z"

// Category groups catalog variables by what they describe.
type Category string

// Catalog categories.
const (
	CategoryTeam            Category = "team"
	CategoryScore           Category = "score"
	CategoryEvent           Category = "event"
	CategoryPlayer          Category = "player"
	CategoryTemplateControl Category = "templateControl"
	CategoryMedia           Category = "media"
)

// DataType is the kind of value a variable carries.
type DataType string

// Variable data types.
const (
	DataText   DataType = "text"
	DataNumber DataType = "number"
	DataColor  DataType = "color"
	DataImage  DataType = "image"
	DataLogo   DataType = "logo"
)

// VariableDefinition describes one entry of the variable catalog.
type VariableDefinition struct {
	Name         string   `json:"name" yaml:"name"`
	Category     Category `json:"category" yaml:"category"`
	DataType     DataType `json:"data_type" yaml:"data_type"`
	Description  string   `json:"description" yaml:"description"`
	DefaultValue string   `json:"default_value,omitempty" yaml:"default_value,omitempty"`
}

// StoreName is the layer name holding this variable in the store composition.
func (v VariableDefinition) StoreName() string { return StoreMarker + v.Name }

// StripStoreMarker resolves a store-prefixed name back to a bare name by
// removing a single leading marker. Names without the marker are returned as is.
func StripStoreMarker(name string) string {
	return strings.TrimPrefix(name, StoreMarker)
}

// LayerKind is the host layer type as reported by the document.
type LayerKind string

// Layer kinds.
const (
	LayerText    LayerKind = "text"
	LayerShape   LayerKind = "shape"
	LayerImage   LayerKind = "image"
	LayerVideo   LayerKind = "video"
	LayerSolid   LayerKind = "solid"
	LayerNull    LayerKind = "null"
	LayerUnknown LayerKind = "unknown"
)

// ParseLayerKind maps a document "type" attribute to a LayerKind.
// Unrecognised values map to LayerUnknown.
func ParseLayerKind(s string) LayerKind {
	switch k := LayerKind(strings.ToLower(strings.TrimSpace(s))); k {
	case LayerText, LayerShape, LayerImage, LayerVideo, LayerSolid, LayerNull:
		return k
	default:
		return LayerUnknown
	}
}

// ExpressionRecommendation is a suggested binding of one layer to a variable.
type ExpressionRecommendation struct {
	Composition string             `json:"composition" yaml:"composition"`
	Layer       string             `json:"layer" yaml:"layer"`
	LayerKind   LayerKind          `json:"layer_kind" yaml:"layer_kind"`
	Variable    VariableDefinition `json:"variable" yaml:"variable"`
	Target      ExpressionTarget   `json:"target" yaml:"target"`
	Expression  string             `json:"expression" yaml:"expression"`
	Confidence  float64            `json:"confidence" yaml:"confidence"`
	Reason      string             `json:"reason" yaml:"reason"`
}

// LayerExpression is the unit written into and read back from a document.
type LayerExpression struct {
	Composition string           `json:"composition" yaml:"composition"`
	Layer       string           `json:"layer" yaml:"layer"`
	Target      ExpressionTarget `json:"target" yaml:"target"`
	Expression  string           `json:"expression" yaml:"expression"`
	Enabled     bool             `json:"enabled" yaml:"enabled"`
}

// AsLayerExpression converts an accepted recommendation into a writable expression.
func (r ExpressionRecommendation) AsLayerExpression() LayerExpression {
	return LayerExpression{
		Composition: r.Composition,
		Layer:       r.Layer,
		Target:      r.Target,
		Expression:  r.Expression,
		Enabled:     true,
	}
}

// UnmarshalJSON decodes a LayerExpression, treating a missing "enabled"
// field as true so hand-written plans apply by default.
func (e *LayerExpression) UnmarshalJSON(b []byte) error {
	type plain LayerExpression
	p := plain{Enabled: true}
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*e = LayerExpression(p)
	return nil
}

// Layer is one layer of a composition as reported by the document.
type Layer struct {
	Name string    `json:"name" yaml:"name"`
	Kind LayerKind `json:"kind" yaml:"kind"`
}

// Composition is a named group of layers.
type Composition struct {
	Name   string  `json:"name" yaml:"name"`
	Layers []Layer `json:"layers" yaml:"layers"`
}
