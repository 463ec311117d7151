// Package target picks the layer property an expression binds to.
package target

import "github.com/okian/hardcard/internal/domain/types"

// Resolve maps a layer kind and the matched variable to a bindable property.
func Resolve(kind types.LayerKind, v types.VariableDefinition) types.ExpressionTarget {
	switch kind {
	case types.LayerText:
		return types.TargetTextSource
	case types.LayerShape:
		if v.DataType == types.DataColor {
			return types.TargetColor
		}
		return types.TargetOpacity
	case types.LayerImage, types.LayerVideo:
		if v.DataType == types.DataLogo || v.DataType == types.DataImage {
			return types.TargetScale
		}
		return types.TargetOpacity
	default:
		return types.TargetOpacity
	}
}
