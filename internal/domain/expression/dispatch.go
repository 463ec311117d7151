package expression

import (
	"fmt"
	"strings"

	"github.com/okian/hardcard/internal/domain/types"
)

// visibilityFlagPrefix marks template control variables holding "true"/"false".
const visibilityFlagPrefix = "show"

// ForTarget picks the synthesis pattern for a resolved target.
//
//   - textSource: TextLink
//   - color: HexColorToRgb
//   - scale: LogoScaleToFit for logos, ImageScaleToComp for images
//   - opacity: visible when a show* flag is "true", otherwise when the value is non-empty
//
// Position, rotation and anchor point have no pattern.
func (s *Synthesizer) ForTarget(t types.ExpressionTarget, v types.VariableDefinition) (string, error) {
	switch t {
	case types.TargetTextSource:
		return s.TextLink(v.Name)
	case types.TargetColor:
		return s.HexColorToRgb(v.Name)
	case types.TargetScale:
		if err := s.catalog.MustExist(v.Name); err != nil {
			return "", err
		}
		switch v.DataType {
		case types.DataLogo:
			return s.LogoScaleToFit(s.logoMaxWidth, s.logoMaxHeight)
		case types.DataImage:
			return s.ImageScaleToComp(s.imageScaleMode)
		}
	case types.TargetOpacity:
		if v.Category == types.CategoryTemplateControl && strings.HasPrefix(v.Name, visibilityFlagPrefix) {
			return s.ConditionalVisibilityText(v.Name, "true", true)
		}
		return s.ConditionalVisibilityText(v.Name, "", false)
	}
	return "", fmt.Errorf("%w: %s for %s data", ErrUnsupportedTarget, t, v.DataType)
}
