package types

import (
	"encoding/json"
	"fmt"
)

// ExpressionTarget is a layer property an expression can be bound to.
type ExpressionTarget string

// Bindable properties.
const (
	TargetTextSource  ExpressionTarget = "textSource"
	TargetOpacity     ExpressionTarget = "opacity"
	TargetScale       ExpressionTarget = "scale"
	TargetPosition    ExpressionTarget = "position"
	TargetColor       ExpressionTarget = "color"
	TargetRotation    ExpressionTarget = "rotation"
	TargetAnchorPoint ExpressionTarget = "anchorPoint"
)

var targetProperties = map[ExpressionTarget]string{
	TargetTextSource:  "ADBE Text Document",
	TargetOpacity:     "ADBE Opacity",
	TargetScale:       "ADBE Scale",
	TargetPosition:    "ADBE Position",
	TargetColor:       "ADBE Fill Color",
	TargetRotation:    "ADBE Rotate Z",
	TargetAnchorPoint: "ADBE Anchor Point",
}

// Targets lists every bindable property in declaration order.
func Targets() []ExpressionTarget {
	return []ExpressionTarget{
		TargetTextSource, TargetOpacity, TargetScale, TargetPosition,
		TargetColor, TargetRotation, TargetAnchorPoint,
	}
}

// Property returns the host property identifier for t, or "" for an invalid target.
func (t ExpressionTarget) Property() string { return targetProperties[t] }

// Valid reports whether t is one of the known targets.
func (t ExpressionTarget) Valid() bool {
	_, ok := targetProperties[t]
	return ok
}

// ParseTarget converts an enum name such as "textSource" into a target.
func ParseTarget(s string) (ExpressionTarget, error) {
	t := ExpressionTarget(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown expression target %q", s)
	}
	return t, nil
}

// UnmarshalJSON rejects unknown targets at decode time.
func (t *ExpressionTarget) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseTarget(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
