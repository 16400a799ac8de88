package polished

import (
	"strings"

	"github.com/cantyjeffrey/polished/internal/cssvalue"
	"github.com/cantyjeffrey/polished/internal/validate"
)

const radialModule = "mixins/radialGradient.go"

// GradientConfig configures the RadialGradient mixin. ColorStops is required
// and must hold at least two stops; the remaining fields are optional and
// contribute nothing when empty. The config is never mutated.
type GradientConfig struct {
	ColorStops []string
	Extent     string
	Fallback   string
	Position   string
	Shape      string
}

// RadialGradient computes backgroundColor and backgroundImage for a CSS
// radial gradient. backgroundColor falls back to the color of the first stop
// when no explicit Fallback is given. An invalid configuration yields an
// empty Style outside production mode.
func RadialGradient(cfg GradientConfig) Style {
	if validationEnabled && !validateRadial(cfg).Ok() {
		return Style{}
	}

	value := cssvalue.JoinArguments(
		[]string{cfg.Position, cfg.Shape, cfg.Extent},
		strings.Join(cfg.ColorStops, ", "),
	)

	return Style{
		PropBackgroundColor: gradientFallback(cfg.Fallback, cfg.ColorStops),
		PropBackgroundImage: cssvalue.Function("radial-gradient", value),
	}
}

func validateRadial(cfg GradientConfig) validate.Result {
	res := validate.TypeCheck(radialModule, radialRules(
		cfg.ColorStops, cfg.Extent, cfg.Fallback, cfg.Position, cfg.Shape,
	))
	return res.Merge(validate.CustomCheck(radialModule, validate.Custom{
		Enforce: len(cfg.ColorStops) > 1,
		Message: "colorStops expects an array with a minimum length of 2",
	}))
}

// radialRules is shared between the typed mixin and the dynamic registry
// path, which validates raw decoded values before coercion.
func radialRules(colorStops, extent, fallback, position, shape any) []validate.Rule {
	return []validate.Rule{
		{Value: colorStops, Type: validate.TypeArray, Required: "colorStops is required and must be an array"},
		{Value: extent, Type: validate.TypeString},
		{Value: fallback, Type: validate.TypeString},
		{Value: position, Type: validate.TypeString},
		{Value: shape, Type: validate.TypeString},
	}
}

// gradientFallback picks the background color: an explicit fallback wins,
// otherwise the color token of the first stop, with any stop-position text
// such as "0%" discarded.
func gradientFallback(fallback string, stops []string) string {
	if fallback != "" {
		return fallback
	}
	if len(stops) == 0 {
		return ""
	}
	fields := strings.Fields(stops[0])
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
