package polished

import (
	"strings"

	"github.com/cantyjeffrey/polished/internal/cssvalue"
	"github.com/cantyjeffrey/polished/internal/validate"
)

const linearModule = "mixins/linearGradient.go"

// LinearGradientConfig configures the LinearGradient mixin. ColorStops is
// required with at least two stops; Fallback and ToDirection are optional.
type LinearGradientConfig struct {
	ColorStops  []string
	Fallback    string
	ToDirection string
}

// LinearGradient computes backgroundColor and backgroundImage for a CSS
// linear gradient. It shares the radial mixin's fallback and validation
// rules, with ToDirection as the only leading fragment.
func LinearGradient(cfg LinearGradientConfig) Style {
	if validationEnabled && !validateLinear(cfg).Ok() {
		return Style{}
	}

	value := cssvalue.JoinArguments(
		[]string{cfg.ToDirection},
		strings.Join(cfg.ColorStops, ", "),
	)

	return Style{
		PropBackgroundColor: gradientFallback(cfg.Fallback, cfg.ColorStops),
		PropBackgroundImage: cssvalue.Function("linear-gradient", value),
	}
}

func validateLinear(cfg LinearGradientConfig) validate.Result {
	res := validate.TypeCheck(linearModule, linearRules(
		cfg.ColorStops, cfg.Fallback, cfg.ToDirection,
	))
	return res.Merge(validate.CustomCheck(linearModule, validate.Custom{
		Enforce: len(cfg.ColorStops) > 1,
		Message: "colorStops expects an array with a minimum length of 2",
	}))
}

func linearRules(colorStops, fallback, toDirection any) []validate.Rule {
	return []validate.Rule{
		{Value: colorStops, Type: validate.TypeArray, Required: "colorStops is required and must be an array"},
		{Value: fallback, Type: validate.TypeString},
		{Value: toDirection, Type: validate.TypeString},
	}
}
