package polished

import (
	"sort"

	"github.com/cantyjeffrey/polished/internal/validate"
)

// Mixin computes a Style from a generic configuration record, as decoded
// from a theme document.
type Mixin func(config map[string]any) Style

var mixins = map[string]Mixin{
	"radial-gradient": applyRadialGradient,
	"linear-gradient": applyLinearGradient,
}

// Names returns the registered mixin names in sorted order.
func Names() []string {
	names := make([]string, 0, len(mixins))
	for name := range mixins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply invokes the named mixin through the top-level calling-convention
// gate: exactly one record argument. Gate violations are reported but do not
// block the call; the mixin's own configuration validation decides the
// outcome. Unknown names yield an empty Style.
func Apply(name string, args ...any) Style {
	mixin, ok := mixins[name]
	if !ok {
		if validationEnabled {
			validate.CustomCheck("mixins/"+name, validate.Custom{
				Enforce: false,
				Message: "unknown mixin",
			})
		}
		return Style{}
	}

	out := validate.Module(validate.Descriptor{
		Module:  "mixins/" + name,
		Exactly: 1,
		Config:  validate.Rule{Type: validate.TypeObject, Required: "expects a configuration object"},
	}, func(callArgs ...any) any {
		var config map[string]any
		if len(callArgs) > 0 {
			config, _ = callArgs[0].(map[string]any)
		}
		return mixin(config)
	}, args...)

	style, ok := out.(Style)
	if !ok {
		return Style{}
	}
	return style
}

func applyRadialGradient(config map[string]any) Style {
	if validationEnabled {
		res := validate.TypeCheck(radialModule, radialRules(
			config["colorStops"], config["extent"], config["fallback"],
			config["position"], config["shape"],
		))
		if !res.Ok() {
			return Style{}
		}
	}

	return RadialGradient(GradientConfig{
		ColorStops: stringSlice(config["colorStops"]),
		Extent:     stringValue(config["extent"]),
		Fallback:   stringValue(config["fallback"]),
		Position:   stringValue(config["position"]),
		Shape:      stringValue(config["shape"]),
	})
}

func applyLinearGradient(config map[string]any) Style {
	if validationEnabled {
		res := validate.TypeCheck(linearModule, linearRules(
			config["colorStops"], config["fallback"], config["toDirection"],
		))
		if !res.Ok() {
			return Style{}
		}
	}

	return LinearGradient(LinearGradientConfig{
		ColorStops:  stringSlice(config["colorStops"]),
		Fallback:    stringValue(config["fallback"]),
		ToDirection: stringValue(config["toDirection"]),
	})
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// stringSlice coerces either a typed or a freshly decoded YAML sequence.
func stringSlice(v any) []string {
	switch seq := v.(type) {
	case []string:
		return seq
	case []any:
		out := make([]string, 0, len(seq))
		for _, item := range seq {
			s, ok := item.(string)
			if !ok {
				return nil
			}
			out = append(out, s)
		}
		return out
	default:
		return nil
	}
}
