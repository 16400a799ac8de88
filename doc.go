// Package polished computes CSS property maps from structured configuration.
//
// Each mixin is a pure function from a configuration record to a Style, a
// map of CSS property names to values:
//
//	style := polished.RadialGradient(polished.GradientConfig{
//		ColorStops: []string{"#00FFFF 0%", "rgba(0, 0, 255, 0) 50%", "#0000FF 95%"},
//		Extent:     "farthest-corner at 45px 45px",
//		Position:   "center",
//		Shape:      "ellipse",
//	})
//
// Outside production mode every mixin validates its configuration before
// computing. A failed validation logs each violation through the diagnostic
// channel and returns an empty Style; mixins never return errors and never
// panic. Setting POLISHED_ENV=production skips the validation phase
// entirely, so malformed input propagates into the computed values instead
// of being caught.
//
// Mixins can also be invoked dynamically by name through Apply, which is how
// the theme renderer and the polished CLI drive them. See cmd/polished for
// the CLI.
package polished
