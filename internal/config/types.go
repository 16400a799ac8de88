package config

// Theme represents a full theme document: a set of selectors, each bound to
// a mixin invocation.
type Theme struct {
	Version     string      `yaml:"version" validate:"required,semver"`
	Name        string      `yaml:"name" validate:"required,min=1,max=100"`
	Description string      `yaml:"description,omitempty"`
	Rules       []StyleRule `yaml:"rules" validate:"required,min=1,dive"`
}

// StyleRule binds a CSS selector to a mixin and its configuration fields.
// Which fields apply depends on the mixin; unused fields stay empty and the
// mixin's own validation rejects anything inconsistent.
type StyleRule struct {
	Selector    string   `yaml:"selector" validate:"required,selector"`
	Mixin       string   `yaml:"mixin" validate:"required,oneof=radial-gradient linear-gradient"`
	ColorStops  []string `yaml:"color_stops,omitempty"`
	Extent      string   `yaml:"extent,omitempty"`
	Fallback    string   `yaml:"fallback,omitempty"`
	Position    string   `yaml:"position,omitempty"`
	Shape       string   `yaml:"shape,omitempty"`
	ToDirection string   `yaml:"to_direction,omitempty"`
}

// MixinConfig returns the generic configuration record for the rule's mixin,
// with absent fields omitted entirely so they read as missing rather than
// empty.
func (r StyleRule) MixinConfig() map[string]any {
	cfg := map[string]any{}
	if r.ColorStops != nil {
		cfg["colorStops"] = r.ColorStops
	}
	if r.Extent != "" {
		cfg["extent"] = r.Extent
	}
	if r.Fallback != "" {
		cfg["fallback"] = r.Fallback
	}
	if r.Position != "" {
		cfg["position"] = r.Position
	}
	if r.Shape != "" {
		cfg["shape"] = r.Shape
	}
	if r.ToDirection != "" {
		cfg["toDirection"] = r.ToDirection
	}
	return cfg
}
