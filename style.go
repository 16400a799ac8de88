package polished

import "github.com/cantyjeffrey/polished/internal/validate"

// Style maps CSS property names to values. A mixin returns either a fully
// populated Style or an empty one; partial results are never produced.
type Style map[string]string

// Property names use the camelCase form shared with CSS-in-JS tooling; the
// renderer kebab-cases them when emitting stylesheet text.
const (
	PropBackgroundColor = "backgroundColor"
	PropBackgroundImage = "backgroundImage"
)

// validationEnabled caches the runtime mode for the mixin gates. Resolved
// once; production builds skip the validation phase.
var validationEnabled = validate.Enabled()
