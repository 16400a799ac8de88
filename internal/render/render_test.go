package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cantyjeffrey/polished/internal/config"
	polishederrors "github.com/cantyjeffrey/polished/pkg/errors"
)

func TestCSSRendersTheme(t *testing.T) {
	theme := &config.Theme{
		Version: "1.0.0",
		Name:    "ocean",
		Rules: []config.StyleRule{
			{
				Selector:   ".hero",
				Mixin:      "radial-gradient",
				ColorStops: []string{"#00FFFF 0%", "rgba(0, 0, 255, 0) 50%", "#0000FF 95%"},
				Extent:     "farthest-corner at 45px 45px",
				Position:   "center",
				Shape:      "ellipse",
			},
			{
				Selector:    ".banner",
				Mixin:       "linear-gradient",
				ColorStops:  []string{"red", "blue"},
				ToDirection: "to right",
			},
		},
	}

	css, err := CSS(theme, nil)
	require.NoError(t, err)

	want := ".hero {\n" +
		"  background-color: #00FFFF;\n" +
		"  background-image: radial-gradient(center ellipse farthest-corner at 45px 45px, #00FFFF 0%, rgba(0, 0, 255, 0) 50%, #0000FF 95%);\n" +
		"}\n" +
		"\n" +
		".banner {\n" +
		"  background-color: red;\n" +
		"  background-image: linear-gradient(to right, red, blue);\n" +
		"}\n"
	require.Equal(t, want, css)
}

func TestCSSSkipsRulesWithEmptyStyle(t *testing.T) {
	theme := &config.Theme{
		Version: "1.0.0",
		Name:    "ocean",
		Rules: []config.StyleRule{
			{Selector: ".broken", Mixin: "radial-gradient", ColorStops: []string{"red"}},
			{Selector: ".ok", Mixin: "linear-gradient", ColorStops: []string{"red", "blue"}},
		},
	}

	css, err := CSS(theme, nil)

	var renderErr *polishederrors.RenderError
	require.ErrorAs(t, err, &renderErr)
	require.Contains(t, renderErr.Selector, ".broken")
	require.NotContains(t, css, ".broken")
	require.Contains(t, css, ".ok")
}

func TestKebabCase(t *testing.T) {
	t.Parallel()

	require.Equal(t, "background-color", kebabCase("backgroundColor"))
	require.Equal(t, "background-image", kebabCase("backgroundImage"))
	require.Equal(t, "color", kebabCase("color"))
}
