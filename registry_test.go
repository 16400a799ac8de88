package polished

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNamesListsRegisteredMixins(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"linear-gradient", "radial-gradient"}, Names())
}

func TestApplyDispatchesRadialGradient(t *testing.T) {
	style := Apply("radial-gradient", map[string]any{
		"colorStops": []any{"red", "blue"},
		"shape":      "circle",
	})

	require.Equal(t, Style{
		PropBackgroundColor: "red",
		PropBackgroundImage: "radial-gradient(circle, red, blue)",
	}, style)
}

func TestApplyDispatchesLinearGradient(t *testing.T) {
	style := Apply("linear-gradient", map[string]any{
		"colorStops":  []string{"red", "blue"},
		"toDirection": "to right",
	})

	require.Equal(t, "linear-gradient(to right, red, blue)", style[PropBackgroundImage])
}

func TestApplyUnknownMixinReturnsEmptyStyle(t *testing.T) {
	require.Empty(t, Apply("conic-gradient", map[string]any{}))
}

func TestApplyStillInvokesMixinOnArityMismatch(t *testing.T) {
	restore := setValidationEnabled(true)
	defer restore()

	// The top-level gate reports the extra argument but does not block the
	// call; the mixin's own validation then rejects the empty configuration.
	style := Apply("radial-gradient", map[string]any{"colorStops": []any{"red", "blue"}}, "extra")
	require.Equal(t, "radial-gradient(red, blue)", style[PropBackgroundImage])

	require.Empty(t, Apply("radial-gradient"))
}

func TestApplyRejectsWrongFieldTypes(t *testing.T) {
	restore := setValidationEnabled(true)
	defer restore()

	require.Empty(t, Apply("radial-gradient", map[string]any{
		"colorStops": []any{"red", "blue"},
		"extent":     5,
	}))
}

func TestApplyProductionModeComputesOnGarbage(t *testing.T) {
	restore := setValidationEnabled(false)
	defer restore()

	style := Apply("radial-gradient", map[string]any{
		"colorStops": []any{"red"},
		"extent":     5,
	})

	require.Equal(t, Style{
		PropBackgroundColor: "red",
		PropBackgroundImage: "radial-gradient(red)",
	}, style)
}
