package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("theme.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "theme.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "theme.yaml")
}

func TestParseErrorWithoutLineOmitsLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("theme.yaml", 0, fmt.Errorf("no such file"))
	require.Equal(t, "parse error: theme.yaml: no such file", err.Error())
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("rules[1].mixin", "unknown mixin name", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "rules[1].mixin", validationErr.Field)
	require.Contains(t, validationErr.Message, "unknown mixin name")
}

func TestRenderErrorIncludesSelectorContext(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("empty style")
	err := NewRenderError(".hero", underlying)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	require.Equal(t, ".hero", renderErr.Selector)
	require.True(t, stdErrors.Is(err, underlying))
}
