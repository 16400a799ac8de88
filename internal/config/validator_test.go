package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	polishederrors "github.com/cantyjeffrey/polished/pkg/errors"
)

func validTheme() *Theme {
	return &Theme{
		Version: "1.0.0",
		Name:    "ocean",
		Rules: []StyleRule{
			{Selector: ".hero", Mixin: "radial-gradient", ColorStops: []string{"red", "blue"}},
		},
	}
}

func TestValidateThemeAcceptsValidTheme(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateTheme(validTheme()))
}

func TestValidateThemeRejectsNil(t *testing.T) {
	t.Parallel()

	err := ValidateTheme(nil)

	var validationErr *polishederrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateThemeRequiresSemverVersion(t *testing.T) {
	t.Parallel()

	theme := validTheme()
	theme.Version = "one"

	err := ValidateTheme(theme)

	var validationErr *polishederrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Field, "version")
}

func TestValidateThemeRequiresRules(t *testing.T) {
	t.Parallel()

	theme := validTheme()
	theme.Rules = nil

	require.Error(t, ValidateTheme(theme))
}

func TestValidateThemeRejectsDuplicateSelectors(t *testing.T) {
	t.Parallel()

	theme := validTheme()
	theme.Rules = append(theme.Rules, StyleRule{
		Selector:   ".hero",
		Mixin:      "linear-gradient",
		ColorStops: []string{"red", "blue"},
	})

	err := ValidateTheme(theme)

	var validationErr *polishederrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Message, "duplicate selector")
}

func TestValidateThemeSelectorSyntax(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		selector string
		wantErr  bool
	}{
		{"class", ".hero", false},
		{"id", "#main", false},
		{"element with pseudo-class", "a:hover", false},
		{"descendant combinator", ".card > .title", false},
		{"blank", "   ", true},
		{"embedded brace", ".hero { }", true},
		{"embedded semicolon", ".hero;", true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			theme := validTheme()
			theme.Rules[0].Selector = tc.selector

			err := ValidateTheme(theme)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
