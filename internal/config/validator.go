package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	polishederrors "github.com/cantyjeffrey/polished/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
)

// validatorInstance configures and returns the shared validator instance
// used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("selector", func(fl validator.FieldLevel) bool {
			return isValidSelector(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// isValidSelector performs a shallow syntactic check. CSS parsing is out of
// scope; this only rejects selectors that would corrupt the emitted
// stylesheet structure.
func isValidSelector(selector string) bool {
	trimmed := strings.TrimSpace(selector)
	if trimmed == "" {
		return false
	}
	return !strings.ContainsAny(trimmed, "{};")
}

// ValidateTheme performs schema and cross-field validation on a theme.
func ValidateTheme(theme *Theme) error {
	if theme == nil {
		return polishederrors.NewValidationError("theme", "theme is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(theme); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(theme.Rules))
	for i, rule := range theme.Rules {
		if prev, exists := seen[rule.Selector]; exists {
			return polishederrors.NewValidationError(
				fieldForRule(i, "selector"),
				fmt.Sprintf("duplicate selector %q (first used by rules[%d])", rule.Selector, prev),
				nil,
			)
		}
		seen[rule.Selector] = i
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return polishederrors.NewValidationError(field, msg, err)
	}

	return polishederrors.NewValidationError("theme", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForRule(index int, field string) string {
	return fmt.Sprintf("rules[%d].%s", index, field)
}
