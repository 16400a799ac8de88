// Package render emits stylesheet text from a parsed theme by driving the
// mixin registry.
package render

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/cantyjeffrey/polished"
	"github.com/cantyjeffrey/polished/internal/config"
	"github.com/cantyjeffrey/polished/internal/logger"
	polishederrors "github.com/cantyjeffrey/polished/pkg/errors"
)

// CSS renders every rule of the theme into stylesheet text. A rule whose
// mixin produced no style is skipped rather than emitted partially; skipped
// rules are logged and reported in the returned error alongside the CSS for
// the rules that did render.
func CSS(theme *config.Theme, log *logger.Logger) (string, error) {
	var blocks []string
	var skipped []string

	for i, rule := range theme.Rules {
		style := polished.Apply(rule.Mixin, rule.MixinConfig())
		if len(style) == 0 {
			log.WithFields(map[string]any{
				"selector": rule.Selector,
				"mixin":    rule.Mixin,
			}).Warn("mixin produced no style, skipping rule")
			skipped = append(skipped, fmt.Sprintf("rules[%d] %s", i, rule.Selector))
			continue
		}
		blocks = append(blocks, block(rule.Selector, style))
	}

	css := ""
	if len(blocks) > 0 {
		css = strings.Join(blocks, "\n\n") + "\n"
	}

	if len(skipped) > 0 {
		err := polishederrors.NewRenderError(
			strings.Join(skipped, ", "),
			fmt.Errorf("%d rule(s) produced no style", len(skipped)),
		)
		return css, err
	}

	return css, nil
}

func block(selector string, style polished.Style) string {
	names := make([]string, 0, len(style))
	for name := range style {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, name := range names {
		b.WriteString("  ")
		b.WriteString(kebabCase(name))
		b.WriteString(": ")
		b.WriteString(style[name])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

// kebabCase converts a camelCase property name to its stylesheet form, e.g.
// backgroundColor to background-color.
func kebabCase(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
