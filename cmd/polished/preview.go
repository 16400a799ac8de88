package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cantyjeffrey/polished/internal/config"
)

const (
	fallbackWidth  = 80
	swatchMinWidth = 4
)

var selectorStyle = lipgloss.NewStyle().Bold(true)

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <theme>",
		Short: "Preview a theme's color stops as terminal swatches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := newLogger(flags); err != nil {
				return err
			}

			theme, err := config.ParseTheme(args[0])
			if err != nil {
				return err
			}

			width := fallbackWidth
			if term.IsTerminal(int(os.Stdout.Fd())) {
				if w, _, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil && w > 0 {
					width = w
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%d rules)\n", theme.Name, len(theme.Rules))
			for _, rule := range theme.Rules {
				fmt.Fprintln(out, previewLine(rule, width))
			}

			return nil
		},
	}

	return cmd
}

// previewLine renders one theme rule as a selector label followed by a
// swatch block per color stop. Stop positions are dropped; only the color
// token is shown.
func previewLine(rule config.StyleRule, width int) string {
	label := selectorStyle.Render(rule.Selector)

	if len(rule.ColorStops) == 0 {
		return label
	}

	available := width - lipgloss.Width(label) - 1
	swatchWidth := available / len(rule.ColorStops)
	if swatchWidth < swatchMinWidth {
		swatchWidth = swatchMinWidth
	}

	swatches := make([]string, 0, len(rule.ColorStops))
	for _, stop := range rule.ColorStops {
		color := stop
		if fields := strings.Fields(stop); len(fields) > 0 {
			color = fields[0]
		}
		swatches = append(swatches, lipgloss.NewStyle().
			Background(lipgloss.Color(color)).
			Width(swatchWidth).
			Render(" "))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, append([]string{label, " "}, swatches...)...)
}
