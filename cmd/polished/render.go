package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cantyjeffrey/polished/internal/config"
	"github.com/cantyjeffrey/polished/internal/render"
)

func newRenderCmd(flags *rootFlags) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "render <theme>",
		Short: "Render a theme file to CSS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(flags)
			if err != nil {
				return err
			}

			theme, err := config.ParseTheme(args[0])
			if err != nil {
				return err
			}

			log.WithFields(map[string]any{"theme": theme.Name, "rules": len(theme.Rules)}).Debug("theme loaded")

			css, renderErr := render.CSS(theme, log)

			if outputPath != "" {
				if err := os.WriteFile(outputPath, []byte(css), 0o644); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), css)
			}

			// Skipped rules surface after the valid CSS has been written.
			return renderErr
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write CSS to a file instead of stdout")

	return cmd
}
