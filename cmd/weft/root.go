package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vcrobe/weft/console"
	"github.com/vcrobe/weft/markup"
	"github.com/vcrobe/weft/template"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "weft",
		Short:         "weft renders reactive templates",
		Long:          `weft binds HTML templates with :dynamic and @handler attributes to component data and renders the result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	root.AddCommand(newRenderCmd(), newCheckCmd())
	return root
}

func loggerFor(cmd *cobra.Command) (*slog.Logger, error) {
	raw, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, err
	}
	level, err := console.ParseLevel(raw)
	if err != nil {
		return nil, err
	}
	return console.New(level), nil
}

func loadTemplate(path string) (template.Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return markup.ParseReader(f)
}
