package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vcrobe/weft/dom/memdom"
	"github.com/vcrobe/weft/runtime"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a template against a YAML data file and print the HTML",
		Long: `Render parses the template, binds it to the data file and prints the resulting HTML.
Each --click fires a click on the element with that id and re-renders when the
handler reports a change.`,
		Example: `  weft render --template counter.html --data counter.yaml --click inc --click inc`,
		RunE:    runRender,
	}
	cmd.Flags().StringP("template", "t", "", "Template file (required)")
	cmd.Flags().StringP("data", "d", "", "YAML data file")
	cmd.Flags().StringSlice("click", nil, "Ids of elements to click, in order")
	_ = cmd.MarkFlagRequired("template")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	logger, err := loggerFor(cmd)
	if err != nil {
		return err
	}
	tplPath, _ := cmd.Flags().GetString("template")
	dataPath, _ := cmd.Flags().GetString("data")
	clicks, _ := cmd.Flags().GetStringSlice("click")

	tpl, err := loadTemplate(tplPath)
	if err != nil {
		return err
	}
	data, err := loadData(dataPath, logger)
	if err != nil {
		return err
	}

	doc := memdom.NewDocument()
	mount := doc.NewMount("app")
	rt := runtime.New(doc, data, tpl, runtime.WithName(tplPath), runtime.WithLogger(logger))
	defer rt.Teardown()

	if err := rt.RenderInto(mount); err != nil {
		return err
	}
	rt.Dirty().Reset()

	for _, id := range clicks {
		el := memdom.ByID(mount.Children, id)
		if el == nil {
			return fmt.Errorf("click %q: no element with that id", id)
		}
		if el.Click() == 0 {
			logger.Warn("element has no click handler", "id", id)
		}
		if rt.Dirty().Consume() {
			if err := rt.RenderInto(mount); err != nil {
				return err
			}
		}
	}

	if err := memdom.Render(cmd.OutOrStdout(), mount.Children...); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
