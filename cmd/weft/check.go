package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vcrobe/weft/errs"
	"github.com/vcrobe/weft/template"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that every dynamic key of a template resolves in a data file",
		RunE:  runCheck,
	}
	cmd.Flags().StringP("template", "t", "", "Template file (required)")
	cmd.Flags().StringP("data", "d", "", "YAML data file")
	_ = cmd.MarkFlagRequired("template")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger, err := loggerFor(cmd)
	if err != nil {
		return err
	}
	tplPath, _ := cmd.Flags().GetString("template")
	dataPath, _ := cmd.Flags().GetString("data")

	tpl, err := loadTemplate(tplPath)
	if err != nil {
		return err
	}
	data, err := loadData(dataPath, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var missing []error
	for _, key := range template.Keys(tpl) {
		if _, ok := data.Lookup(key); ok {
			fmt.Fprintf(out, "key     %s ok\n", key)
			continue
		}
		fmt.Fprintf(out, "key     %s MISSING\n", key)
		missing = append(missing, fmt.Errorf("%q: %w", key, errs.ErrMissingKey))
	}
	for _, msg := range template.Messages(tpl) {
		fmt.Fprintf(out, "message %s\n", msg)
	}
	if len(missing) > 0 {
		return errs.Configuration("check", errors.Join(missing...))
	}
	return nil
}
