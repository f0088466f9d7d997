package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/typkat/pkg/schema"
	"github.com/Sumatoshi-tech/typkat/pkg/treediff"
)

func validateCmd(state *app) *cobra.Command {
	var source, quiet bool

	var colorize, nocolor bool

	cmd := &cobra.Command{
		Use:   "validate <file.json|->",
		Short: "Validate a KaTeX tree or source document against its schema",
		Long: `Validate a KaTeX parse tree against the embedded KaTeX schema, or with
--source a YAML or JSON source document against the content schema.

Examples:
  typkat validate tree.json
  typkat validate - < tree.json
  typkat validate --source formula.yaml
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setColor(colorize, nocolor)

			return runValidate(cmd, state, args[0], source, quiet)
		},
	}

	cmd.Flags().BoolVar(&source, "source", false, "validate a source document instead of a KaTeX tree")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print nothing for valid documents")
	cmd.Flags().BoolVar(&colorize, "color", false, "force colored output")
	cmd.Flags().BoolVar(&nocolor, "no-color", false, "disable colored output")

	return cmd
}

func setColor(colorize, nocolor bool) {
	if nocolor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	} else if colorize {
		color.NoColor = false //nolint:reassign // intentional override of library global
	}
}

func runValidate(cmd *cobra.Command, state *app, path string, source, quiet bool) error {
	data, label, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	schemaName := schema.KaTeX

	var doc any

	if source {
		schemaName = schema.Content
		err = yaml.Unmarshal(data, &doc)
	} else {
		doc, err = treediff.Decode(data)
	}

	if err != nil {
		return &exitError{err: fmt.Errorf("invalid document in %s: %w", label, err), code: exitCodeValidationFailure}
	}

	report, err := schema.Validate(schemaName, doc)
	if err != nil {
		return err
	}

	state.logger.DebugContext(cmd.Context(), "validated document",
		"input", label, "schema", schemaName, "nodes", report.Nodes, "issues", len(report.Issues))

	out := cmd.OutOrStdout()

	if report.Valid() {
		if !quiet {
			color.New(color.FgGreen).Fprintf(out, "%s document is valid (%s)\n", schemaName, label)
			color.New(color.FgGreen).Fprintf(out, "  Compliance: 100%%\n")
		}

		return nil
	}

	printReport(out, label, report)

	return &exitError{err: fmt.Errorf("%s: %w", label, report.Err()), code: exitCodeValidationFailure}
}

func printReport(out io.Writer, label string, report *schema.Report) {
	color.New(color.FgRed).Fprintf(out, "%s validation failed (%s)\n", report.Schema, label)
	color.New(color.FgYellow).Fprintf(out, "  Compliance: %d%%\n", report.Compliance)

	fmt.Fprintf(out, "\nErrors:\n")

	for _, issue := range report.Issues {
		color.New(color.FgRed).Fprintf(out, "  - %s\n", issue)
	}

	hints := schema.Recommendations(report)
	if len(hints) == 0 {
		return
	}

	fmt.Fprintf(out, "\nRecommendations:\n")

	for _, hint := range hints {
		color.New(color.FgCyan).Fprintf(out, "  - %s\n", hint)
	}
}
