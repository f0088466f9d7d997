package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/typkat/pkg/content"
	"github.com/Sumatoshi-tech/typkat/pkg/observability"
	"github.com/Sumatoshi-tech/typkat/pkg/treediff"
)

// diffArgCount is the number of arguments expected by the diff command.
const diffArgCount = 2

// Diff output formats.
const (
	diffFormatUnified = "unified"
	diffFormatSummary = "summary"
	diffFormatJSON    = "json"
)

// Sentinel errors for the diff command.
var (
	ErrTreesDiffer        = errors.New("converted tree differs from expected tree")
	ErrUnsupportedDiffFmt = errors.New("unsupported format")
)

func diffCmd(state *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "diff <source> <expected.json>",
		Short: "Convert a source document and compare it with an expected KaTeX tree",
		Long: `Convert a source document and compare the result with an expected KaTeX
parse tree. Source locations are ignored. The command fails when the trees differ.

Examples:
  typkat diff formula.yaml formula.katex.json
  typkat diff -f summary formula.yaml formula.katex.json`,
		Args: cobra.ExactArgs(diffArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, state, args[0], args[1], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", diffFormatUnified, "output format (unified, summary, json)")

	return cmd
}

func runDiff(cmd *cobra.Command, state *app, sourcePath, expectedPath, format string) error {
	if !slices.Contains([]string{diffFormatUnified, diffFormatSummary, diffFormatJSON}, format) {
		return fmt.Errorf("%w: %s", ErrUnsupportedDiffFmt, format)
	}

	data, label, err := readInput(cmd, sourcePath)
	if err != nil {
		return err
	}

	root, err := content.Decode(data)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}

	converter, err := state.converter(nil)
	if err != nil {
		return err
	}

	out, err := converter.Convert(observability.WithDocument(cmd.Context(), label), root)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}

	actual, err := treediff.Generic(out.Result)
	if err != nil {
		return err
	}

	expectedData, err := os.ReadFile(expectedPath)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", expectedPath, err)
	}

	expected, err := treediff.Decode(expectedData)
	if err != nil {
		return fmt.Errorf("%s: %w", expectedPath, err)
	}

	expected = treediff.StripFields(expected, "loc")
	actual = treediff.StripFields(actual, "loc")

	changes := treediff.DetectChanges(expected, actual)

	err = printDiff(cmd.OutOrStdout(), format, changes, expected, actual)
	if err != nil {
		return err
	}

	if len(changes) > 0 {
		return &exitError{err: fmt.Errorf("%w: %d changes", ErrTreesDiffer, len(changes)), code: 1}
	}

	return nil
}

func printDiff(writer io.Writer, format string, changes []treediff.Change, expected, actual any) error {
	switch format {
	case diffFormatJSON:
		data, err := json.MarshalIndent(changes, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal changes: %w", err)
		}

		fmt.Fprintln(writer, string(data))

		return nil
	case diffFormatSummary:
		printChangeSummary(changes, writer)

		return nil
	}

	if len(changes) == 0 {
		color.New(color.FgGreen).Fprintln(writer, "Trees are identical")

		return nil
	}

	for _, change := range changes {
		changeColor(change.Type).Fprintln(writer, change)
	}

	fmt.Fprintln(writer)
	printChangeSummary(changes, writer)

	lines, err := treediff.LineDiff(expected, actual)
	if err != nil {
		return err
	}

	fmt.Fprintf(writer, "\n--- expected\n+++ converted\n%s", lines)

	return nil
}

func printChangeSummary(changes []treediff.Change, writer io.Writer) {
	summary := treediff.Summary(changes)

	fmt.Fprintf(writer, "Change Summary:\n")

	for _, changeType := range []treediff.ChangeType{treediff.ChangeAdded, treediff.ChangeRemoved, treediff.ChangeModified} {
		fmt.Fprintf(writer, "  %s: %d\n", changeType, summary[changeType])
	}
}

func changeColor(changeType treediff.ChangeType) *color.Color {
	switch changeType {
	case treediff.ChangeAdded:
		return color.New(color.FgGreen)
	case treediff.ChangeRemoved:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}
