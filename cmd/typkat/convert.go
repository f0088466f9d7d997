package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pierrec/lz4/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Sumatoshi-tech/typkat/pkg/config"
	"github.com/Sumatoshi-tech/typkat/pkg/content"
	"github.com/Sumatoshi-tech/typkat/pkg/convert"
	"github.com/Sumatoshi-tech/typkat/pkg/observability"
	"github.com/Sumatoshi-tech/typkat/pkg/schema"
	"github.com/Sumatoshi-tech/typkat/pkg/treediff"
)

const (
	stdinPath  = "-"
	stdinLabel = "stdin"
	lz4Suffix  = ".lz4"
)

type convertOptions struct {
	output   string
	format   string
	indent   int
	workers  int
	validate bool
	stats    bool
}

// input is one source document read from a file or stdin.
type input struct {
	label string
	data  []byte
}

// document is one converted input.
type document struct {
	label    string
	output   *convert.Output
	rendered []byte
}

func convertCmd(state *app) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [file...|-]",
		Short: "Convert source documents to KaTeX parse trees",
		Long: `Convert YAML or JSON source documents into KaTeX parse trees.

With several files, documents are converted concurrently and written in
input order, one per line for the compact format.

Examples:
  typkat convert formula.yaml
  typkat convert --format tree - < formula.json
  typkat convert -o out.json.lz4 a.yaml b.yaml
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				opts.format = state.cfg.Output.Format
			}

			if !cmd.Flags().Changed("indent") {
				opts.indent = state.cfg.Output.Indent
			}

			if !cmd.Flags().Changed("workers") {
				opts.workers = state.cfg.Batch.Workers
			}

			opts.validate = opts.validate || state.cfg.Output.Validate

			return runConvert(cmd, state, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout (.lz4 suffix compresses)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.DefaultOutputFormat, "output format: json, compact, tree")
	cmd.Flags().IntVar(&opts.indent, "indent", config.DefaultOutputIndent, "indent width for json output")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", config.DefaultBatchWorkers, "concurrent conversions (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&opts.validate, "validate", false, "check every tree against the KaTeX schema")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "print node and warning counts to stderr")

	return cmd
}

func runConvert(cmd *cobra.Command, state *app, opts *convertOptions, args []string) error {
	switch opts.format {
	case config.FormatJSON, config.FormatCompact, config.FormatTree:
	default:
		return fmt.Errorf("%w: unknown format %q", config.ErrInvalidConfig, opts.format)
	}

	if len(args) == 0 {
		args = []string{stdinPath}
	}

	recorder, finish, err := state.recorder()
	if err != nil {
		return err
	}

	converter, err := state.converter(recorder)
	if err != nil {
		return err
	}

	return errors.Join(convertAndWrite(cmd, converter, opts, args), finish())
}

func convertAndWrite(cmd *cobra.Command, converter *convert.Converter, opts *convertOptions, args []string) error {
	start := time.Now()

	docs, err := convertAll(cmd, converter, opts, args)
	if err != nil {
		return err
	}

	reportWarnings(cmd.ErrOrStderr(), docs)

	written, err := writeDocuments(cmd.OutOrStdout(), opts.output, docs)
	if err != nil {
		return err
	}

	if opts.stats {
		printStats(cmd.ErrOrStderr(), docs, written, time.Since(start))
	}

	return nil
}

// convertAll reads every input, then decodes and converts them at most
// opts.workers at a time. The returned documents are in input order.
func convertAll(cmd *cobra.Command, converter *convert.Converter, opts *convertOptions, paths []string) ([]document, error) {
	workers := opts.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	inputs := make([]input, 0, len(paths))

	for _, path := range paths {
		data, label, err := readInput(cmd, path)
		if err != nil {
			return nil, err
		}

		inputs = append(inputs, input{label: label, data: data})
	}

	docs := make([]document, len(inputs))

	group, ctx := errgroup.WithContext(cmd.Context())
	group.SetLimit(workers)

	for idx, in := range inputs {
		group.Go(func() error {
			doc, convErr := convertDocument(ctx, converter, opts, in.label, in.data)
			if convErr != nil {
				return convErr
			}

			docs[idx] = doc

			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, err
	}

	return docs, nil
}

func convertDocument(
	ctx context.Context, converter *convert.Converter, opts *convertOptions, label string, data []byte,
) (document, error) {
	root, err := content.Decode(data)
	if err != nil {
		return document{}, fmt.Errorf("%s: %w", label, err)
	}

	out, err := converter.Convert(observability.WithDocument(ctx, label), root)
	if err != nil {
		return document{}, fmt.Errorf("%s: %w", label, err)
	}

	if opts.validate {
		err = validateOutput(out)
		if err != nil {
			return document{}, &exitError{err: fmt.Errorf("%s: %w", label, err), code: exitCodeValidationFailure}
		}
	}

	rendered, err := render(out, opts.format, opts.indent)
	if err != nil {
		return document{}, fmt.Errorf("%s: %w", label, err)
	}

	return document{label: label, output: out, rendered: rendered}, nil
}

func validateOutput(out *convert.Output) error {
	tree, err := treediff.Generic(out.Result)
	if err != nil {
		return err
	}

	report, err := schema.ValidateKaTeX(tree)
	if err != nil {
		return err
	}

	return report.Err()
}

func render(out *convert.Output, format string, indent int) ([]byte, error) {
	switch format {
	case config.FormatCompact:
		return json.Marshal(out.Result)
	case config.FormatTree:
		tree, err := renderTree(out.Result)
		if err != nil {
			return nil, err
		}

		return []byte(tree), nil
	default:
		return json.MarshalIndent(out.Result, "", strings.Repeat(" ", indent))
	}
}

//nolint:nonamedreturns // named returns needed for gocritic unnamedResult
func readInput(cmd *cobra.Command, path string) (data []byte, label string, err error) {
	if path == stdinPath {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, stdinLabel, fmt.Errorf("read stdin: %w", err)
		}

		return data, stdinLabel, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read input: %w", err)
	}

	return data, path, nil
}

// writeDocuments writes every rendered document followed by a newline, to
// stdout or to path. It returns the number of uncompressed bytes written.
func writeDocuments(stdout io.Writer, path string, docs []document) (int, error) {
	var buf bytes.Buffer

	for _, doc := range docs {
		buf.Write(doc.rendered)
		buf.WriteByte('\n')
	}

	if path == "" {
		_, err := stdout.Write(buf.Bytes())
		if err != nil {
			return 0, fmt.Errorf("write output: %w", err)
		}

		return buf.Len(), nil
	}

	err := writeFile(path, buf.Bytes())
	if err != nil {
		return 0, err
	}

	return buf.Len(), nil
}

func writeFile(path string, data []byte) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	var dst io.Writer = file

	var zw *lz4.Writer

	if strings.HasSuffix(path, lz4Suffix) {
		zw = lz4.NewWriter(file)
		dst = zw
	}

	_, err = dst.Write(data)
	if err == nil && zw != nil {
		err = zw.Close()
	}

	closeErr := file.Close()

	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if closeErr != nil {
		return fmt.Errorf("close output: %w", closeErr)
	}

	return nil
}

func reportWarnings(w io.Writer, docs []document) {
	warn := color.New(color.FgYellow)

	for _, doc := range docs {
		for _, warning := range doc.output.Warnings {
			warn.Fprintf(w, "warning: %s: %s\n", doc.label, warning)
		}
	}
}

func printStats(w io.Writer, docs []document, written int, elapsed time.Duration) {
	nodes, warnings := 0, 0

	for _, doc := range docs {
		nodes += doc.output.Nodes
		warnings += len(doc.output.Warnings)
	}

	fmt.Fprintf(w, "%s documents, %s nodes, %s warnings, %s written in %s\n",
		humanize.Comma(int64(len(docs))),
		humanize.Comma(int64(nodes)),
		humanize.Comma(int64(warnings)),
		humanize.Bytes(uint64(written)), //nolint:gosec // written is never negative
		elapsed.Round(time.Microsecond),
	)
}

// multiRecorder fans one observation out to several recorders.
type multiRecorder []convert.Recorder

func (m multiRecorder) RecordConversion(
	ctx context.Context, status string, duration time.Duration, nodes int, warnings []string,
) {
	for _, recorder := range m {
		recorder.RecordConversion(ctx, status, duration, nodes, warnings)
	}
}

// recorder returns the recorder conversions report to and a finish function
// that writes the metrics textfile when one is configured. finish must run
// whether or not the conversions succeeded.
func (a *app) recorder() (convert.Recorder, func() error, error) {
	path := a.cfg.Telemetry.MetricsTextfile
	if path == "" {
		return a.metrics, func() error { return nil }, nil
	}

	sink, err := observability.NewPrometheusSink()
	if err != nil {
		return nil, nil, err
	}

	sinkMetrics, err := observability.NewConversionMetrics(sink.Meter())
	if err != nil {
		return nil, nil, err
	}

	finish := func() error {
		return errors.Join(sink.WriteTextfile(path), sink.Shutdown(context.Background()))
	}

	return multiRecorder{a.metrics, sinkMetrics}, finish, nil
}
