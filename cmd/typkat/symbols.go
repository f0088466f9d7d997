package main

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/typkat/pkg/katex"
)

// ErrUnknownMode is returned for --mode values other than math and text.
var ErrUnknownMode = errors.New("unknown mode")

func symbolsCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "symbols [chars]",
		Short: "Show how characters resolve in the symbol table",
		Long: `Show how characters resolve in the symbol table. Without arguments every
table entry of the selected mode is listed.

Examples:
  typkat symbols '+=<'
  typkat symbols --mode text`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed := katex.Mode(mode)
			if parsed != katex.ModeMath && parsed != katex.ModeText {
				return fmt.Errorf("%w: %s", ErrUnknownMode, mode)
			}

			var symbols []katex.Symbol

			if len(args) == 1 {
				for _, char := range args[0] {
					symbols = append(symbols, katex.Lookup(parsed, char))
				}
			} else {
				for _, symbol := range katex.Symbols() {
					if symbol.Mode == parsed {
						symbols = append(symbols, symbol)
					}
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), symbolTable(symbols))

			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(katex.ModeMath), "lookup mode (math, text)")

	return cmd
}

func symbolTable(symbols []katex.Symbol) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Char", "Code", "Group", "Font", "Node"})

	for _, symbol := range symbols {
		nodeType := "-"

		node, err := symbol.CreateNode()
		if err == nil {
			nodeType = string(node.NodeType())
		}

		tbl.AppendRow(table.Row{string(symbol.Char), fmt.Sprintf("%U", symbol.Char), symbol.Group, symbol.Font, nodeType})
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d", len(symbols))})

	return tbl.Render()
}
