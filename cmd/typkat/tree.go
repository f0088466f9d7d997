package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/list"

	"github.com/Sumatoshi-tech/typkat/pkg/katex"
	"github.com/Sumatoshi-tech/typkat/pkg/treediff"
)

// treeHiddenFields are left out of the tree rendering.
var treeHiddenFields = []string{"type", "mode", "loc"} //nolint:gochecknoglobals // Static field list.

// renderTree draws a parse tree as an indented list, one node per item.
func renderTree(result katex.Result) (string, error) {
	tree, err := treediff.Generic(result)
	if err != nil {
		return "", err
	}

	lw := list.NewWriter()
	lw.SetStyle(list.StyleConnectedLight)
	appendTree(lw, "", tree)

	return lw.Render(), nil
}

func appendTree(lw list.Writer, label string, value any) {
	switch typed := value.(type) {
	case []any:
		if label == "" {
			appendItems(lw, typed)

			return
		}

		if len(typed) == 0 {
			lw.AppendItem(label + ": []")

			return
		}

		lw.AppendItem(label + ":")
		lw.Indent()
		appendItems(lw, typed)
		lw.UnIndent()
	case map[string]any:
		item := describeNode(typed)
		if label != "" {
			item = label + ": " + item
		}

		lw.AppendItem(item)

		children := nestedFields(typed)
		if len(children) == 0 {
			return
		}

		lw.Indent()

		for _, key := range children {
			appendTree(lw, key, typed[key])
		}

		lw.UnIndent()
	case nil:
	default:
		lw.AppendItem(fmt.Sprintf("%s: %v", label, typed))
	}
}

// appendItems appends array elements. Nested arrays, such as the rows of an
// array node, are labelled with their index.
func appendItems(lw list.Writer, items []any) {
	for idx, item := range items {
		if _, ok := item.([]any); ok {
			appendTree(lw, fmt.Sprintf("[%d]", idx), item)

			continue
		}

		appendTree(lw, "", item)
	}
}

// describeNode renders the node type followed by its non-null scalar fields.
func describeNode(node map[string]any) string {
	var sb strings.Builder

	if nodeType, ok := node["type"].(string); ok {
		sb.WriteString(nodeType)
	}

	for _, key := range sortedKeys(node) {
		value := node[key]
		if value == nil || slices.Contains(treeHiddenFields, key) || isNested(value) {
			continue
		}

		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}

		if text, ok := value.(string); ok {
			fmt.Fprintf(&sb, "%s=%q", key, text)
		} else {
			fmt.Fprintf(&sb, "%s=%v", key, value)
		}
	}

	return sb.String()
}

func nestedFields(node map[string]any) []string {
	var keys []string

	for _, key := range sortedKeys(node) {
		if isNested(node[key]) {
			keys = append(keys, key)
		}
	}

	return keys
}

func isNested(value any) bool {
	switch value.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}

func sortedKeys(node map[string]any) []string {
	keys := make([]string, 0, len(node))
	for key := range node {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}
