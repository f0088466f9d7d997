// Package treediff compares KaTeX parse trees in their generic JSON form.
//
// Trees are compared after decoding to maps, slices and scalars, so a tree
// produced by the converter can be checked against one exported by KaTeX
// itself. Fields that never match between the two, such as source
// locations, are removed first with StripFields.
package treediff

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ErrDecode is returned when a tree cannot be turned into its generic form.
var ErrDecode = errors.New("decode tree")

// ChangeType represents the type of change between two trees.
type ChangeType int

// Change type constants.
const (
	ChangeAdded ChangeType = iota
	ChangeRemoved
	ChangeModified
)

func (ct ChangeType) String() string {
	switch ct {
	case ChangeAdded:
		return "added"
	case ChangeRemoved:
		return "removed"
	case ChangeModified:
		return "modified"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (ct ChangeType) MarshalText() ([]byte, error) {
	return []byte(ct.String()), nil
}

// Change is one difference between two trees. Path locates it from the root,
// e.g. "$[3].sup.text".
type Change struct {
	Before any        `json:"before,omitempty"`
	After  any        `json:"after,omitempty"`
	Path   string     `json:"path"`
	Type   ChangeType `json:"type"`
}

func (c Change) String() string {
	switch c.Type {
	case ChangeAdded:
		return fmt.Sprintf("+ %s: %s", c.Path, compact(c.After))
	case ChangeRemoved:
		return fmt.Sprintf("- %s: %s", c.Path, compact(c.Before))
	default:
		return fmt.Sprintf("~ %s: %s -> %s", c.Path, compact(c.Before), compact(c.After))
	}
}

// Generic converts a value, typically a katex.Node or katex.Result, into its
// generic JSON form.
func Generic(value any) (any, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return Decode(data)
}

// Decode parses a JSON tree into its generic form.
func Decode(data []byte) (any, error) {
	var tree any

	err := json.Unmarshal(data, &tree)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return tree, nil
}

// StripFields returns a copy of tree with the named object fields removed at
// every depth. The input is not modified.
func StripFields(tree any, fields ...string) any {
	switch value := tree.(type) {
	case map[string]any:
		out := make(map[string]any, len(value))

		for key, child := range value {
			if slices.Contains(fields, key) {
				continue
			}

			out[key] = StripFields(child, fields...)
		}

		return out
	case []any:
		out := make([]any, len(value))
		for i, child := range value {
			out[i] = StripFields(child, fields...)
		}

		return out
	default:
		return tree
	}
}

// DetectChanges detects structural changes between two generic trees.
func DetectChanges(before, after any) []Change {
	return detect("$", before, after)
}

// Equal reports whether two generic trees have no changes between them.
func Equal(before, after any) bool {
	return len(DetectChanges(before, after)) == 0
}

// Summary counts changes by type.
func Summary(changes []Change) map[ChangeType]int {
	summary := make(map[ChangeType]int)

	for _, change := range changes {
		summary[change.Type]++
	}

	return summary
}

func detect(path string, before, after any) []Change {
	switch {
	case before == nil && after == nil:
		return nil
	case before == nil:
		return []Change{{Path: path, After: after, Type: ChangeAdded}}
	case after == nil:
		return []Change{{Path: path, Before: before, Type: ChangeRemoved}}
	}

	beforeObj, beforeIsObj := before.(map[string]any)
	afterObj, afterIsObj := after.(map[string]any)

	if beforeIsObj && afterIsObj {
		return diffObjects(path, beforeObj, afterObj)
	}

	beforeArr, beforeIsArr := before.([]any)
	afterArr, afterIsArr := after.([]any)

	if beforeIsArr && afterIsArr {
		return diffArrays(path, beforeArr, afterArr)
	}

	if reflect.DeepEqual(before, after) {
		return nil
	}

	return []Change{{Path: path, Before: before, After: after, Type: ChangeModified}}
}

func diffObjects(path string, before, after map[string]any) []Change {
	keys := make([]string, 0, len(before)+len(after))

	for key := range before {
		keys = append(keys, key)
	}

	for key := range after {
		if _, ok := before[key]; !ok {
			keys = append(keys, key)
		}
	}

	slices.Sort(keys)

	var changes []Change

	for _, key := range keys {
		changes = append(changes, detect(path+"."+key, before[key], after[key])...)
	}

	return changes
}

// childKey identifies an array element by its node type and text.
type childKey struct {
	Type string
	Text string
}

func keyOf(value any) childKey {
	obj, ok := value.(map[string]any)
	if !ok {
		return childKey{Text: compact(value)}
	}

	nodeType, _ := obj["type"].(string) //nolint:errcheck // Missing type keys as empty.
	text, _ := obj["text"].(string)     //nolint:errcheck // Missing text keys as empty.

	return childKey{Type: nodeType, Text: text}
}

// diffArrays matches elements by (type, text) in order. Matched pairs are
// compared recursively; unmatched elements are reported as removed or added.
func diffArrays(path string, before, after []any) []Change {
	if len(before) == 0 && len(after) == 0 {
		return nil
	}

	afterIndex := make(map[childKey][]int)
	for idx, child := range after {
		key := keyOf(child)
		afterIndex[key] = append(afterIndex[key], idx)
	}

	afterUsed := make([]bool, len(after))
	beforeMatched := make([]bool, len(before))

	var changes []Change

	for idx, child := range before {
		for _, afterIdx := range afterIndex[keyOf(child)] {
			if afterUsed[afterIdx] {
				continue
			}

			afterUsed[afterIdx] = true
			beforeMatched[idx] = true

			changes = append(changes, detect(fmt.Sprintf("%s[%d]", path, idx), child, after[afterIdx])...)

			break
		}
	}

	for idx, child := range before {
		if !beforeMatched[idx] {
			changes = append(changes, Change{Path: fmt.Sprintf("%s[%d]", path, idx), Before: child, Type: ChangeRemoved})
		}
	}

	for idx, child := range after {
		if !afterUsed[idx] {
			changes = append(changes, Change{Path: fmt.Sprintf("%s[%d]", path, idx), After: child, Type: ChangeAdded})
		}
	}

	return changes
}

// LineDiff renders both trees as indented JSON and diffs them line by line.
// Lines are prefixed with "-", "+" or a space. The result is empty when the
// renderings are identical.
func LineDiff(before, after any) (string, error) {
	from, err := json.MarshalIndent(before, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}

	to, err := json.MarshalIndent(after, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if string(from) == string(to) {
		return "", nil
	}

	dmp := diffmatchpatch.New()
	src, dst, lines := dmp.DiffLinesToRunes(string(from)+"\n", string(to)+"\n")
	diffs := dmp.DiffMainRunes(src, dst, false)

	var out strings.Builder

	for _, edit := range diffs {
		prefix := " "

		switch edit.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffEqual:
		}

		// Each rune of a line-mode diff indexes one line.
		for _, idx := range edit.Text {
			if int(idx) >= len(lines) {
				continue
			}

			out.WriteString(prefix)
			out.WriteString(lines[idx])
		}
	}

	return out.String(), nil
}

func compact(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}

	return string(data)
}
