package katex

// Children returns the direct child nodes of node in field order. Nil
// optional children are skipped.
//
//nolint:gocyclo,cyclop,funlen // One case per node variant.
func Children(node Node) NodeArray {
	var children NodeArray

	add := func(nodes ...Node) {
		for _, child := range nodes {
			if child != nil {
				children = append(children, child)
			}
		}
	}

	switch n := node.(type) {
	case *Array:
		for _, row := range n.Body {
			add(row...)
		}

		for _, tag := range n.Tags {
			add(tag.Nodes...)
		}
	case *CdLabel:
		add(n.Label)
	case *CdLabelParent:
		add(n.Label)
	case *Color:
		add(n.Body...)
	case *Op:
		add(n.Body...)
	case *OrdGroup:
		add(n.Body...)
	case *Styling:
		add(n.Body...)
	case *SupSub:
		add(n.Base, n.Sup, n.Sub)
	case *Tag:
		add(n.Body...)
		add(n.Tag...)
	case *Text:
		add(n.Body...)
	case *Accent:
		add(n.Base)
	case *AccentUnder:
		add(n.Base)
	case *Enclose:
		add(n.Body)
	case *Environment:
		add(n.NameGroup)
	case *Font:
		add(n.Body)
	case *GenFrac:
		add(n.Numer, n.Denom)
	case *HBox:
		add(n.Body...)
	case *HorizBrace:
		add(n.Base)
	case *HRef:
		add(n.Body...)
	case *HTML:
		add(n.Body...)
	case *HTMLMathML:
		add(n.HTML...)
		add(n.MathML...)
	case *Lap:
		add(n.Body)
	case *LeftRight:
		add(n.Body...)
	case *MathChoice:
		add(n.Display...)
		add(n.Text...)
		add(n.Script...)
		add(n.ScriptScript...)
	case *MClass:
		add(n.Body...)
	case *OperatorName:
		add(n.Body...)
	case *Overline:
		add(n.Body)
	case *Phantom:
		add(n.Body...)
	case *HPhantom:
		add(n.Body)
	case *VPhantom:
		add(n.Body)
	case *Pmb:
		add(n.Body...)
	case *RaiseBox:
		add(n.Body)
	case *Sizing:
		add(n.Body...)
	case *Smash:
		add(n.Body...)
	case *Sqrt:
		add(n.Body, n.Index)
	case *Underline:
		add(n.Body)
	case *VCenter:
		add(n.Body)
	case *XArrow:
		add(n.Body, n.Below)
	}

	return children
}

// Walk visits node and its descendants depth-first in pre-order. Returning
// false from visit skips the node's children.
func Walk(node Node, visit func(Node) bool) {
	if node == nil || !visit(node) {
		return
	}

	for _, child := range Children(node) {
		Walk(child, visit)
	}
}

// Count returns the number of nodes in the tree rooted at node.
func Count(node Node) int {
	total := 0

	Walk(node, func(Node) bool {
		total++

		return true
	})

	return total
}
