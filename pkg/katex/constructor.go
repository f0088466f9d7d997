package katex

// ArrayConstructor accumulates cells row by row and builds an Array.
//
// A fresh constructor has no rows and one empty h-line entry. Each NextRow
// appends an empty row and an h-line entry, so a finished array of R rows has
// R+1 h-line entries.
type ArrayConstructor struct {
	body            []NodeArray
	hLinesBeforeRow [][]bool
	rowGaps         []*Measurement
	cols            []AlignSpec
}

// NewArrayConstructor returns an empty constructor.
func NewArrayConstructor() *ArrayConstructor {
	return &ArrayConstructor{
		body:            []NodeArray{},
		hLinesBeforeRow: [][]bool{{}},
		rowGaps:         []*Measurement{},
	}
}

// NextRow starts a new row. Every row after the first adds a default row gap.
func (c *ArrayConstructor) NextRow() {
	if len(c.body) > 0 {
		c.rowGaps = append(c.rowGaps, nil)
	}

	c.body = append(c.body, NodeArray{})
	c.hLinesBeforeRow = append(c.hLinesBeforeRow, []bool{})
}

// PushNode appends a cell to the current row, starting the first row if needed.
func (c *ArrayConstructor) PushNode(node Node) {
	if len(c.body) == 0 {
		c.NextRow()
	}

	last := len(c.body) - 1
	c.body[last] = append(c.body[last], node)
}

// MapBody replaces every cell with fn(cell).
func (c *ArrayConstructor) MapBody(fn func(Node) Node) {
	for _, row := range c.body {
		for i, cell := range row {
			row[i] = fn(cell)
		}
	}
}

// CountColumns returns the length of the longest row.
func (c *ArrayConstructor) CountColumns() int {
	columns := 0
	for _, row := range c.body {
		columns = max(columns, len(row))
	}

	return columns
}

// CountRows returns the number of rows.
func (c *ArrayConstructor) CountRows() int {
	return len(c.body)
}

// ColsLeftRightAlign aligns columns alternately right and left, as in an
// aligned environment. Every right-aligned column after the first pair gets a
// unit pregap.
func (c *ArrayConstructor) ColsLeftRightAlign() *ArrayConstructor {
	columns := c.CountColumns()
	c.cols = make([]AlignSpec, 0, columns)

	for i := range columns {
		align, pregap := "l", 0.0
		if i%2 == 0 {
			align = "r"

			if i > 1 {
				pregap = 1
			}
		}

		c.cols = append(c.cols, AlignColumn(align, Ptr(pregap), Ptr(0.0)))
	}

	return c
}

// ColsCenterAlign centers every column with default gaps.
func (c *ArrayConstructor) ColsCenterAlign() *ArrayConstructor {
	columns := c.CountColumns()
	c.cols = make([]AlignSpec, 0, columns)

	for range columns {
		c.cols = append(c.cols, AlignColumn("c", nil, nil))
	}

	return c
}

// ColsCasesAlign left-aligns a value column and a condition column with a
// unit gap between them.
func (c *ArrayConstructor) ColsCasesAlign() *ArrayConstructor {
	c.cols = []AlignSpec{
		AlignColumn("l", Ptr(0.0), Ptr(1.0)),
		AlignColumn("l", Ptr(0.0), Ptr(0.0)),
	}

	return c
}

// SetRowGaps overrides the row gaps derived from NextRow.
func (c *ArrayConstructor) SetRowGaps(gaps []*Measurement) *ArrayConstructor {
	c.rowGaps = gaps

	return c
}

// RowGaps returns the current row gaps.
func (c *ArrayConstructor) RowGaps() []*Measurement {
	return c.rowGaps
}

// Build returns an array holding a copy of the accumulated cells.
func (c *ArrayConstructor) Build() *Array {
	array := NewArray()

	array.Body = make([]NodeArray, len(c.body))
	for i, row := range c.body {
		array.Body[i] = append(NodeArray{}, row...)
	}

	array.HLinesBeforeRow = make([][]bool, len(c.hLinesBeforeRow))
	for i, row := range c.hLinesBeforeRow {
		array.HLinesBeforeRow[i] = append([]bool{}, row...)
	}

	array.RowGaps = append([]*Measurement{}, c.rowGaps...)

	if c.cols != nil {
		array.Cols = append([]AlignSpec{}, c.cols...)
	}

	return array
}
