package tabular

// Table is a header row plus string cells, the shape every tabular
// file is read into and written from.
type Table struct {
	Header []string
	Rows   [][]string
}

// ColumnCount returns the number of header columns
func (t *Table) ColumnCount() int {
	return len(t.Header)
}

// Column returns the cells of column i, using "" for short rows
func (t *Table) Column(i int) []string {
	cells := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		if i < len(row) {
			cells[r] = row[i]
		}
	}
	return cells
}
