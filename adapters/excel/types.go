package excel

// RawRowData represents a row of raw spreadsheet data as header -> cell text
type RawRowData map[string]string

// Table represents a complete spreadsheet or CSV file
type Table struct {
	Headers []string     // Column headers
	Rows    []RawRowData // Data rows
	Lines   []int        // Source line of each data row, header is line 1
}

// Line returns the source line of data row i, or i+2 when lines were not recorded.
func (t *Table) Line(i int) int {
	if i < len(t.Lines) {
		return t.Lines[i]
	}
	return i + 2
}

// HasColumn reports whether the header row contains name.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}
