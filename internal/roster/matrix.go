package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

// CountMatrix is a cross-tabulation of record counts. Rows and Columns hold
// the distinct labels in ascending order; Cells[i][j] is the count for
// (Rows[i], Columns[j]).
type CountMatrix struct {
	RowLabel    string
	ColumnLabel string
	Rows        []string
	Columns     []string
	Cells       [][]int
}

// CrossTab counts the records for every (rowCol, colCol) pair whose countCol
// cell is non-null. Records with a null rowCol or colCol are ignored, and
// pairs with no records are 0.
func CrossTab(t Table, rowCol, colCol, countCol string) (CountMatrix, error) {
	ri, ci, ki := t.Index(rowCol), t.Index(colCol), t.Index(countCol)
	switch {
	case ri < 0:
		return CountMatrix{}, columnMissing(rowCol)
	case ci < 0:
		return CountMatrix{}, columnMissing(colCol)
	case ki < 0:
		return CountMatrix{}, columnMissing(countCol)
	}

	rowSet := map[string]struct{}{}
	colSet := map[string]struct{}{}
	type pair struct{ row, col string }
	tally := map[pair]int{}
	for _, rec := range t.Rows {
		r, c := rec[ri], rec[ci]
		if IsNull(r) || IsNull(c) {
			continue
		}
		rowSet[r] = struct{}{}
		colSet[c] = struct{}{}
		if !IsNull(rec[ki]) {
			tally[pair{r, c}]++
		}
	}

	m := CountMatrix{
		RowLabel:    rowCol,
		ColumnLabel: colCol,
		Rows:        sortedKeys(rowSet),
		Columns:     sortedKeys(colSet),
	}
	m.Cells = make([][]int, len(m.Rows))
	for i, r := range m.Rows {
		m.Cells[i] = make([]int, len(m.Columns))
		for j, c := range m.Columns {
			m.Cells[i][j] = tally[pair{r, c}]
		}
	}
	return m, nil
}

// Cell returns the count for a row and column label, or 0 if either label is
// unknown.
func (m CountMatrix) Cell(row, col string) int {
	i := sort.SearchStrings(m.Rows, row)
	j := sort.SearchStrings(m.Columns, col)
	if i >= len(m.Rows) || m.Rows[i] != row || j >= len(m.Columns) || m.Columns[j] != col {
		return 0
	}
	return m.Cells[i][j]
}

// Total returns the sum of all cells.
func (m CountMatrix) Total() int {
	total := 0
	for _, row := range m.Cells {
		for _, n := range row {
			total += n
		}
	}
	return total
}

// Max returns the largest cell value, or 0 for an empty matrix.
func (m CountMatrix) Max() int {
	top := 0
	for _, row := range m.Cells {
		for _, n := range row {
			if n > top {
				top = n
			}
		}
	}
	return top
}

// Empty reports whether the matrix has no rows or no columns.
func (m CountMatrix) Empty() bool {
	return len(m.Rows) == 0 || len(m.Columns) == 0
}

// WriteCSV writes the matrix with the row label as the leading column.
func (m CountMatrix) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	header := append([]string{m.RowLabel}, m.Columns...)
	if err := writer.Write(header); err != nil {
		return err
	}
	for i, label := range m.Rows {
		record := make([]string, 0, len(m.Columns)+1)
		record = append(record, label)
		for _, n := range m.Cells[i] {
			record = append(record, strconv.Itoa(n))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteMatrixFile replaces the file at path with the matrix CSV.
func WriteMatrixFile(path string, m CountMatrix) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create matrix file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("close matrix file: %w", closeErr)
		}
	}()
	if err := m.WriteCSV(file); err != nil {
		return fmt.Errorf("write matrix file: %w", err)
	}
	return nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
