package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/louisbranch/tavernstats/internal/platform/errors"
)

const utf8BOM = "\ufeff"

// nullTokens are the cell values treated as missing.
var nullTokens = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// IsNull reports whether a cell value is missing.
func IsNull(value string) bool {
	_, ok := nullTokens[value]
	return ok
}

// Table is an immutable in-memory record table.
type Table struct {
	Header []string
	Rows   [][]string
}

// Load reads the delimited file at path. A missing file yields a
// CodeDatasetMissing error naming the path and the folder it is expected in.
func Load(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Table{}, apperrors.WrapWithMetadata(
				apperrors.CodeDatasetMissing,
				fmt.Sprintf("missing dataset %s (put your CSV in the %s folder)", path, filepath.Dir(path)),
				map[string]string{"path": path},
				err,
			)
		}
		return Table{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return Table{}, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

// Read parses a header row followed by data rows. Short rows are padded
// with nulls; rows wider than the header are rejected.
func Read(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Table{}, apperrors.New(apperrors.CodeDatasetInvalid, "no columns to parse from file")
		}
		return Table{}, apperrors.Wrap(apperrors.CodeDatasetInvalid, "read header", err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	t := Table{Header: header}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, apperrors.Wrap(apperrors.CodeDatasetInvalid, "read row", err)
		}
		if len(record) > len(header) {
			line, _ := reader.FieldPos(0)
			return Table{}, apperrors.New(
				apperrors.CodeDatasetInvalid,
				fmt.Sprintf("line %d: expected %d fields, saw %d", line, len(header), len(record)),
			)
		}
		for len(record) < len(header) {
			record = append(record, "")
		}
		t.Rows = append(t.Rows, record)
	}
	return t, nil
}

// Len returns the number of data rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Index returns the position of column in the header, or -1.
func (t Table) Index(column string) int {
	for i, name := range t.Header {
		if name == column {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the header contains column.
func (t Table) HasColumn(column string) bool {
	return t.Index(column) >= 0
}

// RequireColumns returns a CodeColumnMissing error for the first absent
// column.
func (t Table) RequireColumns(columns ...string) error {
	for _, column := range columns {
		if !t.HasColumn(column) {
			return columnMissing(column)
		}
	}
	return nil
}

// Head returns a table with at most the first n rows.
func (t Table) Head(n int) Table {
	if n < 0 {
		n = 0
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return Table{Header: t.Header, Rows: t.Rows[:n]}
}

func columnMissing(column string) error {
	return apperrors.WithMetadata(
		apperrors.CodeColumnMissing,
		fmt.Sprintf("column %q not found", column),
		map[string]string{"column": column},
	)
}
