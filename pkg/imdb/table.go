package imdb

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// nullToken is the literal marker IMDb uses for an absent value.
const nullToken = `\N`

// maxLineBytes bounds a single dataset row; the extracts keep rows well under this.
const maxLineBytes = 1 << 20

// Field is a single cell of a relation. Everything is text; the zero Field is
// an absent value.
type Field struct {
	String string
	Valid  bool
}

// NewField returns a valid text field.
func NewField(s string) Field {
	return Field{String: s, Valid: true}
}

// Table is an in-memory relation holding a column subset of one dataset file.
type Table struct {
	cols map[string]int
	rows [][]Field
}

// NewTable builds a relation directly from rows. Row values line up with
// columns by position; short rows pad with absent fields.
func NewTable(columns []string, rows ...[]Field) *Table {
	cols := make(map[string]int, len(columns))
	for i, name := range columns {
		cols[name] = i
	}

	padded := make([][]Field, len(rows))
	for i, row := range rows {
		if len(row) < len(columns) {
			row = append(slices.Clone(row), make([]Field, len(columns)-len(row))...)
		}
		padded[i] = row
	}

	return &Table{cols: cols, rows: padded}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Field returns the cell at row for the named column. Unknown columns and
// out-of-range rows read as absent.
func (t *Table) Field(row int, col string) Field {
	i, ok := t.cols[col]
	if !ok || row < 0 || row >= len(t.rows) {
		return Field{}
	}
	return t.rows[row][i]
}

// Index maps every valid value of the named column to the positions of the
// rows carrying it. It is the lookup structure for identifier joins.
func (t *Table) Index(col string) map[string][]int {
	idx := make(map[string][]int)
	i, ok := t.cols[col]
	if !ok {
		return idx
	}
	for row, r := range t.rows {
		if f := r[i]; f.Valid {
			idx[f.String] = append(idx[f.String], row)
		}
	}
	return idx
}

// Filter returns a new relation keeping the rows for which keep returns true.
// Row order is preserved; the column layout is shared.
func (t *Table) Filter(keep func(row int) bool) *Table {
	kept := make([][]Field, 0, len(t.rows))
	for row := range t.rows {
		if keep(row) {
			kept = append(kept, t.rows[row])
		}
	}
	return &Table{cols: t.cols, rows: kept}
}

// LoadTable parses a gzip-compressed tab-separated dataset file, keeping only
// the named columns. Every field is loaded as opaque text; the \N token
// decodes to an absent field. Passing no columns keeps the whole header.
func LoadTable(path string, columns []string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s: %w", path, err)
	}
	defer gz.Close()

	// the format is plain tab separation with no quoting, so fields split on
	// tabs verbatim; title fields contain stray quote characters
	sc := bufio.NewScanner(gz)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read header of %s: empty file", path)
	}
	header := strings.Split(sc.Text(), "\t")

	if len(columns) == 0 {
		columns = slices.Clone(header)
	}

	cols := make(map[string]int, len(columns))
	src := make([]int, len(columns))
	for i, name := range columns {
		pos := slices.Index(header, name)
		if pos < 0 {
			return nil, fmt.Errorf("column %q not found in %s", name, filepath.Base(path))
		}
		cols[name] = i
		src[i] = pos
	}

	var rows [][]Field
	for sc.Scan() {
		rec := strings.Split(sc.Text(), "\t")

		row := make([]Field, len(src))
		for i, pos := range src {
			// short rows and \N both read as absent
			if pos >= len(rec) || rec[pos] == nullToken {
				continue
			}
			row[i] = NewField(rec[pos])
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return &Table{cols: cols, rows: rows}, nil
}
