package tune

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

//////
// Sample data.
//////

// ErrInvalidDataset indicates malformed dataset input (ragged columns, empty
// header, non-numeric cells).
var ErrInvalidDataset = errors.New("invalid dataset")

// ResolvedShape reports the dimensionality observed at a stage boundary
// during finalization. Resolution rules read it to bound data-dependent
// parameters.
type ResolvedShape struct {
	// Rows is the observed row count (data.samples).
	Rows int

	// Columns is the observed predictor column count (data.features).
	Columns int
}

// Dataset is an in-memory, column-major numeric table used as the sample data
// for finalization. It is a value passed by read reference: stages return new
// datasets instead of mutating their input.
type Dataset struct {
	names []string
	cols  [][]float64
}

// NewDataset builds a dataset from named columns. All columns must have the
// same length and every name must be non-empty.
func NewDataset(names []string, cols [][]float64) (*Dataset, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("%w: %d names for %d columns", ErrInvalidDataset, len(names), len(cols))
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrInvalidDataset)
	}

	rows := len(cols[0])
	for i, c := range cols {
		if names[i] == "" {
			return nil, fmt.Errorf("%w: empty column name at index %d", ErrInvalidDataset, i)
		}
		if len(c) != rows {
			return nil, fmt.Errorf("%w: column %q has %d rows, want %d", ErrInvalidDataset, names[i], len(c), rows)
		}
	}

	return &Dataset{names: names, cols: cols}, nil
}

// Rows returns the row count.
func (d *Dataset) Rows() int {
	if len(d.cols) == 0 {
		return 0
	}
	return len(d.cols[0])
}

// Columns returns the column count.
func (d *Dataset) Columns() int {
	return len(d.cols)
}

// Shape returns the dataset's dimensionality.
func (d *Dataset) Shape() ResolvedShape {
	return ResolvedShape{Rows: d.Rows(), Columns: d.Columns()}
}

// Names returns a copy of the column names in order.
func (d *Dataset) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Column returns the values of the named column, or false when absent.
// The returned slice is the backing storage; callers must not mutate it.
func (d *Dataset) Column(name string) ([]float64, bool) {
	for i, n := range d.names {
		if n == name {
			return d.cols[i], true
		}
	}
	return nil, false
}

// ColumnAt returns the values of the i-th column. The returned slice is the
// backing storage; callers must not mutate it.
func (d *Dataset) ColumnAt(i int) []float64 {
	return d.cols[i]
}

// ReadCSV loads a dataset from CSV with a header row of column names followed
// by numeric rows. Representative samples of a few hundred rows are enough
// for bound resolution; the full training corpus is not required.
func ReadCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrInvalidDataset, err)
	}

	cols := make([][]float64, len(header))

	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidDataset, line, err)
		}
		for i, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d, column %q: %v", ErrInvalidDataset, line, header[i], err)
			}
			cols[i] = append(cols[i], v)
		}
	}

	return NewDataset(header, cols)
}
