// Package frame implements the tabular data model used by the tabprep
// transformers: ordered named columns of declared kind (numeric or
// categorical), explicit missing-value markers, and a row index that is
// preserved end to end through every transformation.
package frame

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tabprep/tabprep/pkg/errors"
)

// Missing is the marker for an absent numeric value. Numeric columns use NaN
// internally, so any NaN entry is treated as missing.
var Missing = math.NaN()

// Kind classifies a column as numeric or categorical. A column's kind is
// declared at construction and never changes.
type Kind int

const (
	// Numeric columns hold float64 values.
	Numeric Kind = iota
	// Categorical columns hold string category values.
	Categorical
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// ColumnSpec describes one column: its name and kind.
type ColumnSpec struct {
	Name string
	Kind Kind
}

// Column is a single named column of homogeneous kind. Columns are
// value-copied on construction and on accessor calls, so a Column handed to a
// transformer cannot be mutated underneath it.
type Column struct {
	name    string
	kind    Kind
	nums    []float64 // numeric values, NaN marks missing
	cats    []string  // categorical values
	missing []bool    // categorical missing mask
}

// NumericColumn creates a numeric column. NaN entries are missing.
func NumericColumn(name string, values []float64) *Column {
	nums := make([]float64, len(values))
	copy(nums, values)
	return &Column{name: name, kind: Numeric, nums: nums}
}

// CategoricalColumn creates a categorical column. missing marks absent
// entries; it may be nil when no values are missing, otherwise it must have
// the same length as values.
func CategoricalColumn(name string, values []string, missing []bool) *Column {
	cats := make([]string, len(values))
	copy(cats, values)
	mask := make([]bool, len(values))
	if missing != nil {
		if len(missing) != len(values) {
			panic("frame: missing mask length does not match values length")
		}
		copy(mask, missing)
	}
	return &Column{name: name, kind: Categorical, cats: cats, missing: mask}
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Kind returns the column kind.
func (c *Column) Kind() Kind { return c.kind }

// Len returns the number of entries.
func (c *Column) Len() int {
	if c.kind == Numeric {
		return len(c.nums)
	}
	return len(c.cats)
}

// Spec returns the column's ColumnSpec.
func (c *Column) Spec() ColumnSpec { return ColumnSpec{Name: c.name, Kind: c.kind} }

// IsMissing reports whether entry i is absent.
func (c *Column) IsMissing(i int) bool {
	if c.kind == Numeric {
		return math.IsNaN(c.nums[i])
	}
	return c.missing[i]
}

// Float returns the numeric value at i. It panics if the column is
// categorical. A missing entry is NaN.
func (c *Column) Float(i int) float64 {
	if c.kind != Numeric {
		panic("frame: Float called on categorical column " + c.name)
	}
	return c.nums[i]
}

// Category returns the category value at i. It panics if the column is
// numeric. The value for a missing entry is unspecified; check IsMissing.
func (c *Column) Category(i int) string {
	if c.kind != Categorical {
		panic("frame: Category called on numeric column " + c.name)
	}
	return c.cats[i]
}

// Floats returns a copy of the numeric values. It panics if the column is
// categorical.
func (c *Column) Floats() []float64 {
	if c.kind != Numeric {
		panic("frame: Floats called on categorical column " + c.name)
	}
	out := make([]float64, len(c.nums))
	copy(out, c.nums)
	return out
}

// Categories returns a copy of the category values together with the missing
// mask. It panics if the column is numeric.
func (c *Column) Categories() (values []string, missing []bool) {
	if c.kind != Categorical {
		panic("frame: Categories called on numeric column " + c.name)
	}
	values = make([]string, len(c.cats))
	copy(values, c.cats)
	missing = make([]bool, len(c.missing))
	copy(missing, c.missing)
	return values, missing
}

// Frame is an ordered collection of equal-length columns sharing a row index.
type Frame struct {
	index  []int
	cols   []*Column
	byName map[string]int
}

// New creates a Frame with the default index 0..n-1. It panics if the columns
// have differing lengths or duplicate names, mirroring gonum's constructor
// behavior for malformed shapes.
func New(cols ...*Column) *Frame {
	n := 0
	if len(cols) > 0 {
		n = cols[0].Len()
	}
	index := make([]int, n)
	for i := range index {
		index[i] = i
	}
	f, err := NewWithIndex(index, cols...)
	if err != nil {
		panic(err)
	}
	return f
}

// NewWithIndex creates a Frame with an explicit row index. The index length
// must match every column's length and names must be unique.
func NewWithIndex(index []int, cols ...*Column) (*Frame, error) {
	byName := make(map[string]int, len(cols))
	for i, col := range cols {
		if col.Len() != len(index) {
			return nil, errors.NewDimensionError("frame.New", len(index), col.Len(), 0)
		}
		if _, dup := byName[col.name]; dup {
			return nil, errors.NewValueError("frame.New", "duplicate column name: "+col.name)
		}
		byName[col.name] = i
	}
	idx := make([]int, len(index))
	copy(idx, index)
	colsCopy := make([]*Column, len(cols))
	copy(colsCopy, cols)
	return &Frame{index: idx, cols: colsCopy, byName: byName}, nil
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int { return len(f.index) }

// NumCols returns the number of columns.
func (f *Frame) NumCols() int { return len(f.cols) }

// Index returns a copy of the row index.
func (f *Frame) Index() []int {
	out := make([]int, len(f.index))
	copy(out, f.index)
	return out
}

// Names returns the column names in frame order.
func (f *Frame) Names() []string {
	out := make([]string, len(f.cols))
	for i, col := range f.cols {
		out[i] = col.name
	}
	return out
}

// Specs returns the ColumnSpec of every column in frame order.
func (f *Frame) Specs() []ColumnSpec {
	out := make([]ColumnSpec, len(f.cols))
	for i, col := range f.cols {
		out[i] = col.Spec()
	}
	return out
}

// Column returns the named column, or false if it does not exist.
func (f *Frame) Column(name string) (*Column, bool) {
	i, ok := f.byName[name]
	if !ok {
		return nil, false
	}
	return f.cols[i], true
}

// Columns returns the columns in frame order.
func (f *Frame) Columns() []*Column {
	out := make([]*Column, len(f.cols))
	copy(out, f.cols)
	return out
}

// AppendColumn returns a new Frame with col appended. The receiver is not
// modified.
func (f *Frame) AppendColumn(col *Column) (*Frame, error) {
	return NewWithIndex(f.index, append(f.Columns(), col)...)
}

// Concat returns a new Frame with all of other's columns appended after f's.
// Both frames must have identical row indexes.
func (f *Frame) Concat(other *Frame) (*Frame, error) {
	if other.NumRows() != f.NumRows() {
		return nil, errors.NewDimensionError("frame.Concat", f.NumRows(), other.NumRows(), 0)
	}
	for i := range f.index {
		if f.index[i] != other.index[i] {
			return nil, errors.NewValueError("frame.Concat", "row indexes are not aligned")
		}
	}
	return NewWithIndex(f.index, append(f.Columns(), other.cols...)...)
}

// Matrix converts a frame of purely numeric columns to a dense matrix with
// rows in index order and columns in frame order. Categorical columns and
// missing values are rejected; impute and encode them first.
func (f *Frame) Matrix() (*mat.Dense, error) {
	rows, cols := f.NumRows(), f.NumCols()
	if rows == 0 || cols == 0 {
		return nil, errors.NewValueError("frame.Matrix", "frame has no data")
	}
	out := mat.NewDense(rows, cols, nil)
	for j, col := range f.cols {
		if col.kind != Numeric {
			return nil, errors.NewValueError("frame.Matrix", "column "+col.name+" is categorical; encode it before conversion")
		}
		for i := 0; i < rows; i++ {
			v := col.nums[i]
			if math.IsNaN(v) {
				return nil, errors.NewValueError("frame.Matrix", "column "+col.name+" has a missing value; impute it before conversion")
			}
			out.Set(i, j, v)
		}
	}
	return out, nil
}
