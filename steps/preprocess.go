// Package steps provides ready-made pipeline stages for the tune registry:
// preprocessing steps that transform sample data and model specifications
// that declare tunable engine arguments. All of them implement
// tune.PipelineStage; any argument may be set to a concrete value or flagged
// with tune.Mark / tune.MarkAs.
package steps

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/modelkit/tune"
)

// ErrBadArgument indicates a stage argument value that is neither a concrete
// value of the expected type nor a tune marker.
var ErrBadArgument = errors.New("invalid stage argument")

// Normalize centers and scales every column to zero mean and unit variance.
// It has no tunable arguments and preserves the dataset's shape.
type Normalize struct{}

// Name implements tune.PipelineStage.
func (Normalize) Name() string { return "normalize" }

// Arguments implements tune.PipelineStage.
func (Normalize) Arguments() []tune.Argument { return nil }

// Execute implements tune.PipelineStage.
func (Normalize) Execute(sample *tune.Dataset) (*tune.Dataset, error) {
	names := sample.Names()
	cols := make([][]float64, sample.Columns())

	for i := range cols {
		src := sample.ColumnAt(i)

		var sum float64
		for _, v := range src {
			sum += v
		}
		mean := sum / float64(len(src))

		var ss float64
		for _, v := range src {
			d := v - mean
			ss += d * d
		}
		sd := math.Sqrt(ss / float64(len(src)))
		if sd == 0 {
			sd = 1 // constant column, leave centered values at zero
		}

		dst := make([]float64, len(src))
		for j, v := range src {
			dst[j] = (v - mean) / sd
		}
		cols[i] = dst
	}

	return tune.NewDataset(names, cols)
}

// SplineBasis expands one column into a truncated power spline basis. The
// number of basis functions is controlled by deg_free, the step's single
// tunable argument; the output has the original columns minus the expanded
// one plus deg_free basis columns.
type SplineBasis struct {
	// Column is the name of the column to expand.
	Column string

	// DegFree is the spline degrees of freedom: an int, or a tune marker.
	DegFree any
}

// baselineDegFree is the expansion used when DegFree is still a marker
// during a finalization dry run.
const baselineDegFree = 3

// Name implements tune.PipelineStage.
func (s *SplineBasis) Name() string { return "spline_" + s.Column }

// Arguments implements tune.PipelineStage.
func (s *SplineBasis) Arguments() []tune.Argument {
	return []tune.Argument{{Name: "deg_free", Value: s.DegFree}}
}

// Execute implements tune.PipelineStage.
func (s *SplineBasis) Execute(sample *tune.Dataset) (*tune.Dataset, error) {
	src, ok := sample.Column(s.Column)
	if !ok {
		return nil, fmt.Errorf("%w: spline column %q not in sample", tune.ErrInvalidDataset, s.Column)
	}

	df, err := intArg("deg_free", s.DegFree, baselineDegFree)
	if err != nil {
		return nil, err
	}
	if df < 1 {
		return nil, fmt.Errorf("%w: deg_free must be at least 1, got %d", ErrBadArgument, df)
	}

	lo, hi := src[0], src[0]
	for _, v := range src {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	names := make([]string, 0, sample.Columns()-1+df)
	cols := make([][]float64, 0, sample.Columns()-1+df)
	for i, n := range sample.Names() {
		if n == s.Column {
			continue
		}
		names = append(names, n)
		cols = append(cols, sample.ColumnAt(i))
	}

	// Truncated power basis: x, x^2, x^3, then shifted cubic hinges at
	// interior knots spaced evenly over the observed range.
	for b := 1; b <= df; b++ {
		basis := make([]float64, len(src))
		switch {
		case b <= 3:
			for j, v := range src {
				basis[j] = math.Pow(v, float64(b))
			}
		default:
			knot := lo + span*float64(b-3)/float64(df-2)
			for j, v := range src {
				if v > knot {
					basis[j] = math.Pow(v-knot, 3)
				}
			}
		}
		names = append(names, fmt.Sprintf("%s_bs_%d", s.Column, b))
		cols = append(cols, basis)
	}

	return tune.NewDataset(names, cols)
}

// PCA reduces the dataset to its num_comp leading components. The sample is
// centered column-wise and projected onto the num_comp highest-variance
// directions; component columns are named pc_1..pc_k. With num_comp still a
// marker the dry run keeps every component, since the reduction has not been
// chosen yet.
type PCA struct {
	// NumComp is the number of components to keep: an int, or a tune
	// marker. Its upper bound is data-dependent and resolved against the
	// column count the step receives.
	NumComp any
}

// Name implements tune.PipelineStage.
func (PCA) Name() string { return "pca" }

// Arguments implements tune.PipelineStage.
func (s *PCA) Arguments() []tune.Argument {
	return []tune.Argument{{Name: "num_comp", Value: s.NumComp}}
}

// Execute implements tune.PipelineStage.
func (s *PCA) Execute(sample *tune.Dataset) (*tune.Dataset, error) {
	k, err := intArg("num_comp", s.NumComp, sample.Columns())
	if err != nil {
		return nil, err
	}
	if k < 1 || k > sample.Columns() {
		return nil, fmt.Errorf("%w: num_comp must be in [1, %d], got %d", ErrBadArgument, sample.Columns(), k)
	}

	type ranked struct {
		index    int
		variance float64
	}
	components := make([]ranked, sample.Columns())

	centered := make([][]float64, sample.Columns())
	for i := range centered {
		src := sample.ColumnAt(i)

		var sum float64
		for _, v := range src {
			sum += v
		}
		mean := sum / float64(len(src))

		dst := make([]float64, len(src))
		var ss float64
		for j, v := range src {
			dst[j] = v - mean
			ss += dst[j] * dst[j]
		}
		centered[i] = dst
		components[i] = ranked{index: i, variance: ss / float64(len(src))}
	}

	sort.SliceStable(components, func(a, b int) bool {
		return components[a].variance > components[b].variance
	})

	names := make([]string, k)
	cols := make([][]float64, k)
	for c := 0; c < k; c++ {
		names[c] = fmt.Sprintf("pc_%d", c+1)
		cols[c] = centered[components[c].index]
	}

	return tune.NewDataset(names, cols)
}

// intArg unwraps a possibly-marked integer argument. A placeholder marker
// yields the step's baseline; any other non-integer value is rejected.
func intArg(name string, v any, baseline int) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case float64:
		return int(x), nil
	case tune.Marker:
		return baseline, nil
	default:
		return 0, fmt.Errorf("%w: %s = %v (%T)", ErrBadArgument, name, v, v)
	}
}
