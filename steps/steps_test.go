package steps

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelkit/tune"
)

func testSample(t *testing.T) *tune.Dataset {
	t.Helper()

	d, err := tune.NewDataset(
		[]string{"longitude", "latitude", "rooms", "age", "price"},
		[][]float64{
			{-122.1, -121.9, -122.4, -122.0, -121.8, -122.2, -122.3, -121.7, -122.5, -122.0},
			{37.7, 37.3, 37.8, 37.5, 37.2, 37.6, 37.9, 37.1, 37.4, 37.55},
			{3, 2, 4, 3, 2, 5, 4, 1, 3, 2},
			{12, 40, 7, 25, 33, 5, 18, 51, 9, 28},
			{450, 380, 720, 510, 340, 690, 620, 290, 560, 470},
		},
	)
	require.NoError(t, err)
	return d
}

func TestNormalize(t *testing.T) {
	out, err := Normalize{}.Execute(testSample(t))
	require.NoError(t, err)

	// Shape preserved, every column standardized.
	assert.Equal(t, tune.ResolvedShape{Rows: 10, Columns: 5}, out.Shape())

	for _, name := range out.Names() {
		col, ok := out.Column(name)
		require.True(t, ok)

		var sum, ss float64
		for _, v := range col {
			sum += v
		}
		mean := sum / float64(len(col))
		for _, v := range col {
			ss += (v - mean) * (v - mean)
		}
		sd := math.Sqrt(ss / float64(len(col)))

		assert.InDelta(t, 0, mean, 1e-9, "column %s mean", name)
		assert.InDelta(t, 1, sd, 1e-9, "column %s sd", name)
	}
}

func TestNormalizeConstantColumn(t *testing.T) {
	d, err := tune.NewDataset([]string{"c"}, [][]float64{{7, 7, 7}})
	require.NoError(t, err)

	out, err := Normalize{}.Execute(d)
	require.NoError(t, err)

	col, ok := out.Column("c")
	require.True(t, ok)
	assert.Equal(t, []float64{0, 0, 0}, col)
}

func TestSplineBasisShape(t *testing.T) {
	s := &SplineBasis{Column: "longitude", DegFree: 6}

	out, err := s.Execute(testSample(t))
	require.NoError(t, err)

	// longitude is replaced by 6 basis columns: 5 - 1 + 6.
	assert.Equal(t, 10, out.Shape().Columns)
	assert.Equal(t, 10, out.Rows())

	_, ok := out.Column("longitude")
	assert.False(t, ok)
	_, ok = out.Column("longitude_bs_6")
	assert.True(t, ok)
}

func TestSplineBasisMarkedUsesBaseline(t *testing.T) {
	s := &SplineBasis{Column: "latitude", DegFree: tune.Mark()}

	out, err := s.Execute(testSample(t))
	require.NoError(t, err)

	// A marked deg_free executes at the baseline of 3 basis functions.
	assert.Equal(t, 7, out.Shape().Columns)
}

func TestSplineBasisErrors(t *testing.T) {
	_, err := (&SplineBasis{Column: "nope", DegFree: 3}).Execute(testSample(t))
	assert.ErrorIs(t, err, tune.ErrInvalidDataset)

	_, err = (&SplineBasis{Column: "rooms", DegFree: 0}).Execute(testSample(t))
	assert.ErrorIs(t, err, ErrBadArgument)

	// A value that is neither an integer nor a marker is rejected, not
	// silently run at the baseline.
	_, err = (&SplineBasis{Column: "rooms", DegFree: "seven"}).Execute(testSample(t))
	assert.ErrorIs(t, err, ErrBadArgument)
}

func TestPCAShape(t *testing.T) {
	out, err := (&PCA{NumComp: 2}).Execute(testSample(t))
	require.NoError(t, err)

	assert.Equal(t, tune.ResolvedShape{Rows: 10, Columns: 2}, out.Shape())
	assert.Equal(t, []string{"pc_1", "pc_2"}, out.Names())

	// Components come out centered and in decreasing variance order.
	variance := func(col []float64) float64 {
		var sum float64
		for _, v := range col {
			sum += v
		}
		mean := sum / float64(len(col))
		var ss float64
		for _, v := range col {
			ss += (v - mean) * (v - mean)
		}
		return ss / float64(len(col))
	}

	first, ok := out.Column("pc_1")
	require.True(t, ok)
	second, ok := out.Column("pc_2")
	require.True(t, ok)

	var mean float64
	for _, v := range first {
		mean += v
	}
	assert.InDelta(t, 0, mean/float64(len(first)), 1e-9)
	assert.GreaterOrEqual(t, variance(first), variance(second))
}

func TestPCAMarkedKeepsAllComponents(t *testing.T) {
	out, err := (&PCA{NumComp: tune.Mark()}).Execute(testSample(t))
	require.NoError(t, err)

	// Reduction not chosen yet, so the dry run keeps every component.
	assert.Equal(t, 5, out.Shape().Columns)
}

func TestPCAErrors(t *testing.T) {
	_, err := (&PCA{NumComp: 0}).Execute(testSample(t))
	assert.ErrorIs(t, err, ErrBadArgument)

	_, err = (&PCA{NumComp: 6}).Execute(testSample(t))
	assert.ErrorIs(t, err, ErrBadArgument)

	_, err = (&PCA{NumComp: "two"}).Execute(testSample(t))
	assert.ErrorIs(t, err, ErrBadArgument)
}

func TestPipelineWithPCA(t *testing.T) {
	stages := []tune.PipelineStage{
		Normalize{},
		&PCA{NumComp: tune.Mark()},
	}

	set, err := tune.Build(stages...)
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())

	resolved, err := tune.Finalize(tune.DefaultFinalizeConfig(), set, stages, testSample(t))
	require.NoError(t, err)

	// num_comp is bounded by the column count the step receives.
	p, ok := resolved.Get(tune.Key{Stage: "pca", Name: "num_comp"})
	require.True(t, ok)
	assert.Equal(t, tune.Known(1), p.Domain.Lower)
	assert.Equal(t, tune.Known(5), p.Domain.Upper)
}

func TestModelStagesPassThrough(t *testing.T) {
	sample := testSample(t)

	models := []tune.PipelineStage{
		&NearestNeighbors{Neighbors: 5, WeightFunc: "rectangular"},
		&RandomForest{Mtry: 2, Trees: 500, MinN: 5},
		&LinearRegression{Penalty: 0.01, Mixture: 1.0},
		&MLP{HiddenUnits: 5, Epochs: 100, LearnRate: 0.01, Activation: "relu"},
	}

	for _, m := range models {
		out, err := m.Execute(sample)
		require.NoError(t, err)
		assert.Same(t, sample, out, "model %s must not transform data", m.Name())
	}
}

func TestPipelineEndToEnd(t *testing.T) {
	stages := []tune.PipelineStage{
		Normalize{},
		&SplineBasis{Column: "longitude", DegFree: tune.MarkAs("longitude df")},
		&SplineBasis{Column: "latitude", DegFree: tune.MarkAs("latitude df")},
		&RandomForest{Mtry: tune.Mark(), Trees: 1000, MinN: tune.Mark()},
	}

	set, err := tune.Build(stages...)
	require.NoError(t, err)
	require.Equal(t, 4, set.Len())

	resolved, err := tune.Finalize(tune.DefaultFinalizeConfig(), set, stages, testSample(t))
	require.NoError(t, err)
	assert.Empty(t, resolved.Unresolved())

	// Both splines ran at the baseline of 3 basis columns each, so the
	// forest sees 5 - 2 + 3 + 3 = 9 predictors.
	mtry, ok := resolved.Get(tune.Key{Stage: "rand_forest", Name: "mtry"})
	require.True(t, ok)
	assert.Equal(t, tune.Known(9), mtry.Domain.Upper)
	assert.Equal(t, tune.Known(1), mtry.Domain.Lower)
}

func TestArgumentsEnumeration(t *testing.T) {
	m := &MLP{HiddenUnits: tune.Mark(), Epochs: 100, LearnRate: tune.Mark(), Activation: "relu"}

	args := m.Arguments()
	require.Len(t, args, 4)
	assert.Equal(t, "hidden_units", args[0].Name)
	assert.True(t, tune.IsMarker(args[0].Value))
	assert.Equal(t, "epochs", args[1].Name)
	assert.False(t, tune.IsMarker(args[1].Value))
}
