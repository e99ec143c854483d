package tune

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatasetValidation(t *testing.T) {
	_, err := NewDataset([]string{"a"}, [][]float64{{1}, {2}})
	assert.ErrorIs(t, err, ErrInvalidDataset)

	_, err = NewDataset(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidDataset)

	_, err = NewDataset([]string{"a", "b"}, [][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrInvalidDataset)

	_, err = NewDataset([]string{"a", ""}, [][]float64{{1}, {2}})
	assert.ErrorIs(t, err, ErrInvalidDataset)
}

func TestDatasetShape(t *testing.T) {
	d, err := NewDataset([]string{"x", "y"}, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	assert.Equal(t, 3, d.Rows())
	assert.Equal(t, 2, d.Columns())
	assert.Equal(t, ResolvedShape{Rows: 3, Columns: 2}, d.Shape())
	assert.Equal(t, []string{"x", "y"}, d.Names())

	col, ok := d.Column("y")
	require.True(t, ok)
	assert.Equal(t, []float64{4, 5, 6}, col)

	_, ok = d.Column("z")
	assert.False(t, ok)
}

func TestReadCSV(t *testing.T) {
	csv := strings.Join([]string{
		"longitude,latitude,price",
		"-122.1,37.7,450000",
		"-121.9,37.3,380000",
		"-122.4,37.8,720000",
	}, "\n")

	d, err := ReadCSV(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, ResolvedShape{Rows: 3, Columns: 3}, d.Shape())
	assert.Equal(t, []string{"longitude", "latitude", "price"}, d.Names())

	price, ok := d.Column("price")
	require.True(t, ok)
	assert.Equal(t, []float64{450000, 380000, 720000}, price)
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("a,b\n1,notanumber\n"))
	assert.ErrorIs(t, err, ErrInvalidDataset)

	_, err = ReadCSV(strings.NewReader("a,b\n1\n"))
	assert.ErrorIs(t, err, ErrInvalidDataset)

	_, err = ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrInvalidDataset)
}
