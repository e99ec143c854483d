package steps

import "github.com/modelkit/tune"

//////
// Model specifications.
//////
//
// Model specs declare engine arguments without fitting anything: Execute
// returns the sample unchanged, so a model stage's parameter bounds are
// resolved against the shape produced by the preprocessing ahead of it.

// NearestNeighbors is a k-nearest-neighbors model specification.
type NearestNeighbors struct {
	// Neighbors is the neighbor count: an int, or a tune marker.
	Neighbors any

	// WeightFunc is the distance weighting kernel: a string, or a tune
	// marker.
	WeightFunc any
}

// Name implements tune.PipelineStage.
func (NearestNeighbors) Name() string { return "nearest_neighbors" }

// Arguments implements tune.PipelineStage.
func (m *NearestNeighbors) Arguments() []tune.Argument {
	return []tune.Argument{
		{Name: "neighbors", Value: m.Neighbors},
		{Name: "weight_func", Value: m.WeightFunc},
	}
}

// Execute implements tune.PipelineStage.
func (m *NearestNeighbors) Execute(sample *tune.Dataset) (*tune.Dataset, error) {
	return sample, nil
}

// RandomForest is a random-forest model specification.
type RandomForest struct {
	// Mtry is the predictor subset size per split: an int, or a tune
	// marker. Its upper bound is data-dependent and resolved against the
	// predictor count the model actually sees.
	Mtry any

	// Trees is the ensemble size: an int, or a tune marker.
	Trees any

	// MinN is the minimal node size: an int, or a tune marker.
	MinN any
}

// Name implements tune.PipelineStage.
func (RandomForest) Name() string { return "rand_forest" }

// Arguments implements tune.PipelineStage.
func (m *RandomForest) Arguments() []tune.Argument {
	return []tune.Argument{
		{Name: "mtry", Value: m.Mtry},
		{Name: "trees", Value: m.Trees},
		{Name: "min_n", Value: m.MinN},
	}
}

// Execute implements tune.PipelineStage.
func (m *RandomForest) Execute(sample *tune.Dataset) (*tune.Dataset, error) {
	return sample, nil
}

// LinearRegression is a regularized linear regression model specification.
type LinearRegression struct {
	// Penalty is the regularization amount: a float64, or a tune marker.
	Penalty any

	// Mixture is the lasso proportion: a float64, or a tune marker.
	Mixture any
}

// Name implements tune.PipelineStage.
func (LinearRegression) Name() string { return "linear_reg" }

// Arguments implements tune.PipelineStage.
func (m *LinearRegression) Arguments() []tune.Argument {
	return []tune.Argument{
		{Name: "penalty", Value: m.Penalty},
		{Name: "mixture", Value: m.Mixture},
	}
}

// Execute implements tune.PipelineStage.
func (m *LinearRegression) Execute(sample *tune.Dataset) (*tune.Dataset, error) {
	return sample, nil
}

// MLP is a single-hidden-layer neural network model specification.
type MLP struct {
	// HiddenUnits is the hidden layer width: an int, or a tune marker.
	HiddenUnits any

	// Epochs is the training epoch count: an int, or a tune marker.
	Epochs any

	// LearnRate is the optimizer learning rate: a float64, or a tune
	// marker.
	LearnRate any

	// Activation is the hidden layer activation: a string, or a tune
	// marker.
	Activation any
}

// Name implements tune.PipelineStage.
func (MLP) Name() string { return "mlp" }

// Arguments implements tune.PipelineStage.
func (m *MLP) Arguments() []tune.Argument {
	return []tune.Argument{
		{Name: "hidden_units", Value: m.HiddenUnits},
		{Name: "epochs", Value: m.Epochs},
		{Name: "learn_rate", Value: m.LearnRate},
		{Name: "activation", Value: m.Activation},
	}
}

// Execute implements tune.PipelineStage.
func (m *MLP) Execute(sample *tune.Dataset) (*tune.Dataset, error) {
	return sample, nil
}
