package tune

//////
// Canonical default descriptors.
//////

// canonical is the built-in registry of well-known tunable parameter names.
// Build consults it (after any stage-supplied hints) to synthesize a
// descriptor for every argument flagged with a placeholder marker.
//
// Bounds of log-transformed parameters are in transformed units: penalty
// [-10, 0] means the original-unit range [1e-10, 1]. Unknown bounds are
// data-dependent and carry the resolution rule Finalize applies.
var canonical = map[string]Parameter{
	"penalty": {
		Name:   "penalty",
		Label:  "Amount of Regularization",
		Kind:   KindContinuous,
		Domain: NumericDomain(Known(-10), Known(0)),
		Trans:  Log10,
	},
	"mixture": {
		Name:   "mixture",
		Label:  "Proportion of Lasso Penalty",
		Kind:   KindContinuous,
		Domain: NumericDomain(Known(0), Known(1)),
	},
	"learn_rate": {
		Name:   "learn_rate",
		Label:  "Learning Rate",
		Kind:   KindContinuous,
		Domain: NumericDomain(Known(-10), Known(-1)),
		Trans:  Log10,
	},
	"threshold": {
		Name:   "threshold",
		Label:  "Probability Threshold",
		Kind:   KindContinuous,
		Domain: NumericDomain(Known(0), Known(1)),
	},
	"deg_free": {
		Name:   "deg_free",
		Label:  "Spline Degrees of Freedom",
		Kind:   KindInteger,
		Domain: NumericDomain(Known(1), Known(15)),
	},
	"neighbors": {
		Name:   "neighbors",
		Label:  "# Nearest Neighbors",
		Kind:   KindInteger,
		Domain: NumericDomain(Known(1), Known(10)),
	},
	"trees": {
		Name:   "trees",
		Label:  "# Trees",
		Kind:   KindInteger,
		Domain: NumericDomain(Known(1), Known(2000)),
	},
	"min_n": {
		Name:   "min_n",
		Label:  "Minimal Node Size",
		Kind:   KindInteger,
		Domain: NumericDomain(Known(2), Known(40)),
	},
	"hidden_units": {
		Name:   "hidden_units",
		Label:  "# Hidden Units",
		Kind:   KindInteger,
		Domain: NumericDomain(Known(1), Known(10)),
	},
	"epochs": {
		Name:   "epochs",
		Label:  "# Epochs",
		Kind:   KindInteger,
		Domain: NumericDomain(Known(10), Known(1000)),
	},

	// Data-dependent upper bounds, filled in by Finalize.
	"mtry": {
		Name:       "mtry",
		Label:      "# Randomly Selected Predictors",
		Kind:       KindInteger,
		Domain:     NumericDomain(Known(1), Unknown),
		Resolution: ResolveByColumns,
	},
	"num_comp": {
		Name:       "num_comp",
		Label:      "# Principal Components",
		Kind:       KindInteger,
		Domain:     NumericDomain(Known(1), Unknown),
		Resolution: ResolveByColumns,
	},
	"sample_size": {
		Name:       "sample_size",
		Label:      "# Sampled Rows",
		Kind:       KindInteger,
		Domain:     NumericDomain(Known(1), Unknown),
		Resolution: ResolveByRows,
	},

	"activation": {
		Name:   "activation",
		Label:  "Activation Function",
		Kind:   KindCategorical,
		Domain: CategoricalDomain("relu", "sigmoid", "tanh", "linear"),
	},
	"weight_func": {
		Name:   "weight_func",
		Label:  "Distance Weighting Function",
		Kind:   KindCategorical,
		Domain: CategoricalDomain("rectangular", "triangular", "epanechnikov", "gaussian", "optimal"),
	},
}

// DefaultParameter looks up the canonical descriptor for a well-known
// parameter name. The returned value is a copy; mutating it does not affect
// the registry.
func DefaultParameter(name string) (Parameter, bool) {
	p, ok := canonical[name]
	return p, ok
}
