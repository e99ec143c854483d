package main

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/modelkit/tune"
	"github.com/modelkit/tune/steps"
)

// pipelineSpec is the YAML schema of a pipeline file:
//
//	steps:
//	  - step: normalize
//	  - step: spline
//	    column: longitude
//	    args:
//	      deg_free: tune(longitude df)
//	model:
//	  step: rand_forest
//	  args:
//	    mtry: tune
//	    trees: 500
type pipelineSpec struct {
	Steps []stageSpec `yaml:"steps"`
	Model *stageSpec  `yaml:"model"`
}

// stageSpec is one stage entry: the step type, an optional target column for
// column-wise steps, and the step's arguments.
type stageSpec struct {
	Step   string         `yaml:"step"`
	Column string         `yaml:"column,omitempty"`
	Args   map[string]any `yaml:"args,omitempty"`
}

// markerPattern matches the tune marker syntax in YAML values: "tune",
// "tune()", or "tune(<identifier>)". An empty identifier is the anonymous
// marker, matching how Marker.String renders it.
var markerPattern = regexp.MustCompile(`^tune(?:\((.*)\))?$`)

// loadPipeline reads the spec file and instantiates the stage sequence,
// preprocessing steps first, model last.
func loadPipeline(path string) ([]tune.PipelineStage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pipeline spec: %w", err)
	}

	var spec pipelineSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing pipeline spec: %w", err)
	}

	var stages []tune.PipelineStage
	for i, s := range spec.Steps {
		stage, err := buildStage(s)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		stages = append(stages, stage)
	}

	if spec.Model != nil {
		stage, err := buildStage(*spec.Model)
		if err != nil {
			return nil, fmt.Errorf("model: %w", err)
		}
		stages = append(stages, stage)
	}

	if len(stages) == 0 {
		return nil, fmt.Errorf("pipeline spec declares no stages")
	}

	return stages, nil
}

// buildStage instantiates one stage from its spec entry.
func buildStage(s stageSpec) (tune.PipelineStage, error) {
	arg := func(name string, fallback any) any {
		v, ok := s.Args[name]
		if !ok {
			return fallback
		}
		return decodeArg(v)
	}

	switch s.Step {
	case "normalize":
		return steps.Normalize{}, nil

	case "spline":
		if s.Column == "" {
			return nil, fmt.Errorf("spline step requires a column")
		}
		return &steps.SplineBasis{
			Column:  s.Column,
			DegFree: arg("deg_free", 3),
		}, nil

	case "pca":
		return &steps.PCA{
			NumComp: arg("num_comp", 2),
		}, nil

	case "nearest_neighbors":
		return &steps.NearestNeighbors{
			Neighbors:  arg("neighbors", 5),
			WeightFunc: arg("weight_func", "rectangular"),
		}, nil

	case "rand_forest":
		return &steps.RandomForest{
			Mtry:  arg("mtry", 2),
			Trees: arg("trees", 500),
			MinN:  arg("min_n", 5),
		}, nil

	case "linear_reg":
		return &steps.LinearRegression{
			Penalty: arg("penalty", 0.0),
			Mixture: arg("mixture", 1.0),
		}, nil

	case "mlp":
		return &steps.MLP{
			HiddenUnits: arg("hidden_units", 5),
			Epochs:      arg("epochs", 100),
			LearnRate:   arg("learn_rate", 0.01),
			Activation:  arg("activation", "relu"),
		}, nil

	default:
		return nil, fmt.Errorf("unknown step type %q", s.Step)
	}
}

// decodeArg turns a YAML argument value into a stage argument: marker syntax
// becomes a tune.Marker, everything else passes through as parsed.
func decodeArg(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}

	m := markerPattern.FindStringSubmatch(s)
	if m == nil {
		return v
	}
	if m[1] == "" {
		return tune.Mark()
	}
	return tune.MarkAs(m[1])
}
