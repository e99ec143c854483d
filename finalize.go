package tune

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

//////
// Finalizer.
//////

// StageProgress reports one executed stage during finalization. Updates are
// sent best-effort: when the channel is full the update is dropped rather
// than blocking the pipeline pass.
type StageProgress struct {
	// Stage is the executed stage's name.
	Stage string

	// Index is the stage's position in the sequence (1-based).
	Index int

	// Total is the number of stages in the sequence.
	Total int

	// Shape is the dimensionality of the stage's output.
	Shape ResolvedShape

	// Elapsed is the stage's execution time.
	Elapsed time.Duration
}

// FinalizeConfig carries the optional observability hooks of a finalize call.
// The zero value disables both.
type FinalizeConfig struct {
	// Logger receives structured progress and resolution records. Nil
	// disables logging.
	Logger *log.Logger

	// ProgressChan receives one update per executed stage. Nil disables
	// progress updates.
	ProgressChan chan<- StageProgress
}

// DefaultFinalizeConfig returns a configuration with logging and progress
// reporting disabled.
func DefaultFinalizeConfig() FinalizeConfig {
	return FinalizeConfig{}
}

// Finalize resolves every unknown bound in the set by executing the stage
// sequence once against the sample data and applying each descriptor's
// resolution rule to the shape observed at its stage boundary: a parameter
// bounded by column count sees the column count after all stages preceding
// its own have transformed the sample.
//
// The call is all-or-nothing: every unresolved descriptor is checked for a
// usable rule before any stage runs, so a failing call performs no pipeline
// work and resolves nothing. It never mutates the input set; the returned set
// is a new value and the caller keeps the pre-finalization set for
// inspection. Finalizing an already fully-resolved set skips the pipeline
// pass and returns an equivalent set, so the operation is idempotent.
//
// The single pipeline execution may be arbitrarily expensive (a full
// preprocessing pass over the sample). The call blocks until it completes;
// callers wanting a deadline wrap the call themselves.
//
// Returns ErrUnresolvableParameter when an unresolved descriptor has no
// resolution rule or its stage is not in the sequence, ErrInvalidDataset for
// a nil sample, and the stage's own error when execution fails.
func Finalize(cfg FinalizeConfig, set *ParameterSet, stages []PipelineStage, sample *Dataset) (*ParameterSet, error) {
	unresolved := set.Unresolved()
	if len(unresolved) == 0 {
		if cfg.Logger != nil {
			cfg.Logger.Debug("all parameters already resolved, skipping pipeline pass")
		}
		return set.clone(), nil
	}

	if sample == nil {
		return nil, fmt.Errorf("%w: nil sample data", ErrInvalidDataset)
	}

	stageIndex := make(map[string]int, len(stages))
	for i, st := range stages {
		if _, ok := stageIndex[st.Name()]; !ok {
			stageIndex[st.Name()] = i
		}
	}

	// All-or-nothing: verify every unresolved descriptor is coverable
	// before running the (potentially expensive) pipeline pass.
	for _, k := range unresolved {
		p, _ := set.Get(k)
		if p.Resolution == ResolveNone {
			return nil, fmt.Errorf("%w: %s (%s)", ErrUnresolvableParameter, k, p.Label)
		}
		if _, ok := stageIndex[k.Stage]; !ok {
			return nil, fmt.Errorf("%w: %s: stage %q not in executed sequence", ErrUnresolvableParameter, k, k.Stage)
		}
	}

	// One pass over the sample, recording the shape at each stage boundary
	// (the data as the stage sees it, before its own transformation).
	boundary := make(map[string]ResolvedShape, len(stages))
	data := sample
	for i, st := range stages {
		if _, ok := boundary[st.Name()]; !ok {
			boundary[st.Name()] = data.Shape()
		}

		start := time.Now()
		out, err := st.Execute(data)
		if err != nil {
			return nil, fmt.Errorf("executing stage %q: %w", st.Name(), err)
		}
		elapsed := time.Since(start)
		data = out

		if cfg.Logger != nil {
			cfg.Logger.Debug("executed stage",
				"stage", st.Name(),
				"rows", data.Rows(),
				"columns", data.Columns(),
				"elapsed", elapsed)
		}

		if cfg.ProgressChan != nil {
			select {
			case cfg.ProgressChan <- StageProgress{
				Stage:   st.Name(),
				Index:   i + 1,
				Total:   len(stages),
				Shape:   data.Shape(),
				Elapsed: elapsed,
			}:
			default:
				// Skip update if channel is full.
			}
		}
	}

	out := set.clone()
	for _, k := range unresolved {
		p := out.params[k]
		shape := boundary[k.Stage]

		limit := float64(shape.Columns)
		if p.Resolution == ResolveByRows {
			limit = float64(shape.Rows)
		}

		if !p.Domain.Lower.Known {
			p.Domain.Lower = Known(1)
		}
		if !p.Domain.Upper.Known {
			p.Domain.Upper = Known(limit)
		}
		out.params[k] = p

		if cfg.Logger != nil {
			cfg.Logger.Info("resolved parameter", "key", k.String(), "range", p.RangeString())
		}
	}

	return out, nil
}
