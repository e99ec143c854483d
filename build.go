package tune

import "fmt"

//////
// Registry builder.
//////

// Build scans the stages, in order, for arguments whose value is a
// placeholder marker and assembles the pipeline's parameter set. For every
// marked argument it synthesizes a descriptor: first from the stage's own
// hints (when the stage implements ParameterHinter), then from the canonical
// registry of well-known parameter names.
//
// A named marker contributes its identifier to the composite key and
// overrides the descriptor's label; an anonymous marker leaves the identifier
// slot empty and the canonical label in place.
//
// The result ordering is stable: stage traversal order, then argument
// declaration order within a stage. Two Build calls over unchanged stages
// produce identical sets, which keeps test fixtures and caches reproducible.
//
// Returns ErrUnknownParameterKind when a marked argument has no descriptor
// anywhere, and ErrParameterConflict when two stages declare the same
// composite key with differing descriptors.
func Build(stages ...PipelineStage) (*ParameterSet, error) {
	set := NewParameterSet()

	for _, stage := range stages {
		for _, arg := range stage.Arguments() {
			marker, ok := arg.Value.(Marker)
			if !ok {
				continue
			}

			param, err := descriptorFor(stage, arg.Name)
			if err != nil {
				return nil, err
			}

			key := Key{Stage: stage.Name(), Name: arg.Name, ID: marker.ID()}
			if marker.Named() {
				param.Label = marker.ID()
			}

			if err := set.add(key, param); err != nil {
				return nil, err
			}
		}
	}

	return set, nil
}

// descriptorFor resolves the default descriptor for one marked argument.
// Stage hints win over the canonical registry.
func descriptorFor(stage PipelineStage, name string) (Parameter, error) {
	if hinter, ok := stage.(ParameterHinter); ok {
		if p, ok := hinter.ParameterHint(name); ok {
			return p, nil
		}
	}

	if p, ok := DefaultParameter(name); ok {
		return p, nil
	}

	return Parameter{}, fmt.Errorf("%w: %q in stage %q (register a descriptor or rename the argument)",
		ErrUnknownParameterKind, name, stage.Name())
}
