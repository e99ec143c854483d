package tune

//////
// Pipeline stage contract.
//////

// Argument is one named argument of a pipeline stage. The value is either a
// concrete setting or a placeholder Marker flagging the argument for
// optimization.
type Argument struct {
	Name  string
	Value any
}

// PipelineStage is the in-process contract between the registry and the
// pipeline it tunes: preprocessing steps and model specifications both
// implement it.
//
// Arguments enumerates the stage's arguments in a fixed declaration order;
// Build depends on that order for deterministic parameter-set construction.
//
// Execute runs the stage once against sample data and returns the transformed
// dataset, whose shape bounds the data-dependent parameters of downstream
// stages. Model specifications do not transform data and return the input
// unchanged. Execute must be deterministic for a given sample. Arguments still
// holding a placeholder marker are executed at the stage's baseline value.
// There is no cancellation hook: Finalize is a blocking call, and deadlines
// are a caller concern.
type PipelineStage interface {
	// Name identifies the stage within the pipeline. It is the first slot
	// of every composite parameter key the stage produces.
	Name() string

	// Arguments enumerates the stage's arguments in declaration order.
	Arguments() []Argument

	// Execute runs the stage against the sample data.
	Execute(sample *Dataset) (*Dataset, error)
}

// ParameterHinter is an optional PipelineStage extension: a stage that
// declares its own descriptors for arguments the canonical registry does not
// cover, or that need stage-specific domains. Hints take precedence over the
// canonical registry.
type ParameterHinter interface {
	// ParameterHint returns the stage's descriptor for the given argument
	// name, or false to fall back to the canonical registry.
	ParameterHint(name string) (Parameter, bool)
}
