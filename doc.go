// Package tune provides a registry for the tunable parameters of a modeling
// pipeline. It lets preprocessing steps and model specifications flag
// arguments for optimization with a placeholder marker, collects those
// markers into an ordered parameter set with canonical domains and
// transforms, and resolves data-dependent bounds by executing the pipeline
// once against a sample dataset.
//
// # Features
//
// The package includes the following key features:
//
//   - Placeholder Markers: flag any stage argument for optimization with
//     Mark, or MarkAs when one parameter name occurs more than once in a
//     pipeline
//   - Canonical Descriptors: a built-in registry of well-known parameter
//     names (penalty, mtry, deg_free, ...) with their domains, transforms,
//     and labels; stages may override it with their own hints
//   - Deterministic Builds: parameter sets keep stage traversal and argument
//     declaration order, so repeated builds over unchanged pipelines are
//     identical
//   - Data-Dependent Bounds: descriptors whose limits depend on the data
//     (predictor subset size, sampled row count) start with unknown bounds
//     and are resolved by Finalize in one pipeline pass
//   - Value Types Throughout: Update, Merge, and Finalize return modified
//     copies; earlier sets stay intact for inspection
//   - Progress Monitoring: per-stage updates during finalization via an
//     optional channel, and structured logging via charmbracelet/log
//
// # Usage
//
// Declare a pipeline, marking the arguments to optimize:
//
//	rec := []tune.PipelineStage{
//	    steps.Normalize{},
//	    &steps.SplineBasis{Column: "longitude", DegFree: tune.MarkAs("longitude df")},
//	    &steps.SplineBasis{Column: "latitude", DegFree: tune.MarkAs("latitude df")},
//	}
//	model := &steps.RandomForest{Mtry: tune.Mark(), Trees: 1000, MinN: tune.Mark()}
//
//	set, err := tune.Build(append(rec, model)...)
//	if err != nil {
//	    return err
//	}
//
// The mtry upper bound depends on how many predictors survive preprocessing,
// so it starts unknown. Resolve it against a representative sample:
//
//	resolved, err := tune.Finalize(tune.DefaultFinalizeConfig(), set, append(rec, model), sample)
//	if err != nil {
//	    return err
//	}
//
// Override a canonical domain before handing the set to a search strategy:
//
//	key := tune.Key{Stage: "rand_forest", Name: "min_n"}
//	set, err = set.UpdateDomain(key, tune.NumericDomain(tune.Known(2), tune.Known(100)))
//
// # Transforms
//
// Parameters spanning orders of magnitude carry a transform (base-10 log for
// penalty and learn_rate). Their domain bounds are expressed in transformed
// units; SampleNumeric draws uniformly in those units and inverts before
// returning, so a penalty domain of [-10, 0] yields values in [1e-10, 1].
//
// # Error Handling
//
// All failures are synchronous error returns wrapping sentinel values
// (ErrUnknownParameterKind, ErrParameterConflict, ErrUnknownParameterKey,
// ErrKindMismatch, ErrUnresolvableParameter); nothing is retried internally.
// Finalize is all-or-nothing: either every unknown bound resolves or the call
// fails before touching any of them.
//
// # Concurrency
//
// Parameter sets are independent values. Concurrent Build and Finalize calls
// over different pipelines do not interact; concurrent reads of one set are
// safe. Finalize performs exactly one pipeline execution, blocking and
// non-cancelable; wrap the call externally when a deadline is needed.
package tune
