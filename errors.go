package tune

import "errors"

//////
// Sentinel errors.
//////

// ErrUnknownParameterKind is returned by Build when an argument carries a
// placeholder marker but no canonical descriptor exists for the argument's
// name, neither in the built-in registry nor via the stage's own hints.
var ErrUnknownParameterKind = errors.New("no canonical descriptor for parameter")

// ErrParameterConflict is returned by Build and Merge when two stages declare
// parameters under the same composite key with incompatible kinds. Recovery:
// disambiguate one of the declarations with MarkAs.
var ErrParameterConflict = errors.New("conflicting parameter declarations")

// ErrUnknownParameterKey is returned by Update when the key is not present in
// the set.
var ErrUnknownParameterKey = errors.New("parameter key not present in set")

// ErrKindMismatch is returned by Update when the replacement descriptor's kind
// differs from the existing one, and by the sampling helpers when a value of
// the wrong kind is requested. No partial update is applied.
var ErrKindMismatch = errors.New("parameter kind mismatch")

// ErrUnresolvableParameter is returned by Finalize when an unresolved
// descriptor has no matching resolution rule, or when its source stage is not
// part of the executed sequence. Finalize is all-or-nothing: when this error
// is returned, no descriptor in the input set has been resolved.
var ErrUnresolvableParameter = errors.New("no resolution rule for unresolved parameter")

// ErrUnresolvedDomain is returned by the sampling helpers when the domain
// still carries unknown bounds. Run Finalize first.
var ErrUnresolvedDomain = errors.New("domain has unresolved bounds")
