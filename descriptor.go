package tune

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

//////
// Parameter descriptors.
//////

// Kind classifies a tunable parameter's value space.
type Kind int

const (
	// KindContinuous is a real-valued parameter (e.g. penalty, learn_rate).
	KindContinuous Kind = iota

	// KindInteger is a whole-valued parameter (e.g. neighbors, deg_free).
	KindInteger

	// KindCategorical is a parameter drawn from a finite ordered set of
	// levels (e.g. activation, weight_func).
	KindCategorical
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindContinuous:
		return "continuous"
	case KindInteger:
		return "integer"
	case KindCategorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// Bound is one endpoint of a numeric domain. The zero value is an unknown
// bound: not yet resolvable from the parameter's definition alone, to be
// filled in by Finalize from observed data dimensions.
type Bound struct {
	// Value is the endpoint, meaningful only when Known is true. For
	// transformed parameters it is expressed in transformed units.
	Value float64

	// Known reports whether the endpoint has been resolved.
	Known bool
}

// Known returns a resolved bound with the given value.
func Known(v float64) Bound {
	return Bound{Value: v, Known: true}
}

// Unknown is a bound that has not been resolved yet.
var Unknown = Bound{}

// Transform is a monotonic invertible function pair applied when sampling or
// encoding a parameter value. Domain bounds of a transformed parameter are
// expressed in transformed units; consumers invert before use.
type Transform struct {
	// Name identifies the transform in descriptions and comparisons.
	Name string

	// Forward maps an original-unit value into transformed units.
	Forward func(float64) float64

	// Inverse maps a transformed-unit value back to original units.
	Inverse func(float64) float64
}

// Log10 is the base-10 logarithmic transform, the conventional scale for
// strictly positive parameters spanning orders of magnitude (penalty,
// learn_rate).
var Log10 = &Transform{
	Name:    "log-10",
	Forward: math.Log10,
	Inverse: func(x float64) float64 { return math.Pow(10, x) },
}

// Resolution names the rule Finalize uses to fill in a descriptor's unknown
// bounds from observed data dimensions. The set of rules is small and closed.
type Resolution int

const (
	// ResolveNone means the descriptor has no data-dependent bounds. An
	// unknown bound combined with ResolveNone makes the set unresolvable.
	ResolveNone Resolution = iota

	// ResolveByColumns bounds the parameter by the column count observed at
	// the parameter's stage boundary, after all preceding stages have
	// transformed the data (e.g. mtry, num_comp).
	ResolveByColumns

	// ResolveByRows bounds the parameter by the observed row count
	// (e.g. sample_size).
	ResolveByRows
)

// Domain is a parameter's value space: an inclusive numeric interval for
// continuous and integer kinds, or a finite ordered level set for categorical
// kinds.
type Domain struct {
	// Lower and Upper are the inclusive interval endpoints for numeric
	// kinds. Either may be unknown until finalization.
	Lower, Upper Bound

	// Levels is the ordered set of allowed values for categorical kinds.
	Levels []string
}

// NumericDomain builds a numeric domain from two endpoints.
func NumericDomain(lower, upper Bound) Domain {
	return Domain{Lower: lower, Upper: upper}
}

// CategoricalDomain builds a categorical domain from an ordered level set.
func CategoricalDomain(levels ...string) Domain {
	return Domain{Levels: levels}
}

// Resolved reports whether the domain has no unknown bounds. Categorical
// domains are always resolved.
func (d Domain) Resolved() bool {
	if len(d.Levels) > 0 {
		return true
	}
	return d.Lower.Known && d.Upper.Known
}

// validateFor checks that the domain's shape matches the given kind.
func (d Domain) validateFor(kind Kind) error {
	switch kind {
	case KindCategorical:
		if len(d.Levels) == 0 {
			return fmt.Errorf("%w: categorical domain requires levels", ErrKindMismatch)
		}
		if d.Lower.Known || d.Upper.Known {
			return fmt.Errorf("%w: categorical domain must not carry numeric bounds", ErrKindMismatch)
		}
	default:
		if len(d.Levels) > 0 {
			return fmt.Errorf("%w: numeric domain must not carry levels", ErrKindMismatch)
		}
	}
	return nil
}

// Parameter is the metadata for one tunable quantity: its identity, value
// space, optional transform, and the rule used to resolve data-dependent
// bounds.
type Parameter struct {
	// Name is the argument name the parameter was declared under, unique
	// within one pipeline stage.
	Name string

	// Label is the human-readable description. A named marker overrides it
	// with the marker's identifier.
	Label string

	// Kind classifies the value space.
	Kind Kind

	// Domain is the value space. Bounds of transformed parameters are in
	// transformed units.
	Domain Domain

	// Trans is the optional transform; nil means identity.
	Trans *Transform

	// Resolution selects the finalization rule for unknown bounds.
	Resolution Resolution
}

// Resolved reports whether the parameter's domain has no unknown bounds.
func (p Parameter) Resolved() bool {
	return p.Domain.Resolved()
}

// RangeString renders the domain for tables and logs: "[1, 15]" for numeric
// kinds with "?" standing in for unknown bounds, "{relu, tanh}" for
// categorical kinds. Transformed parameters carry the transform name.
func (p Parameter) RangeString() string {
	if p.Kind == KindCategorical {
		return "{" + strings.Join(p.Domain.Levels, ", ") + "}"
	}
	r := "[" + boundString(p.Domain.Lower) + ", " + boundString(p.Domain.Upper) + "]"
	if p.Trans != nil {
		r += " (" + p.Trans.Name + ")"
	}
	return r
}

func boundString(b Bound) string {
	if !b.Known {
		return "?"
	}
	return strconv.FormatFloat(b.Value, 'g', -1, 64)
}

//////
// Value sampling.
//////

// SampleNumeric draws one value uniformly from a resolved numeric domain.
// The draw happens in transformed units; the inverse transform is applied
// before returning, and integer kinds are rounded to the nearest whole value.
//
// Returns ErrKindMismatch for categorical parameters and ErrUnresolvedDomain
// when a bound is still unknown.
//
// The rng is caller-supplied so repeated draws are reproducible under a fixed
// seed. The function itself holds no shared state; serializing access to the
// rng is the caller's responsibility.
func SampleNumeric[T constraints.Integer | constraints.Float](p Parameter, rng *rand.Rand) (T, error) {
	var zero T

	if p.Kind == KindCategorical {
		return zero, fmt.Errorf("%w: %s is categorical", ErrKindMismatch, p.Name)
	}

	if !p.Domain.Resolved() {
		return zero, fmt.Errorf("%w: %s", ErrUnresolvedDomain, p.Name)
	}

	lo, hi := p.Domain.Lower.Value, p.Domain.Upper.Value

	// Uniform draw in transformed units, inclusive of both endpoints for
	// integer kinds.
	var v float64
	if p.Kind == KindInteger && p.Trans == nil {
		v = lo + float64(rng.Int63n(int64(hi-lo)+1))
	} else {
		v = lo + rng.Float64()*(hi-lo)
	}

	if p.Trans != nil {
		v = p.Trans.Inverse(v)
	}

	if p.Kind == KindInteger {
		v = math.Round(v)
	}

	return T(v), nil
}

// SampleLevel draws one level uniformly from a categorical domain.
// Returns ErrKindMismatch for numeric parameters.
func (p Parameter) SampleLevel(rng *rand.Rand) (string, error) {
	if p.Kind != KindCategorical {
		return "", fmt.Errorf("%w: %s is %s", ErrKindMismatch, p.Name, p.Kind)
	}
	return p.Domain.Levels[rng.Intn(len(p.Domain.Levels))], nil
}
