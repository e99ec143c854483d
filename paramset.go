package tune

import (
	"fmt"
)

//////
// Parameter set.
//////

// Key is the composite identity of one entry in a ParameterSet: the stage the
// parameter came from, the argument name it was declared under, and the
// optional marker identifier that disambiguates repeated names. ID is empty
// when the marker was anonymous.
type Key struct {
	Stage string
	Name  string
	ID    string
}

// String renders the key as "stage/name" or "stage/name[id]".
func (k Key) String() string {
	if k.ID == "" {
		return k.Stage + "/" + k.Name
	}
	return fmt.Sprintf("%s/%s[%s]", k.Stage, k.Name, k.ID)
}

// ParameterSet is an ordered mapping from composite keys to parameter
// descriptors. Entries keep the order they were discovered in (stage
// traversal order, then argument order within a stage), so repeated builds on
// unchanged input are byte-for-byte reproducible.
//
// ParameterSet is a value type in spirit: Update, Merge, and Finalize return
// modified copies and never mutate their receiver, so callers retain earlier
// sets for inspection. Concurrent reads of one set need no synchronization.
type ParameterSet struct {
	keys   []Key
	params map[Key]Parameter
}

// NewParameterSet returns an empty set.
func NewParameterSet() *ParameterSet {
	return &ParameterSet{params: make(map[Key]Parameter)}
}

// Len returns the number of entries.
func (s *ParameterSet) Len() int {
	return len(s.keys)
}

// Keys returns a copy of the keys in set order.
func (s *ParameterSet) Keys() []Key {
	out := make([]Key, len(s.keys))
	copy(out, s.keys)
	return out
}

// Get returns the descriptor stored under the key.
func (s *ParameterSet) Get(k Key) (Parameter, bool) {
	p, ok := s.params[k]
	return p, ok
}

// Unresolved returns, in set order, the keys of every descriptor whose domain
// still has an unknown bound.
func (s *ParameterSet) Unresolved() []Key {
	var out []Key
	for _, k := range s.keys {
		if !s.params[k].Resolved() {
			out = append(out, k)
		}
	}
	return out
}

// add appends an entry, enforcing key uniqueness. A duplicate key carrying an
// equal descriptor is deduplicated; any other duplicate is a conflict.
func (s *ParameterSet) add(k Key, p Parameter) error {
	existing, ok := s.params[k]
	if !ok {
		s.keys = append(s.keys, k)
		s.params[k] = p
		return nil
	}

	if existing.Kind != p.Kind {
		return fmt.Errorf("%w: %s declared as both %s and %s (disambiguate with a marker identifier)",
			ErrParameterConflict, k, existing.Kind, p.Kind)
	}
	if !paramEqual(existing, p) {
		return fmt.Errorf("%w: %s declared twice with differing descriptors", ErrParameterConflict, k)
	}

	return nil
}

// Update returns a copy of the set with the descriptor under key replaced.
// The receiver is not modified. The replacement must keep the existing kind;
// its domain must match that kind.
//
// Returns ErrUnknownParameterKey when the key is absent and ErrKindMismatch
// when the replacement changes the kind or carries a mismatched domain. No
// partial update is applied.
func (s *ParameterSet) Update(k Key, p Parameter) (*ParameterSet, error) {
	existing, ok := s.params[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownParameterKey, k)
	}

	if p.Kind != existing.Kind {
		return nil, fmt.Errorf("%w: %s is %s, replacement is %s", ErrKindMismatch, k, existing.Kind, p.Kind)
	}
	if err := p.Domain.validateFor(p.Kind); err != nil {
		return nil, fmt.Errorf("%s: %w", k, err)
	}

	out := s.clone()
	out.params[k] = p
	return out, nil
}

// UpdateDomain returns a copy of the set with only the domain of the
// descriptor under key replaced. Kind-safety rules are the same as Update.
func (s *ParameterSet) UpdateDomain(k Key, d Domain) (*ParameterSet, error) {
	existing, ok := s.params[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownParameterKey, k)
	}

	replacement := existing
	replacement.Domain = d
	return s.Update(k, replacement)
}

// Merge returns the union of the two sets, other's entries appended after the
// receiver's. Neither input is modified. Keys may only collide when the
// descriptors are equal; colliding keys with differing descriptors return
// ErrParameterConflict.
func (s *ParameterSet) Merge(other *ParameterSet) (*ParameterSet, error) {
	out := s.clone()
	for _, k := range other.keys {
		if err := out.add(k, other.params[k]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Equal reports whether the two sets hold the same keys in the same order
// with equal descriptors. Transforms compare by name.
func (s *ParameterSet) Equal(other *ParameterSet) bool {
	if len(s.keys) != len(other.keys) {
		return false
	}
	for i, k := range s.keys {
		if other.keys[i] != k {
			return false
		}
		if !paramEqual(s.params[k], other.params[k]) {
			return false
		}
	}
	return true
}

// clone returns an independent copy of the set.
func (s *ParameterSet) clone() *ParameterSet {
	out := &ParameterSet{
		keys:   make([]Key, len(s.keys)),
		params: make(map[Key]Parameter, len(s.params)),
	}
	copy(out.keys, s.keys)
	for k, p := range s.params {
		out.params[k] = p
	}
	return out
}

// paramEqual compares two descriptors field by field. Transforms are
// identified by name; function values are never compared.
func paramEqual(a, b Parameter) bool {
	if a.Name != b.Name || a.Label != b.Label || a.Kind != b.Kind || a.Resolution != b.Resolution {
		return false
	}
	if (a.Trans == nil) != (b.Trans == nil) {
		return false
	}
	if a.Trans != nil && a.Trans.Name != b.Trans.Name {
		return false
	}
	if a.Domain.Lower != b.Domain.Lower || a.Domain.Upper != b.Domain.Upper {
		return false
	}
	if len(a.Domain.Levels) != len(b.Domain.Levels) {
		return false
	}
	for i, l := range a.Domain.Levels {
		if b.Domain.Levels[i] != l {
			return false
		}
	}
	return true
}

//////
// Presentation.
//////

// ParameterInfo is one row of the human-readable set description. It is
// presentation only; consumers needing descriptor details use Get.
type ParameterInfo struct {
	// Key is the rendered composite key, e.g. "spline/deg_free[longitude df]".
	Key string

	// Label is the human-readable parameter description.
	Label string

	// Kind is the rendered parameter kind.
	Kind string

	// Range is the rendered domain, with "?" for unknown bounds.
	Range string

	// Status is "resolved" or "unresolved".
	Status string
}

// Describe returns one row per entry, in set order.
func (s *ParameterSet) Describe() []ParameterInfo {
	out := make([]ParameterInfo, 0, len(s.keys))
	for _, k := range s.keys {
		p := s.params[k]
		status := "resolved"
		if !p.Resolved() {
			status = "unresolved"
		}
		out = append(out, ParameterInfo{
			Key:    k.String(),
			Label:  p.Label,
			Kind:   p.Kind.String(),
			Range:  p.RangeString(),
			Status: status,
		})
	}
	return out
}
