package tune

import "fmt"

//////
// Placeholder marker.
//////

// Marker is the placeholder value assigned to a stage argument in place of a
// concrete value to flag "this argument is to be optimized". Markers are
// immutable, comparable values: every anonymous marker compares equal to every
// other anonymous marker, and two named markers compare equal exactly when
// their identifiers match.
//
// Usage example:
//
//	spline := &steps.SplineBasis{DegFree: tune.Mark()}
//
//	// Two occurrences of the same parameter name in one pipeline need
//	// disambiguating identifiers:
//	lon := &steps.SplineBasis{Column: "longitude", DegFree: tune.MarkAs("longitude df")}
//	lat := &steps.SplineBasis{Column: "latitude", DegFree: tune.MarkAs("latitude df")}
type Marker struct {
	id string
}

// Mark returns the anonymous placeholder marker.
func Mark() Marker {
	return Marker{}
}

// MarkAs returns a named placeholder marker. The identifier becomes part of
// the parameter's composite key and overrides its label, which keeps two
// declarations of the same parameter name distinct within one pipeline.
func MarkAs(id string) Marker {
	return Marker{id: id}
}

// ID returns the marker's identifier, or the empty string for the anonymous
// marker.
func (m Marker) ID() string {
	return m.id
}

// Named reports whether the marker carries an identifier.
func (m Marker) Named() bool {
	return m.id != ""
}

// String renders the marker the way it is written in pipeline files.
func (m Marker) String() string {
	if m.id == "" {
		return "tune()"
	}
	return fmt.Sprintf("tune(%s)", m.id)
}

// IsMarker reports whether v is a placeholder marker, anonymous or named,
// independent of the argument position it was found in.
func IsMarker(v any) bool {
	_, ok := v.(Marker)
	return ok
}
