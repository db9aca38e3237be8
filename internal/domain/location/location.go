// Package location models the two kinds of stock-holding places: the single
// central warehouse ("pusat") and any number of outlets. A location resolves
// to a stable string key used wherever balances, favorites or usage counts
// are tracked per location.
package location

// Kind of stock-holding location.
type Kind string

const (
	KindCentral Kind = "central"
	KindOutlet  Kind = "outlet"
)

// Filter values accepted by history/balance queries.
const (
	FilterAll     = "all"
	FilterCentral = "central"
	// outlet filters are "outlet:<id>"
)

// LabelUnknownOutlet is the sentinel label for an outlet reference that no
// longer resolves (e.g. soft-deleted outlet with surviving movements).
const LabelUnknownOutlet = "Outlet tidak dikenal"

// Location identifies one stock-holding place. Central carries no id.
type Location struct {
	Kind     Kind   `json:"kind"`
	OutletID string `json:"outlet_id,omitempty"`
}

// Central returns the central-warehouse location.
func Central() Location { return Location{Kind: KindCentral} }

// Outlet returns the location for the given outlet id.
func Outlet(id string) Location { return Location{Kind: KindOutlet, OutletID: id} }

// Key returns the canonical mapping key: "central" or "outlet:<id>".
// A missing outlet id degrades to "outlet:unknown"; Key never fails.
func (l Location) Key() string {
	if l.Kind == KindOutlet {
		if l.OutletID == "" {
			return "outlet:unknown"
		}
		return "outlet:" + l.OutletID
	}
	return "central"
}

// IsOutlet reports whether the location is an outlet.
func (l Location) IsOutlet() bool { return l.Kind == KindOutlet }

// Equal reports whether two locations refer to the same place.
func (l Location) Equal(other Location) bool {
	if l.Kind != other.Kind {
		return false
	}
	if l.Kind == KindOutlet {
		return l.OutletID == other.OutletID
	}
	return true
}

// FromKey parses a location key back into a Location. Unrecognized keys map
// to central, mirroring Key's never-fail contract.
func FromKey(key string) Location {
	const prefix = "outlet:"
	if len(key) > len(prefix) && key[:len(prefix)] == prefix {
		return Outlet(key[len(prefix):])
	}
	return Central()
}

// MatchesFilter reports whether the location falls inside the given filter:
// "all" matches everything, "central" only the central warehouse, and
// "outlet:<id>" only that outlet.
func (l Location) MatchesFilter(filter string) bool {
	if filter == "" || filter == FilterAll {
		return true
	}
	return l.Key() == filter
}

// ValidFilter reports whether the string is an accepted filter value.
func ValidFilter(filter string) bool {
	if filter == "" || filter == FilterAll || filter == FilterCentral {
		return true
	}
	const prefix = "outlet:"
	return len(filter) > len(prefix) && filter[:len(prefix)] == prefix
}

// OutletRef is the minimal outlet data needed to render a location label.
type OutletRef struct {
	Name string
	Code string
}

// Label renders a human-readable location name: "Pusat" for central,
// "<name> (<code>)" for a known outlet, and a sentinel for anything that
// does not resolve. Label never fails.
func (l Location) Label(outlets map[string]OutletRef) string {
	if !l.IsOutlet() {
		return "Pusat"
	}
	if ref, ok := outlets[l.OutletID]; ok {
		return ref.Name + " (" + ref.Code + ")"
	}
	return LabelUnknownOutlet
}
