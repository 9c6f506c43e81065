package capability

// Capability is a typed grant evaluated once at session start. It replaces
// ad hoc permission-string matching at call sites with a closed enumeration.
type Capability string

const (
	SaleCreate    Capability = "sales.create"
	SaleView      Capability = "sales.view"
	SaleAnnul     Capability = "sales.annul"
	PriceOverride Capability = "sales.price_override"
)

// known maps every recognised grant string to its capability. Unknown strings
// in a token are ignored rather than rejected, so old tokens keep working when
// grants are retired.
var known = map[string]Capability{
	string(SaleCreate):    SaleCreate,
	string(SaleView):      SaleView,
	string(SaleAnnul):     SaleAnnul,
	string(PriceOverride): PriceOverride,
}

// Set is an immutable-by-convention capability set built once per session.
type Set map[Capability]struct{}

// FromStrings builds a Set from raw grant strings, typically token claims.
func FromStrings(grants []string) Set {
	s := make(Set, len(grants))
	for _, g := range grants {
		if c, ok := known[g]; ok {
			s[c] = struct{}{}
		}
	}
	return s
}

// NewSet builds a Set from typed capabilities.
func NewSet(caps ...Capability) Set {
	s := make(Set, len(caps))
	for _, c := range caps {
		s[c] = struct{}{}
	}
	return s
}

// Can reports whether the set holds the given capability.
func (s Set) Can(c Capability) bool {
	_, ok := s[c]
	return ok
}

// Strings returns the grant strings in the set, for logging and claims round-trips.
func (s Set) Strings() []string {
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, string(c))
	}
	return out
}
