package viewport

// CapitalValue is the wire form of the capital selection.
const CapitalValue = "capital"

// Kind distinguishes the three selection states.
type Kind int

const (
	KindNone Kind = iota
	KindRegion
	KindCapital
)

// Selection is what the page shell has selected: nothing, one region, or the
// capital marker. The zero value is None.
type Selection struct {
	kind Kind
	id   string
}

// None returns the empty selection.
func None() Selection { return Selection{} }

// Capital returns the capital selection.
func Capital() Selection { return Selection{kind: KindCapital} }

// Region returns the selection of region id. An empty id selects nothing.
func Region(id string) Selection {
	if id == "" {
		return None()
	}
	return Selection{kind: KindRegion, id: id}
}

// ParseSelection decodes the wire form: "" is none, "capital" is the capital,
// anything else is a region id.
func ParseSelection(s string) Selection {
	switch s {
	case "":
		return None()
	case CapitalValue:
		return Capital()
	default:
		return Region(s)
	}
}

// Kind returns the selection kind.
func (s Selection) Kind() Kind { return s.kind }

// IsNone reports whether nothing is selected.
func (s Selection) IsNone() bool { return s.kind == KindNone }

// IsCapital reports whether the capital is selected.
func (s Selection) IsCapital() bool { return s.kind == KindCapital }

// RegionID returns the selected region id, if a region is selected.
func (s Selection) RegionID() (string, bool) {
	return s.id, s.kind == KindRegion
}

// String returns the wire form.
func (s Selection) String() string {
	switch s.kind {
	case KindCapital:
		return CapitalValue
	case KindRegion:
		return s.id
	}
	return ""
}

// MarshalText implements encoding.TextMarshaler.
func (s Selection) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Selection) UnmarshalText(b []byte) error {
	*s = ParseSelection(string(b))
	return nil
}
