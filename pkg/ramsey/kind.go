package ramsey

import (
	"strings"
)

// Kind selects the family of forbidden monochromatic structures.
type Kind int

const (
	// Books counts B_k: a spine edge plus k pages adjacent to both spine ends.
	Books Kind = iota + 1
	// Wheels counts W_k: a center adjacent to every vertex of a k-cycle rim.
	Wheels
)

// Smaller sizes degenerate to cliques, which the counting formulas overcount.
const (
	MinBookSize  = 4
	MinWheelSize = 5
)

// String returns the structure name as used on the command line.
func (k Kind) String() string {
	switch k {
	case Books:
		return "books"
	case Wheels:
		return "wheels"
	default:
		return "unknown"
	}
}

// MinSize returns the smallest forbidden size (in vertices) the counters support.
func (k Kind) MinSize() int {
	switch k {
	case Books:
		return MinBookSize
	case Wheels:
		return MinWheelSize
	default:
		return 0
	}
}

// Valid reports whether k is one of the two supported families.
func (k Kind) Valid() bool {
	return k == Books || k == Wheels
}

// ParseKind converts "books" or "wheels" (singular accepted, any case) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "books", "book":
		return Books, nil
	case "wheels", "wheel":
		return Wheels, nil
	default:
		return 0, &ConfigError{Op: "ParseKind", Field: "structure", Value: s, Cause: ErrUnknownKind}
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, &ConfigError{Op: "MarshalText", Field: "structure", Value: int(k), Cause: ErrUnknownKind}
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
