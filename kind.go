package fp

import "fmt"

// Kind is a floating point precision.
type Kind uint8

const (
	// F16 is IEEE-754 binary16.
	F16 Kind = iota + 1

	// F32 is IEEE-754 binary32.
	F32

	// Abstract is backed by binary64. Only operations whose accuracy is
	// exact, correctly rounded, or composed from those are defined for it;
	// see Traits.Supports.
	Abstract
)

// Kinds lists every kind in declaration order.
var Kinds = []Kind{F16, F32, Abstract}

func (k Kind) String() string {
	switch k {
	case F16:
		return "f16"
	case F32:
		return "f32"
	case Abstract:
		return "abstract"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

func (k Kind) valid() bool { return k >= F16 && k <= Abstract }

// ParseKind parses the String form of a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("fp: unknown kind %q", s)
}
