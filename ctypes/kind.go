package ctypes

// Kind is the numeric interpretation of a primitive C type.
type Kind uint8

const (
	Signed Kind = iota
	Unsigned
	Float
)

var kindNames = [...]string{
	Signed:   "signed",
	Unsigned: "unsigned",
	Float:    "float",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsInteger reports whether the kind is a signed or unsigned integer.
func (k Kind) IsInteger() bool {
	return k == Signed || k == Unsigned
}
