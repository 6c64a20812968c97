package charset

const (
	fullChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*()-_=+[]{}|;:,.<>?"
	alnumChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	numChars   = "0123456789"
)

// Charset is an ordered set of distinct printable characters selected by a
// mode token. The zero value is not usable; obtain one from ByName or the
// package variables.
type Charset struct {
	name    string
	display string
	chars   string
}

var (
	// Full contains upper and lower case letters, digits and symbols.
	Full = Charset{name: "full", display: "full", chars: fullChars}

	// Alnum contains upper and lower case letters and digits.
	Alnum = Charset{name: "alnum", display: "alphanumeric", chars: alnumChars}

	// Num contains the decimal digits.
	Num = Charset{name: "num", display: "numeric", chars: numChars}
)

// ByName returns the charset selected by the given mode token.
func ByName(name string) (Charset, error) {
	switch name {
	case Full.name:
		return Full, nil
	case Alnum.name:
		return Alnum, nil
	case Num.name:
		return Num, nil
	default:
		return Charset{}, ErrUnknownMode
	}
}

// Name returns the mode token used to select the charset.
func (c Charset) Name() string {
	return c.name
}

// DisplayName returns the long mode name shown in the entropy report.
func (c Charset) DisplayName() string {
	return c.display
}

// Size returns the number of characters in the set.
func (c Charset) Size() int {
	return len(c.chars)
}

// Byte returns the character at position i.
func (c Charset) Byte(i int) byte {
	return c.chars[i]
}

// String returns the raw characters in order.
func (c Charset) String() string {
	return c.chars
}
