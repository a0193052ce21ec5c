// Package identifier classifies raw catalog input into typed identifiers.
//
// Classification is purely a function of string length and shape; it never
// touches the store or the network, so callers can classify on any goroutine
// without coordination. Surrounding whitespace is the caller's problem.
package identifier

// Kind enumerates the recognized identifier shapes.
type Kind int

const (
	// Invalid marks all-digit strings that are neither 10 nor 13 characters
	// long. It is a normal classification outcome, not an error.
	Invalid Kind = iota
	ISBN10
	ISBN13
	// FreeText marks anything containing a non-digit: treated as a candidate
	// title search.
	FreeText
)

// String returns the lowercase name used in logs and messages.
func (k Kind) String() string {
	switch k {
	case ISBN10:
		return "isbn10"
	case ISBN13:
		return "isbn13"
	case FreeText:
		return "free-text"
	default:
		return "invalid"
	}
}

// Identifier is the classified form of a user-entered string.
type Identifier struct {
	Kind  Kind
	Value string
}

// Classify maps a raw string to a typed identifier. Total and deterministic:
// length 10 is ISBN10, length 13 is ISBN13, any other all-digit string is
// Invalid, and everything else is FreeText.
func Classify(raw string) Identifier {
	switch len(raw) {
	case 10:
		return Identifier{Kind: ISBN10, Value: raw}
	case 13:
		return Identifier{Kind: ISBN13, Value: raw}
	}
	if allDigits(raw) {
		return Identifier{Kind: Invalid, Value: raw}
	}
	return Identifier{Kind: FreeText, Value: raw}
}

func allDigits(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
