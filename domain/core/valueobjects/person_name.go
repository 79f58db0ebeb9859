package valueobjects

import (
	"errors"
	"strings"
)

// PersonName is a value object identifying a person in the network.
// Names are case-sensitive and are the only externally visible identity.
type PersonName struct {
	value string
}

// NewPersonName creates a PersonName from a raw string.
// Leading and trailing whitespace is trimmed. The name must be non-empty
// and must not contain whitespace or a colon, since both act as separators
// in the persisted adjacency format.
func NewPersonName(raw string) (PersonName, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return PersonName{}, errors.New("person name cannot be empty")
	}
	if strings.ContainsAny(name, " \t:") {
		return PersonName{}, errors.New("person name cannot contain whitespace or ':'")
	}
	return PersonName{value: name}, nil
}

// String returns the string representation of the PersonName
func (n PersonName) String() string {
	return n.value
}

// Equals checks if two PersonNames are equal
func (n PersonName) Equals(other PersonName) bool {
	return n.value == other.value
}

// IsZero checks if the PersonName is the zero value
func (n PersonName) IsZero() bool {
	return n.value == ""
}

// MarshalJSON implements json.Marshaler
func (n PersonName) MarshalJSON() ([]byte, error) {
	return []byte(`"` + n.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (n *PersonName) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("PersonName must be a string")
	}
	parsed, err := NewPersonName(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
