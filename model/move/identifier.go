package move

import (
	"fmt"
)

// Identifier is the name of a module, struct or field as declared in
// on-chain bytecode. Valid identifiers are non-empty, start with a letter or
// underscore and continue with letters, digits or underscores.
type Identifier string

// NewIdentifier validates s and returns it as an Identifier.
func NewIdentifier(s string) (Identifier, error) {
	id := Identifier(s)
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

// Validate checks that the identifier conforms to the on-chain naming rules.
func (id Identifier) Validate() error {
	if len(id) == 0 {
		return fmt.Errorf("identifier must not be empty")
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z'):
		case '0' <= c && c <= '9':
			if i == 0 {
				return fmt.Errorf("identifier (%s) must not start with a digit", string(id))
			}
		default:
			return fmt.Errorf("identifier (%s) contains invalid character %q", string(id), c)
		}
	}
	return nil
}

func (id Identifier) String() string {
	return string(id)
}
