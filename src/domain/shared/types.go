package shared

import (
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"
)

// ValueObject is an immutable value compared by its contents.
type ValueObject interface {
	Equals(other ValueObject) bool
	String() string
}

// Entity is anything with an identity that outlives its attribute values.
type Entity[ID comparable] interface {
	EntityID() ID
}

// PlayerID keeps player identities distinct while remaining a plain string at runtime.
type PlayerID string

// NewPlayerID generates a random (v4) player id.
func NewPlayerID() PlayerID {
	return PlayerID(uuid.Must(uuid.NewV4()).String())
}

// ParsePlayerID normalizes s into a PlayerID, rejecting anything that is not a UUID.
func ParsePlayerID(s string) (PlayerID, error) {
	id, err := uuid.FromString(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidUUID, s)
	}
	return PlayerID(id.String()), nil
}

// Validate ensures the id is not blank and is a well formed UUID.
func (id PlayerID) Validate() error {
	if strings.TrimSpace(string(id)) == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidUUID)
	}
	if _, err := uuid.FromString(string(id)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidUUID, string(id))
	}
	return nil
}

func (id PlayerID) IsZero() bool {
	return id == ""
}

func (id PlayerID) String() string {
	return string(id)
}

func (id PlayerID) Equals(other ValueObject) bool {
	o, ok := other.(PlayerID)
	return ok && o == id
}
