package entity

import (
	"strings"

	"github.com/google/uuid"
)

// ID is a time-ordered identifier (UUIDv7). The zero ID is never issued.
type ID struct {
	value uuid.UUID
}

// NewID mints a fresh UUIDv7.
func NewID() ID {
	return ID{value: uuid.Must(uuid.NewV7())}
}

// ParseID accepts the canonical hyphenated form of any RFC 4122 UUID.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return ID{}, invalid("id", "must be a valid UUID")
	}
	if u == uuid.Nil {
		return ID{}, invalid("id", "must not be the nil UUID")
	}
	return ID{value: u}, nil
}

func (id ID) String() string { return id.value.String() }

func (id ID) IsZero() bool { return id.value == uuid.Nil }

// Name is a non-blank human readable label.
type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	if strings.TrimSpace(s) == "" {
		return Name{}, invalid("name", "cannot be empty")
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

// Email only checks for a non-blank value containing '@'. Deliverability is
// not this package's concern.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	if strings.TrimSpace(s) == "" {
		return Email{}, invalid("email", "cannot be empty")
	}
	if !strings.Contains(s, "@") {
		return Email{}, invalid("email", "must contain @")
	}
	return Email{value: s}, nil
}

func (e Email) String() string { return e.value }

type Description struct {
	value string
}

func NewDescription(s string) (Description, error) {
	if strings.TrimSpace(s) == "" {
		return Description{}, invalid("description", "cannot be empty")
	}
	return Description{value: s}, nil
}

func (d Description) String() string { return d.value }
