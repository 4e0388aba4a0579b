package entity

// User is the aggregate root for the user domain.
// All fields are values, so copying a User yields an independent copy.
type User struct {
	ID    ID
	Name  Name
	Email Email
}

// NewUser validates every field and assigns a fresh ID.
func NewUser(name, email string) (*User, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	e, err := NewEmail(email)
	if err != nil {
		return nil, err
	}
	return &User{ID: NewID(), Name: n, Email: e}, nil
}

// RestoreUser rebuilds a user around an existing ID, used for whole-record updates.
func RestoreUser(id, name, email string) (*User, error) {
	uid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	u, err := NewUser(name, email)
	if err != nil {
		return nil, err
	}
	u.ID = uid
	return u, nil
}
