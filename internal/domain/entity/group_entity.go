package entity

type Group struct {
	ID          ID
	Name        Name
	Description Description
}

func NewGroup(name, description string) (*Group, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	d, err := NewDescription(description)
	if err != nil {
		return nil, err
	}
	return &Group{ID: NewID(), Name: n, Description: d}, nil
}

func RestoreGroup(id, name, description string) (*Group, error) {
	gid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	g, err := NewGroup(name, description)
	if err != nil {
		return nil, err
	}
	g.ID = gid
	return g, nil
}
