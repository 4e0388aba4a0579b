package entity

// UserGroup associates a user with a group. Existence of both sides is
// checked by the application layer at creation time only.
type UserGroup struct {
	ID      ID
	UserID  ID
	GroupID ID
}

func NewUserGroup(userID, groupID string) (*UserGroup, error) {
	uid, err := ParseID(userID)
	if err != nil {
		return nil, withField(err, "user_id")
	}
	gid, err := ParseID(groupID)
	if err != nil {
		return nil, withField(err, "group_id")
	}
	return &UserGroup{ID: NewID(), UserID: uid, GroupID: gid}, nil
}

func RestoreUserGroup(id, userID, groupID string) (*UserGroup, error) {
	ugid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	ug, err := NewUserGroup(userID, groupID)
	if err != nil {
		return nil, err
	}
	ug.ID = ugid
	return ug, nil
}
