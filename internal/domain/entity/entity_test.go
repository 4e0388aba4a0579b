package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("Alice", "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name.String())
	assert.Equal(t, "a@b.com", u.Email.String())
	assert.False(t, u.ID.IsZero())

	u, err = NewUser("", "a@b.com")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, u)

	u, err = NewUser("Alice", "not-an-email")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, u)
}

func TestRestoreUser(t *testing.T) {
	orig, err := NewUser("Bob", "bob@example.com")
	require.NoError(t, err)

	u, err := RestoreUser(orig.ID.String(), "Bobby", "bobby@example.com")
	require.NoError(t, err)
	assert.Equal(t, orig.ID, u.ID)
	assert.Equal(t, "Bobby", u.Name.String())

	_, err = RestoreUser("nope", "Bobby", "bobby@example.com")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = RestoreUser(orig.ID.String(), "Bobby", "bobby")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewGroup(t *testing.T) {
	g, err := NewGroup("Group 1", "Description 1")
	require.NoError(t, err)
	assert.Equal(t, "Group 1", g.Name.String())
	assert.Equal(t, "Description 1", g.Description.String())

	_, err = NewGroup("Group 1", " ")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "description", ve.Field)

	restored, err := RestoreGroup(g.ID.String(), "Renamed", "Still here")
	require.NoError(t, err)
	assert.Equal(t, g.ID, restored.ID)
}

func TestNewUserGroup(t *testing.T) {
	uid, gid := NewID(), NewID()

	ug, err := NewUserGroup(uid.String(), gid.String())
	require.NoError(t, err)
	assert.Equal(t, uid, ug.UserID)
	assert.Equal(t, gid, ug.GroupID)
	assert.NotEqual(t, uid, ug.ID)

	var ve *ValidationError
	_, err = NewUserGroup("bad", gid.String())
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "user_id", ve.Field)

	_, err = NewUserGroup(uid.String(), "bad")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "group_id", ve.Field)

	restored, err := RestoreUserGroup(ug.ID.String(), uid.String(), gid.String())
	require.NoError(t, err)
	assert.Equal(t, *ug, *restored)
}
