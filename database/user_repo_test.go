package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFindByUsernamePicksFirstInserted(t *testing.T) {
	d := newTestDB(t)
	first := addUser(t, d, "alice")
	addUser(t, d, "alice") // duplicate usernames are allowed

	got, err := d.UserRepo().FindByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	_, err = d.UserRepo().FindByUsername("nobody")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDeleteUserCascades(t *testing.T) {
	d := newTestDB(t)
	alice := addUser(t, d, "alice")
	bob := addUser(t, d, "bob")

	aliceProject := addProject(t, d, alice.ID, "Build a robot")
	bobProject := addProject(t, d, bob.ID, "Grow a bonsai")

	// alice participates everywhere: comments on both projects, likes and
	// pins bob's project; bob likes and comments on alice's project
	addComment(t, d, alice.ID, aliceProject.ID, "self comment")
	addComment(t, d, alice.ID, bobProject.ID, "nice bonsai")
	bobComment := addComment(t, d, bob.ID, aliceProject.ID, "nice robot")

	_, err := d.ProjectRepo().Like(alice.ID, bobProject.ID)
	require.NoError(t, err)
	_, err = d.ProjectRepo().Like(bob.ID, aliceProject.ID)
	require.NoError(t, err)
	require.NoError(t, d.ProjectRepo().Pin(alice.ID, bobProject.ID))
	require.NoError(t, d.ProjectRepo().Pin(bob.ID, aliceProject.ID))

	require.NoError(t, d.UserRepo().Delete(alice.ID))

	// alice and everything she owned is gone
	_, err = d.UserRepo().FindByID(alice.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	_, err = d.ProjectRepo().FindByID(aliceProject.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	comments, err := d.CommentRepo().FindByProject(bobProject.ID)
	require.NoError(t, err)
	assert.Empty(t, comments, "alice's comment on bob's project should cascade away")

	// bob's comment died with alice's project
	_, err = d.CommentRepo().FindByID(bobComment.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// join rows referencing alice or her project are gone
	pins, err := d.ProjectRepo().PinnedIDs(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, pins)
	pins, err = d.ProjectRepo().PinnedIDs(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, pins)

	// bob's own data survives and his counter reflects the lost like
	got, err := d.ProjectRepo().FindByID(bobProject.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.NumLikes)

	count, err := d.ProjectRepo().LikeCount(bobProject.ID)
	require.NoError(t, err)
	assert.EqualValues(t, count, got.NumLikes)

	_, err = d.UserRepo().FindByID(bob.ID)
	require.NoError(t, err)
}

func TestDeleteUserLeavesOthersUntouched(t *testing.T) {
	d := newTestDB(t)
	alice := addUser(t, d, "alice")
	bob := addUser(t, d, "bob")
	carol := addUser(t, d, "carol")

	bobProject := addProject(t, d, bob.ID, "Grow a bonsai")
	addComment(t, d, carol.ID, bobProject.ID, "lovely")
	_, err := d.ProjectRepo().Like(carol.ID, bobProject.ID)
	require.NoError(t, err)
	require.NoError(t, d.ProjectRepo().Pin(carol.ID, bobProject.ID))

	require.NoError(t, d.UserRepo().Delete(alice.ID))

	got, err := d.ProjectRepo().FindByID(bobProject.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.NumLikes)

	comments, err := d.CommentRepo().FindByProject(bobProject.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)

	pins, err := d.ProjectRepo().PinnedIDs(carol.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{bobProject.ID}, pins)
}
