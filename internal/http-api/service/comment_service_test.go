package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"artgrid/internal/http-api/models"
	"artgrid/internal/http-api/repository"
)

func newCommentService(t *testing.T) (CommentService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewCommentService(
		repository.NewCommentRepository(db),
		repository.NewArtworkRepository(db),
		repository.NewUserRepository(db),
		[]string{"spam", "inappropriate"},
	)
	return svc, db
}

func TestCreateComment_Success(t *testing.T) {
	svc, db := newCommentService(t)
	artist := createTestUser(t, db, "a@my.uopeople.edu", "S1", models.RoleStudent, models.VerificationVerified)
	viewer := createTestUser(t, db, "b@my.uopeople.edu", "S2", models.RoleStudent, models.VerificationVerified)
	artwork := createTestArtwork(t, db, artist.ID, models.StatusApproved)

	comment, err := svc.Create(viewer.ID, artwork.ID, "lovely use of color")
	require.NoError(t, err)
	assert.False(t, comment.IsFlagged)
	assert.Equal(t, viewer.FullName, comment.User.FullName)
}

func TestCreateComment_FlagsBlockedKeywords(t *testing.T) {
	svc, db := newCommentService(t)
	artist := createTestUser(t, db, "a@my.uopeople.edu", "S1", models.RoleStudent, models.VerificationVerified)
	viewer := createTestUser(t, db, "b@my.uopeople.edu", "S2", models.RoleStudent, models.VerificationVerified)
	artwork := createTestArtwork(t, db, artist.ID, models.StatusApproved)

	// Case-insensitive substring match; the comment is stored, not rejected.
	comment, err := svc.Create(viewer.ID, artwork.ID, "this is pure SPAM honestly")
	require.NoError(t, err)
	assert.True(t, comment.IsFlagged)

	var stored models.Comment
	require.NoError(t, db.First(&stored, comment.ID).Error)
	assert.True(t, stored.IsFlagged)
}

func TestListComments_ExcludesFlagged(t *testing.T) {
	svc, db := newCommentService(t)
	artist := createTestUser(t, db, "a@my.uopeople.edu", "S1", models.RoleStudent, models.VerificationVerified)
	viewer := createTestUser(t, db, "b@my.uopeople.edu", "S2", models.RoleStudent, models.VerificationVerified)
	artwork := createTestArtwork(t, db, artist.ID, models.StatusApproved)

	visible, err := svc.Create(viewer.ID, artwork.ID, "wonderful piece")
	require.NoError(t, err)
	_, err = svc.Create(viewer.ID, artwork.ID, "inappropriate nonsense")
	require.NoError(t, err)

	comments, err := svc.ListByArtwork(artwork.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, visible.ID, comments[0].ID)

	// Both rows still exist in the table.
	var total int64
	require.NoError(t, db.Model(&models.Comment{}).Where("artwork_id = ?", artwork.ID).Count(&total).Error)
	assert.Equal(t, int64(2), total)
}

func TestCreateComment_RequiresApprovedArtwork(t *testing.T) {
	svc, db := newCommentService(t)
	artist := createTestUser(t, db, "a@my.uopeople.edu", "S1", models.RoleStudent, models.VerificationVerified)
	viewer := createTestUser(t, db, "b@my.uopeople.edu", "S2", models.RoleStudent, models.VerificationVerified)
	pending := createTestArtwork(t, db, artist.ID, models.StatusPending)

	_, err := svc.Create(viewer.ID, pending.ID, "nice")
	assert.ErrorIs(t, err, ErrArtworkNotFound)

	_, err = svc.ListByArtwork(pending.ID)
	assert.ErrorIs(t, err, ErrArtworkNotFound)
}
