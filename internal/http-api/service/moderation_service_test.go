package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"artgrid/internal/http-api/models"
	"artgrid/internal/http-api/repository"
)

func newModerationService(t *testing.T) (ModerationService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	artworkRepo := repository.NewArtworkRepository(db)
	moderationRepo := repository.NewModerationRepository(db)
	svc := NewModerationService(artworkRepo, moderationRepo, &fakeMailer{}, testLogger())
	return svc, db
}

func TestApprove_SetsStatusDateAndAuditRecord(t *testing.T) {
	svc, db := newModerationService(t)
	artist := createTestUser(t, db, "a@my.uopeople.edu", "S1", models.RoleStudent, models.VerificationPending)
	moderator := createTestUser(t, db, "m@my.uopeople.edu", "M1", models.RoleModerator, models.VerificationVerified)
	artwork := createTestArtwork(t, db, artist.ID, models.StatusPending)

	require.NoError(t, svc.Approve(moderator.ID, artwork.ID))

	var updated models.Artwork
	require.NoError(t, db.First(&updated, artwork.ID).Error)
	assert.Equal(t, models.StatusApproved, updated.Status)
	require.NotNil(t, updated.ApprovalDate)

	var records []models.Moderation
	require.NoError(t, db.Where("artwork_id = ?", artwork.ID).Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, models.ActionApproved, records[0].Action)
	assert.Equal(t, moderator.ID, records[0].ModeratorID)
}

func TestApprove_OnlyFromPending(t *testing.T) {
	svc, db := newModerationService(t)
	artist := createTestUser(t, db, "a@my.uopeople.edu", "S1", models.RoleStudent, models.VerificationPending)
	moderator := createTestUser(t, db, "m@my.uopeople.edu", "M1", models.RoleModerator, models.VerificationVerified)
	artwork := createTestArtwork(t, db, artist.ID, models.StatusPending)

	require.NoError(t, svc.Approve(moderator.ID, artwork.ID))

	// Neither a second approve nor a late reject is legal.
	assert.ErrorIs(t, svc.Approve(moderator.ID, artwork.ID), ErrNotPending)
	assert.ErrorIs(t, svc.Reject(moderator.ID, artwork.ID, "too late"), ErrNotPending)

	// The audit trail still holds exactly one entry.
	var count int64
	require.NoError(t, db.Model(&models.Moderation{}).Where("artwork_id = ?", artwork.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestReject_StoresFeedbackOnAuditRecord(t *testing.T) {
	svc, db := newModerationService(t)
	artist := createTestUser(t, db, "a@my.uopeople.edu", "S1", models.RoleStudent, models.VerificationPending)
	moderator := createTestUser(t, db, "m@my.uopeople.edu", "M1", models.RoleModerator, models.VerificationVerified)
	artwork := createTestArtwork(t, db, artist.ID, models.StatusPending)

	require.NoError(t, svc.Reject(moderator.ID, artwork.ID, "needs better lighting"))

	var updated models.Artwork
	require.NoError(t, db.First(&updated, artwork.ID).Error)
	assert.Equal(t, models.StatusRejected, updated.Status)
	assert.Nil(t, updated.ApprovalDate)

	var record models.Moderation
	require.NoError(t, db.Where("artwork_id = ?", artwork.ID).First(&record).Error)
	assert.Equal(t, models.ActionRejected, record.Action)
	assert.Equal(t, "needs better lighting", record.Feedback)

	assert.ErrorIs(t, svc.Approve(moderator.ID, artwork.ID), ErrNotPending)
}

func TestApprove_MissingArtwork(t *testing.T) {
	svc, db := newModerationService(t)
	moderator := createTestUser(t, db, "m@my.uopeople.edu", "M1", models.RoleModerator, models.VerificationVerified)

	assert.ErrorIs(t, svc.Approve(moderator.ID, 404), ErrArtworkNotFound)
}

func TestToggleFeature_OnlyOnApproved(t *testing.T) {
	svc, db := newModerationService(t)
	artist := createTestUser(t, db, "a@my.uopeople.edu", "S1", models.RoleStudent, models.VerificationVerified)
	approved := createTestArtwork(t, db, artist.ID, models.StatusApproved)
	pending := createTestArtwork(t, db, artist.ID, models.StatusPending)

	featured, err := svc.ToggleFeature(approved.ID)
	require.NoError(t, err)
	assert.True(t, featured)

	featured, err = svc.ToggleFeature(approved.ID)
	require.NoError(t, err)
	assert.False(t, featured)

	_, err = svc.ToggleFeature(pending.ID)
	assert.ErrorIs(t, err, ErrNotApproved)
}

func TestQueue_OldestFirst(t *testing.T) {
	svc, db := newModerationService(t)
	artist := createTestUser(t, db, "a@my.uopeople.edu", "S1", models.RoleStudent, models.VerificationPending)

	first := createTestArtwork(t, db, artist.ID, models.StatusPending)
	second := createTestArtwork(t, db, artist.ID, models.StatusPending)
	createTestArtwork(t, db, artist.ID, models.StatusApproved)

	// Pin the ordering; back-to-back inserts can share a timestamp.
	require.NoError(t, db.Model(first).UpdateColumn("submission_date", time.Now().Add(-time.Hour)).Error)

	queue, total, err := svc.Queue(1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, queue, 2)
	assert.Equal(t, first.ID, queue[0].ID)
	assert.Equal(t, second.ID, queue[1].ID)
	assert.Equal(t, artist.Email, queue[0].Artist.Email)
}
