package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"artgrid/internal/config"
	"artgrid/internal/http-api/models"
	"artgrid/internal/middleware/auth"
)

// setupTestDB opens an isolated in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see a different in-memory DB.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Artwork{},
		&models.Like{},
		&models.Comment{},
		&models.Moderation{},
	))

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret-test-secret-test-secret!",
		JWTExpiry: 7 * 24 * time.Hour,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeMailer records sends; safe for the async delivery goroutines.
type fakeMailer struct {
	mu   sync.Mutex
	sent []string
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to+": "+subject)
	return nil
}

// fakeUploader returns a deterministic URL without touching the network.
type fakeUploader struct {
	fail bool
}

func (u *fakeUploader) Upload(ctx context.Context, body io.Reader, filename, contentType string) (string, error) {
	if u.fail {
		return "", fmt.Errorf("upstream unavailable")
	}
	return "https://cdn.example.test/artworks/" + filename, nil
}

func createTestUser(t *testing.T, db *gorm.DB, email, studentID, role, verification string) *models.User {
	t.Helper()

	hashed, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{
		FullName:           "Test User",
		Email:              email,
		Password:           hashed,
		DOBHash:            auth.HashDOB("2000-01-01"),
		StudentID:          studentID,
		YearOfStudy:        "Year 2",
		Role:               role,
		VerificationStatus: verification,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestArtwork(t *testing.T, db *gorm.DB, userID, status string) *models.Artwork {
	t.Helper()

	artwork := &models.Artwork{
		UserID:   userID,
		Title:    "Test Artwork",
		Medium:   "Watercolor",
		Category: "Painting",
		FileURL:  "https://cdn.example.test/artworks/test.png",
		Status:   status,
	}
	require.NoError(t, db.Create(artwork).Error)
	return artwork
}
