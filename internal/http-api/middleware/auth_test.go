package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"artgrid/internal/http-api/models"
	"artgrid/internal/http-api/service"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(input service.RegisterInput) (*models.User, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(email, password string) (string, *models.User, error) {
	args := m.Called(email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*models.User), args.Error(2)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByStudentID(studentID string) (*models.User, error) {
	args := m.Called(studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteCascade(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func authedRouter(authService service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(authService), func(c *gin.Context) {
		userID, _ := c.Get("userID")
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "role": role})
	})
	return router
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	mockAuthService := new(MockAuthService)
	router := authedRouter(mockAuthService)

	req, _ := http.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockAuthService.AssertNotCalled(t, "ValidateToken")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	mockAuthService := new(MockAuthService)
	router := authedRouter(mockAuthService)

	for _, header := range []string{"token-without-scheme", "Basic abc123", "Bearer"} {
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
	mockAuthService.AssertNotCalled(t, "ValidateToken")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	mockAuthService := new(MockAuthService)
	router := authedRouter(mockAuthService)

	mockAuthService.On("ValidateToken", "bad-token").
		Return(nil, service.ErrInvalidToken)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockAuthService.AssertExpectations(t)
}

func TestAuthMiddleware_ValidTokenSetsIdentity(t *testing.T) {
	mockAuthService := new(MockAuthService)
	router := authedRouter(mockAuthService)

	claims := &service.Claims{UserID: "user-123", Role: models.RoleStudent}
	mockAuthService.On("ValidateToken", "good-token").Return(claims, nil)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-123")
	mockAuthService.AssertExpectations(t)
}

func roleRouter(middleware gin.HandlerFunc, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/restricted", func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
		c.Next()
	}, middleware, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestRequireModerator_AllowsModeratorAndAdmin(t *testing.T) {
	for _, role := range []string{models.RoleModerator, models.RoleAdmin} {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", "user-123").Return(&models.User{ID: "user-123", Role: role}, nil)

		router := roleRouter(RequireModerator(mockRepo), "user-123")
		req, _ := http.NewRequest("GET", "/restricted", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "role %s", role)
		mockRepo.AssertExpectations(t)
	}
}

func TestRequireModerator_RejectsStudent(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", "user-123").Return(&models.User{ID: "user-123", Role: models.RoleStudent}, nil)

	router := roleRouter(RequireModerator(mockRepo), "user-123")
	req, _ := http.NewRequest("GET", "/restricted", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_RejectsModerator(t *testing.T) {
	// The role check reads the database, so a stale token cannot keep
	// elevated access after a demotion.
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", "user-123").Return(&models.User{ID: "user-123", Role: models.RoleModerator}, nil)

	router := roleRouter(RequireAdmin(mockRepo), "user-123")
	req, _ := http.NewRequest("GET", "/restricted", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_UnknownUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", "ghost").Return(nil, errors.New("record not found"))

	router := roleRouter(RequireAdmin(mockRepo), "ghost")
	req, _ := http.NewRequest("GET", "/restricted", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_NoAuthContext(t *testing.T) {
	mockRepo := new(MockUserRepository)

	router := roleRouter(RequireAdmin(mockRepo), "")
	req, _ := http.NewRequest("GET", "/restricted", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockRepo.AssertNotCalled(t, "FindByID")
}
