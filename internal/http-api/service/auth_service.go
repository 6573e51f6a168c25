package service

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"artgrid/internal/config"
	"artgrid/internal/http-api/models"
	"artgrid/internal/http-api/repository"
	"artgrid/internal/mailer"
	"artgrid/internal/middleware/auth"
)

var (
	ErrInvalidEmail       = errors.New("must use UoPeople email (@my.uopeople.edu)")
	ErrEmailInUse         = errors.New("email already registered")
	ErrStudentIDInUse     = errors.New("student ID already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// institutionalEmail gates registration to the student domain.
var institutionalEmail = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@my\.uopeople\.edu$`)

// Claims is the JWT payload carried by every bearer token.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// RegisterInput carries the validated registration payload.
type RegisterInput struct {
	FullName    string
	Email       string
	Password    string
	DOB         string
	StudentID   string
	YearOfStudy string
}

type AuthService interface {
	Register(input RegisterInput) (*models.User, error)
	Login(email, password string) (token string, user *models.User, err error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	userRepo  repository.UserRepository
	mail      mailer.Mailer
	log       *slog.Logger
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(userRepo repository.UserRepository, mail mailer.Mailer, log *slog.Logger, cfg *config.Config) AuthService {
	return &authService{
		userRepo:  userRepo,
		mail:      mail,
		log:       log,
		jwtSecret: cfg.JWTSecret,
		jwtExpiry: cfg.JWTExpiry, // 7 days
	}
}

// Register creates a new account. The duplicate checks here are an
// optimization; the unique indexes on email and student_id are what
// actually guarantee uniqueness under concurrent registrations.
func (s *authService) Register(input RegisterInput) (*models.User, error) {
	if !institutionalEmail.MatchString(input.Email) {
		return nil, ErrInvalidEmail
	}
	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, ErrEmailInUse
	}
	if _, err := s.userRepo.FindByStudentID(input.StudentID); err == nil {
		return nil, ErrStudentIDInUse
	}

	hashedPassword, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName:           input.FullName,
		Email:              input.Email,
		Password:           hashedPassword,
		DOBHash:            auth.HashDOB(input.DOB),
		StudentID:          input.StudentID,
		YearOfStudy:        input.YearOfStudy,
		Role:               models.RoleStudent,
		VerificationStatus: models.VerificationVerified,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	mailer.SendAsync(s.mail, s.log, user.Email, "Welcome to ARTGRID - UoPeople Art Community",
		fmt.Sprintf("Hello %s,\n\nWelcome to ARTGRID! Your account has been created successfully.\n\nStart showcasing your artwork today!\n\nBest regards,\nARTGRID Team", user.FullName))

	return user, nil
}

// Login authenticates a user and issues a bearer token valid for the
// configured window.
func (s *authService) Login(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		// Dummy compare so a miss takes as long as a mismatch.
		auth.VerifyPassword("$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e", password)
		return "", nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
