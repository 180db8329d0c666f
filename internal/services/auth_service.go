package services

import (
	"errors"
	"fmt"
	"time"

	"ecsite/internal/models"
	"ecsite/internal/repositories"

	"github.com/dgrijalva/jwt-go"
)

// AuthService validates credentials and manages signed session tokens.
type AuthService struct {
	userRepo      repositories.UserRepository
	sessionSecret []byte
	tokenDurat    time.Duration
}

// NewAuthService creates a new AuthService signing sessions with the given
// secret.
func NewAuthService(userRepo repositories.UserRepository, sessionSecret string) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		sessionSecret: []byte(sessionSecret),
		tokenDurat:    24 * time.Hour,
	}
}

// Authenticate looks the user up by exact email match and compares the
// stored password with the supplied one as-is. On success it stamps
// last_login and returns the user row; otherwise ErrUnauthorized.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.Password != password {
		return nil, ErrUnauthorized
	}

	if err := s.userRepo.UpdateLastLogin(user.ID, models.StorageNow()); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}
	return user, nil
}

// IssueSession generates the signed token stored in the session cookie.
func (s *AuthService) IssueSession(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   user.ID,
		"user_name": user.Name,
		"exp":       time.Now().Add(s.tokenDurat).Unix(),
		"iat":       time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.sessionSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return tokenString, nil
}

// ResolveSession validates a session token and re-fetches the full user row
// it refers to. Any validation or lookup miss yields ErrUnauthorized.
func (s *AuthService) ResolveSession(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.sessionSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrUnauthorized
	}
	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(int64(rawID))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	return user, nil
}
