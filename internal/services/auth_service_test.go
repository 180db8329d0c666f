package services_test

import (
	"testing"
	"time"

	"ecsite/internal/models"
	"ecsite/internal/repositories"
	"ecsite/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id int64) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(id int64, at time.Time) error {
	args := m.Called(id, at)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteWithIDAbove(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestAuthService_Authenticate(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_session_secret")

	stored := &models.User{
		ID:       42,
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "hunter2",
	}

	// Valid credentials: the stored row comes back and last_login is stamped.
	mockRepo.On("GetByEmail", "alice@example.com").Return(stored, nil).Once()
	mockRepo.On("UpdateLastLogin", int64(42), mock.AnythingOfType("time.Time")).Return(nil).Once()

	user, err := authService.Authenticate("alice@example.com", "hunter2")
	assert.NoError(t, err)
	assert.Equal(t, stored, user)
	mockRepo.AssertExpectations(t)

	// Wrong password: unauthorized, no last_login update.
	mockRepo.On("GetByEmail", "alice@example.com").Return(stored, nil).Once()
	user, err = authService.Authenticate("alice@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrUnauthorized)
	assert.Nil(t, user)
	mockRepo.AssertExpectations(t)

	// Unknown email: unauthorized.
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, repositories.ErrNotFound).Once()
	user, err = authService.Authenticate("nobody@example.com", "hunter2")
	assert.ErrorIs(t, err, services.ErrUnauthorized)
	assert.Nil(t, user)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_SessionRoundTrip(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_session_secret")

	stored := &models.User{ID: 42, Name: "alice", Email: "alice@example.com"}

	token, err := authService.IssueSession(stored)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Resolving the session re-fetches the full user row.
	mockRepo.On("GetByID", int64(42)).Return(stored, nil).Once()
	user, err := authService.ResolveSession(token)
	assert.NoError(t, err)
	assert.Equal(t, stored, user)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ResolveSessionRejectsBadTokens(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_session_secret")

	// Garbage token.
	_, err := authService.ResolveSession("not.a.token")
	assert.ErrorIs(t, err, services.ErrUnauthorized)

	// Token signed with a different secret.
	other := services.NewAuthService(mockRepo, "another_secret")
	token, err := other.IssueSession(&models.User{ID: 1, Name: "bob"})
	assert.NoError(t, err)
	_, err = authService.ResolveSession(token)
	assert.ErrorIs(t, err, services.ErrUnauthorized)

	// Valid token whose user row was deleted.
	token, err = authService.IssueSession(&models.User{ID: 7, Name: "gone"})
	assert.NoError(t, err)
	mockRepo.On("GetByID", int64(7)).Return(nil, repositories.ErrNotFound).Once()
	_, err = authService.ResolveSession(token)
	assert.ErrorIs(t, err, services.ErrUnauthorized)
	mockRepo.AssertExpectations(t)
}
