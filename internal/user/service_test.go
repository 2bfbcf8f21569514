package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockRepository struct {
	users []User
}

func (m *mockRepository) createUser(newUser *User) error {
	newUser.ID = "user-1"
	m.users = append(m.users, *newUser)
	return nil
}

func (m *mockRepository) getUserByEmail(email string) (*User, error) {
	for _, existing := range m.users {
		if existing.Email == email {
			found := existing
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) getUserByID(id string) (*User, error) {
	for _, existing := range m.users {
		if existing.ID == id {
			found := existing
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

func TestRegister_Success(t *testing.T) {
	service := NewUserService(&mockRepository{})

	registered, err := service.Register("Alice", "alice@example.com", "correct horse battery")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", registered.ID)
	assert.Equal(t, RoleUser, registered.Role)
	assert.NotEqual(t, "correct horse battery", registered.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	service := NewUserService(&mockRepository{})

	_, err := service.Register("Alice", "alice@example.com", "correct horse battery")
	assert.NoError(t, err)

	_, err = service.Register("Another Alice", "alice@example.com", "different password")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestRegister_Validation(t *testing.T) {
	service := NewUserService(&mockRepository{})

	_, err := service.Register("Alice", "not-an-email", "correct horse battery")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = service.Register("", "alice@example.com", "correct horse battery")
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = service.Register("Alice", "alice@example.com", "short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestAuthenticate(t *testing.T) {
	service := NewUserService(&mockRepository{})

	_, err := service.Register("Alice", "alice@example.com", "correct horse battery")
	assert.NoError(t, err)

	authenticated, err := service.Authenticate("alice@example.com", "correct horse battery")
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", authenticated.Email)

	_, err = service.Authenticate("alice@example.com", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Authenticate("nobody@example.com", "correct horse battery")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
