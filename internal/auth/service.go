package auth

import (
	"errors"
	"net/http"

	"github.com/Pateriya27/Paisa-Ai/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInternalError      = errors.New("internal Server Error")
	ErrUserNotFound       = errors.New("user not found")
)

type Service interface {
	Login(email, password string) (*user.User, string, error)
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
	RequireAdmin() func(http.Handler) http.Handler
}

type service struct {
	userService user.Service
	jwtManager  JWTManagerInterface
}

func NewAuthService(userService user.Service, jwtManager JWTManagerInterface) Service {
	return &service{
		userService: userService,
		jwtManager:  jwtManager,
	}
}

func (s *service) Login(email, password string) (*user.User, string, error) {
	existingUser, err := s.userService.Authenticate(email, password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", ErrInternalError
	}

	accessToken, err := s.jwtManager.GenerateAccessJWT(existingUser.ID, existingUser.Email, existingUser.Role, defaultJWTDuration)
	if err != nil {
		return nil, "", ErrInternalError
	}

	return existingUser, accessToken, nil
}
