package auth

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/quickkart/backend/logger"
	"github.com/quickkart/backend/models"
	"github.com/quickkart/backend/store"
)

const tokenLifetime = 24 * time.Hour

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	logger logger.Logger
	users  *store.Memory[models.User]
	secret []byte
}

func New(log logger.Logger, users *store.Memory[models.User], secret string) *Service {
	return &Service{
		logger: log,
		users:  users,
		secret: []byte(secret),
	}
}

func (s *Service) Register(email, password, fullName string) (models.User, error) {
	if _, err := s.users.Get(email); err == nil {
		return models.User{}, ErrUserExists
	}

	user := models.User{
		ID:        deriveUserID(email),
		Email:     email,
		Password:  hashPassword(password),
		FullName:  fullName,
		CreatedAt: time.Now().Format(time.RFC3339),
	}

	if err := s.users.Set(email, user); err != nil {
		return models.User{}, fmt.Errorf("failed to store user: %w", err)
	}
	s.logger.Info("registered user", "email", email)

	return user, nil
}

// Login verifies credentials and attaches a signed token to the user.
func (s *Service) Login(email, password string) (models.User, error) {
	user, err := s.users.Get(email)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	if hashPassword(password) != user.Password {
		return models.User{}, ErrInvalidCredentials
	}

	token, err := s.mintToken(email)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to mint token: %w", err)
	}

	user.Token = token
	if err := s.users.Set(email, user); err != nil {
		return models.User{}, fmt.Errorf("failed to store user: %w", err)
	}

	return user, nil
}

func (s *Service) Get(email string) (models.User, error) {
	user, err := s.users.Get(email)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}

// Update applies the non-empty fields. The password is never updatable
// through this path.
func (s *Service) Update(email string, updates models.User) (models.User, error) {
	user, err := s.users.Get(email)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	if updates.FullName != "" {
		user.FullName = updates.FullName
	}
	if updates.Phone != "" {
		user.Phone = updates.Phone
	}
	if updates.Address != "" {
		user.Address = updates.Address
	}
	if updates.City != "" {
		user.City = updates.City
	}
	if updates.Country != "" {
		user.Country = updates.Country
	}

	if err := s.users.Set(email, user); err != nil {
		return models.User{}, fmt.Errorf("failed to store user: %w", err)
	}

	return user, nil
}

func (s *Service) mintToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": email,
		"iat": now.Unix(),
		"exp": now.Add(tokenLifetime).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func hashPassword(password string) string {
	digest := sha256.Sum256([]byte(password))

	return hex.EncodeToString(digest[:])
}

func deriveUserID(email string) string {
	digest := md5.Sum([]byte(email))

	return hex.EncodeToString(digest[:])[:12]
}
