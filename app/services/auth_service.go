package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/models"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/repositories"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/auth"
)

// AuthService implements registration, login and profile lookup.
type AuthService struct {
	users  repositories.UserRepository
	tokens *auth.TokenService
}

func NewAuthService(users repositories.UserRepository, tokens *auth.TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new user with the default role. The name must be free;
// a taken name yields ErrUserExists. There is no lookup-and-insert
// atomicity: two concurrent registrations of the same name can both pass
// the check.
func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	existing, err := s.users.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUserExists
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleUser,
	}
	return s.users.Create(ctx, &user)
}

// Login verifies credentials and issues a token. Empty name or password is
// one uniform ErrEmptyCredentials regardless of which field is missing.
// Unknown name and wrong password stay distinguishable at this layer.
func (s *AuthService) Login(ctx context.Context, name, password string) (string, error) {
	if name == "" || password == "" {
		return "", ErrEmptyCredentials
	}

	user, err := s.users.FindByName(ctx, name)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Generate(user.ID.Hex(), user.Name, user.Role)
}

// Profile returns the user a verified token's subject id points at.
func (s *AuthService) Profile(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user, err := s.users.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ListUsers returns every user record.
func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.All(ctx)
}
