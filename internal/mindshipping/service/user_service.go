package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/laxmibeekeeping/multiservice-backend/internal/mindshipping/domain"
)

// UserStore is the persistence dependency, narrowed for testing.
type UserStore interface {
	CreateUser(ctx context.Context, u *domain.User) error
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

type UserService struct {
	store UserStore
}

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

// Signup creates a new inactive, unverified user with an argon2id password
// hash and a unique username derived from the email local part.
func (s *UserService) Signup(ctx context.Context, fullName, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	exists, err := s.store.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}

	username, err := s.generateUniqueUsername(ctx, email, 10)
	if err != nil {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		UID:          uuid.New(),
		FullName:     strings.TrimSpace(fullName),
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.store.EmailExists(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *UserService) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.store.UsernameExists(ctx, strings.ToLower(strings.TrimSpace(username)))
}
