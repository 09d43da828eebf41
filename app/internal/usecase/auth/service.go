package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domuser "example.com/naturemart/app/internal/domain/user"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

type Claims struct {
	UserID string
	Email  string
	Name   string
}

type TokenService interface {
	GenerateToken(u *domuser.User) (string, error)
	ParseToken(token string) (*Claims, error)
}

// Service implements the storefront's mock sign-up and login. Accounts are
// kept by the user repository for the life of the process only.
type Service struct {
	userRepo domuser.Repository
	hasher   PasswordHasher
	tokens   TokenService
}

func NewService(
	userRepo domuser.Repository,
	hasher PasswordHasher,
	tokens TokenService,
) *Service {
	return &Service{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type SignUpInput struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
}

type LoginResult struct {
	Token string
	User  *domuser.User
}

func (s *Service) SignUp(ctx context.Context, in SignUpInput) (*LoginResult, error) {
	name := strings.TrimSpace(in.FullName)
	email := domuser.NormalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, domuser.ErrInvalidCredential
	}
	if in.Password != in.ConfirmPassword {
		return nil, domuser.ErrPasswordMismatch
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domuser.ErrEmailAlreadyUsed
	} else if !errors.Is(err, domuser.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.userRepo.Create(ctx, &domuser.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(u)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: u}, nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	email := domuser.NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, domuser.ErrInvalidCredential
	}

	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, domuser.ErrUnauthorized
	}

	if err := s.hasher.Compare(u.PasswordHash, in.Password); err != nil {
		return nil, domuser.ErrUnauthorized
	}

	token, err := s.tokens.GenerateToken(u)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: token,
		User:  u,
	}, nil
}

func (s *Service) Me(ctx context.Context, userID string) (*domuser.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
