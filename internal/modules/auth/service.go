package auth

import (
	"context"
	"errors"
	"strings"

	"gearshare/internal/domain"
	"gearshare/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Service contains the account logic: signup, login and the user directory.
type Service struct {
	store repository.Store
	jwt   jwtService
	log   *zap.Logger
}

func NewService(store repository.Store, jwt jwtService, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, jwt: jwt, log: log}
}

// Signup creates an account and signs the caller in.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.store.Users().ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, repository.DomainError("check user", err, nil)
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:           username,
		Email:              email,
		PasswordHash:       hashedPassword,
		Role:               domain.DefaultRole,
		Location:           req.Location,
		VerificationStatus: true,
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, repository.DomainError("create user", err, nil)
	}

	s.log.Info("user registered", zap.String("username", user.Username))
	return s.issue(user)
}

// Login checks the password against the stored bcrypt hash.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.store.Users().GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, repository.DomainError("load user", err, nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(user)
}

func (s *Service) GetUser(ctx context.Context, username string) (*UserPublic, error) {
	user, err := s.store.Users().GetByUsername(ctx, username)
	if err != nil {
		return nil, repository.DomainError("load user", err, ErrUserNotFound)
	}
	pub := toPublic(user)
	return &pub, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]UserPublic, error) {
	users, err := s.store.Users().List(ctx)
	if err != nil {
		return nil, repository.DomainError("list users", err, nil)
	}
	out := make([]UserPublic, 0, len(users))
	for i := range users {
		out = append(out, toPublic(&users[i]))
	}
	return out, nil
}

func (s *Service) CountUsers(ctx context.Context) (int64, error) {
	n, err := s.store.Users().Count(ctx)
	if err != nil {
		return 0, repository.DomainError("count users", err, nil)
	}
	return n, nil
}

func (s *Service) issue(user *domain.User) (*AuthResponse, error) {
	token, err := s.jwt.GenerateToken(user.Username, user.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toPublic(user),
	}, nil
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}
