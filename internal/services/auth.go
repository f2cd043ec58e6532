// Package services holds the resource services: field validation, uniqueness
// and ownership rules run here, before anything touches storage.
package services

import (
	"context"
	"errors"

	"github.com/vikramsomai/portfolio-skills-manager/internal/apperror"
	"github.com/vikramsomai/portfolio-skills-manager/internal/auth"
	"github.com/vikramsomai/portfolio-skills-manager/internal/models"
	"github.com/vikramsomai/portfolio-skills-manager/internal/repositories"
	"github.com/vikramsomai/portfolio-skills-manager/internal/validation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthResult is what a successful registration or login returns.
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type AuthService struct {
	users    repositories.UserRepository
	tokens   *auth.TokenService
	validate *validation.Validator
}

func NewAuthService(users repositories.UserRepository, tokens *auth.TokenService, validate *validation.Validator) *AuthService {
	return &AuthService{users: users, tokens: tokens, validate: validate}
}

// Register creates a user account and issues a token for it. New accounts
// always get the user role; admins exist only through seeding.
func (s *AuthService) Register(ctx context.Context, input validation.RegisterInput) (*AuthResult, error) {
	input.Normalize()
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	if err := s.checkAvailable(ctx, input.Username, input.Email); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewInternal("Error registering user", err)
	}

	user := &models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hash),
		Role:     models.RoleUser,
		IsActive: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// A concurrent registration with the same username or email loses
		// here: the unique index arbitrates.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflict("User with this email or username already exists")
		}
		return nil, apperror.NewInternal("Error registering user", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperror.NewInternal("Failed to create token", err)
	}
	return &AuthResult{Token: token, User: sanitize(user)}, nil
}

// Login authenticates by email and password. Unknown email, wrong password
// and deactivated account all produce the same failure.
func (s *AuthService) Login(ctx context.Context, input validation.LoginInput) (*AuthResult, error) {
	input.Normalize()
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewUnauthenticated("Invalid email or password")
		}
		return nil, apperror.NewInternal("Error logging in", err)
	}
	if !user.IsActive {
		return nil, apperror.NewUnauthenticated("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, apperror.NewUnauthenticated("Invalid email or password")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperror.NewInternal("Failed to create token", err)
	}
	return &AuthResult{Token: token, User: sanitize(user)}, nil
}

func (s *AuthService) checkAvailable(ctx context.Context, username, email string) error {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return apperror.NewConflict("User with this email or username already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NewInternal("Error registering user", err)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return apperror.NewConflict("User with this email or username already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NewInternal("Error registering user", err)
	}
	return nil
}

// sanitize clears the password hash so the user can be embedded in responses.
func sanitize(user *models.User) *models.User {
	clean := *user
	clean.Password = ""
	return &clean
}
