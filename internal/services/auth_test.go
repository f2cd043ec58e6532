package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vikramsomai/portfolio-skills-manager/internal/apperror"
	"github.com/vikramsomai/portfolio-skills-manager/internal/auth"
	"github.com/vikramsomai/portfolio-skills-manager/internal/models"
	"github.com/vikramsomai/portfolio-skills-manager/internal/validation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// memoryUserRepo mimics the store's uniqueness arbitration in memory.
type memoryUserRepo struct {
	users []*models.User
}

func (m *memoryUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, u := range m.users {
		if u.Username == user.Username || u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	clone := *user
	m.users = append(m.users, &clone)
	return nil
}

func (m *memoryUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func newAuthService(repo *memoryUserRepo) *AuthService {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	return NewAuthService(repo, tokens, validation.New())
}

func TestRegisterThenLogin(t *testing.T) {
	t.Parallel()

	repo := &memoryUserRepo{}
	svc := newAuthService(repo)
	ctx := context.Background()

	registered, err := svc.Register(ctx, validation.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, registered.Token)
	assert.Equal(t, models.RoleUser, registered.User.Role)
	assert.Empty(t, registered.User.Password)

	loggedIn, err := svc.Login(ctx, validation.LoginInput{
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
	assert.Empty(t, loggedIn.User.Password)
}

func TestRegister_StoresHashNotPlaintext(t *testing.T) {
	t.Parallel()

	repo := &memoryUserRepo{}
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), validation.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	stored, err := repo.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret1")))
}

func TestRegister_TrimsUsernameAndEmail(t *testing.T) {
	t.Parallel()

	repo := &memoryUserRepo{}
	svc := newAuthService(repo)
	ctx := context.Background()

	registered, err := svc.Register(ctx, validation.RegisterInput{
		Username: "  alice  ",
		Email:    " alice@example.com ",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", registered.User.Username)
	assert.Equal(t, "alice@example.com", registered.User.Email)

	// Login trims the email the same way.
	_, err = svc.Login(ctx, validation.LoginInput{Email: " alice@example.com ", Password: "secret1"})
	assert.NoError(t, err)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	t.Parallel()

	repo := &memoryUserRepo{}
	svc := newAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, validation.RegisterInput{Username: "alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, validation.RegisterInput{Username: "alice", Email: "other@example.com", Password: "secret1"})
	assert.True(t, apperror.IsConflict(err), "got %v", err)
}

func TestRegister_ValidationCollectsFields(t *testing.T) {
	t.Parallel()

	svc := newAuthService(&memoryUserRepo{})

	_, err := svc.Register(context.Background(), validation.RegisterInput{Username: "x", Email: "bad", Password: "123"})
	require.Error(t, err)

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.Validation, appErr.Kind)
	assert.Len(t, appErr.Fields, 3)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	repo := &memoryUserRepo{}
	svc := newAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, validation.RegisterInput{Username: "alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, validation.LoginInput{Email: "alice@example.com", Password: "wrong"})
	assert.True(t, apperror.IsUnauthenticated(err), "got %v", err)
}

func TestLogin_UnknownAndInactiveLookAlike(t *testing.T) {
	t.Parallel()

	repo := &memoryUserRepo{}
	svc := newAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, validation.RegisterInput{Username: "alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)
	repo.users[0].IsActive = false

	_, inactiveErr := svc.Login(ctx, validation.LoginInput{Email: "alice@example.com", Password: "secret1"})
	_, unknownErr := svc.Login(ctx, validation.LoginInput{Email: "nobody@example.com", Password: "secret1"})

	require.Error(t, inactiveErr)
	require.Error(t, unknownErr)
	assert.Equal(t, inactiveErr.Error(), unknownErr.Error())
}
