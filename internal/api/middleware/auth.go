package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vikramsomai/portfolio-skills-manager/internal/apperror"
	"github.com/vikramsomai/portfolio-skills-manager/internal/auth"
	"github.com/vikramsomai/portfolio-skills-manager/internal/models"
	"github.com/vikramsomai/portfolio-skills-manager/internal/repositories"
	"github.com/vikramsomai/portfolio-skills-manager/internal/utils"
)

type contextKey string

const userContextKey contextKey = "user"

// AccessControl resolves bearer tokens to live user records and gates
// requests by authentication and role.
type AccessControl struct {
	tokens *auth.TokenService
	users  repositories.UserRepository
}

func NewAccessControl(tokens *auth.TokenService, users repositories.UserRepository) *AccessControl {
	return &AccessControl{tokens: tokens, users: users}
}

// Authenticate extracts and verifies the bearer token, then re-checks the
// user's liveness against the store. Token validity alone is not enough: a
// deactivated or deleted user fails here even with a well-signed token.
func (ac *AccessControl) Authenticate(r *http.Request) (*models.User, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, apperror.NewUnauthenticated("Access denied. No token provided.")
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, apperror.NewUnauthenticated("Authorization header format must be Bearer {token}")
	}

	userID, err := ac.tokens.Verify(parts[1])
	if err != nil {
		return nil, apperror.NewUnauthenticated("Invalid token.")
	}

	user, err := ac.users.FindByID(r.Context(), userID)
	if err != nil || !user.IsActive {
		return nil, apperror.NewUnauthenticated("Invalid token or user not found.")
	}

	// The resolved identity never carries the hash downstream.
	user.Password = ""
	return user, nil
}

// AuthorizeAdmin runs Authenticate and then checks the role. Authentication
// failures propagate unchanged; an authenticated non-admin is Forbidden.
func (ac *AccessControl) AuthorizeAdmin(r *http.Request) (*models.User, error) {
	user, err := ac.Authenticate(r)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, apperror.NewForbidden("Access denied. Admin privileges required.")
	}
	return user, nil
}

// RequireAuth rejects unauthenticated requests and attaches the resolved user
// to the request context.
func (ac *AccessControl) RequireAuth(next http.Handler) http.Handler {
	return ac.require(next, ac.Authenticate)
}

// RequireAdmin additionally requires the admin role.
func (ac *AccessControl) RequireAdmin(next http.Handler) http.Handler {
	return ac.require(next, ac.AuthorizeAdmin)
}

func (ac *AccessControl) require(next http.Handler, check func(*http.Request) (*models.User, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		user, err := check(r)
		if err != nil {
			utils.WriteError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the identity attached by RequireAuth/RequireAdmin.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok
}

var errNoUser = errors.New("no user in context")

// MustUserFromContext is for handlers mounted behind the middleware, where a
// missing identity is a programming error.
func MustUserFromContext(ctx context.Context) (*models.User, error) {
	user, ok := UserFromContext(ctx)
	if !ok {
		return nil, apperror.NewInternal("Something went wrong!", errNoUser)
	}
	return user, nil
}
