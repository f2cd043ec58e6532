package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", time.Hour)
	userID := uuid.New()

	token, err := svc.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	gotID, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, userID, gotID)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("secret", -1*time.Second)
	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenService("right-secret", time.Hour)
	verifier := NewTokenService("wrong-secret", time.Hour)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("k", time.Hour)

	for _, token := range []string{"", "not.a.jwt", "garbage"} {
		_, err := svc.Verify(token)
		require.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestVerify_FailuresIndistinguishable(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("secret", time.Hour)
	expired := NewTokenService("secret", -time.Minute)
	otherKey := NewTokenService("other", time.Hour)

	expiredToken, err := expired.Issue(uuid.New())
	require.NoError(t, err)
	forgedToken, err := otherKey.Issue(uuid.New())
	require.NoError(t, err)

	// Malformed, expired, and badly-signed tokens all yield the same error.
	for _, token := range []string{"mangled", expiredToken, forgedToken} {
		_, err := svc.Verify(token)
		require.Equal(t, ErrInvalidToken, err)
	}
}
