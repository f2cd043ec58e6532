package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vikramsomai/portfolio-skills-manager/internal/apperror"
)

func fieldErrors(t *testing.T, err error) []apperror.FieldError {
	t.Helper()
	appErr, ok := apperror.FromError(err)
	require.True(t, ok, "expected an apperror, got %v", err)
	require.Equal(t, apperror.Validation, appErr.Kind)
	return appErr.Fields
}

func fieldNames(fields []apperror.FieldError) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field)
	}
	return names
}

func TestRegisterInput_Valid(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Struct(RegisterInput{Username: "alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)
}

func TestRegisterInput_CollectsAllViolations(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Struct(RegisterInput{Username: "ab", Email: "not-an-email", Password: ""})
	require.Error(t, err)

	fields := fieldErrors(t, err)
	assert.ElementsMatch(t, []string{"username", "email", "password"}, fieldNames(fields))
}

func TestSkillInput_EnumMembership(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Struct(SkillInput{Name: "Go", Level: "Expert", Category: "AI"})
	require.Error(t, err)

	fields := fieldErrors(t, err)
	assert.ElementsMatch(t, []string{"level", "category"}, fieldNames(fields))
	for _, f := range fields {
		assert.Contains(t, f.Message, "must be")
	}
}

func TestSkillInput_Bounds(t *testing.T) {
	t.Parallel()

	v := New()
	years := 51
	err := v.Struct(SkillInput{
		Name:              strings.Repeat("x", 51),
		Level:             "Beginner",
		Category:          "Backend",
		Description:       strings.Repeat("d", 201),
		YearsOfExperience: &years,
	})
	require.Error(t, err)

	fields := fieldErrors(t, err)
	assert.ElementsMatch(t, []string{"name", "description", "yearsOfExperience"}, fieldNames(fields))
}

func TestSkillInput_OptionalFieldsOmitted(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Struct(SkillInput{Name: "Go", Level: "Advanced", Category: "Backend"})
	require.NoError(t, err)
}

func TestNormalize_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	v := New()

	skill := SkillInput{Name: "  Go  ", Level: "Advanced", Category: "Backend", Description: " tuning "}
	skill.Normalize()
	assert.Equal(t, "Go", skill.Name)
	assert.Equal(t, "tuning", skill.Description)
	require.NoError(t, v.Struct(skill))

	// A whitespace-only name normalizes to empty and fails required.
	blank := SkillInput{Name: "   ", Level: "Advanced", Category: "Backend"}
	blank.Normalize()
	err := v.Struct(blank)
	require.Error(t, err)
	assert.ElementsMatch(t, []string{"name"}, fieldNames(fieldErrors(t, err)))

	// Padding does not count toward the message length bound.
	contact := ContactInput{Name: " Bob ", Email: " bob@example.com ", Message: "  12345   "}
	contact.Normalize()
	assert.Equal(t, "Bob", contact.Name)
	err = v.Struct(contact)
	require.Error(t, err)
	assert.ElementsMatch(t, []string{"message"}, fieldNames(fieldErrors(t, err)))

	// Passwords are left verbatim.
	reg := RegisterInput{Username: " alice ", Email: " alice@example.com ", Password: " secret "}
	reg.Normalize()
	assert.Equal(t, "alice", reg.Username)
	assert.Equal(t, " secret ", reg.Password)
	require.NoError(t, v.Struct(reg))
}

func TestContactInput_MessageLength(t *testing.T) {
	t.Parallel()

	v := New()

	err := v.Struct(ContactInput{Name: "Bob", Email: "bob@example.com", Message: "short"})
	require.Error(t, err)
	fields := fieldErrors(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "message", fields[0].Field)
	assert.Contains(t, fields[0].Message, "at least 10")

	err = v.Struct(ContactInput{Name: "Bob", Email: "bob@example.com", Message: "hello trip"})
	require.NoError(t, err)
}
