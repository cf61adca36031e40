package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckUserAllFieldsMissing(t *testing.T) {
	msgs := Check("user", map[string]string{})

	assert.Equal(t, []string{
		`Please provide a value for "first name"`,
		`Please provide a value for "last name"`,
		`Please provide a value for "email address"`,
		`Please provide a value for "password"`,
	}, msgs)
}

func TestCheckUserValid(t *testing.T) {
	msgs := Check("user", map[string]string{
		"firstName":    "Jane",
		"lastName":     "Doe",
		"emailAddress": "jane@example.com",
		"password":     "secret",
	})
	assert.Empty(t, msgs)
}

func TestCheckUserInvalidEmail(t *testing.T) {
	msgs := Check("user", map[string]string{
		"firstName":    "Jane",
		"lastName":     "Doe",
		"emailAddress": "not-an-email",
		"password":     "secret",
	})
	assert.Equal(t, []string{`Please provide a valid "email address"`}, msgs)
}

func TestCheckUserNamePattern(t *testing.T) {
	msgs := Check("user", map[string]string{
		"firstName":    "Jane3",
		"lastName":     "O Doe",
		"emailAddress": "jane@example.com",
		"password":     "secret",
	})
	assert.Equal(t, []string{
		`Please provide a valid "first name"`,
		`Please provide a valid "last name"`,
	}, msgs)
}

func TestCheckUserBlankIsMissing(t *testing.T) {
	msgs := Check("user", map[string]string{
		"firstName":    "   ",
		"lastName":     "Doe",
		"emailAddress": "jane@example.com",
		"password":     "secret",
	})
	// Blank fails Required only; the pattern rule does not double-report.
	assert.Equal(t, []string{`Please provide a value for "first name"`}, msgs)
}

func TestCheckCourse(t *testing.T) {
	msgs := Check("course", map[string]string{"title": "SQL"})
	assert.Equal(t, []string{`Please provide a value for "description"`}, msgs)

	assert.Empty(t, Check("course", map[string]string{
		"title":       "SQL",
		"description": "Intro",
	}))
}

func TestCheckUnknownKind(t *testing.T) {
	assert.Empty(t, Check("widget", map[string]string{}))
}
