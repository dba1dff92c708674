package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInput(t *testing.T) {
	t.Run("valid credentials pass", func(t *testing.T) {
		err := checkInput(Credentials{Email: "a@b.com", Password: "x"})
		assert.NoError(t, err)
	})

	t.Run("missing fields are reported per field", func(t *testing.T) {
		err := checkInput(Credentials{})
		require.Error(t, err)

		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, "This field is required.", valErr.Fields["email"])
		assert.Equal(t, "This field is required.", valErr.Fields["password"])
	})

	t.Run("bad email address", func(t *testing.T) {
		err := checkInput(Credentials{Email: "not-an-email", Password: "x"})
		require.Error(t, err)

		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, "Enter a valid email address.", valErr.Fields["email"])
	})

	t.Run("password mismatch on registration", func(t *testing.T) {
		err := checkInput(RegisterInput{
			Email:           "a@b.com",
			Password:        "password1",
			PasswordConfirm: "password2",
			FirstName:       "A",
			LastName:        "B",
			Role:            RoleStudent,
		})
		require.Error(t, err)

		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, "Passwords do not match.", valErr.Fields["password_confirm"])
	})

	t.Run("short password", func(t *testing.T) {
		err := checkInput(RegisterInput{
			Email:           "a@b.com",
			Password:        "short",
			PasswordConfirm: "short",
			FirstName:       "A",
			LastName:        "B",
			Role:            RoleStudent,
		})
		require.Error(t, err)

		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, "Ensure this field has at least 8 characters.", valErr.Fields["password"])
	})

	t.Run("unknown role", func(t *testing.T) {
		err := checkInput(RegisterInput{
			Email:           "a@b.com",
			Password:        "password1",
			PasswordConfirm: "password1",
			FirstName:       "A",
			LastName:        "B",
			Role:            "SUPERUSER",
		})
		require.Error(t, err)

		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, "Must be one of: STUDENT, INSTRUCTOR, ADMIN.", valErr.Fields["role"])
	})
}

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "email", snakeCase("Email"))
	assert.Equal(t, "first_name", snakeCase("FirstName"))
	assert.Equal(t, "new_password_confirm", snakeCase("NewPasswordConfirm"))
}
