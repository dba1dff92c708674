package api

import (
	"context"
)

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput is the registration request body.
type RegisterInput struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	Role            Role   `json:"role" validate:"required,oneof=STUDENT INSTRUCTOR ADMIN"`
}

// ProfileInput carries the editable profile fields. Empty fields are omitted
// so the server treats the request as a partial update.
type ProfileInput struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
}

// ChangePasswordInput is the change-password request body.
type ChangePasswordInput struct {
	OldPassword        string `json:"old_password" validate:"required"`
	NewPassword        string `json:"new_password" validate:"required,min=8"`
	NewPasswordConfirm string `json:"new_password_confirm" validate:"required,eqfield=NewPassword"`
}

// Login authenticates with email and password, returning the user and a fresh
// token pair.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthPayload, error) {
	if err := checkInput(creds); err != nil {
		return nil, err
	}

	var payload AuthPayload
	if err := c.post(ctx, "/auth/login/", creds, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Register creates a new account and returns the newly issued user and tokens.
func (c *Client) Register(ctx context.Context, input RegisterInput) (*AuthPayload, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	var payload AuthPayload
	if err := c.post(ctx, "/auth/register/", input, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Logout invalidates the refresh token server-side.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	body := map[string]string{"refresh_token": refreshToken}
	return c.post(ctx, "/auth/logout/", body, nil)
}

// Me returns the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/auth/me/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies a partial profile update and returns the result.
func (c *Client) UpdateProfile(ctx context.Context, input ProfileInput) (*User, error) {
	var user User
	if err := c.patch(ctx, "/auth/profile/", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword rotates the account password.
func (c *Client) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	if err := checkInput(input); err != nil {
		return err
	}
	return c.post(ctx, "/auth/change-password/", input, nil)
}

// Refresh exchanges a refresh token for a new token pair. Invoked by callers
// on demand; the session core only stores whatever pair it is handed.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	body := map[string]string{"refresh": refreshToken}

	var pair TokenPair
	if err := c.post(ctx, "/auth/token/refresh/", body, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}
