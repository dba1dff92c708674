package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillnest/skillnest/internal/api"
)

// LoginCmd authenticates and persists the session locally.
type LoginCmd struct {
	Email    string `arg:"" help:"Account email"`
	Password string `help:"Account password" env:"SKILLNEST_PASSWORD" required:""`
}

func (c *LoginCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/login"); err != nil {
		return err
	}

	payload, err := app.manager.Login(ctx, api.Credentials{Email: c.Email, Password: c.Password})
	if err != nil {
		return formatAuthErr(err)
	}

	fmt.Printf("Logged in as %s (%s)\n", payload.User.FullName(), payload.User.Role)
	return nil
}

// RegisterCmd creates an account and logs straight in.
type RegisterCmd struct {
	Email           string `arg:"" help:"Account email"`
	Password        string `help:"Account password" env:"SKILLNEST_PASSWORD" required:""`
	PasswordConfirm string `help:"Repeat the password" env:"SKILLNEST_PASSWORD_CONFIRM" required:""`
	FirstName       string `help:"First name" required:""`
	LastName        string `help:"Last name" required:""`
	Role            string `help:"Account role" enum:"STUDENT,INSTRUCTOR" default:"STUDENT"`
}

func (c *RegisterCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/register"); err != nil {
		return err
	}

	payload, err := app.manager.Register(ctx, api.RegisterInput{
		Email:           c.Email,
		Password:        c.Password,
		PasswordConfirm: c.PasswordConfirm,
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		Role:            api.Role(c.Role),
	})
	if err != nil {
		return formatAuthErr(err)
	}

	fmt.Printf("Welcome to SkillNest, %s! You are logged in as %s.\n",
		payload.User.FirstName, payload.User.Role)
	return nil
}

// LogoutCmd clears the local session; the server-side invalidation is
// best-effort.
type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	app.manager.Initialize()
	app.manager.Logout(ctx)

	fmt.Println("Logged out.")
	return nil
}

// WhoamiCmd shows the locally cached session, optionally refreshed from the
// server.
type WhoamiCmd struct {
	Remote bool `help:"Fetch the profile from the server instead of the local cache"`
	JSON   bool `name:"json" help:"Print the raw payload"`
}

func (c *WhoamiCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	app.manager.Initialize()
	current := app.manager.Current()
	if !current.Authenticated {
		fmt.Println("Not logged in.")
		return nil
	}

	user := current.User
	if c.Remote {
		user, err = app.client.Me(ctx)
		if err != nil {
			return err
		}
	}

	if c.JSON {
		return printJSON(user)
	}

	if user == nil {
		fmt.Println("Logged in, but no profile is cached. Try 'skillnest whoami --remote'.")
		return nil
	}

	fmt.Printf("Name:   %s\n", user.FullName())
	fmt.Printf("Email:  %s\n", user.Email)
	fmt.Printf("Role:   %s\n", user.Role)
	if user.Bio != "" {
		fmt.Printf("Bio:    %s\n", user.Bio)
	}
	return nil
}

// ProfileCmd manages the user profile.
type ProfileCmd struct {
	Update         ProfileUpdateCmd  `cmd:"" help:"Update profile fields"`
	ChangePassword ChangePasswordCmd `cmd:"" name:"change-password" help:"Change the account password"`
}

type ProfileUpdateCmd struct {
	FirstName string `help:"First name"`
	LastName  string `help:"Last name"`
	Bio       string `help:"Short bio"`
	Avatar    string `help:"Avatar URL"`
}

func (c *ProfileUpdateCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/profile"); err != nil {
		return err
	}

	user, err := app.client.UpdateProfile(ctx, api.ProfileInput{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Bio:       c.Bio,
		Avatar:    c.Avatar,
	})
	if err != nil {
		return err
	}

	app.manager.UpdateUser(user)

	fmt.Printf("Profile updated for %s.\n", user.FullName())
	return nil
}

type ChangePasswordCmd struct {
	OldPassword        string `help:"Current password" required:""`
	NewPassword        string `help:"New password" required:""`
	NewPasswordConfirm string `help:"Repeat the new password" required:""`
}

func (c *ChangePasswordCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/change-password"); err != nil {
		return err
	}

	err = app.client.ChangePassword(ctx, api.ChangePasswordInput{
		OldPassword:        c.OldPassword,
		NewPassword:        c.NewPassword,
		NewPasswordConfirm: c.NewPasswordConfirm,
	})
	if err != nil {
		return err
	}

	fmt.Println("Password changed.")
	return nil
}

// formatAuthErr expands validation failures into per-field lines; other
// errors pass through.
func formatAuthErr(err error) error {
	var verr *api.ValidationError
	if errors.As(err, &verr) {
		msg := "validation failed:"
		for field, detail := range verr.Fields {
			msg += fmt.Sprintf("\n  %s: %s", field, detail)
		}
		return errors.New(msg)
	}
	return err
}
