package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/skillnest/skillnest/internal/api"
	"github.com/skillnest/skillnest/internal/format"
)

// AdminCmd groups platform administration tools. Requires the ADMIN role.
type AdminCmd struct {
	Users   AdminUsersCmd   `cmd:"" help:"Manage user accounts"`
	Courses AdminCoursesCmd `cmd:"" help:"Moderate courses"`
}

type AdminUsersCmd struct {
	List   AdminUsersListCmd   `cmd:"" default:"withargs" help:"List users"`
	Show   AdminUsersShowCmd   `cmd:"" help:"Show a user"`
	Update AdminUsersUpdateCmd `cmd:"" help:"Update a user"`
	Delete AdminUsersDeleteCmd `cmd:"" help:"Delete a user"`
	Toggle AdminUsersToggleCmd `cmd:"" help:"Toggle a user's active status"`
}

type AdminUsersListCmd struct {
	Page     int  `help:"Page number"`
	PageSize int  `help:"Results per page"`
	JSON     bool `name:"json" help:"Print the raw payload"`
}

func (c *AdminUsersListCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/admin/users"); err != nil {
		return err
	}

	page, err := app.client.AdminUsers(ctx, c.Page, c.PageSize)
	if err != nil {
		return err
	}

	if c.JSON {
		return printJSON(page)
	}

	if len(page.Results) == 0 {
		fmt.Println("No users found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tACTIVE")
	for _, user := range page.Results {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%v\n",
			user.ID,
			format.Truncate(user.FullName(), 30),
			user.Email,
			user.Role,
			user.IsActive)
	}
	w.Flush()

	pageFooter(page.Count, len(page.Results))
	return nil
}

type AdminUsersShowCmd struct {
	UserID int64 `arg:"" help:"User ID"`
	JSON   bool  `name:"json" help:"Print the raw payload"`
}

func (c *AdminUsersShowCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/admin/users"); err != nil {
		return err
	}

	user, err := app.client.AdminUser(ctx, c.UserID)
	if err != nil {
		return err
	}

	if c.JSON {
		return printJSON(user)
	}

	fmt.Printf("Name:    %s\n", user.FullName())
	fmt.Printf("Email:   %s\n", user.Email)
	fmt.Printf("Role:    %s\n", user.Role)
	fmt.Printf("Active:  %v\n", user.IsActive)
	return nil
}

type AdminUsersUpdateCmd struct {
	UserID    int64  `arg:"" help:"User ID"`
	FirstName string `help:"First name"`
	LastName  string `help:"Last name"`
	Email     string `help:"Email"`
	Role      string `help:"Role (STUDENT, INSTRUCTOR, ADMIN)"`
}

func (c *AdminUsersUpdateCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/admin/users"); err != nil {
		return err
	}

	user, err := app.client.AdminUpdateUser(ctx, c.UserID, api.AdminUserInput{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Role:      api.Role(c.Role),
	})
	if err != nil {
		return formatAuthErr(err)
	}

	fmt.Printf("User %s updated.\n", user.FullName())
	return nil
}

type AdminUsersDeleteCmd struct {
	UserID int64 `arg:"" help:"User ID"`
}

func (c *AdminUsersDeleteCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/admin/users"); err != nil {
		return err
	}

	if err := app.client.AdminDeleteUser(ctx, c.UserID); err != nil {
		return err
	}

	fmt.Println("User deleted.")
	return nil
}

type AdminUsersToggleCmd struct {
	UserID int64 `arg:"" help:"User ID"`
}

func (c *AdminUsersToggleCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/admin/users"); err != nil {
		return err
	}

	user, err := app.client.AdminToggleUserStatus(ctx, c.UserID)
	if err != nil {
		return err
	}

	state := "suspended"
	if user.IsActive {
		state = "active"
	}
	fmt.Printf("User %s is now %s.\n", user.FullName(), state)
	return nil
}

type AdminCoursesCmd struct {
	List    AdminCoursesListCmd    `cmd:"" default:"withargs" help:"List all courses"`
	Approve AdminCoursesApproveCmd `cmd:"" help:"Approve a submitted course"`
	Reject  AdminCoursesRejectCmd  `cmd:"" help:"Reject a submitted course"`
}

type AdminCoursesListCmd struct {
	Page     int  `help:"Page number"`
	PageSize int  `help:"Results per page"`
	JSON     bool `name:"json" help:"Print the raw payload"`
}

func (c *AdminCoursesListCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/admin/dashboard"); err != nil {
		return err
	}

	page, err := app.client.AdminCourses(ctx, c.Page, c.PageSize)
	if err != nil {
		return err
	}

	if c.JSON {
		return printJSON(page)
	}

	if len(page.Results) == 0 {
		fmt.Println("No courses found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tINSTRUCTOR\tSTATUS")
	for _, course := range page.Results {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			course.ID,
			format.Truncate(course.Title, 40),
			course.InstructorName,
			course.Status)
	}
	w.Flush()

	pageFooter(page.Count, len(page.Results))
	return nil
}

type AdminCoursesApproveCmd struct {
	CourseID int64 `arg:"" help:"Course ID"`
}

func (c *AdminCoursesApproveCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/admin/dashboard"); err != nil {
		return err
	}

	course, err := app.client.AdminApproveCourse(ctx, c.CourseID)
	if err != nil {
		return err
	}

	fmt.Printf("Course %q approved.\n", course.Title)
	return nil
}

type AdminCoursesRejectCmd struct {
	CourseID int64  `arg:"" help:"Course ID"`
	Reason   string `help:"Reason shown to the instructor" required:""`
}

func (c *AdminCoursesRejectCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/admin/dashboard"); err != nil {
		return err
	}

	course, err := app.client.AdminRejectCourse(ctx, c.CourseID, c.Reason)
	if err != nil {
		return err
	}

	fmt.Printf("Course %q rejected.\n", course.Title)
	return nil
}
