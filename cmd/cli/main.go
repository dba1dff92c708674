package main

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/skillnest/skillnest/cmd/cli/internal/commands"
)

var (
	version = "dev"
	cli     struct {
		Login         commands.LoginCmd         `cmd:"" help:"Log in to SkillNest"`
		Register      commands.RegisterCmd      `cmd:"" help:"Create a SkillNest account"`
		Logout        commands.LogoutCmd        `cmd:"" help:"Log out and clear the local session"`
		Whoami        commands.WhoamiCmd        `cmd:"" help:"Show the current session"`
		Profile       commands.ProfileCmd       `cmd:"" help:"Manage your profile"`
		Courses       commands.CoursesCmd       `cmd:"" help:"Browse the course catalogue"`
		Enroll        commands.EnrollCmd        `cmd:"" help:"Enroll in a course"`
		Unenroll      commands.UnenrollCmd      `cmd:"" help:"Unenroll from a course"`
		Enrollments   commands.EnrollmentsCmd   `cmd:"" help:"List your enrollments"`
		Progress      commands.ProgressCmd      `cmd:"" help:"Show your progress in a course"`
		Lessons       commands.LessonsCmd       `cmd:"" help:"Read and complete lessons"`
		Quiz          commands.QuizCmd          `cmd:"" help:"Take quizzes"`
		Reviews       commands.ReviewsCmd       `cmd:"" help:"Read and post course reviews"`
		Discussions   commands.DiscussionsCmd   `cmd:"" help:"Read and start course discussions"`
		Notifications commands.NotificationsCmd `cmd:"" help:"Manage notifications"`
		Instructor    commands.InstructorCmd    `cmd:"" help:"Instructor tools"`
		Admin         commands.AdminCmd         `cmd:"" help:"Admin tools"`

		Server  string `help:"SkillNest API base URL" env:"SKILLNEST_SERVER"`
		DataDir string `help:"Directory for session and cache data" env:"SKILLNEST_DATA_DIR"`
		Debug   bool   `help:"Enable debug mode."`
		Version kong.VersionFlag
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))
	err := cmd.Run(&commands.Globals{
		Debug:   cli.Debug,
		Version: version,
		Server:  cli.Server,
		DataDir: cli.DataDir,
	})
	cmd.FatalIfErrorf(err)
}
