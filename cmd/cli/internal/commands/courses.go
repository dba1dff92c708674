package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/skillnest/skillnest/internal/api"
	"github.com/skillnest/skillnest/internal/format"
)

// CoursesCmd browses the course catalogue.
type CoursesCmd struct {
	List     CoursesListCmd     `cmd:"" default:"withargs" help:"List courses"`
	Show     CoursesShowCmd     `cmd:"" help:"Show course details"`
	Featured CoursesFeaturedCmd `cmd:"" help:"List featured courses"`
}

type CoursesListCmd struct {
	Search   string `help:"Search term"`
	Category string `help:"Filter by category"`
	Level    string `help:"Filter by level"`
	Ordering string `help:"Sort order (e.g. -created_at)"`
	Page     int    `help:"Page number"`
	PageSize int    `help:"Results per page"`
	JSON     bool   `name:"json" help:"Print the raw payload"`
}

func (c *CoursesListCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	app.manager.Initialize()

	page, err := app.client.Courses(ctx, api.CourseFilter{
		Search:   c.Search,
		Category: c.Category,
		Level:    c.Level,
		Ordering: c.Ordering,
		Page:     c.Page,
		PageSize: c.PageSize,
	})
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
	fmt.Fprintln(w, "SLUG\tTITLE\tLEVEL\tPRICE\tRATING")
	for _, course := range page.Results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1f\n",
			course.Slug,
			format.Truncate(course.Title, 40),
			course.Level,
			format.Price(course.Price),
			course.Rating)
	}
	w.Flush()

	pageFooter(page.Count, len(page.Results))
	return nil
}

type CoursesShowCmd struct {
	Slug string `arg:"" help:"Course slug"`
	JSON bool   `name:"json" help:"Print the raw payload"`
}

func (c *CoursesShowCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	app.manager.Initialize()

	course, err := app.client.CourseBySlug(ctx, c.Slug)
	if err != nil {
		return err
	}

	if c.JSON {
		return printJSON(course)
	}

	fmt.Printf("Title:       %s\n", course.Title)
	fmt.Printf("Instructor:  %s\n", course.InstructorName)
	fmt.Printf("Category:    %s\n", course.Category)
	fmt.Printf("Level:       %s\n", course.Level)
	fmt.Printf("Price:       %s\n", format.Price(course.Price))
	fmt.Printf("Duration:    %s\n", format.Duration(course.DurationMinutes))
	fmt.Printf("Rating:      %.1f (%d enrolled)\n", course.Rating, course.EnrollmentCount)
	if course.Description != "" {
		fmt.Println()
		fmt.Println(course.Description)
	}
	return nil
}

type CoursesFeaturedCmd struct {
	JSON bool `name:"json" help:"Print the raw payload"`
}

func (c *CoursesFeaturedCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	app.manager.Initialize()

	courses, err := app.client.FeaturedCourses(ctx)
	if err != nil {
		return err
	}

	if c.JSON {
		return printJSON(courses)
	}

	if len(courses) == 0 {
		fmt.Println("No featured courses right now.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tTITLE\tPRICE")
	for _, course := range courses {
		fmt.Fprintf(w, "%s\t%s\t%s\n", course.Slug, format.Truncate(course.Title, 40), format.Price(course.Price))
	}
	w.Flush()
	return nil
}

// EnrollCmd enrolls the current user in a course.
type EnrollCmd struct {
	CourseID int64 `arg:"" help:"Course ID"`
}

func (c *EnrollCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/enrollments"); err != nil {
		return err
	}

	enrollment, err := app.client.Enroll(ctx, c.CourseID)
	if err != nil {
		return err
	}

	fmt.Printf("Enrolled in %q.\n", enrollment.Course.Title)
	return nil
}

// UnenrollCmd removes the current user from a course.
type UnenrollCmd struct {
	CourseID int64 `arg:"" help:"Course ID"`
}

func (c *UnenrollCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/enrollments"); err != nil {
		return err
	}

	if err := app.client.Unenroll(ctx, c.CourseID); err != nil {
		return err
	}

	fmt.Println("Unenrolled.")
	return nil
}

// EnrollmentsCmd lists the user's enrollments.
type EnrollmentsCmd struct {
	Page     int  `help:"Page number"`
	PageSize int  `help:"Results per page"`
	JSON     bool `name:"json" help:"Print the raw payload"`
}

func (c *EnrollmentsCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/enrollments"); err != nil {
		return err
	}

	page, err := app.client.MyEnrollments(ctx, c.Page, c.PageSize)
	if err != nil {
		return err
	}

	if c.JSON {
		return printJSON(page)
	}

	if len(page.Results) == 0 {
		fmt.Println("You are not enrolled in any courses.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COURSE ID\tTITLE\tPROGRESS\tENROLLED")
	for _, e := range page.Results {
		fmt.Fprintf(w, "%d\t%s\t%.0f%%\t%s\n",
			e.Course.ID,
			format.Truncate(e.Course.Title, 40),
			e.Progress,
			format.Date(e.EnrolledAt))
	}
	w.Flush()

	pageFooter(page.Count, len(page.Results))
	return nil
}

// ProgressCmd shows lesson completion for one course.
type ProgressCmd struct {
	CourseID int64 `arg:"" help:"Course ID"`
}

func (c *ProgressCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/enrollments"); err != nil {
		return err
	}

	progress, err := app.client.CourseProgress(ctx, c.CourseID)
	if err != nil {
		return err
	}

	fmt.Printf("Lessons completed: %d of %d (%.0f%%)\n",
		progress.CompletedLessons, progress.TotalLessons, progress.Percent)
	return nil
}

// ReviewsCmd reads and posts course reviews.
type ReviewsCmd struct {
	List ReviewsListCmd `cmd:"" default:"withargs" help:"List reviews for a course"`
	Add  ReviewsAddCmd  `cmd:"" help:"Post a review"`
}

type ReviewsListCmd struct {
	CourseID int64 `arg:"" help:"Course ID"`
	Page     int   `help:"Page number"`
	PageSize int   `help:"Results per page"`
}

func (c *ReviewsListCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/reviews/:courseId"); err != nil {
		return err
	}

	page, err := app.client.CourseReviews(ctx, c.CourseID, c.Page, c.PageSize)
	if err != nil {
		return err
	}

	if len(page.Results) == 0 {
		fmt.Println("No reviews yet.")
		return nil
	}

	for _, review := range page.Results {
		fmt.Printf("[%d/5] %s — %s\n", review.Rating, review.AuthorName, format.Date(review.CreatedAt))
		if review.Comment != "" {
			fmt.Printf("    %s\n", review.Comment)
		}
	}

	pageFooter(page.Count, len(page.Results))
	return nil
}

type ReviewsAddCmd struct {
	CourseID int64  `arg:"" help:"Course ID"`
	Rating   int    `help:"Rating from 1 to 5" required:""`
	Comment  string `help:"Review text"`
}

func (c *ReviewsAddCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/reviews/:courseId"); err != nil {
		return err
	}

	review, err := app.client.CreateReview(ctx, c.CourseID, api.ReviewInput{
		Rating:  c.Rating,
		Comment: c.Comment,
	})
	if err != nil {
		return formatAuthErr(err)
	}

	fmt.Printf("Review posted (%d/5).\n", review.Rating)
	return nil
}

// DiscussionsCmd reads and starts course discussions.
type DiscussionsCmd struct {
	List DiscussionsListCmd `cmd:"" default:"withargs" help:"List discussions for a course"`
	Add  DiscussionsAddCmd  `cmd:"" help:"Start a discussion thread"`
}

type DiscussionsListCmd struct {
	CourseID int64 `arg:"" help:"Course ID"`
	Page     int   `help:"Page number"`
	PageSize int   `help:"Results per page"`
}

func (c *DiscussionsListCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/discussions/:courseId"); err != nil {
		return err
	}

	page, err := app.client.CourseDiscussions(ctx, c.CourseID, c.Page, c.PageSize)
	if err != nil {
		return err
	}

	if len(page.Results) == 0 {
		fmt.Println("No discussions yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tREPLIES\tSTARTED")
	for _, d := range page.Results {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
			d.ID,
			format.Truncate(d.Title, 40),
			d.AuthorName,
			d.ReplyCount,
			format.Date(d.CreatedAt))
	}
	w.Flush()

	pageFooter(page.Count, len(page.Results))
	return nil
}

type DiscussionsAddCmd struct {
	CourseID int64  `arg:"" help:"Course ID"`
	Title    string `help:"Thread title" required:""`
	Body     string `help:"Thread body"`
}

func (c *DiscussionsAddCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/discussions/:courseId"); err != nil {
		return err
	}

	discussion, err := app.client.CreateDiscussion(ctx, c.CourseID, api.DiscussionInput{
		Title: c.Title,
		Body:  c.Body,
	})
	if err != nil {
		return formatAuthErr(err)
	}

	fmt.Printf("Discussion %q started.\n", discussion.Title)
	return nil
}
