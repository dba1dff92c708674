package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/skillnest/skillnest/internal/api"
	"github.com/skillnest/skillnest/internal/format"
)

// InstructorCmd groups course-authoring tools. Requires the INSTRUCTOR or
// ADMIN role.
type InstructorCmd struct {
	Courses  InstructorCoursesCmd  `cmd:"" help:"Manage your courses"`
	Lessons  InstructorLessonsCmd  `cmd:"" help:"Manage lessons"`
	Quiz     InstructorQuizCmd     `cmd:"" help:"Manage quizzes"`
	Progress InstructorProgressCmd `cmd:"" help:"Student progress for a course"`
}

type InstructorCoursesCmd struct {
	List   InstructorCoursesListCmd   `cmd:"" default:"withargs" help:"List your courses"`
	Create InstructorCoursesCreateCmd `cmd:"" help:"Create a course"`
	Update InstructorCoursesUpdateCmd `cmd:"" help:"Update a course"`
	Delete InstructorCoursesDeleteCmd `cmd:"" help:"Delete a course"`
}

type InstructorCoursesListCmd struct {
	Page     int  `help:"Page number"`
	PageSize int  `help:"Results per page"`
	JSON     bool `name:"json" help:"Print the raw payload"`
}

func (c *InstructorCoursesListCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/instructor/courses"); err != nil {
		return err
	}

	page, err := app.client.InstructorCourses(ctx, c.Page, c.PageSize)
	if err != nil {
		return err
	}

	if c.JSON {
		return printJSON(page)
	}

	if len(page.Results) == 0 {
		fmt.Println("You have no courses yet. Create one with 'skillnest instructor courses create'.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tENROLLED\tRATING")
	for _, course := range page.Results {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.1f\n",
			course.ID,
			format.Truncate(course.Title, 40),
			course.Status,
			course.EnrollmentCount,
			course.Rating)
	}
	w.Flush()

	pageFooter(page.Count, len(page.Results))
	return nil
}

type InstructorCoursesCreateCmd struct {
	Title       string `help:"Course title" required:""`
	Description string `help:"Course description"`
	Category    string `help:"Category"`
	Level       string `help:"Level (beginner, intermediate, advanced)"`
	Price       string `help:"Price, e.g. 19.99"`
}

func (c *InstructorCoursesCreateCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/instructor/courses/create"); err != nil {
		return err
	}

	input := api.CourseInput{
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Level:       c.Level,
	}
	if c.Price != "" {
		input.Price = &c.Price
	}

	course, err := app.client.CreateCourse(ctx, input)
	if err != nil {
		return formatAuthErr(err)
	}

	fmt.Printf("Course %q created with ID %d.\n", course.Title, course.ID)
	return nil
}

type InstructorCoursesUpdateCmd struct {
	CourseID    int64  `arg:"" help:"Course ID"`
	Title       string `help:"Course title"`
	Description string `help:"Course description"`
	Category    string `help:"Category"`
	Level       string `help:"Level"`
	Price       string `help:"Price, e.g. 19.99"`
}

func (c *InstructorCoursesUpdateCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/instructor/courses/:courseId/edit"); err != nil {
		return err
	}

	input := api.CourseInput{
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Level:       c.Level,
	}
	if c.Price != "" {
		input.Price = &c.Price
	}

	course, err := app.client.UpdateCourse(ctx, c.CourseID, input)
	if err != nil {
		return formatAuthErr(err)
	}

	fmt.Printf("Course %q updated.\n", course.Title)
	return nil
}

type InstructorCoursesDeleteCmd struct {
	CourseID int64 `arg:"" help:"Course ID"`
}

func (c *InstructorCoursesDeleteCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/instructor/courses/:courseId/edit"); err != nil {
		return err
	}

	if err := app.client.DeleteCourse(ctx, c.CourseID); err != nil {
		return err
	}

	fmt.Println("Course deleted.")
	return nil
}

type InstructorLessonsCmd struct {
	Create InstructorLessonsCreateCmd `cmd:"" help:"Create a lesson"`
	Update InstructorLessonsUpdateCmd `cmd:"" help:"Update a lesson"`
	Delete InstructorLessonsDeleteCmd `cmd:"" help:"Delete a lesson"`
}

type InstructorLessonsCreateCmd struct {
	CourseID int64  `arg:"" help:"Course ID"`
	Title    string `help:"Lesson title" required:""`
	Content  string `help:"Lesson content"`
	VideoURL string `help:"Video URL"`
	Duration int    `help:"Duration in minutes"`
	Order    int    `help:"Position within the course"`
}

func (c *InstructorLessonsCreateCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/instructor/courses/:courseId/lessons"); err != nil {
		return err
	}

	input := api.LessonInput{
		CourseID: c.CourseID,
		Title:    c.Title,
		Content:  c.Content,
		VideoURL: c.VideoURL,
	}
	if c.Duration > 0 {
		input.DurationMinutes = &c.Duration
	}
	if c.Order > 0 {
		input.Order = &c.Order
	}

	lesson, err := app.client.CreateLesson(ctx, input)
	if err != nil {
		return formatAuthErr(err)
	}

	fmt.Printf("Lesson %q created with ID %d.\n", lesson.Title, lesson.ID)
	return nil
}

type InstructorLessonsUpdateCmd struct {
	LessonID int64  `arg:"" help:"Lesson ID"`
	Title    string `help:"Lesson title"`
	Content  string `help:"Lesson content"`
	VideoURL string `help:"Video URL"`
	Duration int    `help:"Duration in minutes"`
	Order    int    `help:"Position within the course"`
}

func (c *InstructorLessonsUpdateCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/instructor/courses/:courseId/lessons"); err != nil {
		return err
	}

	input := api.LessonInput{
		Title:    c.Title,
		Content:  c.Content,
		VideoURL: c.VideoURL,
	}
	if c.Duration > 0 {
		input.DurationMinutes = &c.Duration
	}
	if c.Order > 0 {
		input.Order = &c.Order
	}

	lesson, err := app.client.UpdateLesson(ctx, c.LessonID, input)
	if err != nil {
		return formatAuthErr(err)
	}

	fmt.Printf("Lesson %q updated.\n", lesson.Title)
	return nil
}

type InstructorLessonsDeleteCmd struct {
	LessonID int64 `arg:"" help:"Lesson ID"`
}

func (c *InstructorLessonsDeleteCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/instructor/courses/:courseId/lessons"); err != nil {
		return err
	}

	if err := app.client.DeleteLesson(ctx, c.LessonID); err != nil {
		return err
	}

	fmt.Println("Lesson deleted.")
	return nil
}

type InstructorQuizCmd struct {
	Create      InstructorQuizCreateCmd      `cmd:"" help:"Create a quiz"`
	AddQuestion InstructorQuizAddQuestionCmd `cmd:"" name:"add-question" help:"Add a question to a quiz"`
	Attempts    InstructorQuizAttemptsCmd    `cmd:"" help:"List attempts for a quiz"`
}

type InstructorQuizCreateCmd struct {
	CourseID     int64  `arg:"" help:"Course ID"`
	Title        string `help:"Quiz title" required:""`
	Description  string `help:"Quiz description"`
	PassingScore int    `help:"Passing score percentage" default:"70"`
	TimeLimit    int    `help:"Time limit in minutes"`
}

func (c *InstructorQuizCreateCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/instructor/courses"); err != nil {
		return err
	}

	quiz, err := app.client.CreateQuiz(ctx, api.QuizInput{
		CourseID:         c.CourseID,
		Title:            c.Title,
		Description:      c.Description,
		PassingScore:     c.PassingScore,
		TimeLimitMinutes: c.TimeLimit,
	})
	if err != nil {
		return formatAuthErr(err)
	}

	fmt.Printf("Quiz %q created with ID %d.\n", quiz.Title, quiz.ID)
	return nil
}

type InstructorQuizAddQuestionCmd struct {
	QuizID        int64    `arg:"" help:"Quiz ID"`
	Text          string   `help:"Question text" required:""`
	Choice        []string `help:"Answer choice, repeat for each option" required:""`
	CorrectChoice int      `help:"Index of the correct choice" required:""`
	Points        int      `help:"Points awarded" default:"1"`
}

func (c *InstructorQuizAddQuestionCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/instructor/courses"); err != nil {
		return err
	}

	question, err := app.client.AddQuizQuestion(ctx, api.QuestionInput{
		QuizID:        c.QuizID,
		Text:          c.Text,
		Choices:       c.Choice,
		CorrectChoice: c.CorrectChoice,
		Points:        c.Points,
	})
	if err != nil {
		return formatAuthErr(err)
	}

	fmt.Printf("Question %d added.\n", question.ID)
	return nil
}

type InstructorQuizAttemptsCmd struct {
	QuizID   int64 `arg:"" help:"Quiz ID"`
	Page     int   `help:"Page number"`
	PageSize int   `help:"Results per page"`
}

func (c *InstructorQuizAttemptsCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/instructor/courses"); err != nil {
		return err
	}

	page, err := app.client.QuizAttempts(ctx, c.QuizID, c.Page, c.PageSize)
	if err != nil {
		return err
	}

	if len(page.Results) == 0 {
		fmt.Println("No attempts yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCORE\tPASSED\tSTARTED")
	for _, attempt := range page.Results {
		fmt.Fprintf(w, "%d\t%.0f%%\t%v\t%s\n",
			attempt.ID, attempt.Score, attempt.Passed, format.DateTime(attempt.StartedAt))
	}
	w.Flush()

	pageFooter(page.Count, len(page.Results))
	return nil
}

type InstructorProgressCmd struct {
	CourseID int64 `arg:"" help:"Course ID"`
}

func (c *InstructorProgressCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/instructor/courses/:courseId/progress"); err != nil {
		return err
	}

	progress, err := app.client.InstructorCourseProgress(ctx, c.CourseID)
	if err != nil {
		return err
	}

	if len(progress) == 0 {
		fmt.Println("No enrolled students yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COMPLETED\tTOTAL\tPERCENT")
	for _, p := range progress {
		fmt.Fprintf(w, "%d\t%d\t%.0f%%\n", p.CompletedLessons, p.TotalLessons, p.Percent)
	}
	w.Flush()
	return nil
}
