package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/skillnest/skillnest/internal/api"
	"github.com/skillnest/skillnest/internal/format"
)

// LessonsCmd reads and completes lessons.
type LessonsCmd struct {
	List     LessonsListCmd     `cmd:"" default:"withargs" help:"List lessons for a course"`
	Show     LessonsShowCmd     `cmd:"" help:"Show lesson content"`
	Complete LessonsCompleteCmd `cmd:"" help:"Mark a lesson complete"`
}

type LessonsListCmd struct {
	CourseID int64 `arg:"" help:"Course ID"`
}

func (c *LessonsListCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/lessons/:courseId"); err != nil {
		return err
	}

	lessons, err := app.client.Lessons(ctx, c.CourseID)
	if err != nil {
		return err
	}

	if len(lessons) == 0 {
		fmt.Println("This course has no lessons yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tORDER\tTITLE\tDURATION\tDONE")
	for _, lesson := range lessons {
		done := ""
		if lesson.IsCompleted {
			done = "*"
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n",
			lesson.ID,
			lesson.Order,
			format.Truncate(lesson.Title, 40),
			format.Duration(lesson.DurationMinutes),
			done)
	}
	w.Flush()
	return nil
}

type LessonsShowCmd struct {
	LessonID int64 `arg:"" help:"Lesson ID"`
	JSON     bool  `name:"json" help:"Print the raw payload"`
}

func (c *LessonsShowCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/lessons/:courseId"); err != nil {
		return err
	}

	lesson, err := app.client.Lesson(ctx, c.LessonID)
	if err != nil {
		return err
	}

	if c.JSON {
		return printJSON(lesson)
	}

	fmt.Printf("Title:     %s\n", lesson.Title)
	fmt.Printf("Duration:  %s\n", format.Duration(lesson.DurationMinutes))
	if lesson.VideoURL != "" {
		fmt.Printf("Video:     %s\n", lesson.VideoURL)
	}
	if lesson.Content != "" {
		fmt.Println()
		fmt.Println(lesson.Content)
	}
	return nil
}

type LessonsCompleteCmd struct {
	LessonID int64 `arg:"" help:"Lesson ID"`
}

func (c *LessonsCompleteCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/learn/:courseId/lesson/:lessonId"); err != nil {
		return err
	}

	if err := app.client.CompleteLesson(ctx, c.LessonID); err != nil {
		return err
	}

	fmt.Println("Lesson marked complete.")
	return nil
}

// QuizCmd takes quizzes and reviews attempts.
type QuizCmd struct {
	Show     QuizShowCmd     `cmd:"" help:"Show quiz details"`
	Start    QuizStartCmd    `cmd:"" help:"Start a quiz attempt"`
	Submit   QuizSubmitCmd   `cmd:"" help:"Submit answers for an attempt"`
	Attempts QuizAttemptsCmd `cmd:"" help:"List your quiz attempts"`
}

type QuizShowCmd struct {
	QuizID int64 `arg:"" help:"Quiz ID"`
	JSON   bool  `name:"json" help:"Print the raw payload"`
}

func (c *QuizShowCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/quizzes/:courseId"); err != nil {
		return err
	}

	quiz, err := app.client.Quiz(ctx, c.QuizID)
	if err != nil {
		return err
	}

	if c.JSON {
		return printJSON(quiz)
	}

	fmt.Printf("Title:         %s\n", quiz.Title)
	fmt.Printf("Questions:     %d\n", quiz.QuestionCount)
	fmt.Printf("Passing score: %d%%\n", quiz.PassingScore)
	if quiz.TimeLimitMinutes > 0 {
		fmt.Printf("Time limit:    %s\n", format.Duration(quiz.TimeLimitMinutes))
	}
	if quiz.Description != "" {
		fmt.Println()
		fmt.Println(quiz.Description)
	}
	return nil
}

type QuizStartCmd struct {
	QuizID int64 `arg:"" help:"Quiz ID"`
}

func (c *QuizStartCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/quizzes/:courseId"); err != nil {
		return err
	}

	attempt, err := app.client.StartQuizAttempt(ctx, c.QuizID)
	if err != nil {
		return err
	}

	fmt.Printf("Attempt %d started. Submit with:\n", attempt.ID)
	fmt.Printf("  skillnest quiz submit %d --answer <question>=<choice> ...\n", attempt.ID)
	return nil
}

type QuizSubmitCmd struct {
	AttemptID int64          `arg:"" help:"Attempt ID"`
	Answer    map[string]int `help:"question=choice pairs" required:""`
}

func (c *QuizSubmitCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/quizzes/:courseId"); err != nil {
		return err
	}

	answers := make([]api.Answer, 0, len(c.Answer))
	for question, choice := range c.Answer {
		questionID, err := strconv.ParseInt(question, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid question id %q", question)
		}
		answers = append(answers, api.Answer{Question: questionID, Selected: choice})
	}

	attempt, err := app.client.SubmitQuiz(ctx, c.AttemptID, answers)
	if err != nil {
		return err
	}

	result := "FAILED"
	if attempt.Passed {
		result = "PASSED"
	}
	fmt.Printf("Score: %.0f%% — %s\n", attempt.Score, result)
	return nil
}

type QuizAttemptsCmd struct {
	Page     int `help:"Page number"`
	PageSize int `help:"Results per page"`
}

func (c *QuizAttemptsCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/quizzes/:courseId"); err != nil {
		return err
	}

	page, err := app.client.MyQuizAttempts(ctx, c.Page, c.PageSize)
	if err != nil {
		return err
	}

	if len(page.Results) == 0 {
		fmt.Println("No quiz attempts yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tQUIZ\tSCORE\tPASSED\tSTARTED")
	for _, attempt := range page.Results {
		fmt.Fprintf(w, "%d\t%s\t%.0f%%\t%v\t%s\n",
			attempt.ID,
			format.Truncate(attempt.QuizTitle, 40),
			attempt.Score,
			attempt.Passed,
			format.DateTime(attempt.StartedAt))
	}
	w.Flush()

	pageFooter(page.Count, len(page.Results))
	return nil
}
