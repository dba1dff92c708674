package api

import (
	"context"
	"fmt"
)

// CourseInput is the create/update body for instructor-owned courses. Pointers
// distinguish "leave unchanged" from explicit zero values on partial updates.
type CourseInput struct {
	Title           string  `json:"title,omitempty"`
	Description     string  `json:"description,omitempty"`
	Category        string  `json:"category,omitempty"`
	Level           string  `json:"level,omitempty"`
	Price           *string `json:"price,omitempty"`
	IsFeatured      *bool   `json:"is_featured,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
}

// LessonInput is the create/update body for lessons.
type LessonInput struct {
	CourseID        int64  `json:"course,omitempty"`
	Title           string `json:"title,omitempty"`
	Content         string `json:"content,omitempty"`
	VideoURL        string `json:"video_url,omitempty"`
	DurationMinutes *int   `json:"duration_minutes,omitempty"`
	Order           *int   `json:"order,omitempty"`
}

// QuizInput is the create body for quizzes.
type QuizInput struct {
	CourseID         int64  `json:"course" validate:"required"`
	Title            string `json:"title" validate:"required"`
	Description      string `json:"description,omitempty"`
	PassingScore     int    `json:"passing_score,omitempty"`
	TimeLimitMinutes int    `json:"time_limit_minutes,omitempty"`
}

// QuestionInput is the add-question body.
type QuestionInput struct {
	QuizID        int64    `json:"quiz" validate:"required"`
	Text          string   `json:"text" validate:"required"`
	Choices       []string `json:"choices" validate:"required,min=2"`
	CorrectChoice int      `json:"correct_choice"`
	Points        int      `json:"points,omitempty"`
}

// InstructorCourses lists courses owned by the current instructor.
func (c *Client) InstructorCourses(ctx context.Context, page, pageSize int) (*Page[Course], error) {
	var result Page[Course]
	if err := c.get(ctx, "/instructor/courses/", listParams(page, pageSize), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// InstructorCourse fetches one of the instructor's courses by id.
func (c *Client) InstructorCourse(ctx context.Context, courseID int64) (*Course, error) {
	var course Course
	if err := c.get(ctx, fmt.Sprintf("/instructor/courses/%d/", courseID), nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// CreateCourse creates a new course owned by the current instructor.
func (c *Client) CreateCourse(ctx context.Context, input CourseInput) (*Course, error) {
	var course Course
	if err := c.post(ctx, "/instructor/courses/", input, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// UpdateCourse applies a partial update to an instructor-owned course.
func (c *Client) UpdateCourse(ctx context.Context, courseID int64, input CourseInput) (*Course, error) {
	var course Course
	if err := c.patch(ctx, fmt.Sprintf("/instructor/courses/%d/", courseID), input, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// DeleteCourse removes an instructor-owned course.
func (c *Client) DeleteCourse(ctx context.Context, courseID int64) error {
	return c.delete(ctx, fmt.Sprintf("/instructor/courses/%d/", courseID))
}

// CreateLesson adds a lesson to one of the instructor's courses.
func (c *Client) CreateLesson(ctx context.Context, input LessonInput) (*Lesson, error) {
	var lesson Lesson
	if err := c.post(ctx, "/instructor/lessons/", input, &lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

// UpdateLesson applies a partial update to a lesson.
func (c *Client) UpdateLesson(ctx context.Context, lessonID int64, input LessonInput) (*Lesson, error) {
	var lesson Lesson
	if err := c.patch(ctx, fmt.Sprintf("/instructor/lessons/%d/", lessonID), input, &lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

// DeleteLesson removes a lesson.
func (c *Client) DeleteLesson(ctx context.Context, lessonID int64) error {
	return c.delete(ctx, fmt.Sprintf("/instructor/lessons/%d/", lessonID))
}

// CreateQuiz creates a quiz on one of the instructor's courses.
func (c *Client) CreateQuiz(ctx context.Context, input QuizInput) (*Quiz, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	var quiz Quiz
	if err := c.post(ctx, "/instructor/quizzes/", input, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

// AddQuizQuestion appends a question to a quiz.
func (c *Client) AddQuizQuestion(ctx context.Context, input QuestionInput) (*Question, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	var question Question
	if err := c.post(ctx, "/instructor/questions/", input, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

// QuizAttempts lists student attempts for a quiz the instructor owns.
func (c *Client) QuizAttempts(ctx context.Context, quizID int64, page, pageSize int) (*Page[QuizAttempt], error) {
	var result Page[QuizAttempt]
	if err := c.get(ctx, fmt.Sprintf("/instructor/quizzes/%d/attempts/", quizID), listParams(page, pageSize), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// InstructorCourseProgress reports per-student completion for a course the
// instructor owns.
func (c *Client) InstructorCourseProgress(ctx context.Context, courseID int64) ([]CourseProgress, error) {
	var progress []CourseProgress
	if err := c.get(ctx, fmt.Sprintf("/instructor/courses/%d/progress/", courseID), nil, &progress); err != nil {
		return nil, err
	}
	return progress, nil
}
