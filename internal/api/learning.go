package api

import (
	"context"
	"fmt"
	"net/url"
)

// Lessons lists lessons, optionally scoped to one course.
func (c *Client) Lessons(ctx context.Context, courseID int64) ([]Lesson, error) {
	params := url.Values{}
	if courseID > 0 {
		params.Set("course", fmt.Sprintf("%d", courseID))
	}

	var lessons []Lesson
	if err := c.get(ctx, "/lessons/", params, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

// Lesson fetches a single lesson, including its content.
func (c *Client) Lesson(ctx context.Context, lessonID int64) (*Lesson, error) {
	var lesson Lesson
	if err := c.get(ctx, fmt.Sprintf("/lessons/%d/", lessonID), nil, &lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

// CompleteLesson marks a lesson finished for the current user.
func (c *Client) CompleteLesson(ctx context.Context, lessonID int64) error {
	return c.post(ctx, fmt.Sprintf("/lessons/%d/complete/", lessonID), nil, nil)
}

// Quiz fetches quiz details and questions (without correct answers).
func (c *Client) Quiz(ctx context.Context, quizID int64) (*Quiz, error) {
	var quiz Quiz
	if err := c.get(ctx, fmt.Sprintf("/quizzes/%d/", quizID), nil, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

// StartQuizAttempt opens a new attempt and returns it.
func (c *Client) StartQuizAttempt(ctx context.Context, quizID int64) (*QuizAttempt, error) {
	var attempt QuizAttempt
	if err := c.post(ctx, fmt.Sprintf("/quizzes/%d/start/", quizID), nil, &attempt); err != nil {
		return nil, err
	}
	return &attempt, nil
}

// SubmitQuiz submits answers for an open attempt and returns the graded result.
func (c *Client) SubmitQuiz(ctx context.Context, attemptID int64, answers []Answer) (*QuizAttempt, error) {
	body := map[string][]Answer{"answers": answers}

	var attempt QuizAttempt
	if err := c.post(ctx, fmt.Sprintf("/attempts/%d/submit/", attemptID), body, &attempt); err != nil {
		return nil, err
	}
	return &attempt, nil
}

// MyQuizAttempts lists the current user's attempts.
func (c *Client) MyQuizAttempts(ctx context.Context, page, pageSize int) (*Page[QuizAttempt], error) {
	var result Page[QuizAttempt]
	if err := c.get(ctx, "/my-quiz-attempts/", listParams(page, pageSize), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
