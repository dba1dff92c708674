package api

import (
	"context"
	"fmt"
	"net/url"
)

// CourseFilter narrows and pages the course catalogue listing.
type CourseFilter struct {
	Search   string
	Category string
	Level    string
	Ordering string
	Page     int
	PageSize int
}

func (f CourseFilter) values() url.Values {
	params := listParams(f.Page, f.PageSize)
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.Category != "" {
		params.Set("category", f.Category)
	}
	if f.Level != "" {
		params.Set("level", f.Level)
	}
	if f.Ordering != "" {
		params.Set("ordering", f.Ordering)
	}
	return params
}

// ReviewInput is the create-review request body.
type ReviewInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty"`
}

// DiscussionInput is the create-discussion request body.
type DiscussionInput struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body,omitempty"`
}

// Courses lists the catalogue with optional filters and pagination.
func (c *Client) Courses(ctx context.Context, filter CourseFilter) (*Page[Course], error) {
	var page Page[Course]
	if err := c.get(ctx, "/courses/", filter.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CourseBySlug fetches course details by slug.
func (c *Client) CourseBySlug(ctx context.Context, slug string) (*Course, error) {
	var course Course
	if err := c.get(ctx, fmt.Sprintf("/courses/%s/", url.PathEscape(slug)), nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// FeaturedCourses lists courses flagged for the landing page.
func (c *Client) FeaturedCourses(ctx context.Context) ([]Course, error) {
	var courses []Course
	if err := c.get(ctx, "/courses/featured/", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Enroll enrolls the current user in a course.
func (c *Client) Enroll(ctx context.Context, courseID int64) (*Enrollment, error) {
	var enrollment Enrollment
	if err := c.post(ctx, fmt.Sprintf("/courses/%d/enroll/", courseID), nil, &enrollment); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// Unenroll removes the current user from a course.
func (c *Client) Unenroll(ctx context.Context, courseID int64) error {
	return c.post(ctx, fmt.Sprintf("/courses/%d/unenroll/", courseID), nil, nil)
}

// MyEnrollments lists the current user's enrollments.
func (c *Client) MyEnrollments(ctx context.Context, page, pageSize int) (*Page[Enrollment], error) {
	var result Page[Enrollment]
	if err := c.get(ctx, "/my-enrollments/", listParams(page, pageSize), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CourseProgress reports lesson completion for an enrolled course.
func (c *Client) CourseProgress(ctx context.Context, courseID int64) (*CourseProgress, error) {
	var progress CourseProgress
	if err := c.get(ctx, fmt.Sprintf("/courses/%d/progress/", courseID), nil, &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

// CourseLessons lists a course's lessons in order.
func (c *Client) CourseLessons(ctx context.Context, courseID int64) ([]Lesson, error) {
	var lessons []Lesson
	if err := c.get(ctx, fmt.Sprintf("/courses/%d/lessons/", courseID), nil, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

// CourseQuizzes lists a course's quizzes.
func (c *Client) CourseQuizzes(ctx context.Context, courseID int64) ([]Quiz, error) {
	var quizzes []Quiz
	if err := c.get(ctx, fmt.Sprintf("/courses/%d/quizzes/", courseID), nil, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

// CourseReviews lists reviews for a course.
func (c *Client) CourseReviews(ctx context.Context, courseID int64, page, pageSize int) (*Page[Review], error) {
	var result Page[Review]
	if err := c.get(ctx, fmt.Sprintf("/courses/%d/reviews/", courseID), listParams(page, pageSize), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateReview posts a review on a course.
func (c *Client) CreateReview(ctx context.Context, courseID int64, input ReviewInput) (*Review, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	var review Review
	if err := c.post(ctx, fmt.Sprintf("/courses/%d/reviews/create/", courseID), input, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// CourseDiscussions lists discussion threads for a course.
func (c *Client) CourseDiscussions(ctx context.Context, courseID int64, page, pageSize int) (*Page[Discussion], error) {
	var result Page[Discussion]
	if err := c.get(ctx, fmt.Sprintf("/courses/%d/discussions/", courseID), listParams(page, pageSize), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateDiscussion starts a discussion thread on a course.
func (c *Client) CreateDiscussion(ctx context.Context, courseID int64, input DiscussionInput) (*Discussion, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	var discussion Discussion
	if err := c.post(ctx, fmt.Sprintf("/courses/%d/discussions/create/", courseID), input, &discussion); err != nil {
		return nil, err
	}
	return &discussion, nil
}
