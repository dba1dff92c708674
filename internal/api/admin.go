package api

import (
	"context"
	"fmt"
)

// AdminUserInput is the admin partial-update body for user accounts.
type AdminUserInput struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      Role   `json:"role,omitempty"`
	IsActive  *bool  `json:"is_active,omitempty"`
}

// AdminUsers lists all platform users.
func (c *Client) AdminUsers(ctx context.Context, page, pageSize int) (*Page[User], error) {
	var result Page[User]
	if err := c.get(ctx, "/admin/users/", listParams(page, pageSize), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AdminUser fetches a single user by id.
func (c *Client) AdminUser(ctx context.Context, userID int64) (*User, error) {
	var user User
	if err := c.get(ctx, fmt.Sprintf("/admin/users/%d/", userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// AdminUpdateUser applies a partial update to a user account.
func (c *Client) AdminUpdateUser(ctx context.Context, userID int64, input AdminUserInput) (*User, error) {
	var user User
	if err := c.patch(ctx, fmt.Sprintf("/admin/users/%d/", userID), input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// AdminDeleteUser removes a user account.
func (c *Client) AdminDeleteUser(ctx context.Context, userID int64) error {
	return c.delete(ctx, fmt.Sprintf("/admin/users/%d/", userID))
}

// AdminToggleUserStatus flips a user between active and suspended.
func (c *Client) AdminToggleUserStatus(ctx context.Context, userID int64) (*User, error) {
	var user User
	if err := c.post(ctx, fmt.Sprintf("/admin/users/%d/toggle-status/", userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// AdminCourses lists all courses regardless of owner or status.
func (c *Client) AdminCourses(ctx context.Context, page, pageSize int) (*Page[Course], error) {
	var result Page[Course]
	if err := c.get(ctx, "/admin/courses/", listParams(page, pageSize), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AdminApproveCourse publishes a submitted course.
func (c *Client) AdminApproveCourse(ctx context.Context, courseID int64) (*Course, error) {
	var course Course
	if err := c.post(ctx, fmt.Sprintf("/admin/courses/%d/approve/", courseID), nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// AdminRejectCourse rejects a submitted course with a reason.
func (c *Client) AdminRejectCourse(ctx context.Context, courseID int64, reason string) (*Course, error) {
	body := map[string]string{"reason": reason}

	var course Course
	if err := c.post(ctx, fmt.Sprintf("/admin/courses/%d/reject/", courseID), body, &course); err != nil {
		return nil, err
	}
	return &course, nil
}
