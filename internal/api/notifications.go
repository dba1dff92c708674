package api

import (
	"context"
	"fmt"
)

// Notifications lists all notifications for the current user.
func (c *Client) Notifications(ctx context.Context, page, pageSize int) (*Page[Notification], error) {
	var result Page[Notification]
	if err := c.get(ctx, "/notifications/", listParams(page, pageSize), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UnreadNotifications lists only unread notifications.
func (c *Client) UnreadNotifications(ctx context.Context) ([]Notification, error) {
	var notifications []Notification
	if err := c.get(ctx, "/notifications/unread/", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationRead marks a single notification read.
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID int64) error {
	return c.post(ctx, fmt.Sprintf("/notifications/%d/mark-read/", notificationID), nil, nil)
}

// MarkAllNotificationsRead marks every notification read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.post(ctx, "/notifications/mark-all-read/", nil, nil)
}
