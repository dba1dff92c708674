package commands

import (
	"context"
	"fmt"

	"github.com/skillnest/skillnest/internal/format"
)

// NotificationsCmd manages the user's notifications.
type NotificationsCmd struct {
	List    NotificationsListCmd    `cmd:"" default:"withargs" help:"List notifications"`
	Unread  NotificationsUnreadCmd  `cmd:"" help:"List unread notifications"`
	Read    NotificationsReadCmd    `cmd:"" help:"Mark a notification read"`
	ReadAll NotificationsReadAllCmd `cmd:"" name:"read-all" help:"Mark all notifications read"`
}

type NotificationsListCmd struct {
	Page     int `help:"Page number"`
	PageSize int `help:"Results per page"`
}

func (c *NotificationsListCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/notifications"); err != nil {
		return err
	}

	page, err := app.client.Notifications(ctx, c.Page, c.PageSize)
	if err != nil {
		return err
	}

	if len(page.Results) == 0 {
		fmt.Println("No notifications.")
		return nil
	}

	for _, n := range page.Results {
		marker := " "
		if !n.IsRead {
			marker = "*"
		}
		fmt.Printf("%s [%d] %s — %s\n", marker, n.ID, n.Message, format.DateTime(n.CreatedAt))
	}

	pageFooter(page.Count, len(page.Results))
	return nil
}

type NotificationsUnreadCmd struct{}

func (c *NotificationsUnreadCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/notifications"); err != nil {
		return err
	}

	notifications, err := app.client.UnreadNotifications(ctx)
	if err != nil {
		return err
	}

	if len(notifications) == 0 {
		fmt.Println("No unread notifications.")
		return nil
	}

	for _, n := range notifications {
		fmt.Printf("[%d] %s — %s\n", n.ID, n.Message, format.DateTime(n.CreatedAt))
	}
	return nil
}

type NotificationsReadCmd struct {
	NotificationID int64 `arg:"" help:"Notification ID"`
}

func (c *NotificationsReadCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/notifications"); err != nil {
		return err
	}

	if err := app.client.MarkNotificationRead(ctx, c.NotificationID); err != nil {
		return err
	}

	fmt.Println("Marked read.")
	return nil
}

type NotificationsReadAllCmd struct{}

func (c *NotificationsReadAllCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}
	if err := app.requireRoute("/notifications"); err != nil {
		return err
	}

	if err := app.client.MarkAllNotificationsRead(ctx); err != nil {
		return err
	}

	fmt.Println("All notifications marked read.")
	return nil
}
