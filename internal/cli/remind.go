package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/daftar-app/daftar/internal/reminder"
)

type RemindCheckCmd struct{}

func (c *RemindCheckCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}
	if !ctx.Config.Notify.Enabled {
		fmt.Println("Notifications are disabled in config.")
		return nil
	}

	checker := reminder.New(ctx.Store, ctx.Notifier)
	due := checker.Due(time.Now())
	if len(due) == 0 {
		fmt.Println("Nothing due right now.")
		return nil
	}

	sent := checker.Check(time.Now())
	fmt.Printf("Due now: %d habit(s), delivered %d notification(s).\n", len(due), sent)
	return nil
}

type RemindWatchCmd struct{}

func (c *RemindWatchCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}
	if !ctx.Config.Notify.Enabled {
		return fmt.Errorf("notifications are disabled in config")
	}

	fmt.Println("Watching reminders. Press Ctrl+C to stop.")

	watchCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reminder.New(ctx.Store, ctx.Notifier).Watch(watchCtx)
	return nil
}
