package cli

import (
	"context"
	"fmt"
)

func (a *App) Toasts(ctx context.Context) error {
	list := a.toasts.List()
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No notifications.")
		return nil
	}
	for _, t := range list {
		a.renderToast(t)
	}
	return nil
}

func (a *App) Dismiss(ctx context.Context, id int) error {
	a.toasts.Dismiss(id)
	return nil
}

func (a *App) ClearToasts(ctx context.Context) error {
	a.toasts.Clear()
	return nil
}
