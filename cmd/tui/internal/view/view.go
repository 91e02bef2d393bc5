package view

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// View is the interface that all TUI screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
	// Dispose cancels the screen's in-flight requests. Results that still arrive are dropped.
	Dispose()
}

// CommonModel is embedded by all views. It identifies one mounted instance of a screen:
// async results carry the mount id they were issued for and are ignored by any other instance.
type CommonModel struct {
	mountID uuid.UUID
	ctx     context.Context
	cancel  context.CancelFunc
}

func newCommonModel() CommonModel {
	ctx, cancel := context.WithCancel(context.Background())

	return CommonModel{
		mountID: uuid.New(),
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (c CommonModel) MountID() uuid.UUID { return c.mountID }

func (c CommonModel) Dispose() {
	if c.cancel != nil {
		c.cancel()
	}
}

// Disposed reports whether Dispose was called.
func (c CommonModel) Disposed() bool {
	return c.ctx == nil || c.ctx.Err() != nil
}

func (c CommonModel) owns(id uuid.UUID) bool {
	return id == c.mountID && !c.Disposed()
}

// requestCtx derives a per-request context that is also cancelled on Dispose.
func (c CommonModel) requestCtx(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return context.WithTimeout(c.ctx, timeout)
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// NavigateMsg asks the root model to show an in-app location such as the integrations screen.
type NavigateMsg struct {
	Target string
}
