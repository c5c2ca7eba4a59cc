package notify

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

type Level int

const (
	Info Level = iota
	Success
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

func (l Level) symbol() string {
	switch l {
	case Success:
		return "✔"
	case Warning:
		return "!"
	case Error:
		return "✖"
	default:
		return "•"
	}
}

// Notification is a transient, user-facing message about the outcome of an action.
type Notification struct {
	Level       Level
	Title       string
	Description string
	// Link points the user at something they can act on, e.g. a wallet download page.
	Link string
}

// Console prints notifications for the user and mirrors them to the structured log.
type Console struct {
	logs *zap.SugaredLogger
	out  io.Writer
	mu   sync.Mutex
}

func NewConsole(logger *zap.SugaredLogger, out io.Writer) *Console {
	return &Console{
		logs: logger,
		out:  out,
	}
}

func (c *Console) Notify(n Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()

	line := fmt.Sprintf("%s %s", n.Level.symbol(), n.Title)
	if n.Description != "" {
		line += " " + n.Description
	}
	if n.Link != "" {
		line += " (" + n.Link + ")"
	}
	if _, err := fmt.Fprintln(c.out, line); err != nil {
		c.logs.Errorw("failed to write notification", "error", err)
	}

	kv := []any{"level", n.Level.String(), "title", n.Title, "description", n.Description}
	switch n.Level {
	case Error:
		c.logs.Errorw("notification", kv...)
	case Warning:
		c.logs.Warnw("notification", kv...)
	default:
		c.logs.Debugw("notification", kv...)
	}
}
