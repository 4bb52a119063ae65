// Package notify is the transient notification sink (the toast rail).
// Every failure surfaces here; none is fatal to the application.
package notify

import (
	"errors"
	"sync"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/rashedq/artscape/internal/api"
)

// Level classifies a notice.
type Level int

const (
	Info Level = iota
	Error
)

// Notice is one dismissible notification.
type Notice struct {
	ID      uuid.UUID
	Level   Level
	Message string
}

// Notifier receives transient user-facing messages.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// ErrMessage picks the server-provided message when the error carries one,
// else the generic fallback. Pages surface API messages verbatim.
func ErrMessage(err error, fallback string) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// Memory records notices in order; used by controllers' tests and the
// terminal front-end's render loop.
type Memory struct {
	mu      sync.Mutex
	notices []Notice
}

func (m *Memory) Success(msg string) { m.add(Info, msg) }
func (m *Memory) Error(msg string)   { m.add(Error, msg) }

func (m *Memory) add(lv Level, msg string) {
	id, _ := uuid.NewV4()
	m.mu.Lock()
	m.notices = append(m.notices, Notice{ID: id, Level: lv, Message: msg})
	m.mu.Unlock()
}

// Flush returns and clears the pending notices.
func (m *Memory) Flush() []Notice {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.notices
	m.notices = nil
	return out
}

// Last returns the most recent notice, if any.
func (m *Memory) Last() (Notice, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.notices) == 0 {
		return Notice{}, false
	}
	return m.notices[len(m.notices)-1], true
}

// ZapNotifier writes notices to a logger; the CLI's default sink.
type ZapNotifier struct {
	Log *zap.Logger
}

func (z ZapNotifier) Success(msg string) { z.Log.Info(msg) }
func (z ZapNotifier) Error(msg string)   { z.Log.Warn(msg) }
