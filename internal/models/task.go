package models

import (
	"time"

	"github.com/google/uuid"
)

// Role represents the lifecycle role of a task
type Role string

const (
	// RoleBacklog is a plain, non-recurring item waiting in the backlog
	RoleBacklog Role = "backlog"
	// RoleToday is an instance in the current working set
	RoleToday Role = "today"
	// RoleTemplate is a recurring template; templates live in the backlog
	// and spawn fresh today instances, they are never completed directly
	RoleTemplate Role = "template"
)

// Task represents a single tracked task
type Task struct {
	ID        string
	Text      string
	Completed bool
	CreatedAt int64 // milliseconds since epoch
	Role      Role
	Tags      []string
}

// IsTemplate reports whether the task is a recurring template
func (t Task) IsTemplate() bool {
	return t.Role == RoleTemplate
}

// IsForToday reports whether the task is in the today working set
func (t Task) IsForToday() bool {
	return t.Role == RoleToday
}

// IsRecurring reports whether the task is recurring. Only templates are
// recurring; the flag exists for the serialized formats.
func (t Task) IsRecurring() bool {
	return t.Role == RoleTemplate
}

// Flags returns the (isForToday, isRecurring) boolean pair used by the
// snapshot and CSV formats.
func (t Task) Flags() (forToday, recurring bool) {
	return t.Role == RoleToday, t.Role == RoleTemplate
}

// RoleFromFlags maps the serialized boolean pair back to a role.
// A record claiming both recurring and for-today resolves to template:
// becoming recurring forces a task out of today.
func RoleFromFlags(forToday, recurring bool) Role {
	switch {
	case recurring:
		return RoleTemplate
	case forToday:
		return RoleToday
	default:
		return RoleBacklog
	}
}

// NewID generates a fresh task identifier. IDs are never reused.
func NewID() string {
	return uuid.NewString()
}

// NowMillis returns the current time in milliseconds since epoch,
// the resolution CreatedAt is stored at.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
