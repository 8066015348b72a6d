package store

import (
	"github.com/daylist-app/daylist/internal/models"
	"github.com/daylist-app/daylist/internal/tags"
)

// List is an immutable task collection. Every transformation returns a new
// List and leaves the receiver untouched, so callers can hold snapshots
// without defensive copying.
type List []models.Task

func (l List) clone() List {
	out := make(List, len(l))
	copy(out, l)
	return out
}

func (l List) index(id string) int {
	for i, t := range l {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Add prepends task, so the collection stays most-recent-first.
func (l List) Add(task models.Task) List {
	out := make(List, 0, len(l)+1)
	out = append(out, task)
	return append(out, l...)
}

// Edit replaces the task's text and recomputes its tags. Unknown ids are
// a no-op returning the collection unchanged.
func (l List) Edit(id, text string) List {
	i := l.index(id)
	if i < 0 {
		return l
	}
	out := l.clone()
	out[i].Text = text
	out[i].Tags = tags.Extract(text)
	return out
}

// Delete removes the task with the given id, if present.
func (l List) Delete(id string) List {
	i := l.index(id)
	if i < 0 {
		return l
	}
	out := make(List, 0, len(l)-1)
	out = append(out, l[:i]...)
	return append(out, l[i+1:]...)
}

// ToggleComplete flips the task's completed state. Templates cannot be
// completed; toggling one resets it instead (completed false, out of
// today), so a stray call never corrupts state.
func (l List) ToggleComplete(id string) List {
	i := l.index(id)
	if i < 0 {
		return l
	}
	out := l.clone()
	if out[i].IsTemplate() {
		out[i].Completed = false
		return out
	}
	out[i].Completed = !out[i].Completed
	return out
}

// ToggleToday moves the task in or out of the today set. For a template it
// instead spawns a fresh today instance (new id, copied text and tags,
// not completed) appended to the collection; the template itself is never
// mutated and stays in the backlog for reuse.
func (l List) ToggleToday(id, newID string, now int64) List {
	i := l.index(id)
	if i < 0 {
		return l
	}
	if l[i].IsTemplate() {
		instance := models.Task{
			ID:        newID,
			Text:      l[i].Text,
			Completed: false,
			CreatedAt: now,
			Role:      models.RoleToday,
			Tags:      append([]string(nil), l[i].Tags...),
		}
		out := l.clone()
		return append(out, instance)
	}
	out := l.clone()
	if out[i].Role == models.RoleToday {
		out[i].Role = models.RoleBacklog
	} else {
		out[i].Role = models.RoleToday
	}
	return out
}

// ToggleRecurring flips the task between template and plain roles.
// Becoming a template forces the task out of today: a task cannot be a
// today instance and a template at once.
func (l List) ToggleRecurring(id string) List {
	i := l.index(id)
	if i < 0 {
		return l
	}
	out := l.clone()
	if out[i].IsTemplate() {
		out[i].Role = models.RoleBacklog
	} else {
		out[i].Role = models.RoleTemplate
	}
	return out
}
