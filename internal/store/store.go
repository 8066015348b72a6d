// Package store holds the canonical task collection and its mutation
// operations. The collection is replaced wholesale on every mutation and a
// snapshot is persisted after each one, so readers always observe a
// complete, consistent state.
package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/daylist-app/daylist/internal/models"
	"github.com/daylist-app/daylist/internal/snapshot"
	"github.com/daylist-app/daylist/internal/tags"
	"github.com/daylist-app/daylist/internal/validation"
)

// Store owns the task collection and persists it through a snapshot backend.
type Store struct {
	snap   snapshot.Store
	logger *zap.Logger
	tasks  List
}

// New creates a store backed by the given snapshot backend.
func New(snap snapshot.Store, logger *zap.Logger) *Store {
	return &Store{
		snap:   snap,
		logger: logger,
		tasks:  List{},
	}
}

// Load replaces the collection with the persisted snapshot. A missing or
// invalid snapshot is not an error: the collection starts empty.
func (s *Store) Load(ctx context.Context) error {
	loaded, err := s.snap.Load(ctx)
	if err != nil {
		return err
	}
	s.tasks = List(loaded)
	return nil
}

// Tasks returns a snapshot of the current collection for projections.
func (s *Store) Tasks() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Add creates a new backlog task from text and returns it.
func (s *Store) Add(ctx context.Context, text string) models.Task {
	text = validation.SanitizeText(text)
	task := models.Task{
		ID:        models.NewID(),
		Text:      text,
		Completed: false,
		CreatedAt: models.NowMillis(),
		Role:      models.RoleBacklog,
		Tags:      tags.Extract(text),
	}
	s.apply(ctx, s.tasks.Add(task))
	return task
}

// Edit replaces the task's text; tags are recomputed. Unknown ids are no-ops.
func (s *Store) Edit(ctx context.Context, id, text string) {
	s.apply(ctx, s.tasks.Edit(id, validation.SanitizeText(text)))
}

// Delete removes the task with the given id. Unknown ids are no-ops.
func (s *Store) Delete(ctx context.Context, id string) {
	s.apply(ctx, s.tasks.Delete(id))
}

// ToggleComplete flips the task's completed state (templates are reset
// instead, see List.ToggleComplete).
func (s *Store) ToggleComplete(ctx context.Context, id string) {
	s.apply(ctx, s.tasks.ToggleComplete(id))
}

// ToggleToday moves the task in or out of today; a template spawns a
// fresh today instance instead.
func (s *Store) ToggleToday(ctx context.Context, id string) {
	s.apply(ctx, s.tasks.ToggleToday(id, models.NewID(), models.NowMillis()))
}

// ToggleRecurring flips the task between template and plain roles.
func (s *Store) ToggleRecurring(ctx context.Context, id string) {
	s.apply(ctx, s.tasks.ToggleRecurring(id))
}

// Replace swaps the entire collection, backing replace-all CSV import.
func (s *Store) Replace(ctx context.Context, replacement []models.Task) {
	s.apply(ctx, List(replacement))
}

// Append adds tasks at the end of the collection, backing recurring-merge
// CSV import. Existing tasks are never touched.
func (s *Store) Append(ctx context.Context, added []models.Task) {
	if len(added) == 0 {
		return
	}
	merged := s.tasks.clone()
	s.apply(ctx, append(merged, added...))
}

// apply installs the new collection and persists it. A failed save is
// logged but does not roll back the in-memory state; the previously
// persisted snapshot stays intact.
func (s *Store) apply(ctx context.Context, next List) {
	s.tasks = next
	if err := s.snap.Save(ctx, s.tasks); err != nil {
		s.logger.Error("snapshot_save_failed",
			zap.Error(err),
			zap.Int("task_count", len(s.tasks)),
		)
	}
}
