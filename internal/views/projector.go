// Package views derives the presentational views from a task collection
// snapshot. Everything here is a pure projection: nothing is cached and
// nothing is written back, so the views can never drift from the store.
package views

import (
	"sort"

	"github.com/daylist-app/daylist/internal/models"
)

// Group is a read-only aggregation of completed today tasks sharing the
// same text. Deleting a group entry deletes only the representative;
// grouping is never persisted.
type Group struct {
	Representative models.Task
	MemberIDs      []string
	Count          int
	GroupedAt      int64
}

// Projection carries every derived view for one collection snapshot.
type Projection struct {
	// Today holds the not-yet-completed today tasks in display order.
	Today []models.Task
	// CompletedGroups holds today's completed tasks grouped by text,
	// newest group first.
	CompletedGroups []Group
	// Backlog holds everything outside the today set, templates included.
	Backlog []models.Task
	// TodayTotal and TodayCompleted are post-filter counts over the
	// today set.
	TodayTotal     int
	TodayCompleted int
	// AllTags is the filter bar's tag universe, computed over the full
	// unfiltered collection.
	AllTags []string
}

// Sorted orders tasks for display: incomplete before completed, newest
// first within each group. The input is not modified.
func Sorted(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Completed != out[j].Completed {
			return !out[i].Completed
		}
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}

// FilterByTag retains only tasks carrying the given tag. An empty tag
// means no filter.
func FilterByTag(tasks []models.Task, tag string) []models.Task {
	if tag == "" {
		return tasks
	}
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		for _, tt := range t.Tags {
			if tt == tag {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// AllTags returns the deduplicated union of every task's tags, sorted
// lexicographically ascending.
func AllTags(tasks []models.Task) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, t := range tasks {
		for _, tag := range t.Tags {
			if !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}
	sort.Strings(out)
	return out
}

// groupCompleted partitions today's tasks into the remaining incomplete
// list and the completed groups. Tasks arrive already sorted, so the
// first member seen per text is the group representative and groups fall
// naturally into grouped-at order; they are re-sorted anyway to keep the
// ordering a stated property rather than an accident of traversal.
func groupCompleted(today []models.Task) (incomplete []models.Task, groups []Group) {
	incomplete = make([]models.Task, 0, len(today))
	byText := make(map[string]int)

	for _, t := range today {
		if !t.Completed {
			incomplete = append(incomplete, t)
			continue
		}
		if i, ok := byText[t.Text]; ok {
			groups[i].MemberIDs = append(groups[i].MemberIDs, t.ID)
			groups[i].Count++
			continue
		}
		byText[t.Text] = len(groups)
		groups = append(groups, Group{
			Representative: t,
			MemberIDs:      []string{t.ID},
			Count:          1,
			GroupedAt:      t.CreatedAt,
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].GroupedAt > groups[j].GroupedAt
	})
	return incomplete, groups
}

// Project derives all views from the collection snapshot. filterTag may
// be empty for no filtering. AllTags always reflects the unfiltered
// collection.
func Project(tasks []models.Task, filterTag string) Projection {
	visible := FilterByTag(Sorted(tasks), filterTag)

	today := make([]models.Task, 0, len(visible))
	backlog := make([]models.Task, 0, len(visible))
	completedToday := 0
	for _, t := range visible {
		if t.IsForToday() {
			today = append(today, t)
			if t.Completed {
				completedToday++
			}
		} else {
			backlog = append(backlog, t)
		}
	}

	incomplete, groups := groupCompleted(today)

	return Projection{
		Today:           incomplete,
		CompletedGroups: groups,
		Backlog:         backlog,
		TodayTotal:      len(today),
		TodayCompleted:  completedToday,
		AllTags:         AllTags(tasks),
	}
}
