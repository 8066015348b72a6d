package store

import (
	"reflect"
	"testing"

	"github.com/daylist-app/daylist/internal/models"
)

func task(id, text string, role models.Role) models.Task {
	return models.Task{
		ID:   id,
		Text: text,
		Role: role,
		Tags: []string{},
	}
}

func TestList_Add_PrependsNewest(t *testing.T) {
	t.Parallel()

	l := List{}.Add(task("a", "first", models.RoleBacklog))
	l = l.Add(task("b", "second", models.RoleBacklog))

	if len(l) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(l))
	}
	if l[0].ID != "b" || l[1].ID != "a" {
		t.Errorf("expected most-recent-first order, got %s, %s", l[0].ID, l[1].ID)
	}
}

func TestList_Edit_RecomputesTags(t *testing.T) {
	t.Parallel()

	l := List{task("a", "old #stale", models.RoleBacklog)}
	l[0].Tags = []string{"stale"}

	got := l.Edit("a", "new text #fresh #work")

	if got[0].Text != "new text #fresh #work" {
		t.Errorf("text = %q", got[0].Text)
	}
	if !reflect.DeepEqual(got[0].Tags, []string{"fresh", "work"}) {
		t.Errorf("tags = %v, want [fresh work]", got[0].Tags)
	}
	// receiver untouched
	if l[0].Text != "old #stale" {
		t.Errorf("edit mutated the original collection")
	}
}

func TestList_UnknownIDsAreNoOps(t *testing.T) {
	t.Parallel()

	l := List{task("a", "keep me", models.RoleBacklog)}

	ops := map[string]func() List{
		"edit":            func() List { return l.Edit("nope", "x") },
		"delete":          func() List { return l.Delete("nope") },
		"toggleComplete":  func() List { return l.ToggleComplete("nope") },
		"toggleToday":     func() List { return l.ToggleToday("nope", "new", 1) },
		"toggleRecurring": func() List { return l.ToggleRecurring("nope") },
	}

	for name, op := range ops {
		got := op()
		if !reflect.DeepEqual(got, l) {
			t.Errorf("%s on unknown id changed the collection: %v", name, got)
		}
	}
}

func TestList_Delete(t *testing.T) {
	t.Parallel()

	l := List{
		task("a", "one", models.RoleBacklog),
		task("b", "two", models.RoleBacklog),
		task("c", "three", models.RoleBacklog),
	}

	got := l.Delete("b")

	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("delete result = %v", got)
	}
	if len(l) != 3 {
		t.Errorf("delete mutated the original collection")
	}
}

func TestList_ToggleComplete(t *testing.T) {
	t.Parallel()

	t.Run("instance flips completed", func(t *testing.T) {
		t.Parallel()
		l := List{task("a", "work", models.RoleToday)}

		once := l.ToggleComplete("a")
		if !once[0].Completed {
			t.Error("expected completed after first toggle")
		}
		twice := once.ToggleComplete("a")
		if twice[0].Completed {
			t.Error("expected not completed after second toggle")
		}
	})

	t.Run("template is reset, never completed", func(t *testing.T) {
		t.Parallel()
		tpl := task("t", "routine", models.RoleTemplate)
		tpl.Completed = true // corrupt state a snapshot could carry
		l := List{tpl}

		got := l.ToggleComplete("t")
		if got[0].Completed {
			t.Error("template must never end up completed")
		}
		if !got[0].IsTemplate() {
			t.Errorf("template role changed to %v", got[0].Role)
		}
	})
}

func TestList_ToggleToday(t *testing.T) {
	t.Parallel()

	t.Run("backlog item moves to today and back", func(t *testing.T) {
		t.Parallel()
		l := List{task("a", "chore", models.RoleBacklog)}

		in := l.ToggleToday("a", "unused", 1)
		if in[0].Role != models.RoleToday {
			t.Errorf("role = %v, want today", in[0].Role)
		}
		out := in.ToggleToday("a", "unused", 2)
		if out[0].Role != models.RoleBacklog {
			t.Errorf("role = %v, want backlog", out[0].Role)
		}
		if len(out) != 1 {
			t.Errorf("toggling an instance must not add tasks, got %d", len(out))
		}
	})

	t.Run("template spawns a fresh instance", func(t *testing.T) {
		t.Parallel()
		tpl := task("tpl", "morning run #health", models.RoleTemplate)
		tpl.Tags = []string{"health"}
		tpl.CreatedAt = 100
		l := List{tpl}

		got := l.ToggleToday("tpl", "inst", 999)

		if len(got) != 2 {
			t.Fatalf("expected 2 tasks, got %d", len(got))
		}
		if !reflect.DeepEqual(got[0], tpl) {
			t.Errorf("template was mutated: %+v", got[0])
		}
		inst := got[1]
		if inst.ID != "inst" || inst.ID == tpl.ID {
			t.Errorf("instance id = %q", inst.ID)
		}
		if inst.Role != models.RoleToday {
			t.Errorf("instance role = %v, want today", inst.Role)
		}
		if inst.Completed {
			t.Error("instance must start not completed")
		}
		if inst.CreatedAt != 999 {
			t.Errorf("instance createdAt = %d, want 999", inst.CreatedAt)
		}
		if inst.Text != tpl.Text || !reflect.DeepEqual(inst.Tags, tpl.Tags) {
			t.Errorf("instance did not copy text/tags: %+v", inst)
		}
	})

	t.Run("instance tags are an independent copy", func(t *testing.T) {
		t.Parallel()
		tpl := task("tpl", "#a", models.RoleTemplate)
		tpl.Tags = []string{"a"}
		l := List{tpl}

		got := l.ToggleToday("tpl", "inst", 1)
		got[1].Tags[0] = "changed"
		if l[0].Tags[0] != "a" {
			t.Error("instance shares the template's tag slice")
		}
	})
}

func TestList_ToggleRecurring(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from models.Role
		want models.Role
	}{
		{"backlog becomes template", models.RoleBacklog, models.RoleTemplate},
		{"today is forced out into template", models.RoleToday, models.RoleTemplate},
		{"template reverts to backlog", models.RoleTemplate, models.RoleBacklog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l := List{task("a", "x", tt.from)}
			got := l.ToggleRecurring("a")
			if got[0].Role != tt.want {
				t.Errorf("role = %v, want %v", got[0].Role, tt.want)
			}
			if got[0].IsForToday() {
				t.Error("a recurring task must never be for today")
			}
		})
	}
}
