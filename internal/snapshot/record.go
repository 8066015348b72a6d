package snapshot

import (
	"github.com/daylist-app/daylist/internal/models"
	"github.com/daylist-app/daylist/internal/tags"
)

// taskRecord is the persisted wire shape. It keeps the legacy boolean
// pair instead of the internal role so old snapshots stay readable.
// Pointer booleans distinguish absent fields from explicit false.
type taskRecord struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	Completed   bool     `json:"completed"`
	CreatedAt   int64    `json:"createdAt"`
	IsForToday  *bool    `json:"isForToday,omitempty"`
	IsRecurring *bool    `json:"isRecurring,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

func encodeRecords(tasks []models.Task) []taskRecord {
	records := make([]taskRecord, len(tasks))
	for i, t := range tasks {
		forToday, recurring := t.Flags()
		records[i] = taskRecord{
			ID:          t.ID,
			Text:        t.Text,
			Completed:   t.Completed,
			CreatedAt:   t.CreatedAt,
			IsForToday:  &forToday,
			IsRecurring: &recurring,
			Tags:        t.Tags,
		}
	}
	return records
}

// decodeRecords rebuilds tasks from persisted records. Records missing
// the role flags default to a plain backlog item; missing tags are
// re-derived from the text.
func decodeRecords(records []taskRecord) []models.Task {
	tasksOut := make([]models.Task, 0, len(records))
	for _, rec := range records {
		forToday := rec.IsForToday != nil && *rec.IsForToday
		recurring := rec.IsRecurring != nil && *rec.IsRecurring
		task := models.Task{
			ID:        rec.ID,
			Text:      rec.Text,
			Completed: rec.Completed,
			CreatedAt: rec.CreatedAt,
			Role:      models.RoleFromFlags(forToday, recurring),
			Tags:      rec.Tags,
		}
		if task.ID == "" {
			task.ID = models.NewID()
		}
		if task.Tags == nil {
			task.Tags = tags.Extract(task.Text)
		}
		tasksOut = append(tasksOut, task)
	}
	return tasksOut
}
