// Package csvio serializes task collections to CSV and parses CSV back
// into task records for the import/export boundary.
//
// The parser is deliberately not an RFC 4180 reader: fields are trimmed,
// headers match case-insensitively, quoting is tolerated rather than
// required, and rows without usable text are skipped instead of failing
// the import. Export quotes exactly the fields the parser understands.
package csvio

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/daylist-app/daylist/internal/models"
	"github.com/daylist-app/daylist/internal/tags"
)

// ErrMalformedInput marks CSV input whose header is unusable. Row-level
// problems never produce it; bad rows are skipped.
var ErrMalformedInput = errors.New("malformed csv input")

// ImportMode selects how parsed rows are merged into the collection.
type ImportMode string

const (
	// ImportModeReplace parses rows as-is; the result replaces the whole
	// collection.
	ImportModeReplace ImportMode = "replace"
	// ImportModeRecurringMerge forces every row into template role; the
	// result is appended to the existing collection.
	ImportModeRecurringMerge ImportMode = "recurring-merge"
)

var exportHeader = []string{"id", "text", "completed", "createdAt", "isForToday", "isRecurring", "tags"}

// escapeField quotes a field when it contains a comma, quote, or
// newline, doubling internal quotes.
func escapeField(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func writeRow(b *strings.Builder, t models.Task) {
	forToday, recurring := t.Flags()
	fields := []string{
		t.ID,
		t.Text,
		strconv.FormatBool(t.Completed),
		strconv.FormatInt(t.CreatedAt, 10),
		strconv.FormatBool(forToday),
		strconv.FormatBool(recurring),
		strings.Join(t.Tags, ";"),
	}
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeField(f))
	}
	b.WriteByte('\n')
}

// Export renders the full collection in its current order.
func Export(tasksIn []models.Task) string {
	var b strings.Builder
	b.WriteString(strings.Join(exportHeader, ","))
	b.WriteByte('\n')
	for _, t := range tasksIn {
		writeRow(&b, t)
	}
	return b.String()
}

// ExportTemplates renders only the recurring templates, for backing up
// routines separately from the day-to-day list.
func ExportTemplates(tasksIn []models.Task) string {
	templates := make([]models.Task, 0, len(tasksIn))
	for _, t := range tasksIn {
		if t.IsTemplate() {
			templates = append(templates, t)
		}
	}
	return Export(templates)
}

// splitFields splits a line on commas that are outside a quoted span,
// where "inside" means an odd number of quotes has been seen. Each field
// is trimmed, then unwrapped if it is surrounded by quotes, with doubled
// internal quotes collapsed.
func splitFields(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
			cur.WriteByte(c)
		case c == ',' && !inQuotes:
			fields = append(fields, cleanField(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	fields = append(fields, cleanField(cur.String()))
	return fields
}

func cleanField(field string) string {
	field = strings.TrimSpace(field)
	if len(field) >= 2 && strings.HasPrefix(field, `"`) && strings.HasSuffix(field, `"`) {
		field = field[1 : len(field)-1]
		field = strings.ReplaceAll(field, `""`, `"`)
	}
	return field
}

func splitLines(input string) []string {
	lines := strings.Split(input, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func parseBool(v string) bool {
	return strings.EqualFold(v, "true")
}

// Parse turns CSV text into task records. The header row is matched
// case-insensitively and must contain a text column; rows without a
// non-empty text value are skipped. Imported ids are discarded and every
// record gets a fresh one, so imports can never collide with existing
// tasks. now supplies the createdAt fallback for rows without a usable
// timestamp.
func Parse(input string, mode ImportMode, now int64) ([]models.Task, error) {
	lines := splitLines(input)
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, fmt.Errorf("%w: header row missing", ErrMalformedInput)
	}

	columns := make(map[string]int)
	for i, name := range splitFields(lines[0]) {
		columns[strings.ToLower(name)] = i
	}
	if _, ok := columns["text"]; !ok {
		return nil, fmt.Errorf("%w: header missing required column %q", ErrMalformedInput, "text")
	}

	var out []models.Task
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitFields(line)
		field := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(fields) {
				return ""
			}
			return fields[i]
		}

		text := field("text")
		if text == "" {
			continue
		}

		createdAt := now
		if v := field("createdat"); v != "" {
			if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
				createdAt = parsed
			}
		}

		taskTags := splitTags(field("tags"))
		if len(taskTags) == 0 {
			taskTags = tags.Extract(text)
		}

		task := models.Task{
			ID:        models.NewID(),
			Text:      text,
			CreatedAt: createdAt,
			Tags:      taskTags,
		}
		if mode == ImportModeRecurringMerge {
			task.Completed = false
			task.Role = models.RoleTemplate
		} else {
			task.Completed = parseBool(field("completed"))
			task.Role = models.RoleFromFlags(parseBool(field("isfortoday")), parseBool(field("isrecurring")))
		}
		out = append(out, task)
	}
	return out, nil
}

func splitTags(field string) []string {
	if field == "" {
		return nil
	}
	parts := strings.Split(field, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
