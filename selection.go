package main

import (
	"sort"
	"strings"
)

// Selection tracks selected rows by their position in the current view,
// never by raw sequence index. A view change invalidates every row, so the
// owning session clears the selection whenever it refilters.
type Selection struct {
	rows   map[int]struct{}
	anchor int // last activated visible index, -1 when unset
	focus  int // raw sequence index for the context inspector, -1 when unset
}

func NewSelection() *Selection {
	return &Selection{
		rows:   make(map[int]struct{}),
		anchor: -1,
		focus:  -1,
	}
}

func (s *Selection) Clear() {
	s.rows = make(map[int]struct{})
	s.anchor = -1
	s.focus = -1
}

// Toggle flips membership of a visible row and moves the anchor there.
func (s *Selection) Toggle(row int) {
	if _, ok := s.rows[row]; ok {
		delete(s.rows, row)
	} else {
		s.rows[row] = struct{}{}
	}
	s.anchor = row
}

// SelectRange replaces the selection with the inclusive range between the
// anchor and the given row, in either direction. The anchor stays put so a
// second range keystroke extends from the same origin. Without an anchor
// this is a no-op; callers fall back to a plain Select.
func (s *Selection) SelectRange(row int) {
	if s.anchor < 0 {
		return
	}
	start, end := s.anchor, row
	if start > end {
		start, end = end, start
	}
	s.rows = make(map[int]struct{})
	for n := start; n <= end; n++ {
		s.rows[n] = struct{}{}
	}
}

// Select replaces the selection with a single row, makes it the anchor and
// records the underlying record's raw index as the context focus.
func (s *Selection) Select(row, rawIndex int) {
	s.rows = map[int]struct{}{row: {}}
	s.anchor = row
	s.focus = rawIndex
}

func (s *Selection) Contains(row int) bool {
	_, ok := s.rows[row]
	return ok
}

func (s *Selection) Len() int { return len(s.rows) }

// Rows returns the selected visible indices in ascending order.
func (s *Selection) Rows() []int {
	rows := make([]int, 0, len(s.rows))
	for row := range s.rows {
		rows = append(rows, row)
	}
	sort.Ints(rows)
	return rows
}

func (s *Selection) Anchor() int { return s.anchor }

func (s *Selection) Focus() int { return s.focus }

// ContextWindow returns the inclusive raw-index bounds of up to radius
// records on each side of the focus, clamped to the record count. The
// window always reflects true raw neighbors regardless of active filters.
func ContextWindow(focus, total, radius int) (start, end int) {
	start = focus - radius
	if start < 0 {
		start = 0
	}
	end = focus + radius
	if end > total-1 {
		end = total - 1
	}
	return start, end
}

// CleanLogLine strips the leading timestamp decoration for export: drop
// everything through the first ']' when it occurs within the first 40
// characters, then trim leading spaces and '>' markers.
func CleanLogLine(line string) string {
	bracket := strings.IndexByte(line, ']')
	if bracket < 0 || bracket >= 40 {
		return line
	}
	return strings.TrimLeft(line[bracket+1:], " >")
}

// ExportRecord wraps one cleaned line in a fenced block, the context-menu
// "Copy" shape.
func ExportRecord(record LogRecord) string {
	return "```\n" + CleanLogLine(record.Text) + "\n```"
}

// ExportSelection resolves each selected visible row through the view to
// its raw record, cleans the lines and joins them inside one fence.
// Returns "" when nothing is selected.
func ExportSelection(sel *Selection, view []int, records []LogRecord) string {
	rows := sel.Rows()
	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("```\n")
	for _, row := range rows {
		if row < 0 || row >= len(view) {
			continue
		}
		b.WriteString(CleanLogLine(records[view[row]].Text))
		b.WriteString("\n")
	}
	b.WriteString("```")
	return b.String()
}
