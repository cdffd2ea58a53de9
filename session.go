package main

// Session owns one ingested log and everything derived from it: the record
// sequence, the category set, the filter criteria, the computed view and
// the selection. All mutation goes through explicit calls on the session;
// there is no process-global state and nothing runs concurrently.
type Session struct {
	records        []LogRecord
	categories     []string
	severityCounts map[Severity]int

	filter    FilterState
	view      []int
	selection *Selection
}

func NewSession() *Session {
	s := &Session{
		categories:     []string{CategoryAll},
		severityCounts: make(map[Severity]int),
		filter:         DefaultFilterState(),
		selection:      NewSelection(),
	}
	s.Refilter()
	return s
}

// Load replaces the session contents with a fresh parse result. Filters
// survive a reload; view and selection are rederived.
func (s *Session) Load(result ParseResult) {
	s.records = result.Records
	s.categories = result.Categories
	s.severityCounts = result.SeverityCounts
	if !s.hasCategory(s.filter.Category) {
		s.filter.Category = CategoryAll
	}
	s.Refilter()
}

// Refilter recomputes the view from scratch and clears the selection,
// whose rows would otherwise point into the previous view.
func (s *Session) Refilter() {
	s.view = ComputeView(s.records, s.filter)
	s.selection.Clear()
}

func (s *Session) Records() []LogRecord { return s.records }

func (s *Session) View() []int { return s.view }

func (s *Session) Selection() *Selection { return s.selection }

func (s *Session) Filter() FilterState { return s.filter }

func (s *Session) Categories() []string { return s.categories }

func (s *Session) SeverityCount(sev Severity) int { return s.severityCounts[sev] }

// RecordAt resolves a visible row to its raw record.
func (s *Session) RecordAt(row int) (LogRecord, bool) {
	if row < 0 || row >= len(s.view) {
		return LogRecord{}, false
	}
	return s.records[s.view[row]], true
}

// SetFilter replaces the whole criteria set at once, used when seeding a
// session from CLI flags.
func (s *Session) SetFilter(f FilterState) {
	s.filter = f
	if !s.hasCategory(s.filter.Category) {
		s.filter.Category = CategoryAll
	}
	s.Refilter()
}

func (s *Session) ToggleSeverity(sev Severity) {
	switch sev {
	case Error:
		s.filter.ShowErrors = !s.filter.ShowErrors
	case Warning:
		s.filter.ShowWarnings = !s.filter.ShowWarnings
	case Info:
		s.filter.ShowInfo = !s.filter.ShowInfo
	}
	s.Refilter()
}

func (s *Session) ToggleDuplicates() {
	s.filter.HideDuplicates = !s.filter.HideDuplicates
	s.Refilter()
}

func (s *Session) SetSearch(text string) {
	s.filter.Search = text
	s.Refilter()
}

// SetCategory applies an exact category filter. Unknown names fall back to
// the wildcard.
func (s *Session) SetCategory(category string) {
	if !s.hasCategory(category) {
		category = CategoryAll
	}
	s.filter.Category = category
	s.Refilter()
}

// CycleCategory steps through the category set in sorted order, wrapping
// at both ends. Step is +1 or -1.
func (s *Session) CycleCategory(step int) {
	if len(s.categories) == 0 {
		return
	}
	current := 0
	for i, name := range s.categories {
		if name == s.filter.Category {
			current = i
			break
		}
	}
	next := (current + step + len(s.categories)) % len(s.categories)
	s.filter.Category = s.categories[next]
	s.Refilter()
}

// Context returns the raw records around the current context focus along
// with the raw index of the first one. Nil when no focus is set.
func (s *Session) Context(radius int) (int, []LogRecord) {
	focus := s.selection.Focus()
	if focus < 0 || focus >= len(s.records) {
		return 0, nil
	}
	start, end := ContextWindow(focus, len(s.records), radius)
	return start, s.records[start : end+1]
}

func (s *Session) hasCategory(name string) bool {
	for _, c := range s.categories {
		if c == name {
			return true
		}
	}
	return false
}
