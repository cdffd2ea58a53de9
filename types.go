package main

import (
	"github.com/charmbracelet/lipgloss"
)

type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}

func (s Severity) Color() lipgloss.Color {
	switch s {
	case Warning:
		return lipgloss.Color("11") // Yellow
	case Error:
		return lipgloss.Color("9") // Red
	default:
		return lipgloss.Color("252") // Light Grey
	}
}

const (
	// CategoryAll is the selector wildcard, never attached to a record.
	CategoryAll = "All"
	// CategoryGeneral is assigned when no category tag can be detected.
	CategoryGeneral = "General"
)

// NoFingerprint marks continuation records. They never take part in
// duplicate detection on their own; only their owning header does.
const NoFingerprint uint64 = 0

// continuationIndent prefixes the display text of continuation lines.
const continuationIndent = "      "

// LogRecord is one classified line of the source file. Records are
// immutable after ingestion; filtering only selects subsets of indices.
type LogRecord struct {
	Text          string
	Category      string
	Severity      Severity
	Fingerprint   uint64
	IsHeader      bool
	SequenceIndex int
}

// FilterState holds the criteria the view is computed from. It is owned by
// the caller and read wholesale on every recomputation.
type FilterState struct {
	ShowErrors     bool
	ShowWarnings   bool
	ShowInfo       bool
	Category       string
	Search         string
	HideDuplicates bool
}

func DefaultFilterState() FilterState {
	return FilterState{
		ShowErrors:   true,
		ShowWarnings: true,
		ShowInfo:     true,
		Category:     CategoryAll,
	}
}

// Panel focus types
type PanelFocus int

const (
	LeftPanel PanelFocus = iota
	RightPanel
)

// View modes
type ViewMode int

const (
	ListView ViewMode = iota
	ContextView
)
