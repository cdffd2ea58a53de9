package main

import (
	"os"
	"sort"
	"strings"

	"github.com/zeebo/xxh3"
)

// summaryMarker ends useful content. Unreal appends a recap of every
// warning and error after this line; everything past it is noise.
const summaryMarker = "Warning/Error Summary"

// ParseResult is the full output of one ingestion pass.
type ParseResult struct {
	Records []LogRecord
	// Categories is sorted, with CategoryAll always first.
	Categories     []string
	SeverityCounts map[Severity]int
}

// ParseLog classifies raw log text into an ordered record sequence. It never
// fails: malformed or empty input yields a partial or empty result. Blank
// lines are skipped and do not consume a sequence index.
func ParseLog(text string) ParseResult {
	result := ParseResult{
		SeverityCounts: make(map[Severity]int),
	}
	categories := map[string]struct{}{}

	// Continuation lines inherit from the nearest preceding header. A file
	// with content before any header keeps these defaults.
	currentSeverity := Info
	currentCategory := CategoryGeneral

	seq := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.Contains(line, summaryMarker) {
			break
		}
		if line == "" {
			continue
		}

		record := LogRecord{SequenceIndex: seq}

		if line[0] == '[' {
			record.IsHeader = true
			record.Text = line
			record.Severity = detectSeverity(line)
			logPos := strings.Index(line, "Log")
			record.Category = detectCategory(line, logPos)
			record.Fingerprint = fingerprintHeader(line, logPos)

			currentSeverity = record.Severity
			currentCategory = record.Category
		} else {
			record.Text = continuationIndent + line
			record.Severity = currentSeverity
			record.Category = currentCategory
			record.Fingerprint = NoFingerprint
		}

		result.Records = append(result.Records, record)
		result.SeverityCounts[record.Severity]++
		categories[record.Category] = struct{}{}
		seq++
	}

	result.Categories = sortedCategories(categories)
	return result
}

// LoadLogFile reads and parses a log file. An unreadable file yields an
// empty result together with the error; callers may surface the error or
// simply show nothing.
func LoadLogFile(path string) (ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ParseResult{
			Categories:     []string{CategoryAll},
			SeverityCounts: make(map[Severity]int),
		}, err
	}
	return ParseLog(string(data)), nil
}

// detectSeverity scans for the engine's severity markers. Checks are
// case-sensitive and run in fixed order; first match wins.
func detectSeverity(line string) Severity {
	if strings.Contains(line, "Error:") ||
		strings.Contains(line, "Critical:") ||
		strings.Contains(line, "Fatal:") {
		return Error
	}
	if strings.Contains(line, "Warning:") {
		return Warning
	}
	return Info
}

// detectCategory extracts the category tag from a header line given the
// position of the first "Log" occurrence (-1 when absent). "Log" only
// counts as a tag when preceded by ']', space or ':', which guards against
// matching inside unrelated words, and only when a ':' follows it.
func detectCategory(line string, logPos int) string {
	if logPos <= 0 {
		return CategoryGeneral
	}
	switch line[logPos-1] {
	case ']', ' ', ':':
	default:
		return CategoryGeneral
	}
	colon := strings.IndexByte(line[logPos:], ':')
	if colon < 0 {
		return CategoryGeneral
	}
	return line[logPos : logPos+colon]
}

// fingerprintHeader hashes the message content of a header line, starting
// at the first "Log" occurrence so the leading timestamp decoration never
// participates. Two occurrences of the same message with different
// timestamps therefore fingerprint identically. xxh3 collisions would fold
// distinct blocks together; tolerable for a view-level dedup heuristic.
func fingerprintHeader(line string, logPos int) uint64 {
	if logPos >= 0 {
		return xxh3.HashString(line[logPos:])
	}
	return xxh3.HashString(line)
}

func sortedCategories(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return append([]string{CategoryAll}, names...)
}
