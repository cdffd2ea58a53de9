package main

import "strings"

// skipState drives duplicate-block suppression. Transitions happen only on
// header records; continuations inherit whatever state their header set.
type skipState int

const (
	passing skipState = iota
	skippingBlock
)

// ComputeView returns the sequence indices visible under the given filters,
// in ingestion order. Pure function of its inputs, one linear pass.
func ComputeView(records []LogRecord, filter FilterState) []int {
	view := make([]int, 0, len(records))
	search := strings.ToLower(filter.Search)

	seen := make(map[uint64]struct{})
	state := passing

	for i := range records {
		record := &records[i]

		if record.IsHeader {
			if filter.HideDuplicates {
				if _, dup := seen[record.Fingerprint]; dup {
					state = skippingBlock
				} else {
					state = passing
					seen[record.Fingerprint] = struct{}{}
				}
			} else {
				state = passing
			}
		}
		if state == skippingBlock {
			continue
		}

		switch record.Severity {
		case Error:
			if !filter.ShowErrors {
				continue
			}
		case Warning:
			if !filter.ShowWarnings {
				continue
			}
		case Info:
			if !filter.ShowInfo {
				continue
			}
		}

		if filter.Category != CategoryAll && record.Category != filter.Category {
			continue
		}

		if search != "" && !strings.Contains(strings.ToLower(record.Text), search) {
			continue
		}

		view = append(view, record.SequenceIndex)
	}

	return view
}
