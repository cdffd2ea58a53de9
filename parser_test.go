package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLog_HeaderClassification(t *testing.T) {
	text := `[2024.01.01-14.22.33:123][  0]LogCook: Error: Missing Texture
    at /Game/Textures/T_Rock
[2024.01.01-14.22.34:456][  1]LogTemp: Display: Hello`

	result := ParseLog(text)

	if len(result.Records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(result.Records))
	}

	if !result.Records[0].IsHeader {
		t.Error("Expected first record to be a header")
	}
	if result.Records[1].IsHeader {
		t.Error("Expected second record to be a continuation")
	}
	if !result.Records[2].IsHeader {
		t.Error("Expected third record to be a header")
	}

	// Continuation display text carries the fixed indent
	if !strings.HasPrefix(result.Records[1].Text, continuationIndent) {
		t.Errorf("Expected continuation text to be indented, got '%s'", result.Records[1].Text)
	}
}

func TestParseLog_SeverityDetection(t *testing.T) {
	testCases := []struct {
		line        string
		expected    Severity
		description string
	}{
		{
			line:        "[0]LogCook: Error: bad texture",
			expected:    Error,
			description: "Should detect Error marker",
		},
		{
			line:        "[0]LogInit: Critical: out of memory",
			expected:    Error,
			description: "Should map Critical to Error",
		},
		{
			line:        "[0]LogCore: Fatal: assertion failed",
			expected:    Error,
			description: "Should map Fatal to Error",
		},
		{
			line:        "[0]LogShader: Warning: slow compile",
			expected:    Warning,
			description: "Should detect Warning marker",
		},
		{
			line:        "[0]LogTemp: Display: all good",
			expected:    Info,
			description: "Should default to Info",
		},
		{
			line:        "[0]LogTemp: error: lowercase marker",
			expected:    Info,
			description: "Markers are case-sensitive",
		},
		{
			line:        "[0]LogCook: Warning: followed by Error: text",
			expected:    Error,
			description: "Error check runs before Warning",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			result := ParseLog(tc.line)
			if len(result.Records) != 1 {
				t.Fatalf("Expected 1 record, got %d", len(result.Records))
			}
			if result.Records[0].Severity != tc.expected {
				t.Errorf("Expected severity %v, got %v for line: %s",
					tc.expected, result.Records[0].Severity, tc.line)
			}
		})
	}
}

func TestParseLog_CategoryDetection(t *testing.T) {
	testCases := []struct {
		line        string
		expected    string
		description string
	}{
		{
			line:        "[2024.01.01-14.22.33:123][  0]LogCook: Error: bad",
			expected:    "LogCook",
			description: "Should extract category after closing bracket",
		},
		{
			line:        "[0] LogTemp: message",
			expected:    "LogTemp",
			description: "Should accept category after a space",
		},
		{
			line:        "[0]:LogStreaming: loading",
			expected:    "LogStreaming",
			description: "Should accept category after a colon",
		},
		{
			line:        "[0]MyLogThing: message",
			expected:    CategoryGeneral,
			description: "Should reject Log inside an unrelated word",
		},
		{
			line:        "[0] LogNoColonHere",
			expected:    CategoryGeneral,
			description: "Should reject a tag with no trailing colon",
		},
		{
			line:        "[0] plain message",
			expected:    CategoryGeneral,
			description: "Should default when Log is absent",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			result := ParseLog(tc.line)
			if len(result.Records) != 1 {
				t.Fatalf("Expected 1 record, got %d", len(result.Records))
			}
			if result.Records[0].Category != tc.expected {
				t.Errorf("Expected category '%s', got '%s' for line: %s",
					tc.expected, result.Records[0].Category, tc.line)
			}
		})
	}
}

func TestParseLog_ContinuationInheritance(t *testing.T) {
	text := `[0]LogCook: Error: bad texture
  some detail
  more detail
[1]LogTemp: Display: fine
  trailing detail`

	result := ParseLog(text)
	if len(result.Records) != 5 {
		t.Fatalf("Expected 5 records, got %d", len(result.Records))
	}

	for _, i := range []int{1, 2} {
		if result.Records[i].Severity != Error {
			t.Errorf("Expected record %d to inherit Error severity, got %v", i, result.Records[i].Severity)
		}
		if result.Records[i].Category != "LogCook" {
			t.Errorf("Expected record %d to inherit LogCook category, got '%s'", i, result.Records[i].Category)
		}
	}

	if result.Records[4].Severity != Info {
		t.Errorf("Expected last continuation to inherit Info, got %v", result.Records[4].Severity)
	}
	if result.Records[4].Category != "LogTemp" {
		t.Errorf("Expected last continuation to inherit LogTemp, got '%s'", result.Records[4].Category)
	}
}

func TestParseLog_MalformedLeadingContent(t *testing.T) {
	// Continuations before any header keep the engine defaults
	text := `orphan line one
orphan line two
[0]LogTemp: Display: first header`

	result := ParseLog(text)
	if len(result.Records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(result.Records))
	}

	for _, i := range []int{0, 1} {
		if result.Records[i].IsHeader {
			t.Errorf("Expected record %d to be a continuation", i)
		}
		if result.Records[i].Severity != Info {
			t.Errorf("Expected record %d to default to Info, got %v", i, result.Records[i].Severity)
		}
		if result.Records[i].Category != CategoryGeneral {
			t.Errorf("Expected record %d to default to General, got '%s'", i, result.Records[i].Category)
		}
	}
}

func TestParseLog_Fingerprints(t *testing.T) {
	// Same message, different timestamps: identical fingerprints
	text := `[2024.01.01-14.22.33:123][  0]LogCook: Error: bad texture
[2024.01.01-18.40.01:987][999]LogCook: Error: bad texture
[2024.01.01-14.22.34:456][  1]LogCook: Error: other problem
  continuation detail`

	result := ParseLog(text)
	records := result.Records

	if records[0].Fingerprint != records[1].Fingerprint {
		t.Error("Expected identical fingerprints for the same message under different timestamps")
	}
	if records[0].Fingerprint == records[2].Fingerprint {
		t.Error("Expected different fingerprints for different messages")
	}
	if records[3].Fingerprint != NoFingerprint {
		t.Errorf("Expected continuation to carry the no-fingerprint sentinel, got %d", records[3].Fingerprint)
	}
}

func TestParseLog_SequenceIndices(t *testing.T) {
	// Blank lines are dropped and do not consume an index
	text := "[0]LogA: one\n\n\n  child\n\n[1]LogB: two\n"

	result := ParseLog(text)
	if len(result.Records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(result.Records))
	}

	for i, record := range result.Records {
		if record.SequenceIndex != i {
			t.Errorf("Expected sequence index %d at position %d, got %d", i, i, record.SequenceIndex)
		}
	}
}

func TestParseLog_SummaryMarker(t *testing.T) {
	text := `[0]LogCook: Error: bad texture
[1]LogTemp: Display: fine

Warning/Error Summary (Unique only)
[0]LogCook: Error: bad texture`

	result := ParseLog(text)
	if len(result.Records) != 2 {
		t.Fatalf("Expected parsing to stop at the summary marker, got %d records", len(result.Records))
	}
}

func TestParseLog_Categories(t *testing.T) {
	text := `[0]LogTemp: one
[1]LogCook: two
[2]plain header
[3]LogCook: three`

	result := ParseLog(text)

	expected := []string{CategoryAll, CategoryGeneral, "LogCook", "LogTemp"}
	if len(result.Categories) != len(expected) {
		t.Fatalf("Expected %d categories, got %v", len(expected), result.Categories)
	}
	for i, name := range expected {
		if result.Categories[i] != name {
			t.Errorf("Expected category %d to be '%s', got '%s'", i, name, result.Categories[i])
		}
	}
}

func TestParseLog_SeverityCounts(t *testing.T) {
	text := `[0]LogA: Error: one
  child of error
[1]LogB: Warning: two
[2]LogC: three`

	result := ParseLog(text)

	if result.SeverityCounts[Error] != 2 {
		t.Errorf("Expected 2 Error records, got %d", result.SeverityCounts[Error])
	}
	if result.SeverityCounts[Warning] != 1 {
		t.Errorf("Expected 1 Warning record, got %d", result.SeverityCounts[Warning])
	}
	if result.SeverityCounts[Info] != 1 {
		t.Errorf("Expected 1 Info record, got %d", result.SeverityCounts[Info])
	}
}

func TestParseLog_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "\n\n\n", "Warning/Error Summary"} {
		result := ParseLog(text)
		if len(result.Records) != 0 {
			t.Errorf("Expected no records for input %q, got %d", text, len(result.Records))
		}
		if len(result.Categories) != 1 || result.Categories[0] != CategoryAll {
			t.Errorf("Expected only the All category for input %q, got %v", text, result.Categories)
		}
	}
}

func TestLoadLogFile(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.log")

	testData := `[0]LogCook: Error: bad texture
  continuation info
[1]LogTemp: Display: fine
`
	if err := os.WriteFile(testFile, []byte(testData), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	result, err := LoadLogFile(testFile)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(result.Records) != 3 {
		t.Errorf("Expected 3 records, got %d", len(result.Records))
	}
}

func TestLoadLogFile_Unreadable(t *testing.T) {
	result, err := LoadLogFile("/nonexistent/path/to.log")
	if err == nil {
		t.Error("Expected an error for an unreadable file")
	}
	if len(result.Records) != 0 {
		t.Errorf("Expected an empty result, got %d records", len(result.Records))
	}
	if len(result.Categories) != 1 || result.Categories[0] != CategoryAll {
		t.Errorf("Expected only the All category, got %v", result.Categories)
	}
}

func BenchmarkParseLog(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 1000; i++ {
		sb.WriteString("[2024.01.01-14.22.33:123][  0]LogCook: Warning: repeated build warning\n")
		sb.WriteString("  with a continuation line\n")
	}
	text := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ParseLog(text)
	}
}
