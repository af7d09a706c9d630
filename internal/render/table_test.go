package render

import "testing"

func TestFormatTableAlignsWideRunes(t *testing.T) {
	headers := []string{"Field", "Value"}
	rows := [][]string{
		{"StatMode", "行统计"},
		{"TargetNumber", "8"},
	}

	lines := formatTable(headers, rows)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Field         Value" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "StatMode      行统计" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "TargetNumber  8" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}
