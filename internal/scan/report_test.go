package scan

import (
	"strings"
	"testing"

	"axscan/internal/model"
)

func TestGenerateReport(t *testing.T) {
	result := model.ScanResult{
		Root:         "Sources",
		FilesScanned: 3,
		TotalMatches: 2,
		Files: []model.FileReport{
			{
				Path: "UIService.swift",
				Matches: []model.Match{
					{
						Element:   "element",
						Attribute: "AXTitle",
						FullMatch: `AXUIElementCopyAttributeValue(element, "AXTitle" as CFString, &titleRef)`,
						Suggested: `SafeAttributeAccess.getStringAttribute(element, attribute: "AXTitle")`,
						Context:   `  var titleRef: CFTypeRef?` + "\n" + `  AXUIElementCopyAttributeValue(element, "AXTitle" as CFString, &titleRef)`,
					},
					{
						Element:   "button",
						Attribute: "AXFrame",
						FullMatch: `AXUIElementCopyAttributeValue(button, "AXFrame" as CFString, &frameRef)`,
						Suggested: `SafeAttributeAccess.getRectAttribute(button, attribute: "AXFrame")`,
						Context:   `AXUIElementCopyAttributeValue(button, "AXFrame" as CFString, &frameRef)`,
					},
				},
			},
		},
	}

	report := GenerateReport(result)

	for _, want := range []string{
		"Analyzing 3 Swift files...",
		"=== UIService.swift ===",
		"Found 2 unsafe calls:",
		"1. Line area around unsafe call:",
		"   Attribute: AXTitle",
		"   Element: element",
		`   Current: AXUIElementCopyAttributeValue(element, "AXTitle" as CFString, &titleRef)`,
		`   Suggested: SafeAttributeAccess.getStringAttribute(element, attribute: "AXTitle")`,
		"2. Line area around unsafe call:",
		"   Attribute: AXFrame",
		"=== SUMMARY ===",
		"Total unsafe calls found: 2",
		"Files affected: 1",
		"Next steps:",
		"1. Review suggestions above",
		"2. Update SafeAttributeAccess.swift if needed",
		"3. Replace calls systematically, testing as you go",
		"4. Focus on high-impact files first (UIInteractionService, ElementPath)",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q\n\n%s", want, report)
		}
	}
}

func TestGenerateReportTrimsAndTruncatesContext(t *testing.T) {
	long := "   " + strings.Repeat("a", 150)
	result := model.ScanResult{
		FilesScanned: 1,
		TotalMatches: 1,
		Files: []model.FileReport{
			{Path: "x.swift", Matches: []model.Match{{Context: long}}},
		},
	}

	report := GenerateReport(result)
	want := "   Context: ..." + strings.Repeat("a", 100) + "...\n"
	if !strings.Contains(report, want) {
		t.Errorf("context not trimmed and truncated to 100 chars:\n%s", report)
	}
}

func TestGenerateReportEmptyScan(t *testing.T) {
	report := GenerateReport(model.ScanResult{})

	if !strings.HasPrefix(report, "Analyzing 0 Swift files...\n") {
		t.Errorf("missing zero-file header:\n%s", report)
	}
	for _, want := range []string{
		"Total unsafe calls found: 0",
		"Files affected: 0",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}
	// No per-file block at all
	if strings.Contains(strings.Replace(report, "=== SUMMARY ===", "", 1), "=== ") {
		t.Errorf("zero-match report must not contain file blocks:\n%s", report)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 100, "short"},
		{strings.Repeat("x", 120), 100, strings.Repeat("x", 100)},
		{"héllо wörld", 5, "héllо"},
		{"", 100, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
