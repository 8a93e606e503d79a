package scan

import (
	"fmt"
	"strings"

	"axscan/internal/model"
)

// snippetLen bounds the context snippet printed per match.
const snippetLen = 100

// GenerateReport renders the scan result as the human-readable report text.
func GenerateReport(result model.ScanResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Analyzing %d Swift files...\n", result.FilesScanned)

	for _, file := range result.Files {
		fmt.Fprintf(&b, "\n=== %s ===\n", file.Path)
		fmt.Fprintf(&b, "Found %d unsafe calls:\n", len(file.Matches))

		for i, match := range file.Matches {
			fmt.Fprintf(&b, "\n%d. Line area around unsafe call:\n", i+1)
			fmt.Fprintf(&b, "   Attribute: %s\n", match.Attribute)
			fmt.Fprintf(&b, "   Element: %s\n", match.Element)
			fmt.Fprintf(&b, "   Current: %s\n", match.FullMatch)
			fmt.Fprintf(&b, "   Suggested: %s\n", match.Suggested)
			fmt.Fprintf(&b, "   Context: ...%s...\n", truncate(strings.TrimSpace(match.Context), snippetLen))
		}
	}

	fmt.Fprintf(&b, "\n=== SUMMARY ===\n")
	fmt.Fprintf(&b, "Total unsafe calls found: %d\n", result.TotalMatches)
	fmt.Fprintf(&b, "Files affected: %d\n", result.FilesAffected())

	fmt.Fprintf(&b, "\nNext steps:\n")
	fmt.Fprintf(&b, "1. Review suggestions above\n")
	fmt.Fprintf(&b, "2. Update SafeAttributeAccess.swift if needed\n")
	fmt.Fprintf(&b, "3. Replace calls systematically, testing as you go\n")
	fmt.Fprintf(&b, "4. Focus on high-impact files first (UIInteractionService, ElementPath)\n")

	return b.String()
}

// truncate cuts s to at most n characters (not bytes, so multi-byte source
// text doesn't get split mid-rune).
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
