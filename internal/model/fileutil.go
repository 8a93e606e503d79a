package model

import (
	"fmt"
	"os"
	"strings"
)

// LineContext represents a line from a scanned file with surrounding context,
// used by the TUI detail pane and the web API.
type LineContext struct {
	Before2    string // Two lines before the target
	Before1    string // Line before the target
	Target     string // The actual target line
	After1     string // Line after the target
	After2     string // Two lines after the target
	LineNumber int    // Line number of the target
	HasBefore2 bool
	HasBefore1 bool
	HasAfter1  bool
	HasAfter2  bool
	ErrorMsg   string // Error message if the file couldn't be read
}

// GetLineContext reads a file and returns the target line with up to two
// lines of context on each side.
func GetLineContext(filePath string, lineNumber int) LineContext {
	result := LineContext{LineNumber: lineNumber}

	content, err := os.ReadFile(filePath)
	if err != nil {
		result.ErrorMsg = fmt.Sprintf("Could not read file: %v", err)
		return result
	}

	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")

	if lineNumber < 1 || lineNumber > len(lines) {
		result.ErrorMsg = fmt.Sprintf("Line %d out of range (file has %d lines)", lineNumber, len(lines))
		return result
	}

	// lineNumber is 1-based, lines is 0-based
	result.Target = lines[lineNumber-1]

	if lineNumber > 2 {
		result.Before2 = lines[lineNumber-3]
		result.HasBefore2 = true
	}
	if lineNumber > 1 {
		result.Before1 = lines[lineNumber-2]
		result.HasBefore1 = true
	}
	if lineNumber < len(lines) {
		result.After1 = lines[lineNumber]
		result.HasAfter1 = true
	}
	if lineNumber+1 < len(lines) {
		result.After2 = lines[lineNumber+1]
		result.HasAfter2 = true
	}

	return result
}

// LineOf returns the 1-based line number of a byte offset within content.
func LineOf(content string, offset int) int {
	if offset > len(content) {
		offset = len(content)
	}
	return 1 + strings.Count(content[:offset], "\n")
}
