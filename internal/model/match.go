package model

// Match represents a single unsafe AXUIElementCopyAttributeValue call site.
type Match struct {
	Element   string // The target expression (first call argument, trimmed)
	Attribute string // The attribute name literal (e.g. AXTitle)
	VarRef    string // The output variable reference (after the &, trimmed)
	FullMatch string // The complete matched call text
	Context   string // Surrounding file text (up to 100 chars either side)
	Start     int    // Byte offset of the match start within the file
	End       int    // Byte offset just past the match end
	Line      int    // 1-based line number of the match start
	Suggested string // The SafeAttributeAccess replacement expression
}

// FileReport holds the matches found in one scanned file.
type FileReport struct {
	Path    string // Path relative to the scan root
	Matches []Match
}

// SkippedFile records a file that carried the source suffix but could not be read.
type SkippedFile struct {
	Path   string
	Reason string
}

// ScanResult contains the processed data from a full directory scan.
type ScanResult struct {
	Root         string       // The scan root as given on the command line
	FilesScanned int          // Number of Swift files enumerated
	Files        []FileReport // Files with at least one match, in scan order
	TotalMatches int
	Skipped      []SkippedFile
}

// FilesAffected returns the number of distinct files containing matches.
func (r ScanResult) FilesAffected() int {
	return len(r.Files)
}
