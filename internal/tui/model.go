package tui

import (
	"axscan/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// matchRef is a flattened pointer into the scan result: one row per match.
type matchRef struct {
	FilePath string
	Index    int // 1-based index of the match within its file
	Match    model.Match
}

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Root       string
	ScanResult model.ScanResult
	Rows       []matchRef
	Loading    bool
	Err        error

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// Search State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int // Indices of Rows to show
	SearchActive    bool

	// Components
	DetailsViewport viewport.Model
}

// InitialModel returns the initial state for a scan of root.
func InitialModel(root string) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Attribute or file..."
	ti.CharLimit = 50
	ti.Width = 24

	return AppModel{
		Root:        root,
		Loading:     true,
		InputBuffer: ti,
		SelectedIdx: 0,
	}
}
