package tui

import (
	"strings"

	"axscan/internal/model"
	"axscan/internal/scan"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgScanReady indicates that the scan has completed.
type MsgScanReady model.ScanResult

// MsgError indicates an error occurred.
type MsgError error

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.DetailsViewport.Width = msg.Width / 2
		m.DetailsViewport.Height = msg.Height - 4 // minus footer/header
		return m, nil

	case MsgScanReady:
		m.Loading = false
		m.ScanResult = model.ScanResult(msg)
		m.Rows = flattenMatches(m.ScanResult)
		// Auto-populate filtered indices with all
		m.FilteredIndices = make([]int, len(m.Rows))
		for i := range m.Rows {
			m.FilteredIndices[i] = i
		}
		m.SelectedIdx = 0
		return m, nil

	case MsgError:
		m.Err = msg
		m.Loading = false
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.performSearch()
				return m, nil
			case tea.KeyEsc:
				// Exit search mode and clear search
				m.InputMode = false
				m.InputBuffer.Blur()
				m.SearchActive = false
				m.InputBuffer.SetValue("")
				m.performSearch() // Reset filter to all
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.SearchActive {
				m.InputMode = false
				m.InputBuffer.Blur()
				m.SearchActive = false
				m.InputBuffer.SetValue("")
				m.performSearch()
				return m, nil
			}
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
		case "down", "j":
			if m.SelectedIdx < len(m.FilteredIndices)-1 {
				m.SelectedIdx++
			}
		case "g":
			m.SelectedIdx = 0
		case "G":
			if len(m.FilteredIndices) > 0 {
				m.SelectedIdx = len(m.FilteredIndices) - 1
			}
		case "/":
			m.InputMode = true
			m.InputBuffer.Focus()
			m.InputBuffer.SetValue("")
			return m, textinput.Blink
		}
	}

	return m, cmd
}

// performSearch filters the match rows by attribute name or file path.
func (m *AppModel) performSearch() {
	term := strings.ToLower(m.InputBuffer.Value())
	if term == "" {
		// Reset
		m.SearchActive = false
		m.FilteredIndices = make([]int, len(m.Rows))
		for i := range m.Rows {
			m.FilteredIndices[i] = i
		}
	} else {
		m.SearchActive = true
		var result []int
		for i, row := range m.Rows {
			if strings.Contains(strings.ToLower(row.Match.Attribute), term) ||
				strings.Contains(strings.ToLower(row.FilePath), term) {
				result = append(result, i)
			}
		}
		m.FilteredIndices = result
	}

	// Bounds check
	if m.SelectedIdx >= len(m.FilteredIndices) {
		if len(m.FilteredIndices) > 0 {
			m.SelectedIdx = len(m.FilteredIndices) - 1
		} else {
			m.SelectedIdx = 0
		}
	}
}

func flattenMatches(result model.ScanResult) []matchRef {
	var rows []matchRef
	for _, file := range result.Files {
		for i, match := range file.Matches {
			rows = append(rows, matchRef{
				FilePath: file.Path,
				Index:    i + 1,
				Match:    match,
			})
		}
	}
	return rows
}

// InitScanCmd runs the scan in the background.
func InitScanCmd(root string) tea.Cmd {
	return func() tea.Msg {
		scanner := scan.NewScanner()
		result, err := scanner.Run(root)
		if err != nil {
			return MsgError(err)
		}
		return MsgScanReady(result)
	}
}
