package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"axscan/internal/model"
	"axscan/internal/scan"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	suggestStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("78")) // Green

	unsafeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange

	attrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")). // Sky Blue/Cyan
			Bold(true)
)

func (m AppModel) View() string {
	if m.Loading {
		return fmt.Sprintf("\n  Scanning %s for unsafe calls... please wait.\n", m.Root)
	}
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n", m.Err)
	}

	// Layout dimensions
	// Subtracting 6 for horizontal margin (borders x2 + buffer)
	// Subtracting 6 for vertical margin (title, footer, borders)
	width := m.WindowSize.Width
	height := m.WindowSize.Height

	netWidth := width - 6
	if netWidth < 20 {
		netWidth = 20
	}

	leftWidth := netWidth / 2
	rightWidth := netWidth - leftWidth

	boxHeight := height - 6
	if boxHeight < 6 {
		boxHeight = 6
	}
	interiorHeight := boxHeight - 2
	if interiorHeight < 2 {
		interiorHeight = 2
	}

	listTitleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	normalStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	borderColor := lipgloss.Color("63")

	// LEFT PANEL: Match List
	var leftView strings.Builder
	leftView.WriteString(listTitleStyle.Render(fmt.Sprintf("Unsafe Calls (%d)", len(m.Rows))))
	leftView.WriteString("\n\n")

	// Windowing Logic for Left Panel
	// Header is 2 lines (Title + 1 blank line)
	visibleItems := interiorHeight - 2
	if visibleItems < 1 {
		visibleItems = 1
	}
	startIdx := 0
	endIdx := len(m.FilteredIndices)

	if len(m.FilteredIndices) > visibleItems {
		if m.SelectedIdx >= visibleItems/2 {
			startIdx = m.SelectedIdx - (visibleItems / 2)
		}
		if startIdx < 0 {
			startIdx = 0
		}
		if startIdx+visibleItems > len(m.FilteredIndices) {
			startIdx = len(m.FilteredIndices) - visibleItems
		}
		endIdx = startIdx + visibleItems
	}

	for i := startIdx; i < endIdx; i++ {
		idx := m.FilteredIndices[i]
		row := m.Rows[idx]

		line := fmt.Sprintf("%3d. %s %s:%d %s",
			idx+1, kindIcon(row.Match.Attribute), row.FilePath, row.Match.Line, row.Match.Attribute)

		// Truncate
		if len(line) > leftWidth-2 {
			line = line[:leftWidth-5] + "..."
		}

		var style lipgloss.Style
		if i == m.SelectedIdx {
			style = selectedStyle
		} else {
			style = normalStyle
		}

		leftView.WriteString(style.Render(line))
		leftView.WriteString("\n")
	}

	if len(m.FilteredIndices) == 0 {
		if m.SearchActive {
			leftView.WriteString(dimStyle.Render("No matches for filter."))
		} else {
			leftView.WriteString(dimStyle.Render("No unsafe calls found. 🎉"))
		}
	}

	left := lipgloss.NewStyle().
		Width(leftWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Render(strings.TrimSuffix(leftView.String(), "\n"))

	// RIGHT PANEL: Match Details
	var rightView strings.Builder
	rightView.WriteString(listTitleStyle.Render("Details"))
	rightView.WriteString("\n\n")

	if m.SelectedIdx < len(m.FilteredIndices) {
		row := m.Rows[m.FilteredIndices[m.SelectedIdx]]
		match := row.Match

		rightView.WriteString(fmt.Sprintf("File:      %s\n", row.FilePath))
		rightView.WriteString(fmt.Sprintf("Line:      %d (match %d in file)\n", match.Line, row.Index))
		rightView.WriteString(fmt.Sprintf("Attribute: %s\n", attrStyle.Render(match.Attribute)))
		rightView.WriteString(fmt.Sprintf("Element:   %s\n", match.Element))
		rightView.WriteString(fmt.Sprintf("Output:    &%s\n", match.VarRef))
		rightView.WriteString("\nCurrent:\n")
		rightView.WriteString(unsafeStyle.Render("  " + match.FullMatch))
		rightView.WriteString("\n\nSuggested:\n")
		rightView.WriteString(suggestStyle.Render("  " + match.Suggested))

		// Source context read fresh from disk so it survives edits made
		// while the browser is open.
		ctx := model.GetLineContext(filepath.Join(m.Root, row.FilePath), match.Line)
		rightView.WriteString("\n\nSource:\n")
		if ctx.ErrorMsg != "" {
			rightView.WriteString(dimStyle.Render("  " + ctx.ErrorMsg))
		} else {
			rightView.WriteString(renderLineContext(ctx))
		}
	} else {
		rightView.WriteString(dimStyle.Render("Nothing selected."))
	}

	if len(m.ScanResult.Skipped) > 0 {
		rightView.WriteString(fmt.Sprintf("\n\n%s %d file(s) could not be read.",
			model.IconSkipped, len(m.ScanResult.Skipped)))
	}

	// Line slicing for the details pane
	lines := strings.Split(strings.TrimSuffix(rightView.String(), "\n"), "\n")
	if len(lines) > interiorHeight {
		lines = lines[:interiorHeight]
	}
	var detail strings.Builder
	for i, line := range lines {
		if lipgloss.Width(line) > rightWidth {
			line = line[:rightWidth-4] + "..."
		}
		detail.WriteString(line)
		if i < len(lines)-1 {
			detail.WriteString("\n")
		}
	}

	right := lipgloss.NewStyle().
		Width(rightWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Render(detail.String())

	// Footer
	help := "Help: ↑/↓: Navigate • g/G: First/Last • /: Filter • q: Quit"
	footer := "\n\n" + help
	if m.InputMode {
		footer = fmt.Sprintf("\n\nFilter: %s", m.InputBuffer.View())
	} else if m.SearchActive {
		footer = fmt.Sprintf("\n\nFilter: %q (%d of %d) • Esc: Clear • q: Quit",
			m.InputBuffer.Value(), len(m.FilteredIndices), len(m.Rows))
	}

	header := titleStyle.Render("axscan — unsafe accessibility call browser") + "\n"

	return header + lipgloss.JoinHorizontal(lipgloss.Top, left, right) + footer
}

func renderLineContext(ctx model.LineContext) string {
	var b strings.Builder
	writeLine := func(num int, text string, target bool) {
		line := fmt.Sprintf("  %4d │ %s", num, text)
		if target {
			b.WriteString(unsafeStyle.Render(line))
		} else {
			b.WriteString(dimStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if ctx.HasBefore2 {
		writeLine(ctx.LineNumber-2, ctx.Before2, false)
	}
	if ctx.HasBefore1 {
		writeLine(ctx.LineNumber-1, ctx.Before1, false)
	}
	writeLine(ctx.LineNumber, ctx.Target, true)
	if ctx.HasAfter1 {
		writeLine(ctx.LineNumber+1, ctx.After1, false)
	}
	if ctx.HasAfter2 {
		writeLine(ctx.LineNumber+2, ctx.After2, false)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func kindIcon(attribute string) string {
	switch scan.ClassifyAttribute(attribute) {
	case scan.KindArray:
		return model.IconArray
	case scan.KindString:
		return model.IconString
	case scan.KindBool:
		return model.IconBool
	case scan.KindRect, scan.KindPoint, scan.KindSize:
		return model.IconGeom
	default:
		return model.IconGeneric
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, InitScanCmd(m.Root))
}
