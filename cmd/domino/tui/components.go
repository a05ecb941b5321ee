package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationDialog represents a yes/no confirmation dialog
type ConfirmationDialog struct {
	Title       string
	Message     string
	YesSelected bool
}

// confirmedMsg is sent when the dialog is answered.
type confirmedMsg struct {
	yes bool
}

// NewConfirmationDialog creates a new confirmation dialog with Yes preselected
func NewConfirmationDialog(title, message string) ConfirmationDialog {
	return ConfirmationDialog{
		Title:       title,
		Message:     message,
		YesSelected: true,
	}
}

// Update handles confirmation dialog updates
func (d *ConfirmationDialog) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "left", "h", "y":
		d.YesSelected = true
	case "right", "l", "n":
		d.YesSelected = false
	case "enter":
		yes := d.YesSelected
		return func() tea.Msg { return confirmedMsg{yes: yes} }
	}
	return nil
}

// View renders the confirmation dialog
func (d ConfirmationDialog) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(d.Title))
	b.WriteString("\n\n")
	b.WriteString(d.Message)
	b.WriteString("\n\n")

	yesButton := inactiveButtonStyle.Render("Yes")
	noButton := inactiveButtonStyle.Render("No")

	if d.YesSelected {
		yesButton = activeButtonStyle.Render("Yes")
	} else {
		noButton = activeButtonStyle.Render("No")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Left, yesButton, "  ", noButton))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(FormatKey("←/→", "navigate") + " • " + FormatKey("enter", "confirm") + " • " + FormatKey("esc", "back")))

	return boxStyle.Render(b.String())
}

// TableItem is a table in the picker list
type TableItem struct {
	Name     string
	Model    string
	Selected bool
}

func (i TableItem) FilterValue() string { return i.Name }
func (i TableItem) Title() string       { return i.Name }
func (i TableItem) Description() string { return "→ " + i.Model }

// TableItemDelegate renders a table with its checkbox and model name
type TableItemDelegate struct{}

func (d TableItemDelegate) Height() int                             { return 1 }
func (d TableItemDelegate) Spacing() int                            { return 0 }
func (d TableItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d TableItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(TableItem)
	if !ok {
		return
	}

	box := "[ ]"
	if i.Selected {
		box = checkedStyle.Render("[x]")
	}
	line := fmt.Sprintf("%s %s %s", box, i.Title(), mutedStyle.Render(i.Description()))

	if index == m.Index() {
		_, _ = fmt.Fprint(w, selectedItemStyle.Render("▸ "+line))
		return
	}
	_, _ = fmt.Fprint(w, unselectedItemStyle.Render("  "+line))
}
