// Package tui implements the interactive table picker for domino scaffold.
package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCanceled is returned by RunPicker when the user quits without confirming.
var ErrCanceled = errors.New("table selection canceled")

// PickerMode represents the current mode of the picker
type PickerMode int

const (
	ModeList PickerMode = iota
	ModeConfirm
	ModeDone
	ModeCanceled
)

// PickerModel is the Bubbletea model for choosing tables to scaffold
type PickerModel struct {
	mode         PickerMode
	list         list.Model
	confirmation ConfirmationDialog
	width        int
	height       int
}

// NewPickerModel creates a picker over items. Items keep their Selected state.
func NewPickerModel(items []TableItem) PickerModel {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	l := list.New(listItems, TableItemDelegate{}, 0, 0)
	l.Title = "Tables to scaffold"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return PickerModel{mode: ModeList, list: l}
}

// Init initializes the model
func (m PickerModel) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Mode returns the current mode
func (m PickerModel) Mode() PickerMode {
	return m.mode
}

// Selected returns the chosen table names in list order.
func (m PickerModel) Selected() []string {
	var names []string
	for _, item := range m.list.Items() {
		if t, ok := item.(TableItem); ok && t.Selected {
			names = append(names, t.Name)
		}
	}
	return names
}

// Update handles messages
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-4)
		return m, nil

	case confirmedMsg:
		if !msg.yes {
			m.mode = ModeList
			return m, nil
		}
		m.mode = ModeDone
		return m, tea.Quit

	case tea.KeyMsg:
		switch m.mode {
		case ModeList:
			if m.list.FilterState() == list.Filtering {
				break
			}
			switch msg.String() {
			case "ctrl+c", "q", "esc":
				m.mode = ModeCanceled
				return m, tea.Quit

			case " ", "x":
				m.toggle(m.list.Index())
				return m, nil

			case "a":
				m.toggleAll()
				return m, nil

			case "enter":
				selected := m.Selected()
				if len(selected) == 0 {
					return m, nil
				}
				m.confirmation = NewConfirmationDialog(
					"Confirm Scaffold",
					fmt.Sprintf("Generate repository, service, blueprint and controller for %d table(s)?", len(selected)),
				)
				m.mode = ModeConfirm
				return m, nil
			}

		case ModeConfirm:
			switch msg.String() {
			case "ctrl+c":
				m.mode = ModeCanceled
				return m, tea.Quit
			case "esc", "q":
				m.mode = ModeList
				return m, nil
			default:
				return m, m.confirmation.Update(msg)
			}
		}
	}

	if m.mode == ModeList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *PickerModel) toggle(index int) {
	items := m.list.Items()
	if index < 0 || index >= len(items) {
		return
	}
	item, ok := items[index].(TableItem)
	if !ok {
		return
	}
	item.Selected = !item.Selected
	m.list.SetItem(index, item)
}

// toggleAll selects every item, or clears them all when all are selected.
func (m *PickerModel) toggleAll() {
	items := m.list.Items()
	all := len(m.Selected()) == len(items)
	for i, it := range items {
		if item, ok := it.(TableItem); ok {
			item.Selected = !all
			m.list.SetItem(i, item)
		}
	}
}

// View renders the UI
func (m PickerModel) View() string {
	switch m.mode {
	case ModeList:
		help := helpStyle.Render(
			FormatKey("↑/↓", "navigate") + " • " +
				FormatKey("space", "toggle") + " • " +
				FormatKey("a", "all") + " • " +
				FormatKey("/", "filter") + " • " +
				FormatKey("enter", "scaffold") + " • " +
				FormatKey("q", "quit"),
		)
		return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), help)

	case ModeConfirm:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirmation.View())
	}

	return ""
}

// RunPicker shows the picker and returns the chosen tables.
func RunPicker(items []TableItem) ([]string, error) {
	final, err := tea.NewProgram(NewPickerModel(items)).Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(PickerModel)
	if !ok || m.mode != ModeDone {
		return nil, ErrCanceled
	}
	return m.Selected(), nil
}
