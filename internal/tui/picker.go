// Package tui provides the interactive terminal picker for classification
// candidates.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atlasfreight/exportdesk/internal/model"
)

// matchItem adapts a ClassificationMatch to the bubbles list interface.
type matchItem struct {
	match model.ClassificationMatch
}

func (i matchItem) Title() string {
	return fmt.Sprintf("%s — %s", i.match.Entry.HSCode, i.match.Entry.ShortDescription)
}

func (i matchItem) Description() string {
	return fmt.Sprintf("confidence %d%% · %s / %s", i.match.Confidence, i.match.Entry.Category, i.match.Entry.Subcategory)
}

func (i matchItem) FilterValue() string {
	return i.match.Entry.HSCode + " " + i.match.Entry.ShortDescription
}

// pickerModel drives the candidate selection list.
type pickerModel struct {
	choice *model.ClassificationMatch
	list   list.Model
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(matchItem); ok {
				m.choice = &item.match
			}
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	return m.list.View()
}

// PickMatch lets the user choose among ranked classification candidates.
// Returns nil when the user cancels without selecting.
func PickMatch(matches model.ClassificationMatches) (*model.ClassificationMatch, error) {
	items := make([]list.Item, len(matches))
	for i, match := range matches {
		items[i] = matchItem{match: match}
	}

	l := list.New(items, list.NewDefaultDelegate(), 80, 14)
	l.Title = "Select tariff classification"
	l.SetShowStatusBar(false)

	program := tea.NewProgram(pickerModel{list: l})
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("classification picker failed: %w", err)
	}

	picked, ok := final.(pickerModel)
	if !ok {
		return nil, fmt.Errorf("unexpected picker model type")
	}

	return picked.choice, nil
}
