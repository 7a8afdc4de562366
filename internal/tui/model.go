// Package tui renders an interactive today view where habits can be checked
// off without leaving the terminal.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtrost/ritual/internal/stats"
	"github.com/mtrost/ritual/internal/storage"
)

type KeyMap struct {
	Toggle    key.Binding
	Increment key.Binding
	Refresh   key.Binding
	Quit      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "m"),
			key.WithHelp("space", "toggle done"),
		),
		Increment: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "log one rep"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type Model struct {
	store storage.Provider
	date  string
	list  list.Model
	keys  KeyMap
	err   error
}

func New(store storage.Provider, date string) (Model, error) {
	items, err := loadItems(store, date)
	if err != nil {
		return Model{}, err
	}

	keys := DefaultKeyMap()
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(true)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Increment, keys.Refresh}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Increment, keys.Refresh}
	}

	return Model{
		store: store,
		date:  date,
		list:  l,
		keys:  keys,
	}, nil
}

func loadItems(store storage.Provider, date string) ([]list.Item, error) {
	habits, err := store.GetAllHabits(false)
	if err != nil {
		return nil, err
	}
	logs, err := store.GetLogsForDate(date)
	if err != nil {
		return nil, err
	}

	due := stats.DueOn(date, habits, logs)
	items := make([]list.Item, len(due))
	for i, d := range due {
		items[i] = Item{Due: d}
	}
	return items, nil
}

func (m *Model) refresh() {
	items, err := loadItems(m.store, m.date)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	selected := m.list.Index()
	m.list.SetItems(items)
	if selected < len(items) {
		m.list.Select(selected)
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		frameW, frameH := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-frameW, msg.Height-frameH-2)
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if _, err := m.store.ToggleLog(i.Due.Habit.ID, m.date); err != nil {
					m.err = err
				} else {
					m.refresh()
				}
			}
			return m, nil
		case key.Matches(msg, m.keys.Increment):
			if i, ok := m.list.SelectedItem().(Item); ok && i.Due.Habit.Target() > 1 {
				if _, err := m.store.IncrementProgress(i.Due.Habit.ID, m.date, i.Due.Habit.Target()); err != nil {
					m.err = err
				} else {
					m.refresh()
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := titleStyle.Render("ritual — " + m.date)

	done, total := 0, len(m.list.Items())
	for _, it := range m.list.Items() {
		if i, ok := it.(Item); ok && i.Due.Done {
			done++
		}
	}
	summary := summaryStyle.Render(fmt.Sprintf("%d/%d done", done, total))
	if done == total && total > 0 {
		summary = doneStyle.Render(fmt.Sprintf("%d/%d done — all clear", done, total))
	}

	body := m.list.View()
	if total == 0 {
		body = "\n  Nothing due today.\n"
	}

	view := header + "  " + summary + "\n" + body
	if m.err != nil {
		view += "\n" + errStyle.Render("error: "+m.err.Error())
	}
	return docStyle.Render(view)
}
