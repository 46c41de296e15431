// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/settingsdeck/internal/cli/styles"
	"github.com/bnema/settingsdeck/internal/domain/presentable"
	"github.com/bnema/settingsdeck/internal/logging"
)

// settingsItem adapts a presentable entry to list.Item.
type settingsItem struct {
	entry presentable.Entry
}

func (i settingsItem) Title() string       { return i.entry.Name }
func (i settingsItem) Description() string { return i.entry.Current() + " · " + i.entry.Source }
func (i settingsItem) FilterValue() string { return i.entry.Name }

// SettingsBrowser is the Bubble Tea model for the interactive settings browser.
type SettingsBrowser struct {
	list     list.Model
	help     help.Model
	keys     styles.SettingsKeyMap
	renderer *styles.SettingsRenderer
	theme    *styles.Theme

	settingsFile string
	showDetail   bool
	showHelp     bool
	width        int
	height       int

	ctx context.Context
}

// NewSettingsBrowser creates a new settings browser over entries.
func NewSettingsBrowser(
	ctx context.Context,
	theme *styles.Theme,
	entries presentable.Entries,
	settingsFile string,
) SettingsBrowser {
	log := logging.FromContext(ctx)
	log.Debug().Int("entries", entries.Len()).Msg("creating settings browser")

	items := make([]list.Item, 0, entries.Len())
	for _, e := range entries.All() {
		items = append(items, settingsItem{entry: e})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.NormalTitle = theme.ListItemTitle.PaddingLeft(2)
	delegate.Styles.NormalDesc = theme.ListItemDesc.PaddingLeft(2)
	delegate.Styles.SelectedTitle = theme.Highlight.
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(theme.Accent).
		PaddingLeft(1)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle.Bold(false).Foreground(theme.Muted)

	const (
		defaultWidth  = 80
		defaultHeight = 24
	)

	l := list.New(items, delegate, defaultWidth, defaultHeight)
	l.Title = "Settings"
	l.Styles.Title = theme.Title
	l.SetShowHelp(false)

	return SettingsBrowser{
		list:         l,
		help:         styles.NewStyledHelp(theme),
		keys:         styles.DefaultSettingsKeyMap(),
		renderer:     styles.NewSettingsRenderer(theme),
		theme:        theme,
		settingsFile: settingsFile,
		width:        defaultWidth,
		height:       defaultHeight,
		ctx:          ctx,
	}
}

// Init implements tea.Model.
func (m SettingsBrowser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m SettingsBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.list.SetSize(msg.Width, m.listHeight())
		return m, nil

	case tea.KeyMsg:
		// Let the list own keys while the user types a filter.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.list.SetSize(m.width, m.listHeight())
			return m, nil
		case key.Matches(msg, m.keys.Detail):
			m.showDetail = !m.showDetail
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m SettingsBrowser) View() string {
	header := m.renderer.RenderHeader(m.settingsFile)

	body := m.list.View()
	if m.showDetail {
		if entry, ok := m.Selected(); ok {
			detail, err := m.renderer.RenderDetail(entry)
			if err != nil {
				detail = m.renderer.RenderError(err)
			}
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, detail)
		}
	}

	m.help.ShowAll = m.showHelp
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.help.View(m.keys))
}

// Selected returns the entry under the cursor.
func (m SettingsBrowser) Selected() (presentable.Entry, bool) {
	item, ok := m.list.SelectedItem().(settingsItem)
	if !ok {
		return presentable.Entry{}, false
	}
	return item.entry, true
}

// ShowingDetail reports whether the detail pane is open.
func (m SettingsBrowser) ShowingDetail() bool {
	return m.showDetail
}

func (m SettingsBrowser) listHeight() int {
	const headerLines = 1
	helpLines := 1
	if m.showHelp {
		helpLines = 4
	}
	return max(m.height-headerLines-helpLines, 1)
}
