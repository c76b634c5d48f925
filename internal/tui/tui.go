package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/mhersberg/chatstat/internal/render"
	"github.com/mhersberg/chatstat/internal/stats"
)

// item is one entry in the left panel with a lazily rendered detail view.
type item struct {
	title  string
	detail func(width int) string
}

type model struct {
	report *stats.Report
	name   string // transcript name shown in the header

	items      []item
	cursor     int
	listOffset int
	detail     viewport.Model
	width      int
	height     int
	ready      bool
	quitting   bool
	status     string
}

func buildItems(r *stats.Report) []item {
	items := []item{
		{title: "Overview", detail: func(int) string {
			return render.OverallSection(r, render.Options{Color: true})
		}},
		{title: "Hourly activity", detail: func(w int) string {
			// leave room for "HH:00 " and the trailing count
			bw := w - 14
			if bw < 10 {
				bw = 10
			}
			return render.HourlySection(r, render.Options{Color: true, BarWidth: bw})
		}},
		{title: "Monthly breakdown", detail: func(int) string {
			return render.MonthlySection(r, render.Options{Color: true})
		}},
	}
	for _, s := range r.Senders {
		s := s
		items = append(items, item{
			title: fmt.Sprintf("%s (%d)", s.Name, s.Messages),
			detail: func(int) string {
				return render.SenderSection(s, render.Options{Color: true})
			},
		})
	}
	return items
}

// Run starts the dashboard and blocks until the user quits.
func Run(report *stats.Report, name string) error {
	m := model{
		report: report,
		name:   name,
		items:  buildItems(report),
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.detail = viewport.New(m.detailWidth(), m.panelHeight())
		m.detail.SetContent(m.currentDetail())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.adjustListScroll()
				m.setDetail()
			}

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
				m.adjustListScroll()
				m.setDetail()
			}

		case key.Matches(msg, keys.Copy):
			if err := clipboard.WriteAll(render.Summary(m.report)); err != nil {
				m.status = "clipboard unavailable"
			} else {
				m.status = "summary copied to clipboard"
			}

		case key.Matches(msg, keys.DetailUp):
			m.detail.LineUp(m.panelHeight() / 2)

		case key.Matches(msg, keys.DetailDn):
			m.detail.LineDown(m.panelHeight() / 2)

		case key.Matches(msg, keys.PageUp):
			m.detail.LineUp(m.panelHeight())

		case key.Matches(msg, keys.PageDown):
			m.detail.LineDown(m.panelHeight())
		}
		return m, nil
	}

	return m, nil
}

func (m *model) setDetail() {
	m.detail.SetContent(m.currentDetail())
	m.detail.GotoTop()
}

func (m model) currentDetail() string {
	if len(m.items) == 0 || m.cursor >= len(m.items) {
		return ""
	}
	return m.items[m.cursor].detail(m.detailWidth())
}

func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	listW := m.listWidth()
	detailW := m.detailWidth()
	panelH := m.panelHeight()

	header := styleHeader.Render("chatstat - " + m.name)

	listPanel := stylePanelBorder.
		Width(listW).
		Height(panelH).
		Render(m.renderList(listW, panelH))

	m.detail.Width = detailW
	m.detail.Height = panelH
	detailPanel := styleActiveBorder.
		Width(detailW).
		Height(panelH).
		Render(m.detail.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)

	return lipgloss.JoinVertical(lipgloss.Left, header, panels, m.statusBar())
}

// renderList renders the left panel: one line per section or sender.
func (m model) renderList(width, height int) string {
	var lines []string
	for i, it := range m.items {
		if i < m.listOffset {
			continue
		}
		if len(lines) >= height {
			break
		}
		title := it.title
		if runewidth.StringWidth(title) > width-2 {
			title = runewidth.Truncate(title, width-2, "")
		}
		if i == m.cursor {
			lines = append(lines, styleListSelected.Render("> "+title))
		} else {
			lines = append(lines, styleListNormal.Render("  "+title))
		}
	}

	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

// adjustListScroll keeps the cursor visible within the list panel.
func (m *model) adjustListScroll() {
	visible := m.panelHeight()
	if visible < 1 {
		visible = 1
	}
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+visible {
		m.listOffset = m.cursor - visible + 1
	}
}

func (m model) statusBar() string {
	if m.status != "" {
		return styleStatusBar.Render(m.status)
	}
	parts := []string{
		render.Summary(m.report),
		"up/dn navigate",
		"enter copy",
		"esc quit",
	}
	return styleStatusBar.Render(strings.Join(parts, " | "))
}

func (m model) listWidth() int {
	if m.width <= 0 {
		return 30
	}
	w := m.width*30/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) detailWidth() int {
	if m.width <= 0 {
		return 60
	}
	w := m.width*70/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// header (1) + status bar (1) + borders (4)
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}
