package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitriykara/StocksApp/internal/present"
)

func (m Model) View() string {
	if m.prompt != nil {
		return m.viewPrompt()
	}
	if m.dir == nil {
		if m.loading {
			return "\n  " + m.spinner.View() + " Loading companies..."
		}
		return ""
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.viewList(), m.viewDetail())
	return lipgloss.JoinVertical(lipgloss.Left, body, m.viewHelp())
}

func (m Model) viewList() string {
	if m.dir.Len() == 0 {
		return lipgloss.NewStyle().
			Width(listWidth).
			Padding(1, 2).
			Foreground(theme.Muted).
			Render("No companies")
	}
	return m.list.View()
}

func (m Model) viewDetail() string {
	s := m.state

	label := lipgloss.NewStyle().Width(10).Foreground(theme.Muted)
	value := lipgloss.NewStyle().Foreground(theme.Text)
	change := value.Foreground(treatmentColor(s.Treatment)).Bold(s.Treatment != present.Neutral)

	rows := []string{
		label.Render("Company") + value.Render(s.CompanyName),
		label.Render("Symbol") + value.Render(s.Symbol),
		label.Render("Price") + value.Render(s.Price),
		label.Render("Change") + change.Render(s.Change),
	}

	logo := m.logo
	if logo == "" {
		logo = strings.TrimRight(strings.Repeat(strings.Repeat(" ", logoWidth)+"\n", logoWidth/2), "\n")
	}

	parts := []string{logo, "", strings.Join(rows, "\n")}
	if s.Busy {
		parts = append(parts, "", m.spinner.View()+" Fetching quote...")
	}

	return lipgloss.NewStyle().
		Padding(1, 3).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(strings.Join(parts, "\n"))
}

func (m Model) viewPrompt() string {
	p := m.prompt

	hint := helpLine(keys.Dismiss, keys.Quit)
	if p.kind == promptBlocking {
		hint = helpLine(keys.Retry, keys.Quit)
	}

	box := lipgloss.NewStyle().
		Padding(1, 3).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Error).
		Render(strings.Join([]string{
			lipgloss.NewStyle().Bold(true).Foreground(theme.Error).Render(p.title),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Width(48).Render(p.body),
			"",
			lipgloss.NewStyle().Foreground(theme.Muted).Render(hint),
		}, "\n"))

	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) viewHelp() string {
	return lipgloss.NewStyle().
		Foreground(theme.Muted).
		Padding(0, 2).
		Render("↑/↓ select  " + helpLine(keys.Quit))
}

func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
