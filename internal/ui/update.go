package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitriykara/StocksApp/internal/provider"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(listWidth, max(msg.Height-2, 3))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case directoryMsg:
		m.loading = false
		if msg.err != nil {
			m.log.Error().Err(msg.err).Str("kind", kindName(msg.err)).Msg("directory unavailable")
			m.prompt = &prompt{
				kind:  promptBlocking,
				title: "Could not load companies",
				body:  msg.err.Error(),
			}
			return m, nil
		}
		m.dir = msg.dir
		items := make([]list.Item, 0, m.dir.Len())
		for _, c := range m.dir.Companies() {
			items = append(items, companyItem(c))
		}
		cmd := m.list.SetItems(items)
		m.list.Select(0)
		return m, tea.Batch(cmd, m.selectCompany(0))

	case quoteMsg:
		if msg.reqID != m.reqID {
			m.log.Debug().Str("request_id", msg.reqID).Msg("dropping stale quote")
			return m, nil
		}
		if msg.err != nil {
			m.state.Fail()
			m.fail("Could not load quote", msg.reqID, msg.err)
			return m, nil
		}
		m.state.ApplyQuote(msg.quote)
		return m, fetchLogo(m.reqCtx, m.provider, m.reqID, msg.quote.Symbol)

	case logoMsg:
		if msg.reqID != m.reqID {
			m.log.Debug().Str("request_id", msg.reqID).Msg("dropping stale logo")
			return m, nil
		}
		if msg.err != nil {
			m.fail("Could not load logo", msg.reqID, msg.err)
			return m, nil
		}
		m.state.ApplyLogo(msg.logo)
		rendered, err := renderLogo(msg.logo.Data, logoWidth)
		if err != nil {
			m.log.Warn().Err(err).Str("symbol", msg.logo.Symbol).Msg("logo not renderable")
		}
		m.logo = rendered
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		m.stop()
		return m, tea.Quit
	}

	if m.prompt != nil {
		switch m.prompt.kind {
		case promptBlocking:
			if key.Matches(msg, keys.Retry) {
				m.prompt = nil
				m.loading = true
				return m, loadDirectory(m.ctx, m.provider)
			}
		case promptDismissible:
			if key.Matches(msg, keys.Dismiss) {
				m.prompt = nil
			}
		}
		return m, nil
	}

	if m.dir == nil {
		return m, nil
	}

	before := m.list.Index()
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if m.list.Index() != before {
		return m, tea.Batch(cmd, m.selectCompany(m.list.Index()))
	}
	return m, cmd
}

// fail reports a failed quote or logo fetch with a dismissible prompt.
func (m *Model) fail(title, reqID string, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	m.log.Error().Err(err).
		Str("request_id", reqID).
		Str("symbol", m.symbol).
		Str("kind", kindName(err)).
		Msg(title)
	m.prompt = &prompt{kind: promptDismissible, title: title, body: err.Error()}
}

func kindName(err error) string {
	if k := provider.Kind(err); k != nil {
		return k.Error()
	}
	return "unknown"
}
