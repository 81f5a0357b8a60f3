package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dmitriykara/StocksApp/internal/present"
	"github.com/dmitriykara/StocksApp/internal/provider"
)

type Model struct {
	provider provider.Provider
	log      zerolog.Logger
	ctx      context.Context

	// Data
	dir   *provider.Directory
	state present.State
	logo  string // rendered logo, empty when none

	// Current selection. Results tagged with any other request id are stale.
	reqID  string
	symbol string
	reqCtx context.Context
	cancel context.CancelFunc

	// UI state
	width   int
	height  int
	loading bool
	prompt  *prompt

	// Components
	list    list.Model
	spinner spinner.Model
}

type promptKind int

const (
	// promptBlocking offers retry or quit; nothing else is usable.
	promptBlocking promptKind = iota
	// promptDismissible closes on enter or esc.
	promptDismissible
)

type prompt struct {
	kind  promptKind
	title string
	body  string
}

// Messages

type directoryMsg struct {
	dir *provider.Directory
	err error
}

type quoteMsg struct {
	reqID string
	quote provider.Quote
	err   error
}

type logoMsg struct {
	reqID string
	logo  provider.Logo
	err   error
}

// companyItem adapts a Company to the list widget.
type companyItem provider.Company

func (c companyItem) Title() string       { return c.Name }
func (c companyItem) Description() string { return c.Symbol }
func (c companyItem) FilterValue() string { return c.Name }

const (
	listWidth = 36
	logoWidth = 16
)

// NewModel returns the controller for p. ctx bounds every fetch the model
// starts.
func NewModel(ctx context.Context, p provider.Provider, log zerolog.Logger) Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(theme.Primary).
		BorderForeground(theme.Primary)

	l := list.New(nil, delegate, listWidth, 20)
	l.Title = "Most active"
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Background(theme.Primary).Padding(0, 1)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return Model{
		provider: p,
		log:      log.With().Str("component", "ui").Logger(),
		ctx:      ctx,
		state:    present.NewState(),
		loading:  true,
		list:     l,
		spinner:  s,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(loadDirectory(m.ctx, m.provider), m.spinner.Tick)
}

// selectCompany starts a fetch for the company at index i, superseding any
// fetch still in flight.
func (m *Model) selectCompany(i int) tea.Cmd {
	c, ok := m.dir.At(i)
	if !ok {
		return nil
	}
	if m.cancel != nil {
		m.cancel()
	}
	m.reqCtx, m.cancel = context.WithCancel(m.ctx)
	m.reqID = uuid.NewString()
	m.symbol = c.Symbol
	m.state.Reset()
	m.logo = ""

	m.log.Debug().Str("request_id", m.reqID).Str("symbol", c.Symbol).Msg("company selected")
	return fetchQuote(m.reqCtx, m.provider, m.reqID, c.Symbol)
}

func (m *Model) stop() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// Commands

func loadDirectory(ctx context.Context, p provider.Provider) tea.Cmd {
	return func() tea.Msg {
		d, err := p.LoadDirectory(ctx)
		return directoryMsg{d, err}
	}
}

func fetchQuote(ctx context.Context, p provider.Provider, reqID, symbol string) tea.Cmd {
	return func() tea.Msg {
		q, err := p.FetchQuote(ctx, symbol)
		return quoteMsg{reqID, q, err}
	}
}

func fetchLogo(ctx context.Context, p provider.Provider, reqID, symbol string) tea.Cmd {
	return func() tea.Msg {
		l, err := p.FetchLogo(ctx, symbol)
		return logoMsg{reqID, l, err}
	}
}
