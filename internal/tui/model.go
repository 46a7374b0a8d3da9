package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/cashflow/internal/analytics"
	"github.com/Veraticus/cashflow/internal/model"
	"github.com/Veraticus/cashflow/internal/tui/themes"
)

// typeCycle is the order the type filter steps through.
var typeCycle = []model.TransactionType{"", model.TypeIncome, model.TypeExpense}

// recurrenceCycle is the order the recurrence filter steps through.
var recurrenceCycle = []analytics.RecurrenceMode{
	analytics.RecurrenceAll,
	analytics.RecurrenceOnly,
	analytics.RecurrenceNonRecurring,
}

// Model holds the dashboard state.
type Model struct {
	theme        themes.Theme
	lastError    error
	engine       *analytics.Engine
	accountNames map[string]string
	config       Config
	keymap       KeyMap
	help         help.Model
	search       textinput.Model
	spinner      spinner.Model
	recentTable  table.Model
	transactions []model.Transaction
	accounts     []model.Account
	dashboard    analytics.Dashboard
	chart        analytics.ChartType
	windowIdx    int
	windowDays   int
	accountIdx   int
	typeIdx      int
	recurIdx     int
	height       int
	width        int
	searching    bool
	quitting     bool
	ready        bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	engine := cfg.Engine
	if engine == nil {
		engine = analytics.NewEngine()
	}

	search := textinput.New()
	search.Placeholder = "search descriptions"
	search.Prompt = "/ "
	search.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		config:       cfg,
		theme:        cfg.Theme,
		engine:       engine,
		keymap:       DefaultKeyMap(),
		help:         help.New(),
		search:       search,
		spinner:      sp,
		recentTable:  newRecentTable(),
		chart:        analytics.ChartLine,
		windowDays:   cfg.WindowDays,
		windowIdx:    -1,
		accountNames: map[string]string{},
		width:        cfg.Width,
		height:       cfg.Height,
	}
	if m.windowDays <= 0 {
		m.windowDays = analytics.DefaultWindowDays
	}
	for i, days := range analytics.WindowPresets {
		if days == m.windowDays {
			m.windowIdx = i
		}
	}
	return m
}

func newRecentTable() table.Model {
	return table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: 10},
			{Title: "Description", Width: 28},
			{Title: "Category", Width: 16},
			{Title: "Account", Width: 14},
			{Title: "Amount", Width: 14},
		}),
		table.WithHeight(6),
		table.WithFocused(false),
	)
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadData(m.config.Loader))
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case dataLoadedMsg:
		m.ready = true
		if msg.err != nil {
			m.lastError = msg.err
			return m, nil
		}
		m.lastError = nil
		m.transactions = msg.transactions
		m.accounts = msg.accounts
		m.accountNames = model.AccountNames(msg.accounts)
		m.accountIdx = m.accountIndex(m.config.AccountID)
		m.recompute()
		return m, nil

	case spinner.TickMsg:
		if m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit), key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Refresh):
		return m, loadData(m.config.Loader)
	}

	if !m.ready {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.NextWindow):
		m.stepWindow(1)
	case key.Matches(msg, m.keymap.PrevWindow):
		m.stepWindow(-1)
	case key.Matches(msg, m.keymap.ToggleChart):
		if m.chart == analytics.ChartLine {
			m.chart = analytics.ChartBar
		} else {
			m.chart = analytics.ChartLine
		}
		return m, nil
	case key.Matches(msg, m.keymap.CycleAccount):
		// Index 0 is all accounts.
		m.accountIdx = (m.accountIdx + 1) % (len(m.accounts) + 1)
	case key.Matches(msg, m.keymap.CycleType):
		m.typeIdx = (m.typeIdx + 1) % len(typeCycle)
	case key.Matches(msg, m.keymap.CycleRecurrence):
		m.recurIdx = (m.recurIdx + 1) % len(recurrenceCycle)
	case key.Matches(msg, m.keymap.ClearFilters):
		m.accountIdx, m.typeIdx, m.recurIdx = 0, 0, 0
		m.search.SetValue("")
	case key.Matches(msg, m.keymap.Search):
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd
	default:
		return m, nil
	}

	m.recompute()
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Submit):
		m.searching = false
		m.search.Blur()
		m.recompute()
		return m, nil
	case key.Matches(msg, m.keymap.Cancel):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.recompute()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// stepWindow moves between the window presets. A configured window that is
// not a preset is left on the first step.
func (m *Model) stepWindow(delta int) {
	presets := analytics.WindowPresets
	idx := m.windowIdx
	switch {
	case idx < 0 && delta > 0:
		idx = 0
		for idx < len(presets)-1 && presets[idx] <= m.windowDays {
			idx++
		}
	case idx < 0:
		idx = len(presets) - 1
		for idx > 0 && presets[idx] >= m.windowDays {
			idx--
		}
	default:
		idx += delta
		if idx < 0 || idx >= len(presets) {
			return
		}
	}
	m.windowIdx = idx
	m.windowDays = presets[idx]
}

func (m Model) accountIndex(id string) int {
	for i, a := range m.accounts {
		if a.ID == id {
			return i + 1
		}
	}
	return 0
}

func (m Model) criteria() analytics.Criteria {
	c := analytics.Criteria{
		Type:       typeCycle[m.typeIdx],
		Recurrence: recurrenceCycle[m.recurIdx],
		Search:     m.search.Value(),
	}
	if m.accountIdx > 0 && m.accountIdx <= len(m.accounts) {
		c.AccountID = m.accounts[m.accountIdx-1].ID
	}
	return c
}

// recompute rebuilds every view from the loaded snapshot.
func (m *Model) recompute() {
	d, err := m.engine.Dashboard(m.transactions, analytics.DashboardRequest{
		Criteria:      m.criteria(),
		WindowDays:    m.windowDays,
		MonthlyBudget: m.config.MonthlyBudget,
	})
	if err != nil {
		m.lastError = err
		return
	}
	m.lastError = nil
	m.dashboard = d
	m.recentTable.SetRows(m.recentRows(d.Recent))
}

func (m Model) recentRows(txns []model.Transaction) []table.Row {
	rows := make([]table.Row, 0, len(txns))
	for _, txn := range txns {
		category := txn.Category
		if category == "" {
			category = analytics.UncategorizedLabel
		}
		account := m.accountNames[txn.AccountID]
		if account == "" {
			account = txn.AccountID
		}
		rows = append(rows, table.Row{
			txn.Date.Format(analytics.DateLayout),
			txn.Description,
			category,
			account,
			m.signedMoney(txn.Signed()),
		})
	}
	return rows
}
