package view

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/pkg/browser"

	"github.com/MrJamesThe3rd/tempo/internal/api"
)

//go:generate mockgen -source=integrations.go -destination=integrations_mock.go -package=view
type CompanyReader interface {
	Company(ctx context.Context) (*api.CompanySettings, error)
}

type TeamWriter interface {
	UpdateTeam(ctx context.Context, calendarEnabled bool) error
}

type CalendarConnector interface {
	CalendarRedirect(ctx context.Context) (string, error)
	CalendarStatus(ctx context.Context) (bool, error)
	CalendarDisconnect(ctx context.Context) error
}

// Navigator sends the user to an external URL.
type Navigator interface {
	Open(url string) error
}

// BrowserNavigator opens URLs in the system browser.
type BrowserNavigator struct{}

func (BrowserNavigator) Open(url string) error {
	return browser.OpenURL(url)
}

type ConnectionStatus int

const (
	Disconnected ConnectionStatus = iota
	Connecting
	Connected
	Disconnecting
	ConnectFailed
)

func (s ConnectionStatus) String() string {
	switch s {
	case Disconnected:
		return "Not connected"
	case Connecting:
		return "Waiting for Google authorization…"
	case Connected:
		return "Connected"
	case Disconnecting:
		return "Disconnecting…"
	case ConnectFailed:
		return "Failed"
	}

	return "Unknown"
}

type SaveStatus int

const (
	SaveIdle SaveStatus = iota
	Saving
	SaveFailed
)

type IntegrationsConfig struct {
	IsAdmin           bool
	CalendarEnabled   bool
	CalendarConnected bool

	Company   CompanyReader
	Team      TeamWriter
	Calendar  CalendarConnector
	Navigator Navigator

	// IntegrationsTarget is where the panel sends the user after disconnecting.
	IntegrationsTarget string
	RequestTimeout     time.Duration
	PollInterval       time.Duration
	ConnectTimeout     time.Duration
}

type companyLoadedMsg struct {
	mount    uuid.UUID
	settings *api.CompanySettings
	err      error
}

type teamSavedMsg struct {
	mount uuid.UUID
	sent  bool
	err   error
}

type redirectOpenedMsg struct {
	mount uuid.UUID
	err   error
}

type connectPollMsg struct {
	mount uuid.UUID
}

type calendarStatusMsg struct {
	mount     uuid.UUID
	connected bool
	err       error
}

type disconnectedMsg struct {
	mount uuid.UUID
	err   error
}

// IntegrationsModel is the calendar integration panel. Admins switch calendar sync on or
// off for the whole team; any user of a team with sync on can connect their own calendar.
type IntegrationsModel struct {
	CommonModel
	cfg     IntegrationsConfig
	keys    PanelKeyMap
	help    help.Model
	spinner spinner.Model
	now     func() time.Time

	enabled bool
	loading bool
	status  ConnectionStatus

	save SaveStatus
	// sent is the value of the in-flight update; desired is the latest value the user
	// asked for while it was in flight.
	sent    bool
	desired *bool

	deadline time.Time
}

func NewIntegrationsModel(cfg IntegrationsConfig) IntegrationsModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorAccent)

	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}

	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 2 * time.Minute
	}

	status := Disconnected
	if cfg.CalendarConnected {
		status = Connected
	}

	return IntegrationsModel{
		CommonModel: newCommonModel(),
		cfg:         cfg,
		keys:        DefaultPanelKeyMap,
		help:        help.New(),
		spinner:     s,
		now:         time.Now,
		enabled:     cfg.CalendarEnabled,
		loading:     cfg.IsAdmin,
		status:      status,
	}
}

func (m IntegrationsModel) Title() string { return "Integrations" }

func (m IntegrationsModel) ShortHelp() string {
	bindings := []key.Binding{}
	if m.cfg.IsAdmin {
		bindings = append(bindings, m.keys.Toggle)
	}

	if m.enabled {
		bindings = append(bindings, m.keys.Connect, m.keys.Disconnect, m.keys.Refresh)
	}

	return m.help.ShortHelpView(append(bindings, m.keys.Back))
}

func (m IntegrationsModel) Enabled() bool { return m.enabled }
func (m IntegrationsModel) Loading() bool { return m.loading }
func (m IntegrationsModel) Status() ConnectionStatus { return m.status }
func (m IntegrationsModel) SaveStatus() SaveStatus { return m.save }

// Init loads the company settings for admins. Other users only see the value they were
// mounted with.
func (m IntegrationsModel) Init() tea.Cmd {
	if !m.cfg.IsAdmin {
		return nil
	}

	return tea.Batch(m.spinner.Tick, m.loadCompanyCmd())
}

func (m IntegrationsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case companyLoadedMsg:
		if !m.owns(msg.mount) {
			return m, nil
		}

		m.loading = false

		if msg.err != nil {
			slog.Error("failed to load company settings", "error", msg.err)
			return m, nil
		}

		m.enabled = msg.settings.CalendarEnabled

		return m, nil

	case teamSavedMsg:
		if !m.owns(msg.mount) {
			return m, nil
		}

		return m.teamSaved(msg)

	case redirectOpenedMsg:
		if !m.owns(msg.mount) || m.status != Connecting {
			return m, nil
		}

		if msg.err != nil {
			slog.Error("failed to start calendar connection", "error", msg.err)
			m.status = ConnectFailed

			return m, nil
		}

		return m, m.pollCmd()

	case connectPollMsg:
		if !m.owns(msg.mount) || m.status != Connecting {
			return m, nil
		}

		if m.now().After(m.deadline) {
			slog.Warn("calendar authorization timed out", "timeout", m.cfg.ConnectTimeout)
			m.status = ConnectFailed

			return m, nil
		}

		return m, m.checkStatusCmd()

	case calendarStatusMsg:
		if !m.owns(msg.mount) {
			return m, nil
		}

		return m.statusChecked(msg)

	case disconnectedMsg:
		if !m.owns(msg.mount) || m.status != Disconnecting {
			return m, nil
		}

		if msg.err != nil {
			slog.Error("failed to disconnect calendar", "error", msg.err)
			m.status = ConnectFailed

			return m, nil
		}

		m.status = Disconnected
		target := m.cfg.IntegrationsTarget

		return m, func() tea.Msg { return NavigateMsg{Target: target} }

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m IntegrationsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, Back
	case key.Matches(msg, m.keys.Toggle):
		return m.Toggle()
	case key.Matches(msg, m.keys.Connect):
		return m.Connect()
	case key.Matches(msg, m.keys.Disconnect):
		return m.Disconnect()
	case key.Matches(msg, m.keys.Refresh):
		return m.Refresh()
	}

	return m, nil
}

// Toggle flips calendar sync for the team and sends the new value. At most one update is
// in flight; toggles made meanwhile are coalesced into a single follow-up update.
func (m IntegrationsModel) Toggle() (IntegrationsModel, tea.Cmd) {
	if !m.cfg.IsAdmin || m.loading {
		return m, nil
	}

	m.enabled = !m.enabled

	if m.save == Saving {
		desired := m.enabled
		m.desired = &desired

		return m, nil
	}

	return m.startSave(m.enabled)
}

func (m IntegrationsModel) startSave(value bool) (IntegrationsModel, tea.Cmd) {
	m.save = Saving
	m.sent = value
	m.desired = nil

	mount, team := m.mountID, m.cfg.Team

	return m, func() tea.Msg {
		ctx, cancel := m.requestCtx(m.cfg.RequestTimeout)
		defer cancel()

		return teamSavedMsg{mount: mount, sent: value, err: team.UpdateTeam(ctx, value)}
	}
}

func (m IntegrationsModel) teamSaved(msg teamSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		slog.Error("failed to update calendar setting", "calendar_enabled", msg.sent, "error", msg.err)
	}

	if m.desired != nil && *m.desired != msg.sent {
		return m.startSave(*m.desired)
	}

	m.desired = nil
	m.save = SaveIdle

	if msg.err != nil {
		m.save = SaveFailed
	}

	return m, nil
}

// Connect starts the calendar authorization in the browser and waits for the API to report
// the connection.
func (m IntegrationsModel) Connect() (IntegrationsModel, tea.Cmd) {
	if !m.enabled || (m.status != Disconnected && m.status != ConnectFailed) {
		return m, nil
	}

	m.status = Connecting
	m.deadline = m.now().Add(m.cfg.ConnectTimeout)

	mount, cal, nav := m.mountID, m.cfg.Calendar, m.cfg.Navigator

	return m, func() tea.Msg {
		ctx, cancel := m.requestCtx(m.cfg.RequestTimeout)
		defer cancel()

		url, err := cal.CalendarRedirect(ctx)
		if err != nil {
			return redirectOpenedMsg{mount: mount, err: fmt.Errorf("getting redirect url: %w", err)}
		}

		if err := nav.Open(url); err != nil {
			return redirectOpenedMsg{mount: mount, err: fmt.Errorf("opening browser: %w", err)}
		}

		return redirectOpenedMsg{mount: mount}
	}
}

func (m IntegrationsModel) Disconnect() (IntegrationsModel, tea.Cmd) {
	if !m.enabled || (m.status != Connected && m.status != ConnectFailed) {
		return m, nil
	}

	m.status = Disconnecting

	mount, cal := m.mountID, m.cfg.Calendar

	return m, func() tea.Msg {
		ctx, cancel := m.requestCtx(m.cfg.RequestTimeout)
		defer cancel()

		return disconnectedMsg{mount: mount, err: cal.CalendarDisconnect(ctx)}
	}
}

// Refresh asks the API whether the calendar is connected. While connecting the poll loop
// already does, so Refresh is a no-op.
func (m IntegrationsModel) Refresh() (IntegrationsModel, tea.Cmd) {
	if !m.enabled || m.status == Disconnecting || m.status == Connecting {
		return m, nil
	}

	return m, m.checkStatusCmd()
}

func (m IntegrationsModel) statusChecked(msg calendarStatusMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		slog.Error("failed to check calendar status", "error", msg.err)

		if m.status == Connecting {
			return m, m.pollCmd()
		}

		return m, nil
	}

	switch {
	case msg.connected:
		m.status = Connected
	case m.status == Connecting:
		return m, m.pollCmd()
	default:
		m.status = Disconnected
	}

	return m, nil
}

func (m IntegrationsModel) loadCompanyCmd() tea.Cmd {
	mount, company := m.mountID, m.cfg.Company

	return func() tea.Msg {
		ctx, cancel := m.requestCtx(m.cfg.RequestTimeout)
		defer cancel()

		settings, err := company.Company(ctx)

		return companyLoadedMsg{mount: mount, settings: settings, err: err}
	}
}

func (m IntegrationsModel) checkStatusCmd() tea.Cmd {
	mount, cal := m.mountID, m.cfg.Calendar

	return func() tea.Msg {
		ctx, cancel := m.requestCtx(m.cfg.RequestTimeout)
		defer cancel()

		connected, err := cal.CalendarStatus(ctx)

		return calendarStatusMsg{mount: mount, connected: connected, err: err}
	}
}

func (m IntegrationsModel) pollCmd() tea.Cmd {
	mount := m.mountID

	return tea.Tick(m.cfg.PollInterval, func(time.Time) tea.Msg {
		return connectPollMsg{mount: mount}
	})
}

func (m IntegrationsModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.Title()))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Google Calendar"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Sync meetings with your team's calendars."))
	b.WriteString("\n\n")

	switch {
	case m.cfg.IsAdmin && m.loading:
		b.WriteString(m.spinner.View() + " Loading company settings…")
	case m.cfg.IsAdmin:
		b.WriteString(m.toggleView())
	case m.enabled:
		b.WriteString(mutedStyle.Render("Calendar sync is enabled for your team."))
	default:
		b.WriteString(mutedStyle.Render("Calendar sync is disabled. Ask a company admin to enable it."))
	}

	if m.enabled && !m.loading {
		b.WriteString("\n\n")
		b.WriteString(m.connectionView())
	}

	b.WriteString("\n\n")
	b.WriteString(m.ShortHelp())

	return screenStyle.Render(b.String())
}

func (m IntegrationsModel) toggleView() string {
	box := "[ ]"
	if m.enabled {
		box = "[x]"
	}

	line := fmt.Sprintf("%s Enable calendar sync for the team", box)

	switch m.save {
	case Saving:
		line += mutedStyle.Render("  saving…")
	case SaveFailed:
		line += errorStyle.Render("  not saved")
	}

	return line
}

func (m IntegrationsModel) connectionView() string {
	status := m.status.String()

	switch m.status {
	case Connected:
		status = successStyle.Render(status)
	case ConnectFailed:
		status = errorStyle.Render(status)
	}

	return "Status: " + status
}
