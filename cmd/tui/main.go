package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/pkg/browser"

	"github.com/MrJamesThe3rd/tempo/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/tempo/internal/api"
	"github.com/MrJamesThe3rd/tempo/internal/config"
	"github.com/MrJamesThe3rd/tempo/internal/invoice"
)

type screen int

const (
	screenMenu screen = iota
	screenInvoice
	screenIntegrations
)

type profileLoadedMsg struct {
	profile *api.Profile
	err     error
	// then is the screen to open once the profile is known.
	then screen
}

type clientsLoadedMsg struct {
	clients []invoice.Client
	err     error
}

type model struct {
	cfg    *config.Config
	client *api.Client

	profile *api.Profile
	current screen
	active  view.View

	busy bool
	err  error
}

func initialModel(cfg *config.Config) model {
	return model{
		cfg:     cfg,
		client:  api.New(cfg.Client.APIURL, cfg.Client.Token, cfg.Client.RequestTimeout),
		current: screenMenu,
	}
}

func (m model) Init() tea.Cmd {
	return m.loadProfile(screenMenu)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.current == screenMenu {
			return m.menuKey(msg)
		}

	case profileLoadedMsg:
		m.busy = false

		if msg.err != nil {
			slog.Error("failed to load profile", "error", msg.err)
			m.err = msg.err

			return m, nil
		}

		m.profile, m.err = msg.profile, nil

		if msg.then == screenIntegrations {
			return m.mount(screenIntegrations, m.newIntegrations())
		}

		return m, nil

	case clientsLoadedMsg:
		m.busy = false

		if msg.err != nil {
			slog.Error("failed to load clients", "error", msg.err)
			m.err = msg.err

			return m, nil
		}

		return m.mount(screenInvoice, m.newInvoiceDetails(msg.clients))

	case view.BackMsg:
		return m.unmount(), nil

	case view.NavigateMsg:
		m = m.unmount()

		if msg.Target == m.cfg.Client.IntegrationsTarget {
			m.busy = true
			return m, m.loadProfile(screenIntegrations)
		}

		slog.Warn("unknown navigation target", "target", msg.Target)

		return m, nil
	}

	if m.active == nil {
		return m, nil
	}

	next, cmd := m.active.Update(msg)
	m.active = next.(view.View)

	return m, cmd
}

func (m model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "1":
		m.busy = true
		return m, m.loadClients()
	case "2":
		if m.profile == nil {
			m.busy = true
			return m, m.loadProfile(screenIntegrations)
		}

		return m.mount(screenIntegrations, m.newIntegrations())
	}

	return m, nil
}

func (m model) mount(s screen, v view.View) (tea.Model, tea.Cmd) {
	m = m.unmount()
	m.current = s
	m.active = v

	return m, v.Init()
}

// unmount disposes the active screen so its late results are dropped.
func (m model) unmount() model {
	if m.active != nil {
		m.active.Dispose()
	}

	m.active = nil
	m.current = screenMenu

	return m
}

func (m model) newInvoiceDetails(clients []invoice.Client) view.InvoiceDetailsModel {
	c := m.client

	return view.NewInvoiceDetailsModel(view.InvoiceDetailsConfig{
		Clients:        clients,
		DateFormat:     m.cfg.Client.DateFormat,
		RequestTimeout: m.cfg.Client.RequestTimeout,
		Save: func(ctx context.Context, d invoice.Draft) error {
			saved, err := c.SaveInvoice(ctx, d)
			if err != nil {
				return err
			}

			slog.Info("invoice saved", "id", saved.ID, "invoice_number", saved.InvoiceNumber)

			return nil
		},
		NextNumber: c.NextInvoiceNumber,
	})
}

func (m model) newIntegrations() view.IntegrationsModel {
	return view.NewIntegrationsModel(view.IntegrationsConfig{
		IsAdmin:            m.profile.IsAdmin,
		CalendarEnabled:    m.profile.CalendarEnabled,
		CalendarConnected:  m.profile.CalendarConnected,
		Company:            m.client,
		Team:               m.client,
		Calendar:           m.client,
		Navigator:          view.BrowserNavigator{},
		IntegrationsTarget: m.cfg.Client.IntegrationsTarget,
		RequestTimeout:     m.cfg.Client.RequestTimeout,
		PollInterval:       m.cfg.Client.PollInterval,
		ConnectTimeout:     m.cfg.Client.ConnectTimeout,
	})
}

func (m model) loadProfile(then screen) tea.Cmd {
	c, timeout := m.client, m.cfg.Client.RequestTimeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		p, err := c.Profile(ctx)

		return profileLoadedMsg{profile: p, err: err, then: then}
	}
}

func (m model) loadClients() tea.Cmd {
	c, timeout := m.client, m.cfg.Client.RequestTimeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		clients, err := c.Clients(ctx)

		return clientsLoadedMsg{clients: clients, err: err}
	}
}

func (m model) View() string {
	if m.active != nil {
		return m.active.View()
	}

	body := m.cfg.App.Name + " TUI\n\n" +
		"1. New Invoice\n" +
		"2. Integrations\n\n" +
		"q. Quit"

	switch {
	case m.busy:
		body += "\n\nLoading…"
	case m.err != nil:
		body += "\n\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("Error: "+m.err.Error())
	case m.profile != nil:
		body += fmt.Sprintf("\n\nSigned in as %s (%s)", m.profile.UserID, m.profile.Role)
	}

	return lipgloss.NewStyle().Padding(2).Render(body)
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI; logs go to a file.
	logFile, err := tea.LogToFile(cfg.Client.LogFile, "tui")
	if err != nil {
		slog.Error("failed to open log file", "path", cfg.Client.LogFile, "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	p := tea.NewProgram(initialModel(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
