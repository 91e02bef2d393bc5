package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/MrJamesThe3rd/tempo/internal/invoice"
)

// ClientPicker is a filterable list of the company's clients.
type ClientPicker struct {
	clients []invoice.Client
	form    *huh.Form
	choice  *int
}

func NewClientPicker(clients []invoice.Client) ClientPicker {
	return ClientPicker{clients: clients}
}

// Reset rebuilds the list with the cursor on the currently billed client.
func (p *ClientPicker) Reset(current *invoice.Client) tea.Cmd {
	if len(p.clients) == 0 {
		p.form = nil
		return nil
	}

	p.choice = new(int)

	options := make([]huh.Option[int], 0, len(p.clients))
	for i, c := range p.clients {
		options = append(options, huh.NewOption(c.Label, i))

		if current != nil && c.ID == current.ID {
			*p.choice = i
		}
	}

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Key("client").
				Title("Bill to").
				Options(options...).
				Filtering(true).
				Height(8).
				Value(p.choice),
		),
	).WithWidth(44).WithShowHelp(false)

	return p.form.Init()
}

// Update forwards msg to the list. It returns the picked client once the user confirms one.
func (p ClientPicker) Update(msg tea.Msg) (ClientPicker, *invoice.Client, tea.Cmd) {
	if p.form == nil {
		return p, nil, nil
	}

	form, cmd := p.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.form = f
	}

	if p.form.State != huh.StateCompleted {
		return p, nil, cmd
	}

	i := *p.choice
	if i < 0 || i >= len(p.clients) {
		return p, nil, cmd
	}

	picked := p.clients[i]

	return p, &picked, cmd
}

func (p ClientPicker) View() string {
	if p.form == nil {
		return mutedStyle.Render("No clients yet. Import a client directory first.")
	}

	return p.form.View()
}
