package view

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/tempo/internal/invoice"
)

func click(r Region) tea.MouseMsg {
	return tea.MouseMsg{X: r.X, Y: r.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func press(m InvoiceDetailsModel, msg tea.MouseMsg) InvoiceDetailsModel {
	next, _ := m.Update(msg)
	return next.(InvoiceDetailsModel)
}

func newMouseForm(t *testing.T) InvoiceDetailsModel {
	t.Helper()

	return NewInvoiceDetailsModel(InvoiceDetailsConfig{
		Draft: invoice.NewDraft(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.Local)),
	})
}

func TestInvoiceDetails_ClickTriggerToggles(t *testing.T) {
	m := newMouseForm(t)

	_, regions := m.render()
	m = press(m, click(regions.triggers[pickIssue]))

	require.True(t, m.IssuePickerOpen())
	assert.Equal(t, fieldIssueDate, m.focus)

	_, regions = m.render()
	m = press(m, click(regions.triggers[pickIssue]))

	assert.False(t, m.IssuePickerOpen())
}

func TestInvoiceDetails_ClickOutsideClosesOpenOverlays(t *testing.T) {
	m := newMouseForm(t)
	m.overlays[pickIssue].Open()
	m.overlays[pickDue].Open()

	_, regions := m.render()

	// Inside the issue panel: the due panel closes, the issue panel stays.
	m = press(m, click(regions.panels[pickIssue]))
	assert.True(t, m.IssuePickerOpen())
	assert.False(t, m.DuePickerOpen())

	// Far below the form closes the rest.
	m = press(m, tea.MouseMsg{X: 0, Y: 500, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, m.IssuePickerOpen())
}

func TestInvoiceDetails_ClickOtherTriggerSwitchesOverlay(t *testing.T) {
	m := newMouseForm(t)
	m.overlays[pickClient].Open()

	_, regions := m.render()
	m = press(m, click(regions.triggers[pickDue]))

	assert.False(t, m.ClientPickerOpen())
	assert.True(t, m.DuePickerOpen())
	assert.False(t, m.IssuePickerOpen())
}

func TestInvoiceDetails_IgnoresNonPressMouseEvents(t *testing.T) {
	m := newMouseForm(t)
	m.overlays[pickIssue].Open()

	m = press(m, tea.MouseMsg{X: 0, Y: 500, Action: tea.MouseActionMotion})
	m = press(m, tea.MouseMsg{X: 0, Y: 500, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	assert.True(t, m.IssuePickerOpen())
}

func TestRegion_Contains(t *testing.T) {
	r := Region{X: 2, Y: 3, Width: 4, Height: 2}

	assert.True(t, r.Contains(2, 3))
	assert.True(t, r.Contains(5, 4))
	assert.False(t, r.Contains(6, 4))
	assert.False(t, r.Contains(5, 5))
	assert.False(t, r.Contains(1, 3))
	assert.False(t, Region{}.Contains(0, 0))
}
