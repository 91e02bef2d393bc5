package view

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tempo/internal/invoice"
)

// SaveFunc persists a validated draft. It only ever sees drafts that passed invoice.Validate.
type SaveFunc func(ctx context.Context, d invoice.Draft) error

// NextNumberFunc suggests an invoice number for a new draft.
type NextNumberFunc func(ctx context.Context) (string, error)

type InvoiceDetailsConfig struct {
	Clients        []invoice.Client
	Draft          invoice.Draft
	DateFormat     string
	RequestTimeout time.Duration
	Save           SaveFunc
	NextNumber     NextNumberFunc
}

type invoiceField int

const (
	fieldBilledTo invoiceField = iota
	fieldIssueDate
	fieldDueDate
	fieldInvoiceNumber
	fieldReference
	fieldCount
)

type picker int

const (
	pickClient picker = iota
	pickIssue
	pickDue
	pickerCount
)

func (f invoiceField) picker() (picker, bool) {
	switch f {
	case fieldBilledTo:
		return pickClient, true
	case fieldIssueDate:
		return pickIssue, true
	case fieldDueDate:
		return pickDue, true
	}

	return 0, false
}

func (p picker) field() invoiceField {
	switch p {
	case pickIssue:
		return fieldIssueDate
	case pickDue:
		return fieldDueDate
	}

	return fieldBilledTo
}

type invoiceSavedMsg struct {
	mount uuid.UUID
	err   error
}

type nextNumberMsg struct {
	mount  uuid.UUID
	number string
	err    error
}

// InvoiceDetailsModel is the invoice header form: who is billed, issue and due dates and
// the invoice and reference numbers.
type InvoiceDetailsModel struct {
	CommonModel
	cfg  InvoiceDetailsConfig
	keys FormKeyMap
	help help.Model

	draft invoice.Draft
	focus invoiceField

	overlays     [pickerCount]Overlay
	clientPicker ClientPicker
	issuePicker  DatePicker
	duePicker    DatePicker

	numberInput    textinput.Model
	referenceInput textinput.Model

	errors invoice.ValidationErrors
	saving bool
	saved  bool
	err    error
}

func NewInvoiceDetailsModel(cfg InvoiceDetailsConfig) InvoiceDetailsModel {
	draft := cfg.Draft
	if draft.IssueDate.IsZero() {
		draft.IssueDate = invoice.DateOnly(time.Now())
	}

	if draft.DueDate.IsZero() {
		draft.DueDate = invoice.DueDateFor(draft.IssueDate)
	}

	if cfg.DateFormat == "" {
		cfg.DateFormat = defaultDateFormat
	}

	ni := textinput.New()
	ni.Placeholder = "INV-0001"
	ni.CharLimit = 32
	ni.Width = 36
	ni.Prompt = ""
	ni.SetValue(draft.InvoiceNumber)

	ri := textinput.New()
	ri.Placeholder = "optional"
	ri.CharLimit = 64
	ri.Width = 36
	ri.Prompt = ""
	ri.SetValue(draft.ReferenceNumber)

	return InvoiceDetailsModel{
		CommonModel:    newCommonModel(),
		cfg:            cfg,
		keys:           DefaultFormKeyMap,
		help:           help.New(),
		draft:          draft,
		clientPicker:   NewClientPicker(cfg.Clients),
		issuePicker:    NewDatePicker(draft.IssueDate),
		duePicker:      NewDatePicker(draft.DueDate),
		numberInput:    ni,
		referenceInput: ri,
	}
}

func (m InvoiceDetailsModel) Title() string { return "New Invoice" }

func (m InvoiceDetailsModel) ShortHelp() string {
	return m.help.ShortHelpView([]key.Binding{m.keys.Next, m.keys.Toggle, m.keys.Submit, m.keys.Back})
}

// Draft returns a copy of the current draft.
func (m InvoiceDetailsModel) Draft() invoice.Draft {
	d := m.draft
	if d.BilledTo != nil {
		c := *d.BilledTo
		d.BilledTo = &c
	}

	return d
}

// Errors returns the field errors of the last submit, keyed like invoice.ValidationErrors.
func (m InvoiceDetailsModel) Errors() invoice.ValidationErrors { return m.errors }

func (m InvoiceDetailsModel) Saving() bool { return m.saving }
func (m InvoiceDetailsModel) Saved() bool { return m.saved }

func (m InvoiceDetailsModel) ClientPickerOpen() bool { return m.overlays[pickClient].IsOpen() }
func (m InvoiceDetailsModel) IssuePickerOpen() bool { return m.overlays[pickIssue].IsOpen() }
func (m InvoiceDetailsModel) DuePickerOpen() bool { return m.overlays[pickDue].IsOpen() }

func (m InvoiceDetailsModel) Init() tea.Cmd {
	if m.cfg.NextNumber == nil || strings.TrimSpace(m.draft.InvoiceNumber) != "" {
		return nil
	}

	return m.fetchNextNumberCmd()
}

// SelectClient bills the draft to c and closes the client picker.
func (m InvoiceDetailsModel) SelectClient(c invoice.Client) InvoiceDetailsModel {
	m.draft.BilledTo = &c
	m.overlays[pickClient].Close()
	m.clearError("billedTo")

	return m
}

// SetIssueDate sets the issue date, derives the due date from it and closes the issue picker.
func (m InvoiceDetailsModel) SetIssueDate(d time.Time) InvoiceDetailsModel {
	m.draft.IssueDate = invoice.DateOnly(d)
	m.draft.DueDate = invoice.DueDateFor(m.draft.IssueDate)
	m.issuePicker.Reset(m.draft.IssueDate)
	m.duePicker.Reset(m.draft.DueDate)
	m.overlays[pickIssue].Close()
	m.clearError("issueDate")
	m.clearError("dueDate")

	return m
}

// SetDueDate overrides the derived due date and closes the due picker.
func (m InvoiceDetailsModel) SetDueDate(d time.Time) InvoiceDetailsModel {
	m.draft.DueDate = invoice.DateOnly(d)
	m.duePicker.Reset(m.draft.DueDate)
	m.overlays[pickDue].Close()
	m.clearError("dueDate")

	return m
}

func (m InvoiceDetailsModel) SetInvoiceNumber(s string) InvoiceDetailsModel {
	m.draft.InvoiceNumber = s
	if m.numberInput.Value() != s {
		m.numberInput.SetValue(s)
	}

	m.clearError("invoiceNumber")

	return m
}

func (m InvoiceDetailsModel) SetReferenceNumber(s string) InvoiceDetailsModel {
	m.draft.ReferenceNumber = s
	if m.referenceInput.Value() != s {
		m.referenceInput.SetValue(s)
	}

	return m
}

// Submit validates the draft. An invalid draft only updates the field errors; a valid one
// is handed to the save collaborator once.
func (m InvoiceDetailsModel) Submit() (InvoiceDetailsModel, tea.Cmd) {
	if m.saving {
		return m, nil
	}

	if err := invoice.Validate(m.draft); err != nil {
		var verrs invoice.ValidationErrors
		if errors.As(err, &verrs) {
			m.errors = verrs
			return m, nil
		}

		m.err = err

		return m, nil
	}

	m.errors = nil
	m.err = nil
	m.saved = false
	m.saving = true

	return m, m.saveCmd(m.Draft())
}

// clearError drops one field error. The map is copied since earlier model values share it.
func (m *InvoiceDetailsModel) clearError(field string) {
	if _, ok := m.errors[field]; !ok {
		return
	}

	next := make(invoice.ValidationErrors, len(m.errors)-1)
	for k, v := range m.errors {
		if k != field {
			next[k] = v
		}
	}

	m.errors = next
}

func (m InvoiceDetailsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case invoiceSavedMsg:
		if !m.owns(msg.mount) {
			return m, nil
		}

		m.saving = false

		if msg.err != nil {
			var verrs invoice.ValidationErrors
			if errors.As(msg.err, &verrs) {
				m.errors = verrs
				return m, nil
			}

			slog.Error("failed to save invoice", "invoice_number", m.draft.InvoiceNumber, "error", msg.err)
			m.err = msg.err

			return m, nil
		}

		m.saved = true

		return m, nil

	case nextNumberMsg:
		if !m.owns(msg.mount) {
			return m, nil
		}

		if msg.err != nil {
			slog.Warn("failed to suggest invoice number", "error", msg.err)
			return m, nil
		}

		if strings.TrimSpace(m.draft.InvoiceNumber) == "" {
			m = m.SetInvoiceNumber(msg.number)
		}

		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forward(msg)
}

func (m InvoiceDetailsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.Submit()
	case key.Matches(msg, m.keys.Next):
		return m.setFocus((m.focus + 1) % fieldCount)
	case key.Matches(msg, m.keys.Prev):
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	}

	if p, ok := m.focus.picker(); ok && m.overlays[p].IsOpen() {
		if key.Matches(msg, m.keys.Back) {
			m.overlays[p].Close()
			return m, nil
		}

		return m.updatePicker(p, msg)
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		return m, Back
	case key.Matches(msg, m.keys.Toggle):
		if p, ok := m.focus.picker(); ok {
			return m.toggle(p)
		}

		return m.setFocus((m.focus + 1) % fieldCount)
	}

	return m.updateInputs(msg)
}

func (m InvoiceDetailsModel) updatePicker(p picker, msg tea.Msg) (tea.Model, tea.Cmd) {
	switch p {
	case pickClient:
		var (
			picked *invoice.Client
			cmd    tea.Cmd
		)

		m.clientPicker, picked, cmd = m.clientPicker.Update(msg)
		if picked != nil {
			return m.SelectClient(*picked), nil
		}

		return m, cmd

	case pickIssue, pickDue:
		km, ok := msg.(tea.KeyMsg)
		if !ok {
			return m, nil
		}

		if p == pickIssue {
			dp, picked := m.issuePicker.Update(km)
			m.issuePicker = dp

			if picked {
				return m.SetIssueDate(dp.Cursor()), nil
			}

			return m, nil
		}

		dp, picked := m.duePicker.Update(km)
		m.duePicker = dp

		if picked {
			return m.SetDueDate(dp.Cursor()), nil
		}
	}

	return m, nil
}

// forward routes non-input messages (cursor blink, list internals) to the active widget.
func (m InvoiceDetailsModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.overlays[pickClient].IsOpen() {
		return m.updatePicker(pickClient, msg)
	}

	return m.updateInputs(msg)
}

func (m InvoiceDetailsModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case fieldInvoiceNumber:
		m.numberInput, cmd = m.numberInput.Update(msg)
		if v := m.numberInput.Value(); v != m.draft.InvoiceNumber {
			m = m.SetInvoiceNumber(v)
		}
	case fieldReference:
		m.referenceInput, cmd = m.referenceInput.Update(msg)
		if v := m.referenceInput.Value(); v != m.draft.ReferenceNumber {
			m = m.SetReferenceNumber(v)
		}
	}

	return m, cmd
}

func (m InvoiceDetailsModel) setFocus(f invoiceField) (tea.Model, tea.Cmd) {
	m.focus = f
	m.numberInput.Blur()
	m.referenceInput.Blur()

	switch f {
	case fieldInvoiceNumber:
		return m, m.numberInput.Focus()
	case fieldReference:
		return m, m.referenceInput.Focus()
	}

	return m, nil
}

func (m InvoiceDetailsModel) toggle(p picker) (tea.Model, tea.Cmd) {
	m.overlays[p].Toggle()
	if !m.overlays[p].IsOpen() {
		return m, nil
	}

	switch p {
	case pickClient:
		return m, m.clientPicker.Reset(m.draft.BilledTo)
	case pickIssue:
		m.issuePicker.Reset(m.draft.IssueDate)
	case pickDue:
		m.duePicker.Reset(m.draft.DueDate)
	}

	return m, nil
}

// handleMouse dismisses every open overlay the press landed outside of. A press on a
// picker's own field toggles that picker instead.
func (m InvoiceDetailsModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !isPress(msg) {
		return m, nil
	}

	_, regions := m.render()

	hit, onTrigger := picker(0), false

	for p := range pickerCount {
		if regions.triggers[p].Contains(msg.X, msg.Y) {
			hit, onTrigger = p, true
		}
	}

	for p := range pickerCount {
		if onTrigger && p == hit {
			continue
		}

		if m.overlays[p].IsOpen() && !regions.panels[p].Contains(msg.X, msg.Y) {
			m.overlays[p].Close()
		}
	}

	if !onTrigger {
		return m, nil
	}

	next, cmd := m.setFocus(hit.field())
	m = next.(InvoiceDetailsModel)

	toggled, toggleCmd := m.toggle(hit)

	return toggled, tea.Batch(cmd, toggleCmd)
}

func (m InvoiceDetailsModel) saveCmd(d invoice.Draft) tea.Cmd {
	mount, save := m.mountID, m.cfg.Save

	return func() tea.Msg {
		if save == nil {
			return invoiceSavedMsg{mount: mount, err: errors.New("saving is not configured")}
		}

		ctx, cancel := m.requestCtx(m.cfg.RequestTimeout)
		defer cancel()

		return invoiceSavedMsg{mount: mount, err: save(ctx, d)}
	}
}

func (m InvoiceDetailsModel) fetchNextNumberCmd() tea.Cmd {
	mount, next := m.mountID, m.cfg.NextNumber

	return func() tea.Msg {
		ctx, cancel := m.requestCtx(m.cfg.RequestTimeout)
		defer cancel()

		number, err := next(ctx)

		return nextNumberMsg{mount: mount, number: number, err: err}
	}
}

type invoiceRegions struct {
	triggers [pickerCount]Region
	panels   [pickerCount]Region
}

func (m InvoiceDetailsModel) View() string {
	v, _ := m.render()
	return v
}

// render lays the form out top to bottom and records where each picker field and open
// panel ended up on screen, in terminal cells.
func (m InvoiceDetailsModel) render() (string, invoiceRegions) {
	var (
		regions invoiceRegions
		blocks  []string
	)

	top, left := screenStyle.GetPaddingTop(), screenStyle.GetPaddingLeft()
	y := top

	add := func(block string) Region {
		r := regionOf(left, y, block)
		blocks = append(blocks, block)
		y += r.Height

		return r
	}

	add(titleStyle.Render(m.Title()))
	add("")

	regions.triggers[pickClient] = add(m.fieldBlock(fieldBilledTo, "Billed to", m.clientCard(), "billedTo"))
	if m.overlays[pickClient].IsOpen() {
		regions.panels[pickClient] = add(overlayStyle.Render(m.clientPicker.View()))
	}

	regions.triggers[pickIssue] = add(m.fieldBlock(fieldIssueDate, "Date of issue",
		FormatDate(m.draft.IssueDate, m.cfg.DateFormat), "issueDate"))
	if m.overlays[pickIssue].IsOpen() {
		regions.panels[pickIssue] = add(overlayStyle.Render(m.issuePicker.View()))
	}

	regions.triggers[pickDue] = add(m.fieldBlock(fieldDueDate, "Due date",
		FormatDate(m.draft.DueDate, m.cfg.DateFormat), "dueDate"))
	if m.overlays[pickDue].IsOpen() {
		regions.panels[pickDue] = add(overlayStyle.Render(m.duePicker.View()))
	}

	add(m.fieldBlock(fieldInvoiceNumber, "Invoice number", m.numberInput.View(), "invoiceNumber"))
	add(m.fieldBlock(fieldReference, "Reference", m.referenceInput.View(), "referenceNumber"))

	add("")
	add(m.statusLine())
	add(m.ShortHelp())

	return screenStyle.Render(lipgloss.JoinVertical(lipgloss.Left, blocks...)), regions
}

func (m InvoiceDetailsModel) fieldBlock(f invoiceField, label, content, errKey string) string {
	ls, box := labelStyle, fieldStyle
	if m.focus == f {
		ls, box = focusedLabel, focusedFieldStyle
	}

	parts := []string{ls.Render(label), box.Render(content)}
	if msg, ok := m.errors[errKey]; ok {
		parts = append(parts, errorStyle.Render(msg))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m InvoiceDetailsModel) clientCard() string {
	c := m.draft.BilledTo
	if c == nil {
		return mutedStyle.Render("Select a client")
	}

	lines := []string{labelStyle.Render(c.Label)}
	if c.Address != "" {
		lines = append(lines, c.Address)
	}

	if c.Phone != "" {
		lines = append(lines, mutedStyle.Render(c.Phone))
	}

	return strings.Join(lines, "\n")
}

func (m InvoiceDetailsModel) statusLine() string {
	switch {
	case m.saving:
		return mutedStyle.Render("Saving…")
	case m.err != nil:
		return errorStyle.Render("Error: " + m.err.Error())
	case m.saved:
		return successStyle.Render("Invoice " + strings.TrimSpace(m.draft.InvoiceNumber) + " saved.")
	case len(m.errors) > 0:
		return errorStyle.Render("Fix the highlighted fields and save again.")
	}

	return ""
}
