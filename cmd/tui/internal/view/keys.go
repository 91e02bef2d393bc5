package view

import "github.com/charmbracelet/bubbles/key"

type FormKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Submit key.Binding
	Back   key.Binding
}

var DefaultFormKeyMap = FormKeyMap{
	Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
	Toggle: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open/close picker")),
	Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close/back")),
}

type DatePickerKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Pick      key.Binding
}

var DefaultDatePickerKeyMap = DatePickerKeyMap{
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous day")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous week")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
	PrevMonth: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous month")),
	NextMonth: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month")),
	Pick:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick")),
}

type PanelKeyMap struct {
	Toggle     key.Binding
	Connect    key.Binding
	Disconnect key.Binding
	Refresh    key.Binding
	Back       key.Binding
}

var DefaultPanelKeyMap = PanelKeyMap{
	Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "enable/disable")),
	Connect:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "connect")),
	Disconnect: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "disconnect")),
	Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "re-check")),
	Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
}
