package tui

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MartinRain/sinope-130/internal/flow"
	"github.com/MartinRain/sinope-130/internal/settings"
)

// Input limits shared by the setup and options forms
const (
	textCharLimit = 128
	intCharLimit  = 9
)

// optionRow is one editable line of the options form
type optionRow struct {
	field  flow.Field
	input  textinput.Model // FieldString and FieldInt
	toggle bool            // FieldBool
	choice int             // FieldSelect, index into field.Choices
}

func newOptionRow(field flow.Field) optionRow {
	row := optionRow{field: field}
	switch field.Kind {
	case flow.FieldBool:
		row.toggle, _ = strconv.ParseBool(field.Default)
	case flow.FieldSelect:
		for i, c := range field.Choices {
			if c == field.Default {
				row.choice = i
			}
		}
	default:
		in := textinput.New()
		in.Prompt = ""
		in.Width = 30
		in.CharLimit = textCharLimit
		in.Placeholder = "optional"
		if field.Kind == flow.FieldInt {
			in.CharLimit = intCharLimit
			in.Placeholder = "seconds"
		}
		// A stored value longer than the limit is kept whole
		if n := utf8.RuneCountInString(field.Default); n > in.CharLimit {
			in.CharLimit = n
		}
		in.SetValue(field.Default)
		row.input = in
	}
	return row
}

func (r optionRow) editable() bool {
	return r.field.Kind != flow.FieldBool && r.field.Kind != flow.FieldSelect
}

// value returns the row as a form string
func (r optionRow) value() string {
	switch r.field.Kind {
	case flow.FieldBool:
		return strconv.FormatBool(r.toggle)
	case flow.FieldSelect:
		if r.choice < len(r.field.Choices) {
			return r.field.Choices[r.choice]
		}
		return ""
	default:
		return r.input.Value()
	}
}

// change flips a flag or cycles a choice by delta
func (r *optionRow) change(delta int) {
	switch r.field.Kind {
	case flow.FieldBool:
		r.toggle = !r.toggle
	case flow.FieldSelect:
		n := len(r.field.Choices)
		if n > 0 {
			r.choice = ((r.choice+delta)%n + n) % n
		}
	}
}

// OptionsModel is the options form of an existing entry.
type OptionsModel struct {
	flow *flow.OptionsFlow
	Rows []optionRow

	Focus       int
	FieldErrors map[string]string

	done      bool
	cancelled bool
	result    flow.Result

	Width  int
	Height int
	Help   help.Model
	Keys   formKeyMap
}

// NewOptionsModel renders the options form of f.
func NewOptionsModel(f *flow.OptionsFlow) OptionsModel {
	form := f.StepInit(nil)

	m := OptionsModel{
		flow: f,
		Rows: make([]optionRow, len(form.Fields)),
		Help: help.New(),
		Keys: newOptionsKeys(),
	}
	for i, field := range form.Fields {
		m.Rows[i] = newOptionRow(field)
	}
	m.focusRow(0)
	return m
}

// Init starts the cursor blink
func (m OptionsModel) Init() tea.Cmd {
	return textinput.Blink
}

// Outcome returns the final create_entry result. ok is false when the user
// cancelled.
func (m OptionsModel) Outcome() (flow.Result, bool) {
	return m.result, m.done
}

// Cancelled reports whether the user left the form without saving.
func (m OptionsModel) Cancelled() bool {
	return m.cancelled
}

// Values returns the current form values keyed by configuration key.
func (m OptionsModel) Values() map[string]string {
	out := make(map[string]string, len(m.Rows))
	for _, r := range m.Rows {
		out[r.field.Key] = r.value()
	}
	return out
}

// Update handles messages and updates the model
func (m OptionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Cancel):
			m.cancelled = true
			return m, tea.Quit

		case key.Matches(msg, m.Keys.Next):
			cmd := m.focusRow(m.Focus + 1)
			return m, cmd

		case key.Matches(msg, m.Keys.Prev):
			cmd := m.focusRow(m.Focus - 1)
			return m, cmd

		case key.Matches(msg, m.Keys.Submit):
			return m.submit()

		case key.Matches(msg, m.Keys.Change) && !m.Rows[m.Focus].editable():
			delta := 1
			if msg.String() == "left" {
				delta = -1
			}
			m.Rows[m.Focus].change(delta)
			return m, nil
		}
	}

	if len(m.Rows) == 0 || !m.Rows[m.Focus].editable() {
		return m, nil
	}
	var cmd tea.Cmd
	m.Rows[m.Focus].input, cmd = m.Rows[m.Focus].input.Update(msg)
	return m, cmd
}

// focusRow moves focus, wrapping at both ends.
func (m *OptionsModel) focusRow(i int) tea.Cmd {
	n := len(m.Rows)
	if n == 0 {
		return nil
	}
	i = ((i % n) + n) % n
	if m.Rows[m.Focus].editable() {
		m.Rows[m.Focus].input.Blur()
	}
	m.Focus = i
	if m.Rows[i].editable() {
		return m.Rows[i].input.Focus()
	}
	return nil
}

func (m OptionsModel) submit() (tea.Model, tea.Cmd) {
	parsed, err := settings.Parse(m.Values())
	if err != nil {
		var fieldErrs settings.FieldErrors
		if errors.As(err, &fieldErrs) {
			m.FieldErrors = fieldErrs.ByKey()
		} else {
			m.FieldErrors = map[string]string{flow.ErrorBase: err.Error()}
		}
		return m, nil
	}

	m.FieldErrors = nil
	m.done = true
	m.result = m.flow.StepInit(&parsed)
	return m, tea.Quit
}

// View renders the options form
func (m OptionsModel) View() string {
	var b strings.Builder

	b.WriteString(RenderTitle("Neviweb130 options"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Intervals are in seconds. Changes apply after the integration reloads."))
	b.WriteString("\n\n")

	for i, r := range m.Rows {
		label := LabelStyle
		if i == m.Focus {
			label = FocusedLabelStyle
		}
		b.WriteString(label.Render(FieldLabel(r.field.Key)))
		b.WriteString("  ")

		switch r.field.Kind {
		case flow.FieldBool:
			mark := "[ ]"
			if r.toggle {
				mark = "[x]"
			}
			b.WriteString(ValueStyle.Render(mark))
		case flow.FieldSelect:
			b.WriteString(ValueStyle.Render("‹ " + r.value() + " ›"))
		default:
			b.WriteString(r.input.View())
		}
		b.WriteString("\n")

		if reason, ok := m.FieldErrors[r.field.Key]; ok {
			b.WriteString(FieldErrorStyle.Render(reason))
			b.WriteString("\n")
		}
	}

	if reason, ok := m.FieldErrors[flow.ErrorBase]; ok {
		b.WriteString("\n")
		b.WriteString(RenderError(reason))
		b.WriteString("\n")
	}

	return RenderApplicationContainer(b.String(), m.Help.View(m.Keys), m.Width, m.Height)
}
