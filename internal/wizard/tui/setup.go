package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MartinRain/sinope-130/internal/flow"
	"github.com/MartinRain/sinope-130/internal/settings"
)

// stepResultMsg carries the result of a credential submission
type stepResultMsg struct {
	result flow.Result
}

// SetupModel is the credential form of the setup wizard.
type SetupModel struct {
	ctx  context.Context
	flow *flow.ConfigFlow

	Fields []flow.Field
	Inputs []textinput.Model
	Focus  int

	// Submitting is set while the credentials are being checked
	Submitting bool
	FormError  string
	LocalError string

	done      bool
	cancelled bool
	result    flow.Result

	Width   int
	Height  int
	Spinner spinner.Model
	Help    help.Model
	Keys    formKeyMap
	Busy    submittingKeyMap
}

// NewSetupModel renders the first form of f.
func NewSetupModel(ctx context.Context, f *flow.ConfigFlow) SetupModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	form := f.StepUser(ctx, nil)

	m := SetupModel{
		ctx:     ctx,
		flow:    f,
		Fields:  form.Fields,
		Inputs:  make([]textinput.Model, len(form.Fields)),
		Spinner: s,
		Help:    help.New(),
		Keys:    newSetupKeys(),
		Busy: submittingKeyMap{Cancel: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		)},
	}

	for i, field := range form.Fields {
		in := textinput.New()
		in.Prompt = ""
		in.Width = 40
		in.CharLimit = textCharLimit
		switch {
		case field.Kind == flow.FieldPassword:
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		case field.Key == settings.KeyUsername:
			in.Placeholder = "you@example.com"
		case !field.Required:
			in.Placeholder = "optional"
		}
		m.Inputs[i] = in
	}
	if len(m.Inputs) > 0 {
		m.Inputs[0].Focus()
	}

	return m
}

// Init starts the cursor blink
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Outcome returns the final create_entry or abort result. ok is false when
// the user quit before the flow finished.
func (m SetupModel) Outcome() (flow.Result, bool) {
	return m.result, m.done
}

// Cancelled reports whether the user left the wizard.
func (m SetupModel) Cancelled() bool {
	return m.cancelled
}

// Update handles messages and updates the model
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.Submitting {
			if key.Matches(msg, m.Busy.Cancel) {
				m.cancelled = true
				return m, tea.Quit
			}
			return m, nil
		}
		return m.updateKeys(msg)

	case stepResultMsg:
		return m.applyResult(msg.result)

	case spinner.TickMsg:
		if !m.Submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	return m.updateFocused(msg)
}

func (m SetupModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		m.cancelled = true
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Next):
		cmd := m.setFocus(m.Focus + 1)
		return m, cmd

	case key.Matches(msg, m.Keys.Prev):
		cmd := m.setFocus(m.Focus - 1)
		return m, cmd

	case key.Matches(msg, m.Keys.Submit):
		return m.submit()
	}

	return m.updateFocused(msg)
}

func (m SetupModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.Focus < 0 || m.Focus >= len(m.Inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.Inputs[m.Focus], cmd = m.Inputs[m.Focus].Update(msg)
	return m, cmd
}

// setFocus moves focus, wrapping at both ends.
func (m *SetupModel) setFocus(i int) tea.Cmd {
	n := len(m.Inputs)
	if n == 0 {
		return nil
	}
	i = ((i % n) + n) % n
	m.Inputs[m.Focus].Blur()
	m.Focus = i
	return m.Inputs[i].Focus()
}

// Input returns the current form values as a submission.
func (m SetupModel) Input() *flow.UserInput {
	in := &flow.UserInput{}
	for i, field := range m.Fields {
		value := m.Inputs[i].Value()
		if field.Kind != flow.FieldPassword {
			value = strings.TrimSpace(value)
		}
		switch field.Key {
		case settings.KeyUsername:
			in.Username = value
		case settings.KeyPassword:
			in.Password = value
		case settings.KeyNetwork:
			in.Network = value
		case settings.KeyNetwork2:
			in.Network2 = value
		case settings.KeyNetwork3:
			in.Network3 = value
		}
	}
	return in
}

// missingRequired returns the index of the first empty required field, or -1.
func (m SetupModel) missingRequired() int {
	for i, field := range m.Fields {
		if field.Required && strings.TrimSpace(m.Inputs[i].Value()) == "" {
			return i
		}
	}
	return -1
}

func (m SetupModel) submit() (tea.Model, tea.Cmd) {
	if i := m.missingRequired(); i >= 0 {
		m.LocalError = FieldLabel(m.Fields[i].Key) + " is required"
		cmd := m.setFocus(i)
		return m, cmd
	}

	m.LocalError = ""
	m.FormError = ""
	m.Submitting = true

	ctx, f, input := m.ctx, m.flow, m.Input()
	return m, tea.Batch(m.Spinner.Tick, func() tea.Msg {
		return stepResultMsg{result: f.StepUser(ctx, input)}
	})
}

func (m SetupModel) applyResult(res flow.Result) (tea.Model, tea.Cmd) {
	m.Submitting = false

	if res.Type != flow.ResultForm {
		m.done = true
		m.result = res
		return m, tea.Quit
	}

	m.FormError = res.Errors[flow.ErrorBase]
	for i, field := range m.Fields {
		if field.Kind == flow.FieldPassword {
			m.Inputs[i].SetValue("")
			continue
		}
		if v, ok := res.Suggested[field.Key]; ok {
			m.Inputs[i].SetValue(v)
		}
	}

	// back to the password so it can be retyped
	for i, field := range m.Fields {
		if field.Kind == flow.FieldPassword {
			cmd := m.setFocus(i)
			return m, cmd
		}
	}
	return m, nil
}

// View renders the credential form
func (m SetupModel) View() string {
	var b strings.Builder

	b.WriteString(RenderTitle("Connect your Neviweb account"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Credentials are checked once against the Neviweb login service."))
	b.WriteString("\n\n")

	for i, field := range m.Fields {
		label := LabelStyle
		if i == m.Focus && !m.Submitting {
			label = FocusedLabelStyle
		}
		name := FieldLabel(field.Key)
		if field.Required {
			name += " *"
		}
		b.WriteString(label.Render(name))
		b.WriteString("  ")
		b.WriteString(m.Inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.Submitting:
		b.WriteString(m.Spinner.View() + " Checking credentials with Neviweb...")
		b.WriteString("\n")
	case m.LocalError != "":
		b.WriteString(RenderError(m.LocalError))
		b.WriteString("\n")
	case m.FormError != "":
		b.WriteString(RenderError(ErrorMessage(m.FormError)))
		b.WriteString("\n")
		if hint := ErrorHint(m.FormError); hint != "" {
			b.WriteString(HintStyle.Render(hint))
			b.WriteString("\n")
		}
	}

	var helpText string
	if m.Submitting {
		helpText = m.Help.View(m.Busy)
	} else {
		helpText = m.Help.View(m.Keys)
	}

	return RenderApplicationContainer(b.String(), helpText, m.Width, m.Height)
}
