package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"sizelabel/internal/model"
	"sizelabel/internal/util/format"
)

// Text inputs are written to directly by format.ReadableSize.
var _ format.Sink = (*textinput.Model)(nil)

const invalidLabel = "( invalid size )"

type fieldState struct {
	field model.QuotaField
	input textinput.Model
	label string
	err   error
}

// Model is the quota form. Each field shows the label for whatever is typed
// and is normalized to a plain byte count when focus leaves it.
type Model struct {
	repo   string
	fields []fieldState
	focus  int

	submitted bool
	canceled  bool
	result    model.QuotaForm

	keys   keyMap
	help   help.Model
	styles Styles
	width  int
}

func NewModel(form model.QuotaForm) Model {
	sty := defaultStyles()
	fields := make([]fieldState, 0, len(model.QuotaFields))
	for _, f := range model.QuotaFields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = "unlimited"
		in.CharLimit = 32
		in.Width = 20
		fs := fieldState{field: f, input: in}
		fs.label = format.ReadableSize(&fs.input, form.Get(f))
		fields = append(fields, fs)
	}
	fields[0].input.Focus()

	return Model{
		repo:   form.Repository,
		fields: fields,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: sty,
		result: model.QuotaForm{Repository: form.Repository},
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.canceled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.commit(m.focus)
			return m, m.moveFocus(m.focus + 1)
		case key.Matches(msg, m.keys.Prev):
			m.commit(m.focus)
			return m, m.moveFocus(m.focus - 1)
		case key.Matches(msg, m.keys.Submit):
			if !m.commit(m.focus) {
				return m, nil
			}
			if m.focus < len(m.fields)-1 {
				return m, m.moveFocus(m.focus + 1)
			}
			return m.submit()
		}
	}

	fs := &m.fields[m.focus]
	var cmd tea.Cmd
	fs.input, cmd = fs.input.Update(msg)
	m.refresh(m.focus)
	return m, cmd
}

// Result returns the submitted form; ok is false if the form was cancelled
// or is still open.
func (m Model) Result() (form model.QuotaForm, ok bool) {
	return m.result, m.submitted
}

// refresh recomputes the live label without touching the input text.
func (m *Model) refresh(i int) {
	fs := &m.fields[i]
	n, err := format.ParseHuman(fs.input.Value())
	if err != nil {
		fs.err = err
		fs.label = invalidLabel
		return
	}
	fs.err = nil
	fs.label = format.Label(float64(n))
}

// commit normalizes field i in place, e.g. "2GB" becomes "2147483648".
// It returns false and leaves the text alone if it does not parse.
func (m *Model) commit(i int) bool {
	fs := &m.fields[i]
	n, err := format.ParseHuman(fs.input.Value())
	if err != nil {
		fs.err = err
		fs.label = invalidLabel
		return false
	}
	if err := m.result.Set(fs.field, n); err != nil {
		fs.err = err
		fs.label = invalidLabel
		return false
	}
	fs.err = nil
	fs.label = format.ReadableSize(&fs.input, n)
	return true
}

func (m *Model) moveFocus(i int) tea.Cmd {
	n := len(m.fields)
	i = ((i % n) + n) % n
	m.fields[m.focus].input.Blur()
	m.focus = i
	return m.fields[i].input.Focus()
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	for i := range m.fields {
		if !m.commit(i) {
			return m, m.moveFocus(i)
		}
	}
	m.submitted = true
	return m, tea.Quit
}
