package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type field interface {
	Label() string
	Value() string
	Focus() tea.Cmd
	Blur()
	Update(msg tea.KeyMsg) tea.Cmd
	View(focused bool) string
}

// selectField cycles through a fixed option list with left/right.
type selectField struct {
	label   string
	options []string
	idx     int
}

func newSelectField(label string, options []string, initial string) *selectField {
	f := &selectField{label: label, options: options}
	for i, o := range options {
		if o == initial {
			f.idx = i
		}
	}
	return f
}

func (f *selectField) Label() string    { return f.label }
func (f *selectField) Value() string    { return f.options[f.idx] }
func (f *selectField) Focus() tea.Cmd   { return nil }
func (f *selectField) Blur()            {}
func (f *selectField) View(bool) string { return "‹ " + f.Value() + " ›" }

func (f *selectField) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h":
		f.idx = (f.idx - 1 + len(f.options)) % len(f.options)
	case "right", "l", " ":
		f.idx = (f.idx + 1) % len(f.options)
	}
	return nil
}

// numberField is a digits-only text input with an inclusive range.
// max < 0 means unbounded.
type numberField struct {
	label string
	input textinput.Model
	min   int
	max   int
}

func newNumberField(label string, initial, min, max int) *numberField {
	in := textinput.New()
	in.CharLimit = 9
	in.Width = 12
	in.Prompt = ""
	in.SetValue(strconv.Itoa(initial))
	return &numberField{label: label, input: in, min: min, max: max}
}

func (f *numberField) Label() string  { return f.label }
func (f *numberField) Value() string  { return strings.TrimSpace(f.input.Value()) }
func (f *numberField) Focus() tea.Cmd { return f.input.Focus() }
func (f *numberField) Blur()          { f.input.Blur() }

func (f *numberField) Update(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (f *numberField) View(focused bool) string {
	hint := fmt.Sprintf("[%d-%d]", f.min, f.max)
	if f.max < 0 {
		hint = fmt.Sprintf("[>= %d]", f.min)
	}
	return f.input.View() + " " + hintStyle.Render(hint)
}

func (f *numberField) Int() (int, error) {
	v := f.Value()
	if v == "" {
		return 0, fmt.Errorf("%s is required", f.label)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", f.label)
	}
	if n < f.min || (f.max >= 0 && n > f.max) {
		if f.max < 0 {
			return 0, fmt.Errorf("%s must be at least %d", f.label, f.min)
		}
		return 0, fmt.Errorf("%s must be between %d and %d", f.label, f.min, f.max)
	}
	return n, nil
}
