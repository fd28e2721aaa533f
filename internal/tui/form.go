package tui

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/trknhr/creditrisk/internal/applicant"
	"github.com/trknhr/creditrisk/internal/importance"
	"github.com/trknhr/creditrisk/internal/inference"
	"github.com/trknhr/creditrisk/internal/logger"
)

const chartRows = 10

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	focusStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle   = lipgloss.NewStyle().Width(18)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	badStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	goodStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// Scorer is satisfied by *inference.Runtime.
type Scorer interface {
	Score(in applicant.Input) (inference.Result, error)
}

const (
	fieldSex = iota
	fieldAge
	fieldJob
	fieldHousing
	fieldSaving
	fieldChecking
	fieldCredit
	fieldDuration
	fieldPurpose
)

type formModel struct {
	scorer         Scorer
	importancePath string

	fields []field
	focus  int
	width  int

	inputErr error
	result   *inference.Result
	scoreErr error
	table    importance.Table
	tableErr error
	bar      progress.Model
}

// predictionMsg carries one scoring round and the importance table read
// alongside it.
type predictionMsg struct {
	result   inference.Result
	err      error
	table    importance.Table
	tableErr error
}

func NewFormModel(scorer Scorer, importancePath string) *formModel {
	d := applicant.Default()
	fields := []field{
		fieldSex:      newSelectField("Sex", stringsOf(applicant.AllSex()), d.Sex.String()),
		fieldAge:      newNumberField("Age", d.Age, applicant.MinAge, applicant.MaxAge),
		fieldJob:      newSelectField("Job", stringsOf(applicant.AllJobs()), d.Job.String()),
		fieldHousing:  newSelectField("Housing", stringsOf(applicant.AllHousing()), d.Housing.String()),
		fieldSaving:   newSelectField("Saving Account", stringsOf(applicant.AllSavingAccounts()), d.SavingAccount.String()),
		fieldChecking: newSelectField("Checking Account", stringsOf(applicant.AllCheckingAccounts()), d.CheckingAccount.String()),
		fieldCredit:   newNumberField("Credit Amount", d.CreditAmount, 0, -1),
		fieldDuration: newNumberField("Duration (months)", d.Duration, applicant.MinDuration, applicant.MaxDuration),
		fieldPurpose:  newSelectField("Purpose", stringsOf(applicant.AllPurposes()), d.Purpose.String()),
	}
	return &formModel{
		scorer:         scorer,
		importancePath: importancePath,
		fields:         fields,
		bar:            progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (m *formModel) Init() tea.Cmd {
	return m.fields[m.focus].Focus()
}

// Input reads the form into an applicant. Numeric fields are range checked
// here; categorical fields can only hold known values.
func (m *formModel) Input() (applicant.Input, error) {
	var (
		in   applicant.Input
		errs []error
	)
	var err error
	if in.Sex, err = applicant.ParseSex(m.fields[fieldSex].Value()); err != nil {
		errs = append(errs, err)
	}
	if in.Job, err = applicant.ParseJob(m.fields[fieldJob].Value()); err != nil {
		errs = append(errs, err)
	}
	if in.Housing, err = applicant.ParseHousing(m.fields[fieldHousing].Value()); err != nil {
		errs = append(errs, err)
	}
	if in.SavingAccount, err = applicant.ParseSavingAccount(m.fields[fieldSaving].Value()); err != nil {
		errs = append(errs, err)
	}
	if in.CheckingAccount, err = applicant.ParseCheckingAccount(m.fields[fieldChecking].Value()); err != nil {
		errs = append(errs, err)
	}
	if in.Purpose, err = applicant.ParsePurpose(m.fields[fieldPurpose].Value()); err != nil {
		errs = append(errs, err)
	}
	if in.Age, err = m.fields[fieldAge].(*numberField).Int(); err != nil {
		errs = append(errs, err)
	}
	if in.CreditAmount, err = m.fields[fieldCredit].(*numberField).Int(); err != nil {
		errs = append(errs, err)
	}
	if in.Duration, err = m.fields[fieldDuration].(*numberField).Int(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return applicant.Input{}, errors.Join(errs...)
	}
	return in, nil
}

func predictCmd(scorer Scorer, in applicant.Input, importancePath string) tea.Cmd {
	return func() tea.Msg {
		res, err := scorer.Score(in)
		msg := predictionMsg{result: res, err: err}
		if err == nil {
			msg.table, msg.tableErr = importance.ReadCSV(importancePath)
		}
		return msg
	}
}

func (m *formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 4; w > 0 && w < 60 {
			m.bar.Width = w
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "shift+tab":
			return m, m.moveFocus(-1)
		case "down", "tab":
			return m, m.moveFocus(1)
		case "enter":
			in, err := m.Input()
			m.inputErr = err
			if err != nil {
				return m, nil
			}
			return m, predictCmd(m.scorer, in, m.importancePath)
		default:
			m.inputErr = nil
			return m, m.fields[m.focus].Update(msg)
		}

	case predictionMsg:
		if msg.err != nil {
			logger.Error("prediction failed: %v", msg.err)
			m.result, m.scoreErr = nil, msg.err
			return m, nil
		}
		res := msg.result
		m.result, m.scoreErr = &res, nil
		m.table, m.tableErr = msg.table, msg.tableErr
		if msg.tableErr != nil && !errors.Is(msg.tableErr, fs.ErrNotExist) {
			logger.Warn("failed to read feature importance: %v", msg.tableErr)
		}
	}
	return m, nil
}

func (m *formModel) moveFocus(delta int) tea.Cmd {
	m.fields[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)
	return m.fields[m.focus].Focus()
}

func (m *formModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("German Credit Risk Prediction") + "\n\n")

	for i, f := range m.fields {
		cursor := "  "
		label := labelStyle.Render(f.Label())
		if i == m.focus {
			cursor = focusStyle.Render("> ")
			label = focusStyle.Inherit(labelStyle).Render(f.Label())
		}
		b.WriteString(cursor + label + f.View(i == m.focus) + "\n")
	}

	if m.inputErr != nil {
		b.WriteString("\n" + errorStyle.Render(m.inputErr.Error()) + "\n")
	}

	switch {
	case m.scoreErr != nil:
		b.WriteString("\n" + errorStyle.Render("Prediction failed: "+m.scoreErr.Error()) + "\n")
	case m.result != nil:
		b.WriteString("\n" + m.resultView())
	}

	b.WriteString("\n" + hintStyle.Render("(↑/↓ move, ←/→ change, enter predict, esc quit)"))
	return b.String()
}

func (m *formModel) resultView() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Risk Score") + "\n")
	b.WriteString(m.bar.ViewAs(m.result.Probability) + "\n")
	b.WriteString(fmt.Sprintf("Probability of Bad Credit Risk: %.2f%%\n", m.result.Probability*100))

	verdict := "Prediction: " + m.result.Verdict()
	if m.result.Bad() {
		b.WriteString(badStyle.Render(verdict) + "\n")
	} else {
		b.WriteString(goodStyle.Render(verdict) + "\n")
	}

	b.WriteString("\n" + sectionStyle.Render("Model Insights") + "\n")
	switch {
	case errors.Is(m.tableErr, fs.ErrNotExist):
		b.WriteString(hintStyle.Render("Feature importance file not found.") + "\n")
	case m.tableErr != nil:
		b.WriteString(errorStyle.Render("Feature importance unavailable: "+m.tableErr.Error()) + "\n")
	default:
		b.WriteString(renderChart(m.table.Top(chartRows), m.chartWidth()))
	}
	return b.String()
}

func (m *formModel) chartWidth() int {
	if m.width > 0 && m.width < 100 {
		return m.width / 2
	}
	return 40
}

func stringsOf[T fmt.Stringer](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}
