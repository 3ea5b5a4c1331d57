package adapter

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
	optionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// TUIPrompter asks questions with Bubble Tea programs.
type TUIPrompter struct {
	input  io.Reader
	output io.Writer
}

// NewTUIPrompter creates a new TUIPrompter.
func NewTUIPrompter(input io.Reader, output io.Writer) *TUIPrompter {
	return &TUIPrompter{input: input, output: output}
}

// Ask runs a single-line text input.
func (p *TUIPrompter) Ask(label string) (string, error) {
	final, err := p.run(newInputModel(label))
	if err != nil {
		return "", err
	}

	model, ok := final.(inputModel)
	if !ok || model.aborted {
		return "", ErrAborted
	}

	return model.input.Value(), nil
}

// Choose runs a list selection over options.
func (p *TUIPrompter) Choose(label string, options []string) (string, error) {
	final, err := p.run(newChoiceModel(label, options))
	if err != nil {
		return "", err
	}

	model, ok := final.(choiceModel)
	if !ok || model.aborted {
		return "", ErrAborted
	}

	return model.choice, nil
}

// Warn prints message in the warning style.
func (p *TUIPrompter) Warn(message string) {
	_, _ = fmt.Fprintln(p.output, warnStyle.Render("! "+message))
}

func (p *TUIPrompter) run(model tea.Model) (tea.Model, error) {
	program := tea.NewProgram(model, tea.WithInput(p.input), tea.WithOutput(p.output))

	return program.Run()
}

// inputModel is a one-question text prompt.
type inputModel struct {
	label   string
	input   textinput.Model
	done    bool
	aborted bool
}

func newInputModel(label string) inputModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 0 // unlimited
	ti.Focus()

	return inputModel{label: label, input: ti}
}

func (im inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (im inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type { //nolint:exhaustive // remaining keys go to the text input
		case tea.KeyCtrlC, tea.KeyEsc:
			im.aborted = true
			return im, tea.Quit
		case tea.KeyEnter:
			im.done = true
			return im, tea.Quit
		}
	}

	var cmd tea.Cmd

	im.input, cmd = im.input.Update(msg)

	return im, cmd
}

func (im inputModel) View() string {
	if im.done {
		return fmt.Sprintf("%s %s\n", labelStyle.Render(im.label), answerStyle.Render(im.input.Value()))
	}

	if im.aborted {
		return ""
	}

	return fmt.Sprintf("%s\n%s\n", labelStyle.Render(im.label), im.input.View())
}

// choiceItem is an option of a choiceModel.
type choiceItem string

func (c choiceItem) FilterValue() string {
	return string(c)
}

type choiceDelegate struct{}

func (d choiceDelegate) Height() int  { return 1 }
func (d choiceDelegate) Spacing() int { return 0 }
func (d choiceDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d choiceDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	option, ok := item.(choiceItem)
	if !ok {
		return
	}

	if index == m.Index() {
		_, _ = fmt.Fprint(w, selectedStyle.Render("› "+string(option)))
		return
	}

	_, _ = fmt.Fprint(w, optionStyle.Render("  "+string(option)))
}

// choiceModel picks one option from a short list.
type choiceModel struct {
	label   string
	options list.Model
	choice  string
	aborted bool
}

func newChoiceModel(label string, options []string) choiceModel {
	items := make([]list.Item, 0, len(options))
	for _, option := range options {
		items = append(items, choiceItem(option))
	}

	l := list.New(items, choiceDelegate{}, 40, len(options))
	l.SetShowPagination(false)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)

	return choiceModel{label: label, options: l}
}

func (cm choiceModel) Init() tea.Cmd {
	return nil
}

func (cm choiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc", "q":
			cm.aborted = true
			return cm, tea.Quit
		case "enter":
			if item, ok := cm.options.SelectedItem().(choiceItem); ok {
				cm.choice = string(item)
			}

			return cm, tea.Quit
		}
	}

	var cmd tea.Cmd

	cm.options, cmd = cm.options.Update(msg)

	return cm, cmd
}

func (cm choiceModel) View() string {
	if cm.choice != "" {
		return fmt.Sprintf("%s %s\n", labelStyle.Render(cm.label), answerStyle.Render(cm.choice))
	}

	if cm.aborted {
		return ""
	}

	return fmt.Sprintf("%s\n%s\n", labelStyle.Render(cm.label), cm.options.View())
}
