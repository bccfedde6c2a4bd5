package prompt

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/husk/internal/ui/styles"
)

// Option is one entry of a multi-select prompt.
type Option struct {
	Label       string
	Description string
	Selected    bool // pre-checked
}

// MultiSelectResult holds the result of a multi-select prompt.
type MultiSelectResult struct {
	// Indices of the chosen options, in option order.
	Indices   []int
	Cancelled bool
}

type multiSelectModel struct {
	prompt    string
	options   []Option
	cursor    int
	checked   []bool
	done      bool
	cancelled bool
}

func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case " ", "space":
			m.checked[m.cursor] = !m.checked[m.cursor]
		case "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m multiSelectModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}

	var b strings.Builder
	b.WriteString(styles.Bold.Render(m.prompt) + "\n\n")

	for i, opt := range m.options {
		cursor := "  "
		style := styles.NormalStyle
		if i == m.cursor {
			cursor = "> "
			style = styles.AccentStyle
		}

		checkbox := "[ ]"
		if m.checked[i] {
			checkbox = "[x]"
		}

		b.WriteString(cursor + checkbox + " " + style.Render(opt.Label))
		if opt.Description != "" {
			b.WriteString("  " + styles.MutedStyle.Render(opt.Description))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + styles.MutedStyle.Render("↑/↓ move • space toggle • enter confirm • esc cancel") + "\n")
	return tea.NewView(b.String())
}

// MultiSelect shows a checkbox list and returns the chosen option
// indices. Options marked Selected start checked.
func MultiSelect(prompt string, options []Option) (MultiSelectResult, error) {
	if len(options) == 0 {
		return MultiSelectResult{Cancelled: true}, nil
	}

	checked := make([]bool, len(options))
	for i, opt := range options {
		checked[i] = opt.Selected
	}

	model := multiSelectModel{
		prompt:  prompt,
		options: options,
		checked: checked,
	}
	p := newProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		return MultiSelectResult{}, err
	}
	m := finalModel.(multiSelectModel)

	if m.cancelled {
		return MultiSelectResult{Cancelled: true}, nil
	}

	var indices []int
	for i, c := range m.checked {
		if c {
			indices = append(indices, i)
		}
	}
	return MultiSelectResult{Indices: indices}, nil
}
